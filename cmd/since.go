package cmd

import (
	"fmt"
	"time"

	"github.com/jparise/humantime/internal/report"
	"github.com/jparise/humantime/internal/timeparse"
	"github.com/spf13/cobra"
)

var (
	sincePrecision = timeparse.NewElapsed(1, 0)

	// now is replaced in tests.
	now = time.Now
)

var sinceCmd = &cobra.Command{
	Use:   "since <time>",
	Short: "Print the time elapsed since a point in time",
	Long: `Print the time elapsed since <time>, rounded down to --precision.

<time> can be:
  YYYY-MM-DD           Midnight UTC on that date
  YYYY-MM-DD HH:MM:SS  That time in UTC
  RFC3339              e.g. "2018-10-27T10:00:00-07:00"
  @<seconds>           Seconds since the Unix epoch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSince(newOutput(cmd), args[0], sincePrecision, now())
	},
}

func init() {
	sinceCmd.Flags().Var(&sincePrecision, "precision",
		"round the result down to a multiple of this duration (e.g., 1m, 1day)")
}

func runSince(out *report.Output, input string, precision timeparse.Elapsed, now time.Time) error {
	t, err := timeparse.ParseTime(input)
	if err != nil {
		return err
	}

	e, err := timeparse.Since(t, now)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", input, err)
	}

	out.Value("", e.Truncate(precision).String())
	return nil
}
