package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jparise/humantime/internal/checker"
	"github.com/jparise/humantime/internal/timeparse"
	"github.com/spf13/cobra"
)

// optionalElapsed is a duration flag that distinguishes "unset" from zero.
type optionalElapsed struct {
	value timeparse.Elapsed
	set   bool
}

func (o *optionalElapsed) String() string {
	if !o.set {
		return ""
	}
	return o.value.String()
}

func (o *optionalElapsed) Set(v string) error {
	if err := o.value.Set(v); err != nil {
		return err
	}
	o.set = true
	return nil
}

func (o *optionalElapsed) Type() string {
	return "duration"
}

func (o *optionalElapsed) setValue(v timeparse.Elapsed) {
	o.value, o.set = v, true
}

// get returns nil when the flag is unset.
func (o *optionalElapsed) get() *timeparse.Elapsed {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

var (
	// Flags.
	minValue optionalElapsed
	maxValue optionalElapsed
	jobs     int
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern>...",
	Short: "Validate durations stored one per line in files",
	Long: `Validate every duration in the files matching <pattern>.

Each file holds one duration per line. Blank lines and lines starting with
"#" are ignored. Every invalid or out-of-range value is reported as
path:line:column.

<pattern> is a file path or a glob pattern:
  *              Match any characters (e.g., "*.dur")
  **             Match across directories (e.g., "config/**/*.dur")
  ?              Match single character
  [...]          Match character class
  {...}          Match alternatives (e.g., "*.{dur,txt}")`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		if minValue.set && maxValue.set && minValue.value.Compare(maxValue.value) > 0 {
			return fmt.Errorf("--min cannot be greater than --max")
		}
		return nil
	},
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Var(&minValue, "min",
		"report values shorter than this duration (e.g., 1s)")
	checkCmd.Flags().Var(&maxValue, "max",
		"report values longer than this duration (e.g., 30days)")
	checkCmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum files checked concurrently")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &checker.Options{
		Patterns: args,
		Min:      minValue.get(),
		Max:      maxValue.get(),
		Jobs:     jobs,
	}

	out := newOutput(cmd)
	summary, err := checker.New(out).Check(ctx, opts)
	if err != nil {
		return err
	}

	if summary.Files > 0 {
		out.Infof("%d values in %d files are valid", summary.Values, summary.Files)
	}
	return nil
}
