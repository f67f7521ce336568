package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jparise/humantime/internal/report"
	"github.com/jparise/humantime/internal/timeparse"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <value>...",
	Short: "Format exact values as human-friendly durations",
	Long: `Format each argument in canonical human-friendly form.

<value> can be:
  <seconds>          Whole seconds (e.g., "9420")
  <seconds>.<frac>   Seconds with up to 9 fractional digits (e.g., "0.032")
  <go duration>      Go duration syntax (e.g., "2h37m", "1.5s")`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFormat(newOutput(cmd), args)
	},
}

func runFormat(out *report.Output, inputs []string) error {
	var problems []report.Problem

	for i, input := range inputs {
		e, err := parseValue(input)
		if err != nil {
			problems = append(problems, report.Problem{
				Location: fmt.Sprintf("argument %d", i+1),
				Input:    input,
				Err:      err,
			})
			continue
		}
		out.Value(label(input, len(inputs) > 1), timeparse.FormatDuration(e).String())
	}

	out.Problems(problems)
	if len(problems) > 0 {
		return fmt.Errorf("failed to format %d of %d values", len(problems), len(inputs))
	}
	return nil
}

// parseValue parses a decimal seconds count or a Go duration string.
func parseValue(s string) (timeparse.Elapsed, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return timeparse.Elapsed{}, fmt.Errorf("empty value")
	}

	if strings.Trim(s, "0123456789.") == "" {
		return parseSeconds(s)
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return timeparse.Elapsed{}, fmt.Errorf("invalid value %q: expected seconds or a Go duration", s)
	}
	return timeparse.FromStd(d)
}

// parseSeconds parses "S" or "S.F" exactly, with at most nine digits of F.
func parseSeconds(s string) (timeparse.Elapsed, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return timeparse.Elapsed{}, fmt.Errorf("invalid seconds %q", s)
	}

	var secs uint64
	if whole != "" {
		var err error
		secs, err = strconv.ParseUint(whole, 10, 64)
		if err != nil {
			return timeparse.Elapsed{}, fmt.Errorf("invalid seconds %q: %w", s, err)
		}
	}

	var nanos uint64
	if hasFrac {
		if len(frac) > 9 {
			return timeparse.Elapsed{}, fmt.Errorf("invalid seconds %q: at most 9 fractional digits are supported", s)
		}
		if frac != "" {
			var err error
			nanos, err = strconv.ParseUint(frac+strings.Repeat("0", 9-len(frac)), 10, 32)
			if err != nil {
				return timeparse.Elapsed{}, fmt.Errorf("invalid seconds %q: %w", s, err)
			}
		}
	}

	return timeparse.NewElapsed(secs, uint32(nanos)), nil
}
