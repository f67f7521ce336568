package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jparise/humantime/internal/report"
	"github.com/jparise/humantime/internal/timeparse"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [<duration>...]",
	Short: "Rewrite durations in canonical form",
	Long: `Rewrite each duration in canonical form, e.g. "90 min" becomes "1h 30m".

Durations are read from the arguments or, when there are none, one per line
from standard input. Blank input lines are copied through unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newOutput(cmd)
		if len(args) > 0 {
			return runNormalize(out, args)
		}
		return normalizeLines(out, cmd.InOrStdin())
	},
}

func runNormalize(out *report.Output, inputs []string) error {
	var problems []report.Problem
	for i, input := range inputs {
		e, err := timeparse.ParseDuration(input)
		if err != nil {
			problems = append(problems, report.Problem{
				Location: fmt.Sprintf("argument %d", i+1),
				Input:    input,
				Err:      err,
			})
			continue
		}
		out.Value("", e.String())
	}

	out.Problems(problems)
	if len(problems) > 0 {
		return fmt.Errorf("failed to normalize %d of %d values", len(problems), len(inputs))
	}
	return nil
}

func normalizeLines(out *report.Output, r io.Reader) error {
	var failed, total int

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(out.Stdout())
			continue
		}
		total++

		e, err := timeparse.ParseDuration(line)
		if err != nil {
			failed++
			out.Problems([]report.Problem{{
				Location: fmt.Sprintf("line %d", lineNum),
				Input:    line,
				Err:      err,
			}})
			continue
		}
		out.Value("", e.String())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("failed to normalize %d of %d values", failed, total)
	}
	return nil
}
