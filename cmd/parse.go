package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cli/go-gh/v2/pkg/jsonpretty"
	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/humantime/internal/report"
	"github.com/jparise/humantime/internal/timeparse"
	"github.com/spf13/cobra"
)

// outputMode selects how parsed values are printed.
type outputMode string

const (
	outputText    outputMode = "text"
	outputSeconds outputMode = "seconds"
	outputGo      outputMode = "go"
	outputJSON    outputMode = "json"
	outputTable   outputMode = "table"
)

func (m *outputMode) String() string {
	return string(*m)
}

func (m *outputMode) Set(v string) error {
	switch outputMode(v) {
	case outputText, outputSeconds, outputGo, outputJSON, outputTable:
		*m = outputMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"text\", \"seconds\", \"go\", \"json\", or \"table\"")
	}
}

func (m *outputMode) Type() string {
	return "outputMode"
}

var output = outputText

var parseCmd = &cobra.Command{
	Use:   "parse <duration>...",
	Short: "Parse durations and print their values",
	Long: `Parse each argument as a duration and print its value.

Output formats:
  text     canonical form, e.g. "2h 37m"
  seconds  seconds with nanosecond precision, e.g. "9420.000000000"
  go       Go time.Duration syntax, e.g. "2h37m0s"
  json     JSON objects with the input, seconds, nanos, and canonical form
  table    a table of the same fields`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(newOutput(cmd), args, output)
	},
}

func init() {
	parseCmd.Flags().VarP(&output, "output", "o",
		"output format: text, seconds, go, json, table")
}

// parsedValue is one successfully parsed input.
type parsedValue struct {
	Input     string            `json:"input"`
	Seconds   uint64            `json:"seconds"`
	Nanos     uint32            `json:"nanos"`
	Canonical timeparse.Elapsed `json:"canonical"`
}

func runParse(out *report.Output, inputs []string, mode outputMode) error {
	values := make([]parsedValue, 0, len(inputs))
	var problems []report.Problem

	for i, input := range inputs {
		e, err := timeparse.ParseDuration(input)
		if err == nil && mode == outputGo {
			_, err = e.Std()
		}
		if err != nil {
			problems = append(problems, report.Problem{
				Location: fmt.Sprintf("argument %d", i+1),
				Input:    input,
				Err:      err,
			})
			continue
		}
		values = append(values, parsedValue{
			Input:     input,
			Seconds:   e.Seconds(),
			Nanos:     e.Nanos(),
			Canonical: e,
		})
	}

	out.Problems(problems)

	if err := writeValues(out, values, mode, len(inputs) > 1); err != nil {
		return err
	}

	if len(problems) > 0 {
		return fmt.Errorf("failed to parse %d of %d values", len(problems), len(inputs))
	}
	return nil
}

// writeValues prints values in the given mode. Text modes prefix each value
// with its input when labeled is set.
func writeValues(out *report.Output, values []parsedValue, mode outputMode, labeled bool) error {
	switch mode {
	case outputJSON:
		data, err := json.Marshal(values)
		if err != nil {
			return err
		}
		return jsonpretty.Format(out.Stdout(), bytes.NewReader(data), "  ", out.Colorize())

	case outputTable:
		t := newTablePrinter(out)
		t.AddHeader([]string{"INPUT", "SECONDS", "NANOS", "CANONICAL"})
		for _, v := range values {
			t.AddField(v.Input)
			t.AddField(strconv.FormatUint(v.Seconds, 10))
			t.AddField(strconv.FormatUint(uint64(v.Nanos), 10))
			t.AddField(v.Canonical.String())
			t.EndRow()
		}
		return t.Render()

	default:
		for _, v := range values {
			out.Value(label(v.Input, labeled), formatValue(v, mode))
		}
		return nil
	}
}

func formatValue(v parsedValue, mode outputMode) string {
	switch mode {
	case outputSeconds:
		return fmt.Sprintf("%d.%09d", v.Seconds, v.Nanos)
	case outputGo:
		d, err := v.Canonical.Std()
		if err != nil {
			return v.Canonical.String()
		}
		return d.String()
	default:
		return v.Canonical.String()
	}
}

// newTablePrinter sizes the table for the terminal when stdout is one.
func newTablePrinter(out *report.Output) tableprinter.TablePrinter {
	t := term.FromEnv()
	isTTY := out.Stdout() == t.Out() && t.IsTerminalOutput()
	width := 80
	if isTTY {
		if w, _, err := t.Size(); err == nil {
			width = w
		}
	}
	return tableprinter.New(out.Stdout(), isTTY, width)
}

func label(input string, labeled bool) string {
	if labeled {
		return input
	}
	return ""
}
