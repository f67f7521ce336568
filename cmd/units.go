package cmd

import (
	"strings"

	"github.com/jparise/humantime/internal/report"
	"github.com/jparise/humantime/internal/timeparse"
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the supported time units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUnits(newOutput(cmd))
	},
}

func runUnits(out *report.Output) error {
	t := newTablePrinter(out)
	t.AddHeader([]string{"UNIT", "SUFFIXES", "LENGTH"})
	for _, u := range timeparse.Units() {
		t.AddField(u.Name)
		t.AddField(strings.Join(u.Suffixes, ", "))
		t.AddField(u.Scale().String())
		t.EndRow()
	}
	return t.Render()
}
