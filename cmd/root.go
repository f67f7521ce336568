package cmd

import (
	"fmt"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/humantime/internal/config"
	"github.com/jparise/humantime/internal/report"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color      = colorAuto
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "humantime",
	Short: "Parse and format human-friendly durations",
	Long: `humantime converts between free-form duration text and exact values.

A duration is a sequence of numbers with unit suffixes, e.g. "2h 37min",
"32ms" or "1year 2months". Supported units:
  ns, nsec, nanos               nanoseconds
  us, usec                      microseconds
  ms, msec, millis              milliseconds
  s, sec, secs, second(s)       seconds
  m, min, mins, minute(s)       minutes
  h, hr, hrs, hour(s)           hours
  d, day, days                  days
  w, week, weeks                weeks
  M, month, months              months (30.44 days)
  y, year, years                years (365.25 days)

Defaults for flags may be set in a YAML config file, located at
$HUMANTIME_CONFIG or <user config dir>/humantime/config.yml.

Examples:
  humantime parse "2h 37min"
  humantime parse --output seconds 1h30m 90min
  humantime format 9420
  humantime since 2018-10-27
  humantime check --max 30days "config/**/*.dur"`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a YAML config file")

	rootCmd.AddCommand(parseCmd, formatCmd, normalizeCmd, sinceCmd, unitsCmd, checkCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig applies config file and environment defaults to every flag the
// user did not set explicitly.
func loadConfig(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	unset := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && !f.Changed
	}

	if cfg.Color != "" && unset("color") {
		color = colorMode(cfg.Color)
	}
	if cfg.Jobs != 0 && unset("jobs") {
		jobs = cfg.Jobs
	}
	if cfg.Min != nil && unset("min") {
		minValue.setValue(*cfg.Min)
	}
	if cfg.Max != nil && unset("max") {
		maxValue.setValue(*cfg.Max)
	}

	return nil
}

// colorize resolves the --color flag against the terminal.
func colorize() bool {
	switch color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return term.FromEnv().IsColorEnabled()
	}
}

func newOutput(cmd *cobra.Command) *report.Output {
	return report.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize())
}
