package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile     string
	logFiles    []string
	groupField  string
	targetField string
	dateFilter  string
	logLevel    string
	logFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "logreport",
	Short: "Ranked aggregate reports over JSON log files",
	Long: `A CLI tool for generating ranked aggregate reports from
newline-delimited JSON log files.

Records are grouped by an arbitrary (possibly nested, slash-addressed)
field and a mean or median of a numeric target field is computed per
group. Typical use: average response time per URL from HTTP access logs.

Features:
  - Nested field addressing (e.g. http_user_agent/os/name)
  - Mean and median reports ranked by sample count
  - Date filtering on the @timestamp field
  - Field discovery for unknown log schemas`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "logreport.yaml",
		"Path to configuration file")

	// Report inputs
	rootCmd.PersistentFlags().StringSliceVarP(&logFiles, "file", "f", nil,
		"Log file(s) to process (repeat for multiple files)")
	rootCmd.PersistentFlags().StringVarP(&groupField, "field", "F", "",
		"Field to group by (default: url)")
	rootCmd.PersistentFlags().StringVarP(&targetField, "target", "t", "",
		"Target field to analyze (default: response_time)")
	rootCmd.PersistentFlags().StringVarP(&dateFilter, "date", "d", "",
		"Filter logs by date (YYYY-MM-DD)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Field     string
	Target    string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Field:     groupField,
		Target:    targetField,
	}
}
