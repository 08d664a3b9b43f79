package cmd

import (
	"fmt"
	"strconv"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/logreport/internal/config"
	"github.com/dbsmedya/logreport/internal/logger"
	"github.com/dbsmedya/logreport/internal/render"
	"github.com/dbsmedya/logreport/internal/report"
)

// setup loads configuration, applies CLI overrides and builds the logger.
// The config file is optional unless --config was given explicitly.
func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	required := cmd.Flags().Changed("config")
	cfg, err := config.Load(GetConfigFile(), required)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

// engineOptions resolves flag values over config defaults.
func engineOptions(cfg *config.Config, log *logger.Logger) report.Options {
	field := groupField
	if field == "" {
		field = cfg.Defaults.Field
	}
	target := targetField
	if target == "" {
		target = cfg.Defaults.Target
	}
	return report.Options{
		Files:  logFiles,
		Field:  field,
		Target: target,
		Date:   dateFilter,
		Logger: log,
	}
}

// runReport is the shared driver behind the average and median commands.
// name is the report name as the commands expose it.
func runReport(cmd *cobra.Command, name string) error {
	op, err := report.ParseOp(name)
	if err != nil {
		return err
	}

	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	log = log.WithReport(name)
	defer func() { _ = log.Sync() }()

	gen, err := report.NewGenerator(engineOptions(cfg, log))
	if err != nil {
		return err
	}

	result := gen.Generate(op)
	if result.Empty() {
		cmd.Println(result.Message)
		return nil
	}

	rows := make([][]string, len(result.Rows))
	for i, r := range result.Rows {
		rows[i] = []string{
			strconv.Itoa(r.Rank),
			r.Group,
			strconv.Itoa(r.Count),
			strconv.FormatFloat(r.Stat, 'f', -1, 64),
		}
	}

	render.Table(cmd.OutOrStdout(), result.Headers, rows, render.Options{
		Color: color.SupportColor(),
	})
	return nil
}
