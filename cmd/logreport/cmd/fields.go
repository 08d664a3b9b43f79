package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbsmedya/logreport/internal/report"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the groupable fields discovered in the log files",
	Long: `Fields loads the given log files and lists every valid leaf field,
sorted. A leaf field is a flattened key path whose value is never a nested
object in any record; only leaf fields can be used with --field and
--target.

Example:
  logreport fields -f access.log`,
	RunE: runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := engineOptions(cfg, log)
	names, err := report.ListFields(opts)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		cmd.Println("No fields discovered")
		return nil
	}

	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}
