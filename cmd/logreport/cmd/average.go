package cmd

import (
	"github.com/spf13/cobra"
)

var averageCmd = &cobra.Command{
	Use:   "average",
	Short: "Report the mean of the target field per group",
	Long: `Average groups records by the --field value and reports the
arithmetic mean of the --target field per group, ranked by sample count.

Records whose target value is not numeric, or whose grouping value is
missing, are excluded from the report without failing the run.

Example:
  logreport average -f access.log -F url -t response_time
  logreport average -f access.log -f errors.log -d 2025-08-10`,
	RunE: runAverage,
}

func init() {
	rootCmd.AddCommand(averageCmd)
}

func runAverage(cmd *cobra.Command, args []string) error {
	return runReport(cmd, "average")
}
