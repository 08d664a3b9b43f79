package cmd

import (
	"github.com/spf13/cobra"
)

var medianCmd = &cobra.Command{
	Use:   "median",
	Short: "Report the median of the target field per group",
	Long: `Median groups records by the --field value and reports the
median of the --target field per group, ranked by sample count. For
even-length groups the median is the mean of the two middle values.

Example:
  logreport median -f access.log -F url -t response_time`,
	RunE: runMedian,
}

func init() {
	rootCmd.AddCommand(medianCmd)
}

func runMedian(cmd *cobra.Command, args []string) error {
	return runReport(cmd, "median")
}
