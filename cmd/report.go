package cmd

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/anjiri1684/tutor_market_seeder/logger"
	"github.com/anjiri1684/tutor_market_seeder/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a nested report of the current data graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *gorm.DB, log logger.Logger) error {
			return report.New(db, log).Render()
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
