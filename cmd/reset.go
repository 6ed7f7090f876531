package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/anjiri1684/tutor_market_seeder/logger"
	"github.com/anjiri1684/tutor_market_seeder/seeder"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every row in dependency-safe order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *gorm.DB, log logger.Logger) error {
			color.Yellow("🗑️  Truncating tables...")
			n, err := seeder.New(db, log).Reset()
			if err != nil {
				return err
			}
			color.Green("✓ Removed %d rows", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
