package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/anjiri1684/tutor_market_seeder/logger"
	"github.com/anjiri1684/tutor_market_seeder/seeder"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the sample dataset",
	Long: `Create the fixed sample dataset in dependency order. The store is
expected to be empty; run reset first if a previous seed failed partway.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *gorm.DB, log logger.Logger) error {
			color.Cyan("🌱 Seeding sample data...")
			if _, err := seeder.New(db, log).Seed(); err != nil {
				return err
			}
			color.Green("✓ Sample data seeded")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
