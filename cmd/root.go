package cmd

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	config "github.com/anjiri1684/tutor_market_seeder/configs"
	"github.com/anjiri1684/tutor_market_seeder/database"
	"github.com/anjiri1684/tutor_market_seeder/logger"
	"github.com/anjiri1684/tutor_market_seeder/report"
	"github.com/anjiri1684/tutor_market_seeder/seeder"
)

var rootCmd = &cobra.Command{
	Use:   "tutorseed",
	Short: "Reset and reseed the tutoring marketplace database",
	Long: `tutorseed wipes every table in dependency-safe order, repopulates the
store with a fixed sample dataset, and prints a nested report of the
resulting data graph. Without a subcommand it runs the full
reset -> seed -> report workflow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(db *gorm.DB, log logger.Logger) error {
			s := seeder.New(db, log)
			if _, err := s.Reset(); err != nil {
				return err
			}
			if _, err := s.Seed(); err != nil {
				return err
			}
			if err := report.New(db, log).Render(); err != nil {
				return err
			}
			log.Info("✓ All queries executed successfully")
			return nil
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// withStore brackets fn with the store lifecycle: load config, connect,
// migrate, and always disconnect, on every exit path.
func withStore(fn func(*gorm.DB, logger.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Default()
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close(db)

	log.Info("Database connection established.")
	if err := database.Migrate(db); err != nil {
		return err
	}
	return fn(db, log)
}
