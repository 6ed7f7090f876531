package main

import (
	"os"

	"github.com/anjiri1684/tutor_market_seeder/cmd"
	"github.com/anjiri1684/tutor_market_seeder/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Default().Error(err, "An error occurred")
		os.Exit(1)
	}
}
