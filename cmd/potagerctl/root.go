package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"potager/config"
	"potager/database"
	"potager/pkg/logger"
)

// swapped out by tests
var (
	openStore  = database.Open
	closeStore = database.Close
)

var (
	cfg   config.AppConfig
	store *gorm.DB
	log   *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:          "potagerctl",
	Short:        "Maintenance tasks for Le potager malin",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		log = logger.New("potagerctl", cfg.LogLevel, cfg.LogFormat)
		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		store = db
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		err := closeStore(store)
		store = nil
		return err
	},
}
