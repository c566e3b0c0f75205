package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/estateseed/internal/config"
	"github.com/Lumos-Labs-HQ/estateseed/internal/database"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the tables without generating data",
	Long:  `Run only the schema bootstrap: create any missing tables and exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		store, err := database.Open(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer store.Close()

		if err := store.EnsureSchema(cmd.Context()); err != nil {
			return err
		}

		color.Green("✅ Schema is in place")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
