package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/estateseed/internal/config"
	"github.com/Lumos-Labs-HQ/estateseed/internal/database"
	"github.com/Lumos-Labs-HQ/estateseed/internal/gen"
)

var (
	profileFile string
	seedValue   int64
	monthCount  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full synthetic dataset",
	Long: `Create any missing tables, seed the reference vocabulary, generate the
entity graph (buildings, owners, rooms, parking, staff, service data)
and compute billing transactions for the most recent months.

All rows are written inside one transaction and committed at the very
end; a failed run leaves the database unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if profileFile == "" {
			profileFile = cfg.Profile
		}
		profile, err := config.LoadProfile(profileFile)
		if err != nil {
			return err
		}
		if seedValue != 0 {
			profile.Seed = seedValue
		}
		if monthCount > 0 {
			profile.Months = monthCount
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

		ctx := cmd.Context()
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}

		result, err := gen.Run(ctx, store, profile, recentMonths(time.Now(), profile.Months))
		if err != nil {
			return err
		}

		color.Green("\n✅ Dataset generated and committed")
		printSummary(result)
		return nil
	},
}

// recentMonths returns the most recent n calendar months, newest
// first, stepping back 30 days at a time from the first of the current
// month. The billing engine only reads the year and month of each.
func recentMonths(now time.Time, n int) []time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	months := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, first.AddDate(0, 0, -i*30))
	}
	return months
}

func printSummary(result *gen.Result) {
	rows := []struct {
		label string
		count int
	}{
		{"buildings", result.Buildings},
		{"owner accounts", result.Owners},
		{"rooms", result.Rooms},
		{"parking spaces", result.ParkingSpaces},
		{"staff types", result.StaffTypes},
		{"staff", result.Staff},
		{"service areas", result.ServiceAreas},
		{"service records", result.ServiceRecords},
		{"transactions", result.Transactions},
	}

	fmt.Println()
	color.Cyan("📊 Row counts:")
	for _, row := range rows {
		fmt.Printf("  %-16s %d\n", row.label, row.count)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&profileFile, "profile", "", "Dataset profile YAML (counts and probabilities)")
	generateCmd.Flags().Int64Var(&seedValue, "seed", 0, "Fixed random seed for reproducible runs")
	generateCmd.Flags().IntVar(&monthCount, "months", 0, "Number of recent months to bill (overrides profile)")
}
