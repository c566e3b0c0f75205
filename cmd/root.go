package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════╗",
		"║  ┌─┐┌─┐┌┬┐┌─┐┌┬┐┌─┐┌─┐┌─┐┌─┐┌┬┐                  ║",
		"║  ├┤ └─┐ │ ├─┤ │ ├┤ └─┐├┤ ├┤  ││                  ║",
		"║  └─┘└─┘ ┴ ┴ ┴ ┴ └─┘└─┘└─┘└─┘─┴┘                  ║",
		"║                                                  ║",
		"║  🏢 Property-management test data, one commit    ║",
		"╚══════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "estateseed",
	Short: "Populate a property-management database with plausible synthetic data",
	Long: `
estateseed fills a relational store with a self-consistent synthetic
dataset for a residential property-management domain: users and roles,
buildings, rooms, parking spaces, staff, service records, fee
standards and billing transactions.

Everything generated in one run is referentially valid and lands in a
single transaction, so an interrupted run leaves the target untouched.

Database Support:
- PostgreSQL
- MySQL
- SQLite (embedded databases)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("estateseed CLI version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./estateseed.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("estateseed.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
