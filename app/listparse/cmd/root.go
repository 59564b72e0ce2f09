package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "listparse",
	Short: "Parse server directory listings into structured file records",
	Long: `Listparse ingests raw server-emitted directory listings and exposes them
as structured file records. A dialect-specific parser tokenizes the stream
and strips noise; records are then materialized lazily, paged or all at
once.`,
	PersistentPreRun: loadRootConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func loadRootConfig(cmd *cobra.Command, _ []string) {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	applyEnvDefaults(cmd)
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
}
