package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coldreach",
	Short: "Deterministic outreach drafting for sales prospects",
	Long: `coldreach turns a prospect profile and a set of observed intent signals
into one conservative, ready-to-send outreach message plus alternatives.
The same input always produces the same output.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		// A missing .env file is fine; real environments set variables directly.
		_ = godotenv.Load()
	})
}
