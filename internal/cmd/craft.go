package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coldreach/internal/config"
	"coldreach/internal/logging"
	"coldreach/internal/pipeline"
	"coldreach/internal/store"
	"coldreach/internal/validate"
)

var craftFile string

var craftCmd = &cobra.Command{
	Use:   "craft",
	Short: "Draft outreach for a single request file",
	Long: `Read a JSON file containing a prospect profile and intent signals,
run it through the drafting pipeline once, and print the result as JSON.`,
	RunE: runCraft,
}

func init() {
	rootCmd.AddCommand(craftCmd)

	craftCmd.Flags().StringVarP(&craftFile, "file", "f", "", "Path to the JSON request file")
	craftCmd.MarkFlagRequired("file")
}

func runCraft(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	f, err := os.Open(craftFile)
	if err != nil {
		return fmt.Errorf("failed to open request file: %w", err)
	}
	defer f.Close()

	req, err := validate.Parse(f)
	if err != nil {
		return err
	}

	orchestrator := pipeline.New(pipeline.Config{
		Timeout:          cfg.PipelineTimeout,
		MaxDraftAttempts: cfg.MaxDraftAttempts,
	}, logger)

	out, err := orchestrator.Process(context.Background(), req.Prospect, req.Signals)
	if err != nil {
		return err
	}

	if cfg.HistoryDBPath != "" {
		history, err := store.Open(cfg.HistoryDBPath)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer history.Close()

		rec := store.Record{
			ID:             out.Metadata.RequestID,
			Company:        req.Prospect.CompanyName,
			Confidence:     string(out.Confidence),
			FollowUpTiming: out.FollowUpTiming,
			CreatedAt:      out.Metadata.ProcessedAt,
		}
		if err := history.Add(context.Background(), rec); err != nil {
			return err
		}
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(encoded))

	return nil
}
