package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-relevance/internal/labels"
	"github.com/jonathan/job-relevance/internal/llm"
	"github.com/jonathan/job-relevance/internal/observability"
)

var mapLabelsCmd = &cobra.Command{
	Use:   "map-labels [label]...",
	Short: "Classify application-form field labels into canonical keys",
	Long: `Resolves each label with the deterministic heuristic rules first and
escalates the rest to the LLM fallback classifier (requires GEMINI_API_KEY).
Without an API key only the heuristic tier runs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMapLabelsCmd,
}

var mapLabelsConfigPath string

func init() {
	mapLabelsCmd.Flags().StringVar(&mapLabelsConfigPath, "config", "", "Path to config.json file")
	rootCmd.AddCommand(mapLabelsCmd)
}

func runMapLabelsCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(mapLabelsConfigPath)
	if err != nil {
		return err
	}

	var classifier labels.Classifier
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create classifier: %w", err)
		}
		defer func() { _ = client.Close() }()
		classifier = labels.NewLLMClassifier(client)
	}

	mapper := labels.NewMapper(classifier,
		labels.WithFallbackTimeout(time.Duration(cfg.FallbackTimeoutSecs)*time.Second))

	mappings := mapper.MapLabelsSmart(ctx, args)
	observability.NewPrinter(os.Stdout).PrintLabelMappings(mappings)

	return nil
}
