package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-relevance/internal/observability"
	"github.com/jonathan/job-relevance/internal/types"
)

var rejectCmd = &cobra.Command{
	Use:   "reject",
	Short: "Record a job rejection and learn from the reason",
	Long: `Feeds one rejection (job + free-text reason) into the learning engine.
Recurring patterns are extracted from the reason and the matching scoring
category's weight adjustment is nudged down, bounded by the configured clamp.`,
	RunE: runRejectCmd,
}

var (
	rejectConfigPath string
	rejectJobPath    string
	rejectReason     string
	rejectCategory   string
	rejectVerbose    bool
)

func init() {
	rejectCmd.Flags().StringVar(&rejectConfigPath, "config", "", "Path to config.json file")
	rejectCmd.Flags().StringVarP(&rejectJobPath, "job", "j", "", "Path to job posting JSON file (required)")
	rejectCmd.Flags().StringVarP(&rejectReason, "reason", "r", "", "Free-text rejection reason (required)")
	rejectCmd.Flags().StringVar(&rejectCategory, "category", "", "Scoring category (derived from the reason when omitted)")
	rejectCmd.Flags().BoolVarP(&rejectVerbose, "verbose", "v", false, "Print resulting adjustments")
	_ = rejectCmd.MarkFlagRequired("job")
	_ = rejectCmd.MarkFlagRequired("reason")
	rootCmd.AddCommand(rejectCmd)
}

func runRejectCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(rejectConfigPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(rejectJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return fmt.Errorf("failed to parse job JSON: %w", err)
	}

	engine, cleanup, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := engine.RecordRejection(ctx, job, rejectReason, rejectCategory); err != nil {
		return err
	}

	if rejectVerbose || cfg.Verbose {
		adjustments, err := engine.GetActiveAdjustments(ctx)
		if err != nil {
			return err
		}
		observability.NewPrinter(os.Stdout).PrintAdjustments(adjustments)
	}

	return nil
}
