package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-relevance/internal/filters"
	"github.com/jonathan/job-relevance/internal/observability"
	"github.com/jonathan/job-relevance/internal/types"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Run a job posting through the static filter chain",
	Long: `Evaluates a job posting (JSON file with title, company, description) against
the location, education, and cloud-bias filters and prints the verdict.
A blocked verdict is recorded in the per-filter rejection stats.`,
	RunE: runFilterCmd,
}

var (
	filterConfigPath string
	filterJobPath    string
	filterProfile    string
	filterNoRecord   bool
)

func init() {
	filterCmd.Flags().StringVar(&filterConfigPath, "config", "", "Path to config.json file")
	filterCmd.Flags().StringVarP(&filterJobPath, "job", "j", "", "Path to job posting JSON file (required)")
	filterCmd.Flags().StringVarP(&filterProfile, "profile", "p", "", "Search profile tag (defaults to config value)")
	filterCmd.Flags().BoolVar(&filterNoRecord, "no-record", false, "Do not record blocked verdicts in filter stats")
	_ = filterCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(filterCmd)
}

func runFilterCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(filterConfigPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filterJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return fmt.Errorf("failed to parse job JSON: %w", err)
	}

	profileTag := filterProfile
	if profileTag == "" {
		profileTag = cfg.Profile
	}
	profile := types.ParseProfile(profileTag)

	chain := filters.DefaultChain()
	verdict, filterName := chain.Apply(job, profile)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintVerdict(job, verdict)

	if verdict.Blocked && !filterNoRecord {
		engine, cleanup, err := newEngine(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()
		if err := engine.RecordFilterBlock(ctx, filterName); err != nil {
			return err
		}
	}

	return nil
}
