package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-relevance/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learning engine's dashboard snapshot",
	Long: `Prints the active weight adjustments, the most frequent rejection
patterns, the latest learning events, and per-filter rejection counts.`,
	RunE: runStatsCmd,
}

var (
	statsConfigPath string
	statsLimit      int
	statsReset      string
)

func init() {
	statsCmd.Flags().StringVar(&statsConfigPath, "config", "", "Path to config.json file")
	statsCmd.Flags().IntVar(&statsLimit, "limit", 5, "Max patterns and learnings to show")
	statsCmd.Flags().StringVar(&statsReset, "reset", "", "Reset state before reading: weights, filters, caches, or all")
	rootCmd.AddCommand(statsCmd)
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(statsConfigPath)
	if err != nil {
		return err
	}

	engine, cleanup, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	switch statsReset {
	case "":
	case "weights":
		if err := engine.ResetWeightAdjustments(ctx); err != nil {
			return err
		}
	case "filters":
		if err := engine.ClearAllFilters(ctx); err != nil {
			return err
		}
	case "caches":
		if err := engine.ClearAllCaches(ctx); err != nil {
			return err
		}
	case "all":
		if err := engine.ResetWeightAdjustments(ctx); err != nil {
			return err
		}
		if err := engine.ClearAllFilters(ctx); err != nil {
			return err
		}
		if err := engine.ClearAllCaches(ctx); err != nil {
			return err
		}
	default:
		return cmd.Help()
	}

	adjustments, err := engine.GetActiveAdjustments(ctx)
	if err != nil {
		return err
	}
	patterns, err := engine.GetTopPatterns(ctx, statsLimit)
	if err != nil {
		return err
	}
	learnings, err := engine.GetRecentLearnings(ctx, statsLimit)
	if err != nil {
		return err
	}
	filterStats, err := engine.GetFilterStats(ctx)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintAdjustments(adjustments)
	printer.PrintTopPatterns(patterns)
	printer.PrintRecentLearnings(learnings)
	printer.PrintFilterStats(filterStats)

	return nil
}
