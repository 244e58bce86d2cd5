// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-relevance/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintVerdict outputs the filter chain's decision for a job posting.
func (p *Printer) PrintVerdict(job types.JobPosting, verdict types.FilterVerdict) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString("\n")

	if verdict.Blocked {
		sb.WriteString("Decision: BLOCKED\n")
		sb.WriteString(fmt.Sprintf("Reason:   %s", verdict.Reason))
	} else {
		sb.WriteString("Decision: ALLOWED")
	}

	p.printBox("FILTER VERDICT", sb.String())
}

// PrintAdjustments outputs the active weight adjustments.
func (p *Printer) PrintAdjustments(adjustments []types.WeightAdjustment) {
	if len(adjustments) == 0 {
		p.printBox("ACTIVE WEIGHT ADJUSTMENTS", "(none)")
		return
	}

	var sb strings.Builder
	for i, adj := range adjustments {
		sb.WriteString(fmt.Sprintf("%-24s %+.1f%%", adj.Category, adj.Delta))
		if i < len(adjustments)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ACTIVE WEIGHT ADJUSTMENTS", sb.String())
}

// PrintTopPatterns outputs the most frequent rejection patterns.
func (p *Printer) PrintTopPatterns(patterns []types.RejectionPattern) {
	if len(patterns) == 0 {
		p.printBox("TOP REJECTION PATTERNS", "(none)")
		return
	}

	var sb strings.Builder
	count := min(len(patterns), maxItemsToShow)
	for i := 0; i < count; i++ {
		pat := patterns[i]
		sb.WriteString(fmt.Sprintf("%-14s %-18s x%d", pat.Type, pat.Value, pat.Count))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(patterns) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(patterns)-maxItemsToShow))
	}

	p.printBox("TOP REJECTION PATTERNS", sb.String())
}

// PrintRecentLearnings outputs the latest learning events, newest first.
func (p *Printer) PrintRecentLearnings(events []types.RejectionLearningEvent) {
	if len(events) == 0 {
		p.printBox("RECENT LEARNINGS", "(none)")
		return
	}

	var sb strings.Builder
	count := min(len(events), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := events[i]
		reason := e.Reason
		if len(reason) > 32 {
			reason = reason[:29] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s  %-14s %+.1f\n", e.Timestamp.Format("01-02 15:04"), e.Category, e.Adjustment))
		sb.WriteString(fmt.Sprintf("  %s", reason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECENT LEARNINGS", sb.String())
}

// PrintFilterStats outputs rejection counts per static filter.
func (p *Printer) PrintFilterStats(stats []types.FilterStat) {
	if len(stats) == 0 {
		p.printBox("ACTIVE FILTERS", "(no rejections recorded)")
		return
	}

	var sb strings.Builder
	for i, stat := range stats {
		sb.WriteString(fmt.Sprintf("%-28s %d", stat.Type, stat.Count))
		if i < len(stats)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ACTIVE FILTERS", sb.String())
}

// PrintLabelMappings outputs the canonical key resolved for each form label.
func (p *Printer) PrintLabelMappings(mappings []types.LabelMapping) {
	if len(mappings) == 0 {
		p.printBox("LABEL MAPPINGS", "(none)")
		return
	}

	var sb strings.Builder
	for i, m := range mappings {
		label := m.Label
		if len(label) > 26 {
			label = label[:23] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-26s %-20s %.2f", label, m.Key, m.Confidence))
		if i < len(mappings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LABEL MAPPINGS", sb.String())
}
