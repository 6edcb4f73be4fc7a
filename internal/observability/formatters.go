// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nanford/resumai/internal/types"
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

func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintAdvice outputs a human-readable summary of a structured advice record.
func (p *Printer) PrintAdvice(record *types.CareerAdvice) {
	if record == nil {
		return
	}

	var sb strings.Builder

	writeList(&sb, "Positions", record.RecommendedPositions, maxItemsToShow)
	writeList(&sb, "Companies", record.RecommendedCompanies, maxItemsToShow)

	sb.WriteString(fmt.Sprintf("Salary:    %s\n", record.SalarySuggestion))
	sb.WriteString("\n")

	writeList(&sb, "Locations", record.LocationSuggestion, 3)
	writeList(&sb, "Skills to improve", record.SkillsToImprove, maxItemsToShow)

	if record.AdditionalAdvice != "" {
		sb.WriteString("Advice:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", record.AdditionalAdvice))
	}

	p.printBox("CAREER ADVICE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintThoughtProcess outputs the model's reasoning trace, if any.
func (p *Printer) PrintThoughtProcess(thought string) {
	if strings.TrimSpace(thought) == "" {
		return
	}
	p.printBox("THOUGHT PROCESS", strings.TrimSpace(thought))
}

// PrintConversations outputs the conversation list.
func (p *Printer) PrintConversations(list []types.Conversation) {
	if len(list) == 0 {
		return
	}

	var sb strings.Builder
	for i, conv := range list {
		title := conv.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-14s %s", conv.ID, title))
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONVERSATIONS", sb.String())
}
