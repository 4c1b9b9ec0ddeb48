// Package formatter renders run summary reports as markdown.
package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"newsrunner/internal/models"
	"newsrunner/pkg/utils"
)

// Report renders one run as a markdown document with a region-by-category
// article count table.
type Report struct {
	run        *models.RunRecord
	edition    models.Edition
	categories []string
	strings    *utils.StringHelper
}

// NewReport creates a report for a finished run. The category order is
// taken from the configuration so the table columns are stable between runs.
func NewReport(run *models.RunRecord, edition models.Edition, categories []string) *Report {
	return &Report{
		run:        run,
		edition:    edition,
		categories: categories,
		strings:    utils.NewStringHelper(),
	}
}

// Render returns the full markdown report.
func (r *Report) Render() string {
	var sb strings.Builder

	sb.WriteString("# Content Run Report\n\n")
	fmt.Fprintf(&sb, "- Run: %s\n", r.run.ID)
	fmt.Fprintf(&sb, "- Provider: %s\n", r.run.Provider)
	fmt.Fprintf(&sb, "- Started: %s\n", r.run.StartedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "- Duration: %s\n", r.run.Duration().Round(time.Millisecond))
	fmt.Fprintf(&sb, "- Articles: %d\n", r.run.Articles)
	fmt.Fprintf(&sb, "- Fingerprint: %s\n", r.run.Fingerprint)
	fmt.Fprintf(&sb, "- Written: %t, Committed: %t\n", r.run.Written, r.run.Committed)
	sb.WriteString("\n")

	for _, line := range r.renderTable() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderTable builds the aligned markdown count table.
func (r *Report) renderTable() []string {
	header := make([]string, 0, len(r.categories)+2)
	header = append(header, "Region")

	for _, category := range r.categories {
		header = append(header, r.strings.TitleCase(category))
	}

	header = append(header, "Total")

	table := [][]string{header}

	grandTotal := 0

	for _, region := range r.edition.Regions() {
		row := make([]string, 0, len(header))
		row = append(row, region)

		regionTotal := 0

		for _, category := range r.categories {
			count := r.edition.Count(region, category)
			regionTotal += count
			row = append(row, fmt.Sprintf("%d", count))
		}

		grandTotal += regionTotal
		row = append(row, fmt.Sprintf("%d", regionTotal))
		table = append(table, row)
	}

	totalRow := make([]string, len(header))
	totalRow[0] = "**Total**"

	for i := 1; i < len(header)-1; i++ {
		totalRow[i] = ""
	}

	totalRow[len(header)-1] = fmt.Sprintf("%d", grandTotal)
	table = append(table, totalRow)

	return alignTable(table)
}

// alignTable pads cells by display width and inserts the separator row.
func alignTable(table [][]string) []string {
	if len(table) == 0 {
		return nil
	}

	colCount := len(table[0])

	// Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for _, row := range table {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure min width for separator dashes
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	lines := make([]string, 0, len(table)+1)

	for i, row := range table {
		lines = append(lines, renderRow(row, colWidths))

		if i == 0 {
			lines = append(lines, renderSeparator(colWidths))
		}
	}

	return lines
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func renderSeparator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
