package formatter

import (
	"strings"
	"testing"
	"time"

	"newsrunner/internal/models"
)

func sampleRun() *models.RunRecord {
	started := time.Date(2025, 6, 2, 0, 0, 1, 0, time.UTC)

	return &models.RunRecord{
		ID:          "run-1",
		Provider:    "placeholder",
		StartedAt:   started,
		FinishedAt:  started.Add(1500 * time.Millisecond),
		Articles:    4,
		Fingerprint: "abc123",
		Written:     true,
		Committed:   true,
	}
}

func sampleEdition() models.Edition {
	edition := models.NewEdition()
	edition.Add("europe", "news", make([]models.Article, 3))
	edition.Add("europe", "travel_tips", make([]models.Article, 1))
	edition.Add("asia", "news", make([]models.Article, 0))

	return edition
}

func TestReport_RenderHeader(t *testing.T) {
	report := NewReport(sampleRun(), sampleEdition(), []string{"news", "travel_tips"})
	out := report.Render()

	for _, want := range []string{
		"# Content Run Report",
		"- Run: run-1",
		"- Provider: placeholder",
		"- Started: 2025-06-02 00:00:01 UTC",
		"- Duration: 1.5s",
		"- Articles: 4",
		"- Fingerprint: abc123",
		"- Written: true, Committed: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q:\n%s", want, out)
		}
	}
}

func TestReport_RenderTable(t *testing.T) {
	report := NewReport(sampleRun(), sampleEdition(), []string{"news", "travel_tips"})
	out := report.Render()

	// Snake_case categories render as display names.
	if !strings.Contains(out, "Travel Tips") {
		t.Errorf("Expected display-cased category header, got:\n%s", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	var table []string

	for _, line := range lines {
		if strings.HasPrefix(line, "|") {
			table = append(table, line)
		}
	}

	// Header, separator, two regions, total row.
	if len(table) != 5 {
		t.Fatalf("Expected 5 table lines, got %d:\n%s", len(table), out)
	}

	if !strings.HasPrefix(table[1], "| ---") {
		t.Errorf("Expected separator after header, got %q", table[1])
	}

	// Regions are sorted, so asia comes first.
	if !strings.HasPrefix(table[2], "| asia") {
		t.Errorf("Expected asia row first, got %q", table[2])
	}

	checkRowCounts(t, table[2], []string{"0", "0", "0"})
	checkRowCounts(t, table[3], []string{"3", "1", "4"})

	if !strings.Contains(table[4], "**Total**") || !strings.Contains(table[4], "4") {
		t.Errorf("Unexpected total row: %q", table[4])
	}
}

func TestReport_ColumnsAligned(t *testing.T) {
	report := NewReport(sampleRun(), sampleEdition(), []string{"news", "travel_tips"})
	out := report.Render()

	var widths []int

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") {
			widths = append(widths, len(line))
		}
	}

	if len(widths) < 2 {
		t.Fatal("No table rendered")
	}

	for i := 1; i < len(widths); i++ {
		if widths[i] != widths[0] {
			t.Errorf("Row %d width %d differs from header width %d:\n%s", i, widths[i], widths[0], out)
		}
	}
}

func checkRowCounts(t *testing.T, row string, want []string) {
	t.Helper()

	cells := strings.Split(row, "|")

	var counts []string

	// First and last splits are empty, second is the region name.
	for _, cell := range cells[2 : len(cells)-1] {
		counts = append(counts, strings.TrimSpace(cell))
	}

	if len(counts) != len(want) {
		t.Fatalf("Expected %d count cells, got %d in %q", len(want), len(counts), row)
	}

	for i, w := range want {
		if counts[i] != w {
			t.Errorf("Cell %d: expected %q, got %q in %q", i, w, counts[i], row)
		}
	}
}
