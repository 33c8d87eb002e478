package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/goalpad/internal/config"
	"github.com/akyairhashvil/goalpad/internal/models"
	"github.com/akyairhashvil/goalpad/internal/util"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes the goals, in list order, to a PDF in dir and
// returns its path.
func GeneratePDFReport(goals []models.Goal, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Goals", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Goals: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(goals) == 0 {
		pdf.Cell(0, 8, "  - No goals.")
		pdf.Ln(8)
	}
	for i, g := range goals {
		line := fmt.Sprintf("%d.  %s", i+1, g.Text)
		if !g.CreatedAt.IsZero() {
			line += fmt.Sprintf("  (added %s)", g.CreatedAt.Format("15:04"))
		}
		pdf.MultiCell(0, 8, tr(line), "", "", false)
	}

	// Summary
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %d %s", len(goals), util.Plural(len(goals), "goal", "goals")))

	filename := fmt.Sprintf("%s_%s.pdf", config.ReportsPrefix, now.Format("2006-01-02_150405"))
	path := filepath.Join(dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
