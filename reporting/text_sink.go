package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/acarl005/stripansi"
)

// TextSummarySink writes the plain-text run summary under
// baseDir/proberun-<runID>/summary.log. The content is the console
// table with color codes stripped, followed by failure details.
type TextSummarySink struct {
	formatter *ConsoleFormatter
	baseDir   string
}

// NewTextSummarySink creates a text summary sink.
func NewTextSummarySink(baseDir string, includeCases bool) *TextSummarySink {
	return &TextSummarySink{
		formatter: NewConsoleFormatter("Probe Results", includeCases),
		baseDir:   baseDir,
	}
}

// Complete writes the summary file and returns its path.
func (s *TextSummarySink) Complete(data *ReportData) (string, error) {
	outputDir := filepath.Join(s.baseDir, "proberun-"+data.RunID)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	content := stripansi.Strip(s.formatter.Format(data))
	content += s.details(data)

	summaryFile := filepath.Join(outputDir, "summary.log")
	if err := os.WriteFile(summaryFile, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write summary file: %w", err)
	}
	return summaryFile, nil
}

func (s *TextSummarySink) details(data *ReportData) string {
	var b strings.Builder

	if len(data.FailedCases) > 0 {
		fmt.Fprintf(&b, "\nFailed cases (%d):\n", len(data.FailedCases))
		for _, rec := range data.FailedCases {
			fmt.Fprintf(&b, "  %s\n", rec.String())
			if rec.Input != "" {
				fmt.Fprintf(&b, "    input: %s\n", rec.Input)
			}
		}
	}

	if len(data.TimedOutNames) > 0 {
		fmt.Fprintf(&b, "\nOver budget (%d):\n", len(data.TimedOutNames))
		for _, name := range data.TimedOutNames {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}

	if len(data.SkippedCases) > 0 {
		fmt.Fprintf(&b, "\nSkipped cases (%d):\n", len(data.SkippedCases))
		for _, rec := range data.SkippedCases {
			fmt.Fprintf(&b, "  %s\n", rec.String())
		}
	}

	return b.String()
}
