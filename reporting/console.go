package reporting

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/chartprobe/chartprobe/types"
)

// Tree connectors for the hierarchical ID column.
const (
	treeBranch     = "├── "
	treeLastBranch = "└── "
	treeContinue   = "│   "
	treeIndent     = "    "
)

// ConsoleFormatter renders ReportData as a colored ASCII table: one row
// per operation, indented category rows, optionally case rows.
type ConsoleFormatter struct {
	title     string
	showCases bool
}

// NewConsoleFormatter creates a console formatter.
func NewConsoleFormatter(title string, showCases bool) *ConsoleFormatter {
	return &ConsoleFormatter{title: title, showCases: showCases}
}

// Format renders the table.
func (f *ConsoleFormatter) Format(data *ReportData) string {
	var buf bytes.Buffer

	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.SetTitle(f.title)

	t.AppendHeader(table.Row{"TYPE", "ID", "DURATION", "CASES", "PASSED", "FAILED", "SKIPPED", "STATUS"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "TYPE", AutoMerge: true},
		{Name: "ID", WidthMax: 200, WidthMaxEnforcer: text.WrapSoft},
		{Name: "DURATION", Align: text.AlignRight},
		{Name: "CASES", Align: text.AlignRight},
		{Name: "PASSED", Align: text.AlignRight},
		{Name: "FAILED", Align: text.AlignRight},
		{Name: "SKIPPED", Align: text.AlignRight},
	})

	for _, op := range data.Operations {
		t.AppendRow(table.Row{
			"operation",
			op.Name,
			"",
			op.Stats.Total,
			op.Stats.Passed,
			op.Stats.Failed,
			op.Stats.Skipped,
			statusCell(types.CaseStatusFromVerdict(op.Verdict)),
		})
		for ci, cat := range op.Categories {
			lastCategory := ci == len(op.Categories)-1
			t.AppendRow(table.Row{
				"category",
				categoryPrefix(lastCategory) + string(cat.Category),
				"",
				cat.Stats.Total,
				cat.Stats.Passed,
				cat.Stats.Failed,
				cat.Stats.Skipped,
				statusCell(types.CaseStatusFromVerdict(cat.Verdict)),
			})
			if !f.showCases {
				continue
			}
			for ri, rec := range cat.Records {
				t.AppendRow(table.Row{
					"case",
					casePrefix(lastCategory, ri == len(cat.Records)-1) + rec.Name,
					formatDuration(rec.Duration),
					"", "", "", "",
					statusCell(rec.Status),
				})
			}
		}
	}

	switch data.Verdict {
	case types.VerdictFail:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	case types.VerdictPassWithSkips:
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		"",
		formatDuration(data.Duration),
		data.Stats.Total,
		data.Stats.Passed,
		data.Stats.Failed,
		data.Stats.Skipped,
		strings.ToUpper(string(data.Verdict)),
	})

	t.Render()
	return buf.String()
}

// Print renders the table to stdout.
func (f *ConsoleFormatter) Print(data *ReportData) error {
	_, err := fmt.Print(f.Format(data))
	return err
}

func categoryPrefix(isLast bool) string {
	if isLast {
		return treeLastBranch
	}
	return treeBranch
}

func casePrefix(parentIsLast, isLast bool) string {
	prefix := treeContinue
	if parentIsLast {
		prefix = treeIndent
	}
	if isLast {
		return prefix + treeLastBranch
	}
	return prefix + treeBranch
}

func statusCell(status types.CaseStatus) string {
	return strings.ToUpper(string(status))
}
