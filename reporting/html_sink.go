package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"
)

// HTMLSink renders ReportData into a standalone HTML report at
// baseDir/proberun-<runID>/report.html.
type HTMLSink struct {
	template *template.Template
	baseDir  string
}

// NewHTMLSink creates an HTML sink. Passing an empty templateContent
// selects the built-in report template.
func NewHTMLSink(baseDir, templateContent string) (*HTMLSink, error) {
	if templateContent == "" {
		templateContent = defaultHTMLTemplate
	}
	tmpl, err := template.New("probe-report").Funcs(template.FuncMap{
		"formatDuration": formatDuration,
		"formatTime": func(t time.Time) string {
			return t.Format(time.RFC3339)
		},
	}).Parse(templateContent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}
	return &HTMLSink{template: tmpl, baseDir: baseDir}, nil
}

// Render executes the template without touching the filesystem.
func (s *HTMLSink) Render(data *ReportData) (string, error) {
	var buf bytes.Buffer
	if err := s.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.String(), nil
}

// Complete writes the HTML report and returns its path.
func (s *HTMLSink) Complete(data *ReportData) (string, error) {
	content, err := s.Render(data)
	if err != nil {
		return "", err
	}

	outputDir := filepath.Join(s.baseDir, "proberun-"+data.RunID)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	reportFile := filepath.Join(outputDir, "report.html")
	if err := os.WriteFile(reportFile, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return reportFile, nil
}

const defaultHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Probe Report {{.RunID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
.pass { color: #1a7f37; }
.fail { color: #cf222e; font-weight: bold; }
.skip { color: #9a6700; }
.error { color: #cf222e; font-weight: bold; }
.pass-with-skips { color: #9a6700; }
.category { padding-left: 2em; }
</style>
</head>
<body>
<h1>Probe Report</h1>
<p>
Run <code>{{.RunID}}</code> at {{formatTime .Timestamp}},
took {{formatDuration .Duration}}.
Verdict: <span class="{{.Verdict}}">{{.Verdict}}</span>,
pass rate {{.PassRateText}}
({{.Stats.Passed}}/{{.Stats.Total}} passed,
{{.Stats.Failed}} failed, {{.Stats.Skipped}} skipped,
{{.Stats.Errored}} errored).
</p>
<table>
<tr><th>Operation / Category</th><th>Cases</th><th>Passed</th><th>Failed</th><th>Skipped</th><th>Status</th></tr>
{{range .Operations}}
<tr>
<td><strong>{{.Name}}</strong></td>
<td>{{.Stats.Total}}</td><td>{{.Stats.Passed}}</td><td>{{.Stats.Failed}}</td><td>{{.Stats.Skipped}}</td>
<td class="{{.Verdict}}">{{.Verdict}}</td>
</tr>
{{range .Categories}}
<tr>
<td class="category">{{.Category}}</td>
<td>{{.Stats.Total}}</td><td>{{.Stats.Passed}}</td><td>{{.Stats.Failed}}</td><td>{{.Stats.Skipped}}</td>
<td class="{{.Verdict}}">{{.Verdict}}</td>
</tr>
{{end}}
{{end}}
</table>
{{if .FailedCases}}
<h2>Failures</h2>
<ul>
{{range .FailedCases}}
<li class="fail">{{.Op}}/{{.Category}}/{{.Name}}{{if .Error}}: {{.Error}}{{end}}
{{if .Input}}<br><code>{{.Input}}</code>{{end}}</li>
{{end}}
</ul>
{{end}}
{{if .SkippedCases}}
<h2>Skips</h2>
<ul>
{{range .SkippedCases}}
<li class="skip">{{.Op}}/{{.Category}}/{{.Name}}: {{.SkipReason}}</li>
{{end}}
</ul>
{{end}}
</body>
</html>
`
