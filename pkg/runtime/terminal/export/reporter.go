package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/ga-tools/ga-lens/pkg/models/domain"
)

type TableConfig struct {
	MetricWidth int
	ValueWidth  int
	ChangeWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MetricWidth: 24,
		ValueWidth:  16,
		ChangeWidth: 12,
	}
}

// Reporter renders comparison results as formatted text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(metric string, current, previous, change float64, direction domain.ChangeDirection) string {
			arrow := " "
			switch direction {
			case domain.ChangeUp:
				arrow = "↑"
			case domain.ChangeDown:
				arrow = "↓"
			}
			return fmt.Sprintf("| %-*s | %*.2f | %*.2f | %s %*.1f%% |",
				c.config.MetricWidth, metric,
				c.config.ValueWidth, current,
				c.config.ValueWidth, previous,
				arrow,
				c.config.ChangeWidth, change)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.MetricWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.ChangeWidth+5))
		},
	}
}

// HandleTimeComparison prints the two-period comparison for one property.
func (c *Reporter) HandleTimeComparison(result *domain.TimeComparison) error {
	if result.NoData {
		_, err := fmt.Fprintf(c.writer, "No data available for property %s in the selected period.\n",
			result.PropertyID)
		return err
	}

	tmpl := `
Property {{.PropertyID}}: primary vs comparison period
{{separator}}
{{range .Deltas}}{{formatRow .Metric .Current .Previous .ChangePercent .Direction}}
{{end}}{{separator}}
`
	t, err := template.New("time-comparison").Funcs(c.funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, result)
}

// HandlePropertyComparison prints per-property totals against the baseline
// (first) property.
func (c *Reporter) HandlePropertyComparison(result *domain.PropertyComparison) error {
	if result.NoData {
		_, err := fmt.Fprintln(c.writer, "No data available for the selected properties.")
		return err
	}

	tmpl := `
Properties compared over {{.Range.Start.Format "2006-01-02"}} to {{.Range.End.Format "2006-01-02"}}
{{range .Properties}}
=== {{.PropertyName}} ({{.PropertyID}}) ===
{{separator}}
{{range .Deltas}}{{formatRow .Metric .Current .Previous .ChangePercent .Direction}}
{{end}}{{separator}}
{{end}}
`
	t, err := template.New("property-comparison").Funcs(c.funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, result)
}
