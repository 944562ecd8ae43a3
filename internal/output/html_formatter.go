package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	money "github.com/rxcalc/pharmacy-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// HTMLFormatter renders a standalone HTML page: option cards for a stock
// analysis, or the summary and values of a clinical result.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"signed": FormatSigned,
	"months": func(d decimal.Decimal) string { return money.FormatTR(d, 1) },
	"ratio":  func(d decimal.Decimal) string { return FormatPercentage(d.Mul(decimalHundred)) },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	data := struct {
		*Report
		Title    string
		Headline string
		Severity domain.Severity
		Fields   []field
	}{Report: report, Headline: report.Summary()}

	if report.Stock != nil {
		data.Title = "MF ANALİZİ"
		data.Severity = domain.SeverityNormal
		if report.Stock.Warning {
			data.Severity = domain.SeverityCaution
		}
	} else {
		data.Fields = clinicalFields(report)
		if data.Fields == nil {
			return nil, fmt.Errorf("empty report")
		}
		data.Title = clinicalTitle(report)
		data.Severity = clinicalSeverity(report)
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
