package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
)

// Report is the unit every formatter renders. Exactly one result is set;
// Scenario optionally carries the inputs of a stock analysis.
type Report struct {
	BMI      *domain.BMIResult      `json:"bmi,omitempty"`
	BSA      *domain.BSAResult      `json:"bsa,omitempty"`
	Calcium  *domain.CalciumResult  `json:"calcium,omitempty"`
	Dilution *domain.DilutionResult `json:"dilution,omitempty"`
	ZScore   *domain.ZScoreResult   `json:"z_score,omitempty"`
	Stock    *domain.StockAnalysis  `json:"stock,omitempty"`
	Scenario *domain.StockScenario  `json:"scenario,omitempty"`
}

// Kind names the result carried by the report.
func (r *Report) Kind() string {
	switch {
	case r.BMI != nil:
		return "bmi"
	case r.BSA != nil:
		return "bsa"
	case r.Calcium != nil:
		return "calcium"
	case r.Dilution != nil:
		return "alcohol"
	case r.ZScore != nil:
		return "zscore"
	case r.Stock != nil:
		return "stock"
	}
	return "empty"
}

// Summary is the one-line result shown for clinical calculations. Stock
// reports summarise the recommended option.
func (r *Report) Summary() string {
	switch {
	case r.BMI != nil:
		return r.BMI.Summary()
	case r.BSA != nil:
		return r.BSA.Summary()
	case r.Calcium != nil:
		return r.Calcium.Summary()
	case r.Dilution != nil:
		return r.Dilution.Summary()
	case r.ZScore != nil:
		return fmt.Sprintf("Z-Skoru: %.2f (%.1f Aylık - %s)", r.ZScore.ZScore, r.ZScore.AgeMonths, r.ZScore.Metric.Label())
	case r.Stock != nil:
		if rec := r.Stock.Recommended(); rec != nil {
			return fmt.Sprintf("%s: %d + %d Teklifi (%s / kutu)", r.Stock.RecommendationLabel(), rec.Main, rec.Bonus, FormatCurrency(rec.PerUnitProfit))
		}
		return "Uygun teklif yok"
	}
	return ""
}

// GenerateReport renders report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
