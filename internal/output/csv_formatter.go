package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/pkg/dateutil"
)

// CSVSummarizer writes one row per stock option, or key/value rows for a
// clinical result.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if report.Stock == nil {
		if err := w.Write([]string{"Field", "Value"}); err != nil {
			return nil, err
		}
		for _, f := range clinicalFields(report) {
			if err := w.Write([]string{f.Key, f.Value}); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	header := []string{"ID", "Main", "Bonus", "Total", "InvoiceCost", "UnitCost", "Months", "CashRevenue", "ReimbursedRevenue", "NominalProfit", "FinancingGain", "CarryingCost", "NetFinancing", "RealProfit", "PerUnitProfit", "PerUnitMarginPct", "Recommended"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, opt := range report.Stock.Options {
		row := []string{
			intToString(opt.ID),
			intToString(opt.Main),
			intToString(opt.Bonus),
			intToString(opt.Total),
			opt.InvoiceCost.StringFixed(2),
			opt.UnitCost.StringFixed(2),
			intToString(opt.Months),
			opt.CashRevenue.StringFixed(2),
			opt.ReimbursedRevenue.StringFixed(2),
			opt.NominalProfit.StringFixed(2),
			opt.FinancingGain.StringFixed(2),
			opt.CarryingCost.StringFixed(2),
			opt.NetFinancing.StringFixed(2),
			opt.RealProfit.StringFixed(2),
			opt.PerUnitProfit.StringFixed(2),
			opt.PerUnitMarginPct.StringFixed(2),
			boolToString(opt.Recommended),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailedExporter writes the month-by-month simulation trace of every
// stock option. The analysis must have been run with tracing enabled.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	if report.Stock == nil {
		return nil, fmt.Errorf("%w: detailed-csv renders stock analyses only", ErrUnsupportedFormat)
	}
	if !hasTrace(report.Stock) {
		return nil, fmt.Errorf("no simulation trace recorded; enable trace_simulation")
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Option", "Month", "Date", "Capacity", "SoldFromOld", "SoldFromNew", "OldStockLeft", "NewStockLeft", "DaysToPayment", "FinancingGain", "CarryingCost"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, opt := range report.Stock.Options {
		label := fmt.Sprintf("%d+%d", opt.Main, opt.Bonus)
		for _, m := range opt.Trace {
			row := []string{
				label,
				intToString(m.Month),
				m.Date.Format(dateutil.ISOLayout),
				m.Capacity.String(),
				m.SoldFromOld.String(),
				m.SoldFromNew.String(),
				m.OldStockLeft.String(),
				m.NewStockLeft.String(),
				fmt.Sprint(m.DaysToPayment),
				m.FinancingGain.StringFixed(2),
				m.CarryingCost.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func hasTrace(a *domain.StockAnalysis) bool {
	for _, opt := range a.Options {
		if len(opt.Trace) > 0 {
			return true
		}
	}
	return false
}
