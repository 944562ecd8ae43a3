package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	money "github.com/rxcalc/pharmacy-calculator/pkg/decimal"
	"github.com/rxcalc/pharmacy-calculator/pkg/dateutil"
)

// ConsoleFormatter renders a styled terminal report. The verbose variant adds
// the scenario inputs, the full financial breakdown and any simulation trace.
type ConsoleFormatter struct {
	Verbose bool
}

func (c ConsoleFormatter) Name() string {
	if c.Verbose {
		return "console-verbose"
	}
	return "console"
}

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	if report.Stock != nil {
		c.writeStock(&buf, report)
		return buf.Bytes(), nil
	}

	fields := clinicalFields(report)
	if fields == nil {
		return nil, fmt.Errorf("empty report")
	}
	fmt.Fprintln(&buf, titleStyle.Render(clinicalTitle(report)))
	fmt.Fprintln(&buf, severityStyle(clinicalSeverity(report)).Render(report.Summary()))
	if report.BMI != nil {
		fmt.Fprintf(&buf, "%s %s\n", labelStyle.Render("Kategori:"), severityStyle(report.BMI.Category.Severity()).Render(string(report.BMI.Category)))
	}
	if report.Calcium != nil {
		fmt.Fprintf(&buf, "%s %s\n", labelStyle.Render("Kategori:"), severityStyle(report.Calcium.Category.Severity()).Render(string(report.Calcium.Category)))
	}
	if report.ZScore != nil && report.ZScore.OutsideNormalRange() {
		fmt.Fprintln(&buf, lossStyle.Render("Normal aralık dışında (|Z| > 2)"))
	}
	if c.Verbose {
		fmt.Fprintln(&buf)
		for _, f := range fields {
			fmt.Fprintf(&buf, "  %s %s\n", labelStyle.Render(f.Label+":"), f.Value)
		}
	}
	return buf.Bytes(), nil
}

func clinicalTitle(r *Report) string {
	switch {
	case r.BMI != nil:
		return "VÜCUT KİTLE İNDEKSİ"
	case r.BSA != nil:
		return "VÜCUT YÜZEY ALANI"
	case r.Calcium != nil:
		return "DÜZELTİLMİŞ KALSİYUM"
	case r.Dilution != nil:
		return "ALKOL SEYRELTME"
	case r.ZScore != nil:
		return "WHO Z-SKORU"
	}
	return ""
}

func clinicalSeverity(r *Report) domain.Severity {
	switch {
	case r.BMI != nil:
		return r.BMI.Category.Severity()
	case r.Calcium != nil:
		return r.Calcium.Category.Severity()
	case r.ZScore != nil:
		if r.ZScore.OutsideNormalRange() {
			return domain.SeverityDanger
		}
		return domain.SeverityNormal
	}
	return domain.SeverityInfo
}

func (c ConsoleFormatter) writeStock(buf *bytes.Buffer, report *Report) {
	a := report.Stock

	fmt.Fprintln(buf, titleStyle.Render("MF ANALİZİ"))
	fmt.Fprintf(buf, "%s %s   %s %s\n",
		labelStyle.Render("Alış:"), a.PurchaseDateText,
		labelStyle.Render("Tahmini Ödeme:"), a.PaymentDateText)

	if c.Verbose && report.Scenario != nil {
		writeScenario(buf, report.Scenario)
	}

	if a.Warning {
		banner := fmt.Sprintf("Dikkat: Stok Fazlası Riski!\nMevcut stok seviyeniz (%s) çok yüksek. Yeni alım yapıldığında malın satış sırası yaklaşık %s ay sonra gelecektir.\nEnflasyon etkisi karlılığı negatif etkileyebilir.",
			a.OldStock.String(), money.FormatTR(a.MonthsDelay, 1))
		fmt.Fprintln(buf, warningBoxStyle.Render(banner))
	}
	fmt.Fprintf(buf, "%s %s Ay Sonra\n", labelStyle.Render("Tahmini Satış Başlangıcı:"), money.FormatTR(a.MonthsDelay, 1))

	if len(a.Options) == 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "Uygun teklif yok")
		return
	}

	for _, opt := range a.Options {
		fmt.Fprintln(buf)
		heading := fmt.Sprintf("%d + %d Teklifi", opt.Main, opt.Bonus)
		if opt.Recommended {
			badge := recommendedStyle
			if a.Warning {
				badge = minimumLossStyle
			}
			heading += "  " + badge.Render("["+a.RecommendationLabel()+"]")
		}
		fmt.Fprintf(buf, "%s   %s %s\n", titleStyle.Render(heading), labelStyle.Render("Birim:"), FormatCurrency(opt.UnitCost))
		fmt.Fprintf(buf, "  %s %s   %s %s\n",
			labelStyle.Render("Finansal Kazanç:"), gainStyle.Render(FormatSigned(opt.FinancingGain)),
			labelStyle.Render("Stok Yükü:"), lossStyle.Render("-"+FormatCurrency(opt.CarryingCost)))
		fmt.Fprintf(buf, "  %s %s   %s %s\n",
			labelStyle.Render("Kutu Başı Net Kar:"), amountStyle(opt.RealProfit.IsNegative()).Render(FormatCurrency(opt.PerUnitProfit)),
			labelStyle.Render("Kar Oranı:"), amountStyle(opt.PerUnitMarginPct.IsNegative()).Render(FormatPercentage(opt.PerUnitMarginPct)))

		if c.Verbose {
			writeBreakdown(buf, opt)
		}
	}
}

func writeScenario(buf *bytes.Buffer, s *domain.StockScenario) {
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %s %s   %s %s   %s %s\n",
		labelStyle.Render("DSF:"), FormatCurrency(s.PurchasePrice),
		labelStyle.Render("PSF:"), FormatCurrency(s.CashPrice),
		labelStyle.Render("Kamu:"), FormatCurrency(s.ReimbursedPrice))
	fmt.Fprintf(buf, "  %s %s   %s %s   %s %s   %s %s\n",
		labelStyle.Render("Aylık Satış:"), s.MonthlySales.String(),
		labelStyle.Render("Mevcut Stok:"), s.CurrentStock.String(),
		labelStyle.Render("Aylık Enflasyon:"), FormatPercentage(s.InflationPercent),
		labelStyle.Render("Nakit Oranı:"), FormatPercentage(s.CashRatio.Mul(decimalHundred)))
	fmt.Fprintln(buf)
}

func writeBreakdown(buf *bytes.Buffer, opt domain.StockOptionResult) {
	rows := [][2]string{
		{"Fatura Tutarı", FormatCurrency(opt.InvoiceCost)},
		{"Satış Süresi", fmt.Sprintf("%d ay", opt.Months)},
		{"Nakit Satış Geliri", FormatCurrency(opt.CashRevenue)},
		{"Kamu Satış Geliri", FormatCurrency(opt.ReimbursedRevenue)},
		{"Nominal Kar", FormatCurrency(opt.NominalProfit)},
		{"Net Finansman", FormatSigned(opt.NetFinancing)},
		{"Reel Kar", FormatCurrency(opt.RealProfit)},
	}
	for _, r := range rows {
		fmt.Fprintf(buf, "    %-20s %s\n", r[0]+":", r[1])
	}
	if len(opt.Trace) == 0 {
		return
	}
	fmt.Fprintf(buf, "    %-4s %-10s %8s %8s %8s %8s %5s %12s %12s\n", "Ay", "Tarih", "Eski", "Yeni", "KalanE", "KalanY", "Gün", "Kazanç", "Yük")
	fmt.Fprintln(buf, "    "+strings.Repeat("-", 84))
	for _, m := range opt.Trace {
		fmt.Fprintf(buf, "    %-4d %-10s %8s %8s %8s %8s %5d %12s %12s\n",
			m.Month, dateutil.FormatTR(m.Date),
			m.SoldFromOld.StringFixed(1), m.SoldFromNew.StringFixed(1),
			m.OldStockLeft.StringFixed(1), m.NewStockLeft.StringFixed(1),
			m.DaysToPayment, money.FormatTR(m.FinancingGain, 2), money.FormatTR(m.CarryingCost, 2))
	}
}
