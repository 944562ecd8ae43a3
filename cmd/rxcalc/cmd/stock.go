package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rxcalc/pharmacy-calculator/internal/config"
	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/internal/output"
	"github.com/rxcalc/pharmacy-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type stockFlags struct {
	purchasePrice   float64
	cashPrice       float64
	reimbursedPrice float64
	monthlySales    float64
	currentStock    float64
	inflation       float64
	cashRatio       float64
	purchaseDate    string
	options         []string
	trace           bool
}

func newStockCommand(a *app) *cobra.Command {
	f := &stockFlags{}
	c := &cobra.Command{
		Use:   "stock",
		Short: "MF (mal fazlası) tekliflerini karşılaştır",
		Long: `Her MF teklifi için stoğun erime süresini ay ay simüle eder; vade
finansman kazancını ve enflasyon kaynaklı stok yükünü hesaplayarak en karlı
teklifi önerir. Girdi --config ile verilen dosyanın "stock" bölümünden alınır;
bayraklar dosyadaki değerleri ezer.`,
		Example: `  rxcalc stock
  rxcalc stock --config scenario.yaml --format csv
  rxcalc stock --current-stock 0 --option 10+1 --option 50+10 --trace -f detailed-csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := a.stockScenario(cmd, f)
			if err != nil {
				return fail("stok senaryosu", err)
			}
			if f.trace || output.NormalizeFormatName(a.outputFormat()) == "detailed-csv" {
				a.engine.Stock.Trace = true
			}
			analysis, err := a.engine.AnalyzeStock(scenario)
			if err != nil {
				return err
			}
			return a.render(cmd, &output.Report{Stock: analysis, Scenario: &scenario})
		},
	}

	c.Flags().Float64Var(&f.purchasePrice, "purchase-price", 0, "Depocu satış fiyatı (DSF)")
	c.Flags().Float64Var(&f.cashPrice, "cash-price", 0, "Perakende satış fiyatı (PSF)")
	c.Flags().Float64Var(&f.reimbursedPrice, "reimbursed-price", 0, "Kamu (SGK) fiyatı")
	c.Flags().Float64Var(&f.monthlySales, "monthly-sales", 0, "Aylık satış adedi")
	c.Flags().Float64Var(&f.currentStock, "current-stock", 0, "Mevcut stok adedi")
	c.Flags().Float64Var(&f.inflation, "inflation", 0, "Aylık enflasyon (%)")
	c.Flags().Float64Var(&f.cashRatio, "cash-ratio", 0, "Nakit (PSF) satış oranı, 0-1")
	c.Flags().StringVar(&f.purchaseDate, "purchase-date", "", "Alış tarihi (YYYY-AA-GG veya GG.AA.YYYY)")
	c.Flags().StringArrayVar(&f.options, "option", nil, "Teklif, ana+mf biçiminde (tekrarlanabilir)")
	c.Flags().BoolVar(&f.trace, "trace", false, "Aylık simülasyon adımlarını kaydet")
	return c
}

// stockScenario starts from the configured scenario (or the built-in default)
// and applies every flag the user set explicitly.
func (a *app) stockScenario(cmd *cobra.Command, f *stockFlags) (domain.StockScenario, error) {
	var s domain.StockScenario
	if a.config != nil && a.config.Stock != nil {
		s = *a.config.Stock
		s.Options = append([]domain.StockOption(nil), a.config.Stock.Options...)
	} else {
		s = config.DefaultStockScenario()
		if a.config != nil && a.config.Settings.DefaultCashRatio != nil {
			s.CashRatio = *a.config.Settings.DefaultCashRatio
		}
	}

	flags := cmd.Flags()
	set := func(name string, v float64, dst *decimal.Decimal) {
		if flags.Changed(name) {
			*dst = decimal.NewFromFloat(v)
		}
	}
	set("purchase-price", f.purchasePrice, &s.PurchasePrice)
	set("cash-price", f.cashPrice, &s.CashPrice)
	set("reimbursed-price", f.reimbursedPrice, &s.ReimbursedPrice)
	set("monthly-sales", f.monthlySales, &s.MonthlySales)
	set("current-stock", f.currentStock, &s.CurrentStock)
	set("inflation", f.inflation, &s.InflationPercent)
	set("cash-ratio", f.cashRatio, &s.CashRatio)

	if flags.Changed("purchase-date") {
		d, err := dateutil.ParseDate(f.purchaseDate)
		if err != nil {
			return s, err
		}
		s.PurchaseDate = d
	}
	if len(f.options) > 0 {
		s.Options = s.Options[:0]
		for _, raw := range f.options {
			opt, err := parseStockOption(raw)
			if err != nil {
				return s, err
			}
			s.Options = append(s.Options, opt)
		}
	}
	return s, nil
}

// parseStockOption reads an offer written as "main+bonus", e.g. "10+1".
// A bare number means no bonus.
func parseStockOption(raw string) (domain.StockOption, error) {
	unitsPart, bonusPart, hasBonus := strings.Cut(strings.TrimSpace(raw), "+")
	units, err := strconv.Atoi(strings.TrimSpace(unitsPart))
	if err != nil {
		return domain.StockOption{}, fmt.Errorf("%w: invalid option %q", domain.ErrInvalidInput, raw)
	}
	bonus := 0
	if hasBonus {
		if bonus, err = strconv.Atoi(strings.TrimSpace(bonusPart)); err != nil {
			return domain.StockOption{}, fmt.Errorf("%w: invalid option %q", domain.ErrInvalidInput, raw)
		}
	}
	return domain.StockOption{Main: units, Bonus: bonus}, nil
}
