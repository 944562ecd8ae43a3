package main

import (
	"fmt"
	"os"

	calc "github.com/rxcalc/pharmacy-calculator/internal/calculation"
	"github.com/rxcalc/pharmacy-calculator/internal/config"
	"github.com/rxcalc/pharmacy-calculator/internal/logging"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_stock_trace <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	if cfg.Stock == nil {
		fmt.Println("no stock scenario")
		return
	}
	engine, err := calc.NewCalculationEngineWithConfig(cfg.Settings)
	if err != nil {
		panic(err)
	}
	logger, err := logging.NewStderr(cfg.Settings.LogLevel)
	if err != nil {
		panic(err)
	}
	engine.SetLogger(logger)
	engine.Stock.Trace = true
	res, err := engine.AnalyzeStock(*cfg.Stock)
	if err != nil {
		panic(err)
	}
	if len(res.Options) == 0 {
		fmt.Println("no options")
		return
	}

	fmt.Println("Option,Month,Date,SoldFromOld,SoldFromNew,NewStockLeft,DaysToPayment,FinancingGain,CarryingCost,CumulativeNetFinancing")
	for _, opt := range res.Options {
		cum := decimal.Zero
		for _, m := range opt.Trace {
			cum = cum.Add(m.FinancingGain).Sub(m.CarryingCost)
			fmt.Printf("%d+%d,%d,%s,%s,%s,%s,%d,%s,%s,%s\n",
				opt.Main, opt.Bonus, m.Month, m.Date.Format("2006-01-02"),
				m.SoldFromOld.StringFixed(2), m.SoldFromNew.StringFixed(2), m.NewStockLeft.StringFixed(2),
				m.DaysToPayment, m.FinancingGain.StringFixed(2), m.CarryingCost.StringFixed(2), cum.StringFixed(2))
		}
	}

	if rec := res.Recommended(); rec != nil {
		fmt.Fprintf(os.Stderr, "%s: option %d (%d+%d) real profit %s\n", res.RecommendationLabel(), rec.ID, rec.Main, rec.Bonus, rec.RealProfit.StringFixed(2))
	}
}
