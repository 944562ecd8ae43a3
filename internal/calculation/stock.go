package calculation

import (
	"fmt"
	"time"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/pkg/dateutil"
	money "github.com/rxcalc/pharmacy-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MaxSimulationMonths caps the per-option simulation so that offers which
// never sell out (for example zero sales) still terminate.
const MaxSimulationMonths = 1200

var (
	referenceMonthDays = decimal.NewFromInt(30)
	negligibleUnits    = decimal.NewFromFloat(0.01)
	lossThreshold      = decimal.NewFromFloat(-0.01)
	decimalHundred     = decimal.NewFromInt(100)
	decimalOne         = decimal.NewFromInt(1)
)

// StockSimulator evaluates bonus-stock purchase offers month by month.
type StockSimulator struct {
	Logger Logger
	Trace  bool // keep a per-month trace on every option result
}

// NewStockSimulator creates a simulator with a no-op logger.
func NewStockSimulator() *StockSimulator {
	return &StockSimulator{Logger: NopLogger{}}
}

// ValidateStockScenario checks the inputs of a purchase analysis.
func ValidateStockScenario(s *domain.StockScenario) error {
	if !s.PurchasePrice.IsPositive() {
		return fmt.Errorf("%w: purchase price must be positive", domain.ErrInvalidInput)
	}
	if !s.CashPrice.IsPositive() {
		return fmt.Errorf("%w: cash price must be positive", domain.ErrInvalidInput)
	}
	if !s.ReimbursedPrice.IsPositive() {
		return fmt.Errorf("%w: reimbursed price must be positive", domain.ErrInvalidInput)
	}
	if s.MonthlySales.IsNegative() {
		return fmt.Errorf("%w: monthly sales cannot be negative", domain.ErrInvalidInput)
	}
	if s.CurrentStock.IsNegative() {
		return fmt.Errorf("%w: current stock cannot be negative", domain.ErrInvalidInput)
	}
	if s.InflationPercent.IsNegative() {
		return fmt.Errorf("%w: inflation cannot be negative", domain.ErrInvalidInput)
	}
	if s.CashRatio.IsNegative() || s.CashRatio.GreaterThan(decimalOne) {
		return fmt.Errorf("%w: cash ratio must be between 0 and 1, got %s", domain.ErrInvalidRatio, s.CashRatio)
	}
	if s.PurchaseDate.IsZero() {
		return fmt.Errorf("%w: purchase date is required", domain.ErrInvalidInput)
	}
	for i, opt := range s.Options {
		if opt.Main < 0 || opt.Bonus < 0 {
			return fmt.Errorf("%w: option %d has negative units (%d+%d)", domain.ErrInvalidInput, i+1, opt.Main, opt.Bonus)
		}
	}
	return nil
}

// Analyze simulates every offer and marks the recommended one. Offers
// without main units do not apply and produce no row.
func (ss *StockSimulator) Analyze(s domain.StockScenario) (*domain.StockAnalysis, error) {
	if err := ValidateStockScenario(&s); err != nil {
		return nil, err
	}

	monthlyRate := s.InflationPercent.Div(decimalHundred)
	paymentDate := dateutil.PaymentDate(s.PurchaseDate)

	results := make([]domain.StockOptionResult, 0, len(s.Options))
	for i, opt := range s.Options {
		if opt.Main == 0 {
			ss.Logger.Debugf("option %d skipped: no main units", i+1)
			continue
		}
		row := ss.simulateOption(i+1, opt, &s, monthlyRate, paymentDate)
		ss.Logger.Debugf("option %d (%d+%d): months=%d real=%s margin=%s%%",
			row.ID, row.Main, row.Bonus, row.Months, money.NewMoneyFromDecimal(row.RealProfit), row.PerUnitMarginPct.StringFixed(2))
		results = append(results, row)
	}

	warning := recommend(results)
	if warning {
		ss.Logger.Warnf("every offer loses money; recommending the smallest batch")
	}

	delay := decimal.Zero
	if s.MonthlySales.IsPositive() {
		delay = s.CurrentStock.Div(s.MonthlySales)
	}

	return &domain.StockAnalysis{
		Options:          results,
		Warning:          warning,
		OldStock:         s.CurrentStock,
		MonthsDelay:      delay,
		PurchaseDate:     s.PurchaseDate,
		PaymentDate:      paymentDate,
		PurchaseDateText: dateutil.FormatTR(s.PurchaseDate),
		PaymentDateText:  dateutil.FormatTR(paymentDate),
	}, nil
}

// simulateOption runs the monthly depletion of old stock, then the new batch.
// The first period only covers the rest of a 30-day month from the purchase
// day and moves the clock to the 28th; later periods are full months pinned
// to the 15th. Financing gain is timed against those reference days.
func (ss *StockSimulator) simulateOption(id int, opt domain.StockOption, s *domain.StockScenario, monthlyRate decimal.Decimal, paymentDate time.Time) domain.StockOptionResult {
	total := decimal.NewFromInt(int64(opt.Total()))
	invoice := money.NewMoneyFromDecimal(s.PurchasePrice.Mul(decimal.NewFromInt(int64(opt.Main))))
	unitCost := invoice.PerUnit(total)

	cashRatio := s.CashRatio
	reimbursedRatio := decimalOne.Sub(cashRatio)
	dailyRate := monthlyRate.Div(referenceMonthDays)

	oldStock := s.CurrentStock
	newStock := total
	simDate := s.PurchaseDate

	cashRevenue := money.Zero()
	reimbursedRevenue := money.Zero()
	financingGain := money.Zero()
	carryingCost := money.Zero()

	var trace []domain.StockMonth
	month := 0
	for newStock.IsPositive() && month < MaxSimulationMonths {
		var capacity decimal.Decimal
		if month == 0 {
			daysRemaining := decimal.Max(decimal.Zero, referenceMonthDays.Sub(decimal.NewFromInt(int64(simDate.Day()))))
			capacity = s.MonthlySales.Mul(daysRemaining).Div(referenceMonthDays)
			simDate = dateutil.WithDay(simDate, 28)
		} else {
			capacity = s.MonthlySales
			simDate = dateutil.WithDay(simDate, 15)
		}

		sold := decimal.Min(capacity, oldStock.Add(newStock))
		soldFromOld := decimal.Min(sold, oldStock)
		soldFromNew := sold.Sub(soldFromOld)

		oldStock = oldStock.Sub(soldFromOld)
		newStock = newStock.Sub(soldFromNew)

		if sold.LessThan(negligibleUnits) && newStock.LessThan(negligibleUnits) {
			break
		}

		cashUnits := soldFromNew.Mul(cashRatio)
		reimbursedUnits := soldFromNew.Mul(reimbursedRatio)
		cashRevenue = cashRevenue.Add(money.NewMoneyFromDecimal(cashUnits.Mul(s.CashPrice)))
		reimbursedRevenue = reimbursedRevenue.Add(money.NewMoneyFromDecimal(reimbursedUnits.Mul(s.ReimbursedPrice)))

		daysToPayment := int64(dateutil.CeilDays(simDate, paymentDate, false))
		gain := money.Zero()
		if daysToPayment > 0 && soldFromNew.IsPositive() {
			gain = unitCost.Mul(cashUnits).Mul(dailyRate).Mul(decimal.NewFromInt(daysToPayment))
			financingGain = financingGain.Add(gain)
		}

		carry := money.Zero()
		if newStock.IsPositive() {
			carry = unitCost.Mul(newStock).Mul(monthlyRate)
			carryingCost = carryingCost.Add(carry)
		}

		if ss.Trace {
			trace = append(trace, domain.StockMonth{
				Month:         month,
				Date:          simDate,
				Capacity:      capacity,
				SoldFromOld:   soldFromOld,
				SoldFromNew:   soldFromNew,
				OldStockLeft:  oldStock,
				NewStockLeft:  newStock,
				DaysToPayment: daysToPayment,
				FinancingGain: gain.Decimal,
				CarryingCost:  carry.Decimal,
			})
		}

		simDate = dateutil.AddMonths(simDate, 1)
		month++
	}

	nominal := cashRevenue.Add(reimbursedRevenue).Sub(invoice)
	netFinancing := financingGain.Sub(carryingCost)
	realProfit := nominal.Add(netFinancing)
	perUnit := realProfit.PerUnit(total)

	margin := decimal.Zero
	if unitCost.IsPositive() {
		margin = perUnit.Decimal.Div(unitCost.Decimal).Mul(decimalHundred)
	}

	return domain.StockOptionResult{
		ID:                id,
		Main:              opt.Main,
		Bonus:             opt.Bonus,
		Total:             opt.Total(),
		InvoiceCost:       invoice.Decimal,
		UnitCost:          unitCost.Decimal,
		Months:            month,
		CashRevenue:       cashRevenue.Decimal,
		ReimbursedRevenue: reimbursedRevenue.Decimal,
		NominalProfit:     nominal.Decimal,
		FinancingGain:     financingGain.Decimal,
		CarryingCost:      carryingCost.Decimal,
		NetFinancing:      netFinancing.Decimal,
		RealProfit:        realProfit.Decimal,
		PerUnitProfit:     perUnit.Decimal,
		PerUnitMarginPct:  margin,
		Trace:             trace,
	}
}

// recommend marks exactly one row. The best margin wins unless it still loses
// money, in which case the smallest batch is picked and true is returned.
// Ties go to the later row.
func recommend(rows []domain.StockOptionResult) bool {
	if len(rows) == 0 {
		return false
	}

	best := 0
	for i := 1; i < len(rows); i++ {
		if !rows[best].PerUnitMarginPct.GreaterThan(rows[i].PerUnitMarginPct) {
			best = i
		}
	}

	warning := false
	if rows[best].RealProfit.LessThan(lossThreshold) {
		warning = true
		best = 0
		for i := 1; i < len(rows); i++ {
			if rows[best].Total >= rows[i].Total {
				best = i
			}
		}
	}

	rows[best].Recommended = true
	return warning
}
