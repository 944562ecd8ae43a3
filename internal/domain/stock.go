package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOption is a vendor offer: buy Main units, receive Bonus units free.
type StockOption struct {
	Main  int `yaml:"main" toml:"main" json:"main"`
	Bonus int `yaml:"bonus" toml:"bonus" json:"bonus"`
}

// Total returns the size of the delivered batch.
func (o StockOption) Total() int { return o.Main + o.Bonus }

// StockScenario holds the inputs of a bonus-stock purchase analysis.
type StockScenario struct {
	PurchasePrice    decimal.Decimal `yaml:"purchase_price" toml:"purchase_price" json:"purchase_price"`       // wholesale price per unit (DSF)
	CashPrice        decimal.Decimal `yaml:"cash_price" toml:"cash_price" json:"cash_price"`                   // out-of-pocket retail price (PSF)
	ReimbursedPrice  decimal.Decimal `yaml:"reimbursed_price" toml:"reimbursed_price" json:"reimbursed_price"` // fixed public reimbursement price
	MonthlySales     decimal.Decimal `yaml:"monthly_sales" toml:"monthly_sales" json:"monthly_sales"`
	CurrentStock     decimal.Decimal `yaml:"current_stock" toml:"current_stock" json:"current_stock"`
	InflationPercent decimal.Decimal `yaml:"inflation_percent" toml:"inflation_percent" json:"inflation_percent"` // monthly
	PurchaseDate     time.Time       `yaml:"purchase_date" toml:"purchase_date" json:"purchase_date"`
	CashRatio        decimal.Decimal `yaml:"cash_ratio" toml:"cash_ratio" json:"cash_ratio"` // share of sales at the cash price, 0..1
	Options          []StockOption   `yaml:"options" toml:"options" json:"options"`
}

// StockMonth is one step of an option's simulation, kept only when tracing.
type StockMonth struct {
	Month         int             `json:"month"`
	Date          time.Time       `json:"date"`
	Capacity      decimal.Decimal `json:"capacity"`
	SoldFromOld   decimal.Decimal `json:"sold_from_old"`
	SoldFromNew   decimal.Decimal `json:"sold_from_new"`
	OldStockLeft  decimal.Decimal `json:"old_stock_left"`
	NewStockLeft  decimal.Decimal `json:"new_stock_left"`
	DaysToPayment int64           `json:"days_to_payment"`
	FinancingGain decimal.Decimal `json:"financing_gain"`
	CarryingCost  decimal.Decimal `json:"carrying_cost"`
}

// StockOptionResult is the simulated outcome of one offer.
type StockOptionResult struct {
	ID                int             `json:"id"` // 1-based position in the submitted option list
	Main              int             `json:"main"`
	Bonus             int             `json:"bonus"`
	Total             int             `json:"total"`
	InvoiceCost       decimal.Decimal `json:"invoice_cost"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	Months            int             `json:"months"`
	CashRevenue       decimal.Decimal `json:"cash_revenue"`
	ReimbursedRevenue decimal.Decimal `json:"reimbursed_revenue"`
	NominalProfit     decimal.Decimal `json:"nominal_profit"`
	FinancingGain     decimal.Decimal `json:"financing_gain"`
	CarryingCost      decimal.Decimal `json:"carrying_cost"`
	NetFinancing      decimal.Decimal `json:"net_financing"`
	RealProfit        decimal.Decimal `json:"real_profit"`
	PerUnitProfit     decimal.Decimal `json:"per_unit_profit"`
	PerUnitMarginPct  decimal.Decimal `json:"per_unit_margin_pct"`
	Recommended       bool            `json:"recommended"`
	Trace             []StockMonth    `json:"trace,omitempty"`
}

// StockAnalysis is the result of a purchase analysis across all offers.
type StockAnalysis struct {
	Options          []StockOptionResult `json:"options"`
	Warning          bool                `json:"warning"` // every offer loses money; recommendation minimises exposure
	OldStock         decimal.Decimal     `json:"old_stock"`
	MonthsDelay      decimal.Decimal     `json:"months_delay"`
	PurchaseDate     time.Time           `json:"purchase_date"`
	PaymentDate      time.Time           `json:"payment_date"`
	PurchaseDateText string              `json:"purchase_date_text"`
	PaymentDateText  string              `json:"payment_date_text"`
}

// Recommended returns the recommended row, or nil when no option applied.
func (a *StockAnalysis) Recommended() *StockOptionResult {
	for i := range a.Options {
		if a.Options[i].Recommended {
			return &a.Options[i]
		}
	}
	return nil
}

// RecommendationLabel is the badge shown next to the recommended option.
func (a *StockAnalysis) RecommendationLabel() string {
	if a.Warning {
		return "MİNİMUM ZARAR"
	}
	return "EN KARLI SEÇENEK"
}
