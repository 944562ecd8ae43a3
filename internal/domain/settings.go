package domain

import "github.com/shopspring/decimal"

// Settings are the application preferences injected at start-up.
type Settings struct {
	LogLevel         string `yaml:"log_level" toml:"log_level" json:"log_level"`
	OutputFormat     string `yaml:"output_format" toml:"output_format" json:"output_format"`
	GrowthTablesPath string `yaml:"growth_tables" toml:"growth_tables" json:"growth_tables"`
	// DefaultCashRatio is nil when the file does not set it; zero is a
	// valid ratio (every sale reimbursed).
	DefaultCashRatio *decimal.Decimal `yaml:"default_cash_ratio,omitempty" toml:"default_cash_ratio,omitempty" json:"default_cash_ratio,omitempty"`
	TraceSimulation  bool             `yaml:"trace_simulation" toml:"trace_simulation" json:"trace_simulation"`
}

// Configuration is the contents of a configuration file: settings plus an
// optional stock analysis to run.
type Configuration struct {
	Settings Settings       `yaml:"settings" toml:"settings" json:"settings"`
	Stock    *StockScenario `yaml:"stock,omitempty" toml:"stock,omitempty" json:"stock,omitempty"`
}
