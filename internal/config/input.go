package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rxcalc/pharmacy-calculator/internal/calculation"
	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/internal/logging"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Defaults applied to settings left empty in a configuration file.
const (
	DefaultLogLevel     = "info"
	DefaultOutputFormat = "console"
)

// DefaultCashRatio is the share of sales assumed to be paid at the cash price.
var DefaultCashRatio = decimal.NewFromFloat(0.2)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or TOML file. The format is
// chosen by extension; anything other than .toml is read as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if isTOML(filename) {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills settings that were left empty.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	s := &config.Settings
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	if s.OutputFormat == "" {
		s.OutputFormat = DefaultOutputFormat
	}
	if s.DefaultCashRatio == nil {
		ratio := DefaultCashRatio
		s.DefaultCashRatio = &ratio
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateSettings(&config.Settings); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	if config.Stock != nil {
		if err := calculation.ValidateStockScenario(config.Stock); err != nil {
			return fmt.Errorf("stock scenario validation failed: %w", err)
		}
		if len(config.Stock.Options) == 0 {
			return fmt.Errorf("stock scenario validation failed: no purchase options provided")
		}
	}

	return nil
}

func (ip *InputParser) validateSettings(s *domain.Settings) error {
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	if r := s.DefaultCashRatio; r != nil && (r.IsNegative() || r.GreaterThan(decimal.NewFromInt(1))) {
		return fmt.Errorf("%w: default cash ratio must be between 0 and 1", domain.ErrInvalidRatio)
	}
	if s.GrowthTablesPath != "" {
		if _, err := os.Stat(s.GrowthTablesPath); err != nil {
			return fmt.Errorf("growth tables: %w", err)
		}
	}
	return nil
}

// Marshal encodes a configuration as YAML, or as TOML when format is "toml".
func (ip *InputParser) Marshal(config *domain.Configuration, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	case "", "yaml", "yml":
		data, err := yaml.Marshal(config)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported configuration format %q", format)
}

// SaveToFile writes a configuration, picking the format from the extension.
func (ip *InputParser) SaveToFile(config *domain.Configuration, filename string) error {
	format := "yaml"
	if isTOML(filename) {
		format = "toml"
	}
	data, err := ip.Marshal(config, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// DefaultStockScenario returns the scenario the stock form starts with.
func DefaultStockScenario() domain.StockScenario {
	purchaseDate, _ := time.Parse("2006-01-02", "2025-01-15")

	return domain.StockScenario{
		PurchasePrice:    decimal.NewFromInt(100),
		CashPrice:        decimal.NewFromInt(130),
		ReimbursedPrice:  decimal.NewFromInt(110),
		MonthlySales:     decimal.NewFromInt(50),
		CurrentStock:     decimal.NewFromInt(500),
		InflationPercent: decimal.NewFromInt(5),
		PurchaseDate:     purchaseDate,
		CashRatio:        DefaultCashRatio,
		Options: []domain.StockOption{
			{Main: 10, Bonus: 1},
			{Main: 20, Bonus: 3},
			{Main: 50, Bonus: 10},
			{Main: 100, Bonus: 30},
		},
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	stock := DefaultStockScenario()
	ratio := DefaultCashRatio

	return &domain.Configuration{
		Settings: domain.Settings{
			LogLevel:         DefaultLogLevel,
			OutputFormat:     DefaultOutputFormat,
			DefaultCashRatio: &ratio,
		},
		Stock: &stock,
	}
}

func isTOML(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}
