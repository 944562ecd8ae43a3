package calculation

import (
	"fmt"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
)

// CalculationEngine bundles the stateful collaborators of the calculators:
// the growth reference tables and the stock simulator settings. The clinical
// formulas are plain functions and need no engine.
type CalculationEngine struct {
	Growth *GrowthResolver
	Stock  *StockSimulator
	Logger Logger
}

// NewCalculationEngine creates an engine over the bundled growth tables.
// It panics if the compiled-in tables cannot be parsed.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Growth: NewGrowthResolver(mustParseGrowthTables(defaultGrowthTables)),
		Stock:  NewStockSimulator(),
		Logger: NopLogger{},
	}
}

func mustParseGrowthTables(data []byte) *GrowthTables {
	tables, err := NewGrowthTableLoader().ParseYAML(data)
	if err != nil {
		panic(fmt.Sprintf("bundled growth tables are corrupt: %v", err))
	}
	return tables
}

// NewCalculationEngineWithConfig creates an engine honouring the settings:
// an external growth table file replaces the bundled tables, and tracing is
// switched on for the stock simulator.
func NewCalculationEngineWithConfig(settings domain.Settings) (*CalculationEngine, error) {
	engine := NewCalculationEngine()
	if settings.GrowthTablesPath != "" {
		tables, err := NewGrowthTableLoader().LoadFile(settings.GrowthTablesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load growth tables: %w", err)
		}
		engine.Growth.Tables = tables
	}
	engine.Stock.Trace = settings.TraceSimulation
	return engine, nil
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Growth.Logger = l
	ce.Stock.Logger = l
}

// ResolveZScore computes a growth-standard Z-score. A zero reference date
// means today.
func (ce *CalculationEngine) ResolveZScore(q domain.ZScoreQuery) (domain.ZScoreResult, error) {
	if q.RefDate.IsZero() {
		q.RefDate = nowFunc()
	}
	res, err := ce.Growth.Resolve(q)
	if err != nil {
		ce.Logger.Infof("z-score lookup failed: %v", err)
	}
	return res, err
}

// AnalyzeStock runs the bonus-stock purchase analysis.
func (ce *CalculationEngine) AnalyzeStock(s domain.StockScenario) (*domain.StockAnalysis, error) {
	analysis, err := ce.Stock.Analyze(s)
	if err != nil {
		return nil, fmt.Errorf("stock analysis failed: %w", err)
	}
	return analysis, nil
}
