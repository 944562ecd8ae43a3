package calculation

import (
	"fmt"
	"math"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/pkg/dateutil"
)

// Age bands of the growth references, in WHO months.
const (
	WeightForAgeMaxMonths = 60
	BMIForAgeMaxMonths    = 228
)

// GrowthResolver computes growth-standard Z-scores against a set of LMS tables.
type GrowthResolver struct {
	Tables *GrowthTables
	Logger Logger
}

// NewGrowthResolver creates a resolver over the given tables.
func NewGrowthResolver(tables *GrowthTables) *GrowthResolver {
	return &GrowthResolver{Tables: tables, Logger: NopLogger{}}
}

// Resolve computes the Z-score for a query. On failure the returned result
// still carries the computed age (and the metric once the band is known),
// but no measurement or Z-score.
func (gr *GrowthResolver) Resolve(q domain.ZScoreQuery) (domain.ZScoreResult, error) {
	age := dateutil.AgeInMonthsWHO(q.BirthDate, q.RefDate)
	res := domain.ZScoreResult{AgeMonths: age}

	if !allPositive(q.WeightKg) {
		return res, fmt.Errorf("%w: weight must be positive", domain.ErrInvalidInput)
	}

	var measurement float64
	switch {
	case age >= 0 && age <= WeightForAgeMaxMonths:
		res.Metric = domain.WeightForAge
		measurement = q.WeightKg
	case age > WeightForAgeMaxMonths && age <= BMIForAgeMaxMonths:
		res.Metric = domain.BMIForAge
		if q.HeightCm == nil || !allPositive(*q.HeightCm) {
			return res, fmt.Errorf("%w: BMI-for-age needs a height (age %.1f months)", domain.ErrMissingHeight, age)
		}
		heightM := *q.HeightCm / 100.0
		measurement = q.WeightKg / (heightM * heightM)
	default:
		return res, fmt.Errorf("%w: %.1f months is outside 0-%d", domain.ErrAgeOutOfRange, age, BMIForAgeMaxMonths)
	}

	table, ok := gr.Tables.Table(q.Sex, res.Metric)
	if !ok {
		return res, fmt.Errorf("%w: no %s table for %s", domain.ErrDataNotFound, res.Metric, q.Sex)
	}

	lms, err := InterpolateLMS(table, age)
	if err != nil {
		return res, err
	}

	res.Measurement = measurement
	res.MeasurementText = fmt.Sprintf("%.2f %s", measurement, res.Metric.Unit())
	res.LMS = lms
	res.ZScore = LMSZScore(measurement, lms)

	gr.Logger.Debugf("z-score %s %s age=%.3f L=%.4f M=%.4f S=%.5f z=%.3f",
		q.Sex, res.Metric, age, lms.L, lms.M, lms.S, res.ZScore)
	return res, nil
}

// InterpolateLMS linearly interpolates L, M and S between the two integer
// months around ageMonths. A missing upper month reuses the lower entry; a
// missing lower month is an error.
func InterpolateLMS(table *domain.LMSTable, ageMonths float64) (domain.LMS, error) {
	lowerMonth := int(math.Floor(ageMonths))
	upperMonth := int(math.Ceil(ageMonths))

	low, ok := table.At(lowerMonth)
	if !ok {
		return domain.LMS{}, fmt.Errorf("%w: %s %s has no entry for month %d", domain.ErrDataNotFound, table.Sex(), table.Metric(), lowerMonth)
	}
	high, ok := table.At(upperMonth)
	if !ok {
		high = low
	}

	frac := ageMonths - float64(lowerMonth)
	return domain.LMS{
		L: low.L + (high.L-low.L)*frac,
		M: low.M + (high.M-low.M)*frac,
		S: low.S + (high.S-low.S)*frac,
	}, nil
}

// LMSZScore applies the Box-Cox transform of the LMS method.
func LMSZScore(measurement float64, lms domain.LMS) float64 {
	if lms.L == 0 {
		return math.Log(measurement/lms.M) / lms.S
	}
	return (math.Pow(measurement/lms.M, lms.L) - 1) / (lms.L * lms.S)
}
