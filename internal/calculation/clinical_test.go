package calculation

import (
	"math"
	"testing"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	res, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, res.Value, 0.001)
	assert.Equal(t, domain.BMINormal, res.Category)
	assert.Equal(t, "Normal kilolu", string(res.Category))
	assert.Equal(t, "Sonuç: 22.86 kg/m²", res.Summary())
}

func TestCalculateBMI_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"Zero height", 0, 70},
		{"Zero weight", 175, 0},
		{"Negative height", -175, 70},
		{"Negative weight", 175, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateBMI(tt.heightCm, tt.weightKg)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestClassifyBMI walks every band boundary with a 1 m height so BMI equals weight.
func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		weight   float64
		expected domain.BMICategory
		severity domain.Severity
	}{
		{18.4, domain.BMIUnderweight, domain.SeverityInfo},
		{18.5, domain.BMINormal, domain.SeverityNormal},
		{24.99, domain.BMINormal, domain.SeverityNormal},
		{25, domain.BMIOverweight, domain.SeverityCaution},
		{29.99, domain.BMIOverweight, domain.SeverityCaution},
		{30, domain.BMIObeseClassI, domain.SeverityDanger},
		{35, domain.BMIObeseClassII, domain.SeverityDanger},
		{39.99, domain.BMIObeseClassII, domain.SeverityDanger},
		{40, domain.BMIObeseClassIII, domain.SeverityDanger},
		{55, domain.BMIObeseClassIII, domain.SeverityDanger},
	}
	for _, tt := range tests {
		res, err := CalculateBMI(100, tt.weight)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, res.Category, "weight %v", tt.weight)
		assert.Equal(t, tt.severity, res.Category.Severity(), "weight %v", tt.weight)
	}
}

func TestCalculateBSA(t *testing.T) {
	res, err := CalculateBSA(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(175*70/3600.0), res.Value, 1e-12)
	assert.InDelta(t, 1.845, res.Value, 0.001)
	assert.Equal(t, "Vücut Yüzey Alanı (BSA): 1.845 m²", res.Summary())

	_, err = CalculateBSA(175, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculateCorrectedCalcium(t *testing.T) {
	tests := []struct {
		name      string
		calcium   float64
		albumin   float64
		corrected float64
		category  domain.CalciumCategory
	}{
		{"Low albumin raises calcium", 8.0, 2.0, 9.6, domain.CalciumNormal},
		{"Hypocalcemia", 7.0, 4.0, 7.0, domain.CalciumLow},
		{"Lower bound is normal", 8.5, 4.0, 8.5, domain.CalciumNormal},
		{"Upper bound is normal", 10.2, 4.0, 10.2, domain.CalciumNormal},
		{"Hypercalcemia", 10.0, 3.0, 10.8, domain.CalciumHigh},
		{"High albumin lowers calcium", 9.0, 5.0, 8.2, domain.CalciumLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CalculateCorrectedCalcium(tt.calcium, tt.albumin)
			require.NoError(t, err)
			assert.InDelta(t, tt.corrected, res.Corrected, 1e-9)
			assert.Equal(t, tt.category, res.Category)
		})
	}

	_, err := CalculateCorrectedCalcium(0, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = CalculateCorrectedCalcium(9, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculateAlcoholDilution(t *testing.T) {
	res, err := CalculateAlcoholDilution(70, 1000, 96)
	require.NoError(t, err)
	assert.InDelta(t, 729.17, res.StrongVolume, 0.01)
	assert.InDelta(t, 270.83, res.DiluentVolume, 0.01)
	assert.InDelta(t, 1000, res.StrongVolume+res.DiluentVolume, 1e-9)
}

func TestCalculateAlcoholDilution_Errors(t *testing.T) {
	_, err := CalculateAlcoholDilution(96, 1000, 70)
	assert.ErrorIs(t, err, domain.ErrInvalidRatio)

	_, err = CalculateAlcoholDilution(70, 1000, 70)
	assert.ErrorIs(t, err, domain.ErrInvalidRatio, "equal degrees cannot be diluted")

	_, err = CalculateAlcoholDilution(70, 0, 96)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrInvalidRatio)
}

func TestClinicalCalculatorsAreIdempotent(t *testing.T) {
	b1, _ := CalculateBMI(181.3, 77.7)
	b2, _ := CalculateBMI(181.3, 77.7)
	assert.Equal(t, math.Float64bits(b1.Value), math.Float64bits(b2.Value))

	s1, _ := CalculateBSA(181.3, 77.7)
	s2, _ := CalculateBSA(181.3, 77.7)
	assert.Equal(t, math.Float64bits(s1.Value), math.Float64bits(s2.Value))

	c1, _ := CalculateCorrectedCalcium(8.7, 3.1)
	c2, _ := CalculateCorrectedCalcium(8.7, 3.1)
	assert.Equal(t, c1, c2)

	d1, _ := CalculateAlcoholDilution(70, 250, 96)
	d2, _ := CalculateAlcoholDilution(70, 250, 96)
	assert.Equal(t, d1, d2)
}

func TestClinicalCalculators_RejectNonFiniteInput(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	_, err := CalculateBMI(nan, 70)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = CalculateBMI(175, inf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = CalculateBSA(175, nan)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = CalculateCorrectedCalcium(nan, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = CalculateAlcoholDilution(70, nan, 96)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = CalculateAlcoholDilution(70, 1000, nan)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
