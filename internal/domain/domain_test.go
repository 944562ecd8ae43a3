package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{ErrInvalidInput, "InvalidInput"},
		{fmt.Errorf("%w: bad ratio", ErrInvalidRatio), "InvalidRatio"},
		{fmt.Errorf("outer: %w", fmt.Errorf("%w: 240 months", ErrAgeOutOfRange)), "AgeOutOfRange"},
		{ErrMissingHeight, "MissingHeight"},
		{ErrDataNotFound, "DataNotFound"},
		{fmt.Errorf("something else"), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ErrorCode(tt.err), "%v", tt.err)
	}
}

func TestParseSex(t *testing.T) {
	for _, in := range []string{"male", "Erkek", " M "} {
		sex, err := ParseSex(in)
		require.NoError(t, err, in)
		assert.Equal(t, Male, sex)
	}
	for _, in := range []string{"female", "kız", "KIZ", "f"} {
		sex, err := ParseSex(in)
		require.NoError(t, err, in)
		assert.Equal(t, Female, sex)
	}
	_, err := ParseSex("unknown")
	assert.Error(t, err)
}

func TestMetricLabels(t *testing.T) {
	assert.Equal(t, "Kilo/Yaş", WeightForAge.Label())
	assert.Equal(t, "VKİ/Yaş", BMIForAge.Label())
	assert.Equal(t, "kg", WeightForAge.Unit())
	assert.Equal(t, "kg/m²", BMIForAge.Unit())
}

func TestLMSTable(t *testing.T) {
	table, err := NewLMSTable(Female, BMIForAge, map[int]LMS{
		61: {L: -0.8886, M: 15.2441, S: 0.09692},
		63: {L: -0.9248, M: 15.2433, S: 0.09783},
	})
	require.NoError(t, err)

	first, last := table.Span()
	assert.Equal(t, 61, first)
	assert.Equal(t, 63, last)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, Female, table.Sex())
	assert.Equal(t, BMIForAge, table.Metric())

	lms, ok := table.At(61)
	assert.True(t, ok)
	assert.Equal(t, 15.2441, lms.M)

	for _, month := range []int{-1, 0, 60, 62, 64, 228} {
		_, ok := table.At(month)
		assert.False(t, ok, "month %d", month)
	}
}

func TestNewLMSTable_Errors(t *testing.T) {
	_, err := NewLMSTable(Male, WeightForAge, nil)
	assert.Error(t, err)

	_, err = NewLMSTable(Male, WeightForAge, map[int]LMS{-1: {L: 1, M: 1, S: 1}})
	assert.Error(t, err)

	_, err = NewLMSTable(Male, WeightForAge, map[int]LMS{0: {L: 1, M: 3, S: 0}})
	assert.Error(t, err)
}

func TestZScoreResult_OutsideNormalRange(t *testing.T) {
	assert.False(t, ZScoreResult{ZScore: 2}.OutsideNormalRange())
	assert.False(t, ZScoreResult{ZScore: -2}.OutsideNormalRange())
	assert.True(t, ZScoreResult{ZScore: 2.01}.OutsideNormalRange())
	assert.True(t, ZScoreResult{ZScore: -3.5}.OutsideNormalRange())
}

func TestClinicalSummaries(t *testing.T) {
	assert.Equal(t, "Düzeltilmiş Kalsiyum: 9.60 mg/dL", CalciumResult{Corrected: 9.6}.Summary())
	assert.Equal(t, SeverityDanger, CalciumHigh.Severity())
	assert.Equal(t, SeverityNormal, CalciumNormal.Severity())

	d := DilutionResult{TargetDegree: 70, TargetVolume: 1000, SourceDegree: 96, StrongVolume: 729.1666, DiluentVolume: 270.8333}
	assert.Equal(t, "%96 alkolden 729.17 ml + su 270.83 ml = 1000 ml %70", d.Summary())
}

func TestStockAnalysis_Recommended(t *testing.T) {
	a := &StockAnalysis{Options: []StockOptionResult{{ID: 1}, {ID: 2, Recommended: true}}}
	require.NotNil(t, a.Recommended())
	assert.Equal(t, 2, a.Recommended().ID)
	assert.Equal(t, "EN KARLI SEÇENEK", a.RecommendationLabel())

	a.Warning = true
	assert.Equal(t, "MİNİMUM ZARAR", a.RecommendationLabel())

	assert.Nil(t, (&StockAnalysis{}).Recommended())
	assert.Equal(t, 11, StockOption{Main: 10, Bonus: 1}.Total())
}
