package domain

import (
	"fmt"
	"strings"
	"time"
)

// Sex selects the growth reference population.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts English or Turkish spellings.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "boy", "erkek", "e":
		return Male, nil
	case "female", "f", "girl", "kiz", "kız", "k":
		return Female, nil
	}
	return "", fmt.Errorf("unknown sex %q: expected male or female", s)
}

// Metric identifies the growth indicator a Z-score is computed for.
type Metric string

const (
	WeightForAge Metric = "weight-for-age"
	BMIForAge    Metric = "BMI-for-age"
)

// Label returns the Turkish indicator name.
func (m Metric) Label() string {
	switch m {
	case WeightForAge:
		return "Kilo/Yaş"
	case BMIForAge:
		return "VKİ/Yaş"
	}
	return string(m)
}

// Unit returns the measurement unit of the indicator.
func (m Metric) Unit() string {
	if m == BMIForAge {
		return "kg/m²"
	}
	return "kg"
}

// LMS is the Box-Cox power, median and coefficient of variation at one age.
type LMS struct {
	L float64 `yaml:"l" json:"l"`
	M float64 `yaml:"m" json:"m"`
	S float64 `yaml:"s" json:"s"`
}

// LMSTable is an immutable month-indexed growth reference for one sex and
// metric. Months without an entry are reported as absent by At.
type LMSTable struct {
	sex     Sex
	metric  Metric
	first   int
	entries []LMS
	present []bool
}

// NewLMSTable builds a table from month -> LMS rows.
func NewLMSTable(sex Sex, metric Metric, rows map[int]LMS) (*LMSTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %s table has no rows", sex, metric)
	}
	first, last := -1, -1
	for month := range rows {
		if month < 0 {
			return nil, fmt.Errorf("%s %s table: negative month %d", sex, metric, month)
		}
		if first < 0 || month < first {
			first = month
		}
		if month > last {
			last = month
		}
	}

	t := &LMSTable{
		sex:     sex,
		metric:  metric,
		first:   first,
		entries: make([]LMS, last-first+1),
		present: make([]bool, last-first+1),
	}
	for month, lms := range rows {
		if lms.M <= 0 || lms.S <= 0 {
			return nil, fmt.Errorf("%s %s table: month %d needs positive M and S", sex, metric, month)
		}
		t.entries[month-first] = lms
		t.present[month-first] = true
	}
	return t, nil
}

// Sex returns the reference population of the table.
func (t *LMSTable) Sex() Sex { return t.sex }

// Metric returns the indicator of the table.
func (t *LMSTable) Metric() Metric { return t.metric }

// Span returns the first and last month covered by the table.
func (t *LMSTable) Span() (first, last int) {
	return t.first, t.first + len(t.entries) - 1
}

// Len returns the number of months that have an entry.
func (t *LMSTable) Len() int {
	n := 0
	for _, ok := range t.present {
		if ok {
			n++
		}
	}
	return n
}

// At returns the parameters stored for month.
func (t *LMSTable) At(month int) (LMS, bool) {
	i := month - t.first
	if i < 0 || i >= len(t.entries) || !t.present[i] {
		return LMS{}, false
	}
	return t.entries[i], true
}

// ZScoreQuery is one growth-standard lookup. HeightCm is only needed for
// BMI-for-age (older than 60 months).
type ZScoreQuery struct {
	BirthDate time.Time `json:"birth_date"`
	RefDate   time.Time `json:"ref_date"`
	Sex       Sex       `json:"sex"`
	WeightKg  float64   `json:"weight_kg"`
	HeightCm  *float64  `json:"height_cm,omitempty"`
}

// ZScoreResult is the outcome of a growth-standard lookup.
type ZScoreResult struct {
	AgeMonths       float64 `json:"age_months"`
	Metric          Metric  `json:"metric"`
	Measurement     float64 `json:"measurement"`
	MeasurementText string  `json:"measurement_text"`
	LMS             LMS     `json:"lms"`
	ZScore          float64 `json:"z_score"`
}

// OutsideNormalRange reports whether the measurement is more than two
// standard deviations from the reference median.
func (r ZScoreResult) OutsideNormalRange() bool {
	return r.ZScore > 2 || r.ZScore < -2
}
