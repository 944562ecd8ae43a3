package calculation

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/who_lms.yaml
var defaultGrowthTables []byte

// GrowthTables holds the reference tables keyed by sex and metric.
type GrowthTables struct {
	tables map[tableKey]*domain.LMSTable
}

type tableKey struct {
	sex    domain.Sex
	metric domain.Metric
}

// Table returns the reference for sex and metric.
func (gt *GrowthTables) Table(sex domain.Sex, metric domain.Metric) (*domain.LMSTable, bool) {
	if gt == nil {
		return nil, false
	}
	t, ok := gt.tables[tableKey{sex, metric}]
	return t, ok
}

// Count returns the number of loaded tables.
func (gt *GrowthTables) Count() int {
	if gt == nil {
		return 0
	}
	return len(gt.tables)
}

func (gt *GrowthTables) add(sex domain.Sex, metric domain.Metric, rows map[int]domain.LMS) error {
	key := tableKey{sex, metric}
	if _, dup := gt.tables[key]; dup {
		return fmt.Errorf("duplicate %s %s table", sex, metric)
	}
	t, err := domain.NewLMSTable(sex, metric, rows)
	if err != nil {
		return err
	}
	gt.tables[key] = t
	return nil
}

// GrowthTableLoader reads growth reference tables from YAML or CSV.
type GrowthTableLoader struct{}

// NewGrowthTableLoader creates a new growth table loader
func NewGrowthTableLoader() *GrowthTableLoader {
	return &GrowthTableLoader{}
}

// LoadDefault parses the tables bundled with the binary.
func (gl *GrowthTableLoader) LoadDefault() (*GrowthTables, error) {
	return gl.ParseYAML(defaultGrowthTables)
}

// LoadFile loads tables from a .yaml/.yml or .csv file.
func (gl *GrowthTableLoader) LoadFile(path string) (*GrowthTables, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		tables, err := gl.ParseCSV(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV %s: %w", path, err)
		}
		return tables, nil
	case ".yaml", ".yml":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		tables, err := gl.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return tables, nil
	}
	return nil, fmt.Errorf("unsupported growth table format %q", filepath.Ext(path))
}

type yamlGrowthFile struct {
	Tables []struct {
		Sex    string      `yaml:"sex"`
		Metric string      `yaml:"metric"`
		Rows   [][]float64 `yaml:"rows"`
	} `yaml:"tables"`
}

// ParseYAML parses tables whose rows are [month, L, M, S] lists.
func (gl *GrowthTableLoader) ParseYAML(data []byte) (*GrowthTables, error) {
	var file yamlGrowthFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	gt := &GrowthTables{tables: make(map[tableKey]*domain.LMSTable)}
	for i, tbl := range file.Tables {
		sex, err := domain.ParseSex(tbl.Sex)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}
		metric, err := parseMetric(tbl.Metric)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}

		rows := make(map[int]domain.LMS, len(tbl.Rows))
		for j, row := range tbl.Rows {
			if len(row) != 4 {
				return nil, fmt.Errorf("table %d row %d: expected [month, L, M, S], got %d values", i, j, len(row))
			}
			month, err := monthIndex(row[0])
			if err != nil {
				return nil, fmt.Errorf("table %d row %d: %w", i, j, err)
			}
			rows[month] = domain.LMS{L: row[1], M: row[2], S: row[3]}
		}
		if err := gt.add(sex, metric, rows); err != nil {
			return nil, err
		}
	}
	return gt, nil
}

// ParseCSV parses a sex,metric,month,l,m,s table with a header row.
func (gl *GrowthTableLoader) ParseCSV(r io.Reader) (*GrowthTables, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("insufficient data")
	}

	header := records[0]
	if len(header) != 6 {
		return nil, fmt.Errorf("expected 6 columns, got %d", len(header))
	}

	grouped := make(map[tableKey]map[int]domain.LMS)
	var order []tableKey
	for i := 1; i < len(records); i++ {
		row := records[i]
		if len(row) != 6 {
			return nil, fmt.Errorf("line %d: expected 6 columns, got %d", i+1, len(row))
		}
		sex, err := domain.ParseSex(row[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		metric, err := parseMetric(row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		values := make([]float64, 4)
		for k := range values {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[k+2]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q", i+1, row[k+2])
			}
			values[k] = v
		}
		month, err := monthIndex(values[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		key := tableKey{sex, metric}
		if grouped[key] == nil {
			grouped[key] = make(map[int]domain.LMS)
			order = append(order, key)
		}
		grouped[key][month] = domain.LMS{L: values[1], M: values[2], S: values[3]}
	}

	gt := &GrowthTables{tables: make(map[tableKey]*domain.LMSTable)}
	for _, key := range order {
		if err := gt.add(key.sex, key.metric, grouped[key]); err != nil {
			return nil, err
		}
	}
	return gt, nil
}

func parseMetric(s string) (domain.Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weight-for-age", "wfa", "kilo_yas":
		return domain.WeightForAge, nil
	case "bmi-for-age", "bfa", "bmi_yas":
		return domain.BMIForAge, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

func monthIndex(v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) {
		return 0, fmt.Errorf("month must be a non-negative integer, got %g", v)
	}
	return int(v), nil
}
