package output_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/internal/output"
)

func TestReportKindAndSummary(t *testing.T) {
	cases := []struct {
		report  output.Report
		kind    string
		summary string
	}{
		{output.Report{BMI: &domain.BMIResult{Value: 22.2}}, "bmi", "Sonuç: 22.20 kg/m²"},
		{output.Report{BSA: &domain.BSAResult{Value: 1.9}}, "bsa", "Vücut Yüzey Alanı (BSA): 1.900 m²"},
		{output.Report{Calcium: &domain.CalciumResult{Corrected: 8}}, "calcium", "Düzeltilmiş Kalsiyum: 8.00 mg/dL"},
		{output.Report{Dilution: &domain.DilutionResult{SourceDegree: 96, TargetDegree: 70, TargetVolume: 100, StrongVolume: 72.92, DiluentVolume: 27.08}}, "alcohol", "%96 alkolden 72.92 ml + su 27.08 ml = 100 ml %70"},
		{output.Report{ZScore: &domain.ZScoreResult{ZScore: 0.5, AgeMonths: 16, Metric: domain.WeightForAge}}, "zscore", "Z-Skoru: 0.50 (16.0 Aylık - Kilo/Yaş)"},
		{output.Report{Stock: &domain.StockAnalysis{}}, "stock", "Uygun teklif yok"},
		{output.Report{}, "empty", ""},
	}
	for _, tc := range cases {
		if got := tc.report.Kind(); got != tc.kind {
			t.Fatalf("Kind = %q, want %q", got, tc.kind)
		}
		if got := tc.report.Summary(); got != tc.summary {
			t.Fatalf("Summary = %q, want %q", got, tc.summary)
		}
	}
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	report := &output.Report{Calcium: &domain.CalciumResult{Measured: 8, Albumin: 3, Corrected: 8.8, Category: domain.CalciumNormal}}
	if err := output.GenerateReport(&buf, report, "csv"); err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	if !strings.Contains(buf.String(), "corrected,8.80") {
		t.Fatalf("unexpected csv: %s", buf.String())
	}

	buf.Reset()
	if err := output.GenerateReport(&buf, report, "json"); err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("unexpected json: %s", buf.String())
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	err := output.GenerateReport(&bytes.Buffer{}, &output.Report{}, "definitely-not-a-format")
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", err.Error())
	}
}
