package domain

import "fmt"

// Severity grades a clinical result for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityNormal  Severity = "normal"
	SeverityCaution Severity = "caution"
	SeverityDanger  Severity = "danger"
)

// BMICategory is the WHO adult BMI band, valued by its display label.
type BMICategory string

const (
	BMIUnderweight   BMICategory = "Zayıf"
	BMINormal        BMICategory = "Normal kilolu"
	BMIOverweight    BMICategory = "Fazla kilolu"
	BMIObeseClassI   BMICategory = "1. Derece Obez"
	BMIObeseClassII  BMICategory = "2. Derece Obez"
	BMIObeseClassIII BMICategory = "3. Derece (Morbid) Obez"
)

// Severity returns the display grade of the band.
func (c BMICategory) Severity() Severity {
	switch c {
	case BMIUnderweight:
		return SeverityInfo
	case BMINormal:
		return SeverityNormal
	case BMIOverweight:
		return SeverityCaution
	default:
		return SeverityDanger
	}
}

// BMIResult holds a body mass index calculation.
type BMIResult struct {
	HeightCm float64     `json:"height_cm"`
	WeightKg float64     `json:"weight_kg"`
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
}

// Summary renders the result line shown to the pharmacist.
func (r BMIResult) Summary() string {
	return fmt.Sprintf("Sonuç: %.2f kg/m²", r.Value)
}

// BSAResult holds a Mosteller body surface area calculation.
type BSAResult struct {
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Value    float64 `json:"value"`
}

func (r BSAResult) Summary() string {
	return fmt.Sprintf("Vücut Yüzey Alanı (BSA): %.3f m²", r.Value)
}

// CalciumCategory classifies an albumin-corrected calcium level.
type CalciumCategory string

const (
	CalciumLow    CalciumCategory = "Düşük (Hipokalsemi Riski)"
	CalciumNormal CalciumCategory = "Normal"
	CalciumHigh   CalciumCategory = "Yüksek (Hiperkalsemi Riski)"
)

func (c CalciumCategory) Severity() Severity {
	switch c {
	case CalciumLow:
		return SeverityInfo
	case CalciumNormal:
		return SeverityNormal
	default:
		return SeverityDanger
	}
}

// CalciumResult holds an albumin-corrected calcium calculation (mg/dL, g/dL).
type CalciumResult struct {
	Measured  float64         `json:"measured"`
	Albumin   float64         `json:"albumin"`
	Corrected float64         `json:"corrected"`
	Category  CalciumCategory `json:"category"`
}

func (r CalciumResult) Summary() string {
	return fmt.Sprintf("Düzeltilmiş Kalsiyum: %.2f mg/dL", r.Corrected)
}

// DilutionResult is the recipe for diluting a strong ethanol solution down to
// a target degree. Volumes are in ml.
type DilutionResult struct {
	TargetDegree  float64 `json:"target_degree"`
	TargetVolume  float64 `json:"target_volume"`
	SourceDegree  float64 `json:"source_degree"`
	StrongVolume  float64 `json:"strong_volume"`
	DiluentVolume float64 `json:"diluent_volume"`
}

func (r DilutionResult) Summary() string {
	return fmt.Sprintf("%%%g alkolden %.2f ml + su %.2f ml = %.0f ml %%%g",
		r.SourceDegree, r.StrongVolume, r.DiluentVolume, r.TargetVolume, r.TargetDegree)
}
