package calculation

import (
	"fmt"
	"math"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
)

// CalculateBMI computes the body mass index and its adult WHO band.
func CalculateBMI(heightCm, weightKg float64) (domain.BMIResult, error) {
	if !allPositive(heightCm, weightKg) {
		return domain.BMIResult{}, fmt.Errorf("%w: height and weight must be positive", domain.ErrInvalidInput)
	}

	heightM := heightCm / 100.0
	bmi := weightKg / (heightM * heightM)

	return domain.BMIResult{
		HeightCm: heightCm,
		WeightKg: weightKg,
		Value:    bmi,
		Category: ClassifyBMI(bmi),
	}, nil
}

// ClassifyBMI maps a BMI value onto the six adult bands.
func ClassifyBMI(bmi float64) domain.BMICategory {
	switch {
	case bmi < 18.5:
		return domain.BMIUnderweight
	case bmi < 25:
		return domain.BMINormal
	case bmi < 30:
		return domain.BMIOverweight
	case bmi < 35:
		return domain.BMIObeseClassI
	case bmi < 40:
		return domain.BMIObeseClassII
	default:
		return domain.BMIObeseClassIII
	}
}

// CalculateBSA computes body surface area with the Mosteller formula.
func CalculateBSA(heightCm, weightKg float64) (domain.BSAResult, error) {
	if !allPositive(heightCm, weightKg) {
		return domain.BSAResult{}, fmt.Errorf("%w: height and weight must be positive", domain.ErrInvalidInput)
	}
	return domain.BSAResult{
		HeightCm: heightCm,
		WeightKg: weightKg,
		Value:    math.Sqrt(heightCm * weightKg / 3600),
	}, nil
}

// CalculateCorrectedCalcium adjusts total serum calcium (mg/dL) for albumin (g/dL).
func CalculateCorrectedCalcium(calcium, albumin float64) (domain.CalciumResult, error) {
	if !allPositive(calcium, albumin) {
		return domain.CalciumResult{}, fmt.Errorf("%w: calcium and albumin must be positive", domain.ErrInvalidInput)
	}

	corrected := calcium + 0.8*(4.0-albumin)

	var category domain.CalciumCategory
	switch {
	case corrected < 8.5:
		category = domain.CalciumLow
	case corrected <= 10.2:
		category = domain.CalciumNormal
	default:
		category = domain.CalciumHigh
	}

	return domain.CalciumResult{
		Measured:  calcium,
		Albumin:   albumin,
		Corrected: corrected,
		Category:  category,
	}, nil
}

// CalculateAlcoholDilution returns how much of a sourceDegree ethanol and how
// much diluent make targetVolume of targetDegree solution. The mixture is
// treated as parts by volume.
func CalculateAlcoholDilution(targetDegree, targetVolume, sourceDegree float64) (domain.DilutionResult, error) {
	if !allPositive(targetDegree, targetVolume, sourceDegree) {
		return domain.DilutionResult{}, fmt.Errorf("%w: degrees and volume must be positive", domain.ErrInvalidInput)
	}
	if targetDegree >= sourceDegree {
		return domain.DilutionResult{}, fmt.Errorf("%w: target degree %g must be below source degree %g", domain.ErrInvalidRatio, targetDegree, sourceDegree)
	}

	return domain.DilutionResult{
		TargetDegree:  targetDegree,
		TargetVolume:  targetVolume,
		SourceDegree:  sourceDegree,
		StrongVolume:  targetVolume * targetDegree / sourceDegree,
		DiluentVolume: targetVolume * (sourceDegree - targetDegree) / sourceDegree,
	}, nil
}

// allPositive reports whether every value is a finite number above zero.
// NaN fails every comparison, so it is rejected along with zero.
func allPositive(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) || math.IsInf(v, 1) {
			return false
		}
	}
	return true
}
