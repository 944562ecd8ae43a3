package output

import (
	"github.com/rxcalc/pharmacy-calculator/internal/domain"
)

// field is one labelled value of a clinical result.
type field struct {
	Key   string
	Label string
	Value string
}

// clinicalFields flattens a non-stock result into labelled values shared by
// the console and CSV formatters.
func clinicalFields(r *Report) []field {
	switch {
	case r.BMI != nil:
		return []field{
			{"height_cm", "Boy (cm)", floatToString(r.BMI.HeightCm, 1)},
			{"weight_kg", "Kilo (kg)", floatToString(r.BMI.WeightKg, 1)},
			{"bmi", "VKİ (kg/m²)", floatToString(r.BMI.Value, 2)},
			{"category", "Kategori", string(r.BMI.Category)},
			{"severity", "Durum", string(r.BMI.Category.Severity())},
		}
	case r.BSA != nil:
		return []field{
			{"height_cm", "Boy (cm)", floatToString(r.BSA.HeightCm, 1)},
			{"weight_kg", "Kilo (kg)", floatToString(r.BSA.WeightKg, 1)},
			{"bsa", "BSA (m²)", floatToString(r.BSA.Value, 3)},
		}
	case r.Calcium != nil:
		return []field{
			{"measured", "Ölçülen Ca (mg/dL)", floatToString(r.Calcium.Measured, 2)},
			{"albumin", "Albümin (g/dL)", floatToString(r.Calcium.Albumin, 2)},
			{"corrected", "Düzeltilmiş Ca (mg/dL)", floatToString(r.Calcium.Corrected, 2)},
			{"category", "Kategori", string(r.Calcium.Category)},
			{"severity", "Durum", string(r.Calcium.Category.Severity())},
		}
	case r.Dilution != nil:
		return []field{
			{"source_degree", "Kaynak Derece (%)", floatToString(r.Dilution.SourceDegree, 1)},
			{"target_degree", "Hedef Derece (%)", floatToString(r.Dilution.TargetDegree, 1)},
			{"target_volume", "Hedef Hacim (ml)", floatToString(r.Dilution.TargetVolume, 0)},
			{"strong_volume", "Alkol (ml)", floatToString(r.Dilution.StrongVolume, 2)},
			{"diluent_volume", "Su (ml)", floatToString(r.Dilution.DiluentVolume, 2)},
		}
	case r.ZScore != nil:
		return zscoreFields(r.ZScore)
	}
	return nil
}

func zscoreFields(z *domain.ZScoreResult) []field {
	status := "normal"
	if z.OutsideNormalRange() {
		status = "danger"
	}
	return []field{
		{"age_months", "Yaş (ay)", floatToString(z.AgeMonths, 1)},
		{"metric", "Gösterge", z.Metric.Label()},
		{"measurement", "Ölçüm", z.MeasurementText},
		{"l", "L", floatToString(z.LMS.L, 4)},
		{"m", "M", floatToString(z.LMS.M, 4)},
		{"s", "S", floatToString(z.LMS.S, 5)},
		{"z_score", "Z-Skoru", floatToString(z.ZScore, 2)},
		{"severity", "Durum", status},
	}
}
