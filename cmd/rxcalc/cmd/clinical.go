package cmd

import (
	"github.com/rxcalc/pharmacy-calculator/internal/calculation"
	"github.com/rxcalc/pharmacy-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newBMICommand(a *app) *cobra.Command {
	var height, weight float64
	c := &cobra.Command{
		Use:     "bmi",
		Short:   "Vücut kitle indeksi hesapla",
		Example: `  rxcalc bmi --height 180 --weight 81`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calculation.CalculateBMI(height, weight)
			if err != nil {
				return fail("bmi", err)
			}
			return a.render(cmd, &output.Report{BMI: &res})
		},
	}
	c.Flags().Float64Var(&height, "height", 0, "Boy (cm)")
	c.Flags().Float64Var(&weight, "weight", 0, "Kilo (kg)")
	_ = c.MarkFlagRequired("height")
	_ = c.MarkFlagRequired("weight")
	return c
}

func newBSACommand(a *app) *cobra.Command {
	var height, weight float64
	c := &cobra.Command{
		Use:     "bsa",
		Short:   "Vücut yüzey alanı hesapla (Mosteller)",
		Example: `  rxcalc bsa --height 170 --weight 70`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calculation.CalculateBSA(height, weight)
			if err != nil {
				return fail("bsa", err)
			}
			return a.render(cmd, &output.Report{BSA: &res})
		},
	}
	c.Flags().Float64Var(&height, "height", 0, "Boy (cm)")
	c.Flags().Float64Var(&weight, "weight", 0, "Kilo (kg)")
	_ = c.MarkFlagRequired("height")
	_ = c.MarkFlagRequired("weight")
	return c
}

func newCalciumCommand(a *app) *cobra.Command {
	var calcium, albumin float64
	c := &cobra.Command{
		Use:     "calcium",
		Short:   "Albümine göre düzeltilmiş kalsiyum",
		Example: `  rxcalc calcium --calcium 8 --albumin 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calculation.CalculateCorrectedCalcium(calcium, albumin)
			if err != nil {
				return fail("kalsiyum", err)
			}
			return a.render(cmd, &output.Report{Calcium: &res})
		},
	}
	c.Flags().Float64Var(&calcium, "calcium", 0, "Ölçülen kalsiyum (mg/dL)")
	c.Flags().Float64Var(&albumin, "albumin", 0, "Albümin (g/dL)")
	_ = c.MarkFlagRequired("calcium")
	_ = c.MarkFlagRequired("albumin")
	return c
}

func newAlcoholCommand(a *app) *cobra.Command {
	var target, volume, source float64
	c := &cobra.Command{
		Use:   "alcohol",
		Short: "Etil alkol seyreltme hesabı",
		Example: `  rxcalc alcohol --target 70 --volume 1000
  rxcalc alcohol --target 70 --volume 500 --source 90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calculation.CalculateAlcoholDilution(target, volume, source)
			if err != nil {
				return fail("seyreltme", err)
			}
			return a.render(cmd, &output.Report{Dilution: &res})
		},
	}
	c.Flags().Float64Var(&target, "target", 0, "Hedef derece (%)")
	c.Flags().Float64Var(&volume, "volume", 0, "Hedef hacim (ml)")
	c.Flags().Float64Var(&source, "source", 96, "Kaynak alkol derecesi (%)")
	_ = c.MarkFlagRequired("target")
	_ = c.MarkFlagRequired("volume")
	return c
}
