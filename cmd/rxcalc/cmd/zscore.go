package cmd

import (
	"time"

	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/internal/output"
	"github.com/rxcalc/pharmacy-calculator/pkg/dateutil"
	"github.com/spf13/cobra"
)

func newZScoreCommand(a *app) *cobra.Command {
	var (
		birth, ref, sex string
		weight, height  float64
	)
	c := &cobra.Command{
		Use:   "zscore",
		Short: "WHO büyüme standardına göre Z-skoru",
		Long: `0-60 ay arası çocuklar için Kilo/Yaş, 61-228 ay arası için VKİ/Yaş
Z-skoru hesaplar. VKİ/Yaş için --height gereklidir.`,
		Example: `  rxcalc zscore --birth 2024-01-10 --date 2025-05-12 --sex male --weight 10.5
  rxcalc zscore --birth 15.03.2015 --sex kız --weight 30 --height 135`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			birthDate, err := dateutil.ParseDate(birth)
			if err != nil {
				return fail("doğum tarihi", err)
			}
			var refDate time.Time
			if ref != "" {
				if refDate, err = dateutil.ParseDate(ref); err != nil {
					return fail("ölçüm tarihi", err)
				}
			}
			s, err := domain.ParseSex(sex)
			if err != nil {
				return fail("cinsiyet", err)
			}

			q := domain.ZScoreQuery{BirthDate: birthDate, RefDate: refDate, Sex: s, WeightKg: weight}
			if cmd.Flags().Changed("height") {
				q.HeightCm = &height
			}
			res, err := a.engine.ResolveZScore(q)
			if err != nil {
				return fail("z-skoru", err)
			}
			return a.render(cmd, &output.Report{ZScore: &res})
		},
	}
	c.Flags().StringVar(&birth, "birth", "", "Doğum tarihi (YYYY-AA-GG veya GG.AA.YYYY)")
	c.Flags().StringVar(&ref, "date", "", "Ölçüm tarihi (varsayılan: bugün)")
	c.Flags().StringVar(&sex, "sex", "", "Cinsiyet: male/erkek veya female/kız")
	c.Flags().Float64Var(&weight, "weight", 0, "Kilo (kg)")
	c.Flags().Float64Var(&height, "height", 0, "Boy (cm), VKİ/Yaş için")
	_ = c.MarkFlagRequired("birth")
	_ = c.MarkFlagRequired("sex")
	_ = c.MarkFlagRequired("weight")
	return c
}
