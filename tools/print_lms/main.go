package main

import (
	"flag"
	"fmt"

	"github.com/rxcalc/pharmacy-calculator/internal/calculation"
	"github.com/rxcalc/pharmacy-calculator/internal/domain"
)

func main() {
	sexFlag := flag.String("sex", "male", "male or female")
	metricFlag := flag.String("metric", string(domain.WeightForAge), "weight-for-age or BMI-for-age")
	tables := flag.String("tables", "", "growth table file (default: bundled)")
	step := flag.Float64("step", 0.5, "age step in months")
	flag.Parse()

	sex, err := domain.ParseSex(*sexFlag)
	if err != nil {
		panic(err)
	}

	loader := calculation.NewGrowthTableLoader()
	gt, err := loader.LoadDefault()
	if *tables != "" {
		gt, err = loader.LoadFile(*tables)
	}
	if err != nil {
		panic(err)
	}

	table, ok := gt.Table(sex, domain.Metric(*metricFlag))
	if !ok {
		fmt.Printf("no %s table for %s\n", *metricFlag, sex)
		return
	}

	first, last := table.Span()
	fmt.Println("AgeMonths,L,M,S")
	for age := float64(first); age <= float64(last); age += *step {
		lms, err := calculation.InterpolateLMS(table, age)
		if err != nil {
			fmt.Printf("%.2f,error: %v\n", age, err)
			continue
		}
		fmt.Printf("%.2f,%.4f,%.4f,%.5f\n", age, lms.L, lms.M, lms.S)
	}
}
