package cmd

import (
	"fmt"

	"github.com/rxcalc/pharmacy-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newExampleConfigCommand(_ *app) *cobra.Command {
	var (
		outFile string
		format  string
	)
	c := &cobra.Command{
		Use:   "example-config",
		Short: "Örnek yapılandırma dosyası üret",
		Example: `  rxcalc example-config > scenario.yaml
  rxcalc example-config --config-format toml
  rxcalc example-config --output scenario.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			example := parser.CreateExampleConfiguration()
			if outFile != "" {
				if err := parser.SaveToFile(example, outFile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Örnek yapılandırma yazıldı: %s\n", outFile)
				return nil
			}
			data, err := parser.Marshal(example, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	c.Flags().StringVarP(&outFile, "output", "o", "", "Dosyaya yaz (uzantı formatı belirler)")
	c.Flags().StringVar(&format, "config-format", "yaml", "Stdout formatı: yaml veya toml")
	return c
}
