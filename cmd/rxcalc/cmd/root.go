package cmd

import (
	"fmt"
	"io"

	"github.com/rxcalc/pharmacy-calculator/internal/calculation"
	"github.com/rxcalc/pharmacy-calculator/internal/config"
	"github.com/rxcalc/pharmacy-calculator/internal/domain"
	"github.com/rxcalc/pharmacy-calculator/internal/logging"
	"github.com/rxcalc/pharmacy-calculator/internal/output"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	verbose bool
	format  string

	config *domain.Configuration
	engine *calculation.CalculationEngine
}

// Execute runs the rxcalc command line and reports any failure on stderr.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// NewRootCommand builds the command tree. Each call returns independent state.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rxcalc",
		Short: "Eczacı hesap makinesi",
		Long: `rxcalc, eczane için klinik hesaplamalar ve MF (mal fazlası) alım
analizi yapar.

Hesaplamalar:
  bmi      - Vücut kitle indeksi
  bsa      - Vücut yüzey alanı (Mosteller)
  calcium  - Albümine göre düzeltilmiş kalsiyum
  alcohol  - Etil alkol seyreltme
  zscore   - WHO büyüme standardı Z-skoru
  stock    - MF teklif karşılaştırması`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Yapılandırma dosyası (YAML veya TOML)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Ayrıntılı çıktı ve debug log")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Çıktı formatı: "+fmt.Sprint(output.AvailableFormatterNames()))

	rootCmd.AddCommand(
		newBMICommand(a),
		newBSACommand(a),
		newCalciumCommand(a),
		newAlcoholCommand(a),
		newZScoreCommand(a),
		newStockCommand(a),
		newExampleConfigCommand(a),
		newVersionCommand(),
	)

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\n%s", err, c.UsageString())
	})
	return rootCmd
}

// setup loads configuration, installs the logger and builds the engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	if a.cfgFile != "" {
		cfg, err := parser.LoadFromFile(a.cfgFile)
		if err != nil {
			return fail("yapılandırma yüklenemedi", err)
		}
		a.config = cfg
	} else {
		a.config = &domain.Configuration{}
		parser.ApplyDefaults(a.config)
	}

	level := a.config.Settings.LogLevel
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, false)
	if err != nil {
		return fail("logger", err)
	}

	engine, err := calculation.NewCalculationEngineWithConfig(a.config.Settings)
	if err != nil {
		return fail("hesap motoru", err)
	}
	engine.SetLogger(logger)
	a.engine = engine

	zl := logger.Zerolog()
	zl.Debug().
		Str("command", cmd.Name()).
		Str("config", a.cfgFile).
		Str("format", a.outputFormat()).
		Int("growth_tables", engine.Growth.Tables.Count()).
		Msg("engine ready")
	return nil
}

// outputFormat resolves the effective formatter name: flag, then config,
// upgraded to the verbose console when --verbose is set.
func (a *app) outputFormat() string {
	format := a.format
	if format == "" && a.config != nil {
		format = a.config.Settings.OutputFormat
	}
	if format == "" {
		format = config.DefaultOutputFormat
	}
	if a.verbose && output.NormalizeFormatName(format) == "console" {
		format = "console-verbose"
	}
	return format
}

// render writes a report to the command's stdout.
func (a *app) render(cmd *cobra.Command, report *output.Report) error {
	if err := output.GenerateReport(cmd.OutOrStdout(), report, a.outputFormat()); err != nil {
		return fail("çıktı", err)
	}
	return nil
}

func fail(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// printError prefixes the error with its classification when it has one.
func printError(w io.Writer, err error) {
	if code := domain.ErrorCode(err); code != "" {
		fmt.Fprintf(w, "Hata [%s]: %v\n", code, err)
		return
	}
	fmt.Fprintf(w, "Hata: %v\n", err)
}
