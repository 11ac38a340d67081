package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/coastfi-calculator/internal/calculation"
	"github.com/rpgo/coastfi-calculator/internal/config"
	"github.com/rpgo/coastfi-calculator/internal/output"
)

// app carries the state shared by all subcommands once the root command has
// loaded settings.
type app struct {
	settings *config.Settings
	logger   *log.Logger
	engine   *calculation.CalculationEngine

	envFile  string
	logLevel string
	verbose  bool
}

func (a *app) branding() output.Branding {
	return output.Branding{
		Name:       a.settings.BrandName,
		Primary:    a.settings.BrandPrimary,
		Accent:     a.settings.BrandAccent,
		ContactURL: a.settings.ContactURL,
	}
}

// setup loads settings and configures logging. Flags win over the environment.
func (a *app) setup(cmd *cobra.Command) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	settings, err := config.LoadSettings(files...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = a.logLevel
	}
	if a.verbose {
		settings.LogLevel = log.DebugLevel.String()
	}
	level, err := settings.Level()
	if err != nil {
		return err
	}

	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)

	a.settings = settings
	a.logger = logger
	a.engine = engine
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "coastfi",
		Short: "Coast FI projection and solver",
		Long: `coastfi projects a portfolio to a target horizon and answers whether it can
"coast" to financial independence without further saving: the return it needs,
the balance it reaches and the years it takes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load settings from this .env file (default .env when present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "shorthand for --log-level=debug")

	root.AddCommand(
		newCalcCmd(a),
		newProjectCmd(a),
		newRunCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
	)
	return root
}
