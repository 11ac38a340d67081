package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/coastfi-calculator/internal/config"
	"github.com/rpgo/coastfi-calculator/internal/output"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		format    string
		write     bool
		outputDir string
	)
	cmd := &cobra.Command{
		Use:   "run <scenarios.yaml>",
		Short: "Evaluate every scenario of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debugf("loaded %d scenarios from %s", len(cfg.Scenarios), args[0])

			results, err := a.engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to run scenarios: %w", err)
			}

			dir := a.settings.OutputDir
			if outputDir != "" {
				dir = outputDir
			}
			reporter := output.NewReporter(dir, a.branding())
			if !write {
				data, err := reporter.Render(results, format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			paths, err := reporter.GenerateReport(results, format)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", fmt.Sprintf("output format %v, or all with --write", output.AvailableFormatterNames()))
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write a timestamped report file instead of printing")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "report directory (default COASTFI_OUTPUT_DIR)")
	return cmd
}
