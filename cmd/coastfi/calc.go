package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/coastfi-calculator/internal/domain"
	"github.com/rpgo/coastfi-calculator/internal/output"
)

func newCalcCmd(a *app) *cobra.Command {
	var (
		sf      scenarioFlags
		format  string
		outFile string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate a single scenario given on the command line",
		Example: `  coastfi calc --spending 100000 --inflation 2.5 --years 25 --portfolio 1000000 --return 6 --swr 4
  coastfi calc --basis real --solve-for years_needed --contribute --contribution 500 --frequency monthly`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := sf.scenario(cmd.Flags())
			if err != nil {
				return err
			}
			e := a.engine.EvaluateScenario(sc)
			a.logger.WithField("scenario", sc.Name).Debugf("target=%.2f ending=%.2f", e.TargetBalance, e.EndingBalance)

			results := &domain.Comparison{Results: []domain.Evaluation{e}}
			data, err := output.NewReporter(a.settings.OutputDir, a.branding()).Render(results, format)
			if err != nil {
				return err
			}
			return emit(cmd, data, outFile)
		},
	}
	sf.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "console", fmt.Sprintf("output format %v", output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write the output to this file instead of stdout")
	return cmd
}

func newProjectCmd(a *app) *cobra.Command {
	var sf scenarioFlags
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the year-by-year projection of a scenario as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := sf.scenario(cmd.Flags())
			if err != nil {
				return err
			}
			e := a.engine.EvaluateScenario(sc)
			if len(e.Projection) == 0 {
				a.logger.Warn("nothing to project: portfolio and years until target must both be positive")
			}
			var buf bytes.Buffer
			if err := output.WriteProjectionCSV(&buf, e.Projection); err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}
	sf.register(cmd.Flags())
	return cmd
}

// emit writes data to path, or to the command's stdout when path is empty.
func emit(cmd *cobra.Command, data []byte, path string) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
