package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/coastfi-calculator/internal/config"
	"github.com/rpgo/coastfi-calculator/internal/output"
)

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if len(args) == 0 {
				b, err := yaml.Marshal(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := output.SaveConfiguration(cfg, args[0]); err != nil {
				return fmt.Errorf("failed to write example: %w", err)
			}
			a.logger.Infof("example configuration written to %s", args[0])
			return nil
		},
	}
}
