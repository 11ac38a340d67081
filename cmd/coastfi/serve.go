package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rpgo/coastfi-calculator/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.settings.Port
			}
			if a.settings.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			return server.New(a.engine, a.branding()).ListenAndServe(cmd.Context(), ":"+port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default COASTFI_PORT or 8080)")
	return cmd
}
