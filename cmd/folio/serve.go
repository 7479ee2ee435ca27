package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnevik/folio"
	"github.com/arnevik/folio/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio server",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		app := folio.New(cfg.siteConfig(), views.Default())
		defer app.Close()
		return app.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
