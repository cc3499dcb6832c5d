// Command shoproute manages the shopping list and prints store routes from the terminal.
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/shoproute/backend/config"
	"github.com/shoproute/backend/internal/app"
)

type cli struct {
	debug    bool
	verbose  bool
	services *app.Services
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "shoproute",
		Short:        "Plan a walking route through the store for your shopping list",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !c.verbose {
				log.SetOutput(io.Discard)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if c.debug {
				cfg.Server.Debug = true
			}

			services, err := app.New(cfg)
			if err != nil {
				return err
			}
			c.services = services
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.services != nil {
				c.services.Close()
			}
		},
	}

	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "dump resolved structures")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "show service logs")

	root.AddCommand(
		c.saveCommand(),
		c.showCommand(),
		c.locateCommand(),
		c.routeCommand(),
	)
	return root
}
