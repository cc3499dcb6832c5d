package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/shoproute/backend/internal/domain"
)

func (c *cli) saveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <text...>",
		Short: "Save a new shopping list, keeping only products the store carries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.services.Shopping.SaveList(cmd.Context(), strings.Join(args, " "))
			if err != nil && !(errors.Is(err, domain.ErrNoValidProducts) && result != nil) {
				return err
			}
			c.dump(cmd, result)

			writeSaveReport(cmd.OutOrStdout(), result)
			return err
		},
	}
}

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.services.Shopping.CurrentList(cmd.Context())
			if err != nil {
				return err
			}
			c.dump(cmd, list)

			fmt.Fprintf(cmd.OutOrStdout(), "Your current list: %s.\n", strings.Join(list.Items, ", "))
			return nil
		},
	}
}

func (c *cli) locateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locate [items...]",
		Short: "Show where each product is in the store (saved list by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.services.Shopping.Locate(cmd.Context(), args)
			if err != nil {
				return err
			}
			c.dump(cmd, results)

			writeLocationReport(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func (c *cli) routeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "route [items...]",
		Short: "Order the products into a short walk through the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := c.services.Shopping.PlanRoute(cmd.Context(), args)
			if err != nil {
				return err
			}
			c.dump(cmd, route)

			writeRouteReport(cmd.OutOrStdout(), route)
			return nil
		},
	}
}

func (c *cli) dump(cmd *cobra.Command, v interface{}) {
	if c.debug {
		fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(v))
	}
}
