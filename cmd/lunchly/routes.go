package main

import (
	"fmt"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"winsbygroup.com/lunchly/internal/server"
)

func newRoutesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print routes and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.Build(root.cfg)
			if err != nil {
				return err
			}
			defer srv.DB.Close()

			routes := srv.Echo.Routes()
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path == routes[j].Path {
					return routes[i].Method < routes[j].Method
				}
				return routes[i].Path < routes[j].Path
			})

			for _, r := range routes {
				if r.Method == echo.RouteNotFound {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", r.Method, r.Path)
			}
			return nil
		},
	}
}
