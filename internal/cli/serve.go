package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorbars/internal/server"
	"github.com/matzehuels/colorbars/pkg/source"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [source]",
		Short: "Serve the chart over HTTP",
		Long: `Serve the chart over HTTP.

The source is fetched once at start-up. Open / for the chart, or fetch
/chart.svg, /chart.png, /chart.html, /chart.pdf, /data.json and
/ranked.json directly. limit, width and height query parameters override
the configured defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && c.Config.Server.Addr != "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), args[0], addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, location, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	table, err := runner.Load(ctx, location)
	if err != nil {
		return err
	}
	printSuccess("Loaded %s from %s", pluralize(table.Len(), "entry"), source.Describe(location))

	defaults := c.renderDefaults()
	defaults.NoCache = noCache
	srv := server.New(table, runner,
		server.WithLogger(c.Logger),
		server.WithDefaults(defaults),
		server.WithSource(location),
	)

	printInfo("Serving on %s", StyleLink.Render(displayURL(addr)))
	return srv.ListenAndServe(ctx, addr)
}

// displayURL turns a listen address into a browsable URL.
func displayURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
