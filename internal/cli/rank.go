package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/freq"
)

// rankCommand creates the rank command, which prints the ranked table.
func (c *CLI) rankCommand() *cobra.Command {
	var (
		limit       int
		asJSON      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "rank [source]",
		Short: "Print the most frequent colours of a table",
		Long: `Print the most frequent colours of a table in descending order.

The default output is a table with a colour swatch per entry. --json writes
the ranked table as a JSON object instead, and -i opens an interactive
browser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = c.Config.Chart.Limit
			}
			if err := errors.ValidateLimit(limit); err != nil {
				return err
			}
			if asJSON && interactive {
				return fmt.Errorf("--json and --interactive are mutually exclusive")
			}
			return c.runRank(cmd.Context(), cmd.OutOrStdout(), args[0], limit, asJSON, interactive)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", freq.DefaultLimit, "number of entries")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the ranked table as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the ranked table interactively")

	return cmd
}

func (c *CLI) runRank(ctx context.Context, out io.Writer, location string, limit int, asJSON, interactive bool) error {
	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	table, err := runner.Load(ctx, location)
	if err != nil {
		return err
	}
	ranked := freq.Rank(table, limit)
	c.Logger.Debug("ranked table", "entries", table.Len(), "kept", ranked.Len())

	switch {
	case asJSON:
		return freq.Write(out, ranked)
	case interactive:
		return runRankBrowser(ctx, ranked, table.Sum())
	default:
		if ranked.Len() == 0 {
			printWarning("Table is empty")
			return nil
		}
		_, err := fmt.Fprintln(out, renderRankTable(ranked.Entries(), table.Sum(), 0, ranked.Len(), -1))
		return err
	}
}

// runRankBrowser runs the bubbletea browser and prints the selected entry.
func runRankBrowser(ctx context.Context, ranked *freq.Table, total float64) error {
	p := tea.NewProgram(NewRankListModel(ranked, total), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive browser: %w", err)
	}
	if m, ok := final.(RankListModel); ok && m.Selected != nil {
		printSuccess("%s %s", m.Selected.Key, StyleNumber.Render(formatFrequency(m.Selected.Value)))
	}
	return nil
}
