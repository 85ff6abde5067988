package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorbars/pkg/extract"
	"github.com/matzehuels/colorbars/pkg/transform"
)

// transformOpts holds the flags of the transform command.
type transformOpts struct {
	strategy string // pixel strategy name
	seed     uint64 // shuffle seed
	output   string // output image path (default: <base>_transformed<ext>)
	extract  string // also write the colour table of the input here
}

// transformCommand creates the transform command, which rearranges the pixels of an image.
func (c *CLI) transformCommand() *cobra.Command {
	opts := transformOpts{strategy: "sort", seed: 42}

	cmd := &cobra.Command{
		Use:   "transform [image]",
		Short: "Rearrange the pixels of an image",
		Long: `Rearrange the pixels of an image without changing its colours.

Strategies:
  sort     order pixels by RGB value
  hue      order pixels by hue
  shuffle  shuffle pixels with a seeded generator

The colour frequencies are unchanged by any strategy, so --extract writes the
same table the extract command would.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTransform(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", opts.strategy, "pixel strategy: "+strings.Join(transform.StrategyNames, ", "))
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed for shuffle")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image (default: <name>_transformed.<ext>)")
	cmd.Flags().StringVar(&opts.extract, "extract", "", "also write the colour frequency table to this JSON file")
	_ = cmd.RegisterFlagCompletionFunc("strategy", cobra.FixedCompletions(transform.StrategyNames, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runTransform(ctx context.Context, input string, opts transformOpts) error {
	logger := loggerFromContext(ctx)

	strategy, err := transform.ParseStrategy(opts.strategy, opts.seed)
	if err != nil {
		return err
	}

	img, _, err := extract.DecodeFile(input)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	out := transform.Apply(img, strategy)
	prog.done(fmt.Sprintf("Applied %s to %s", strategy.Name(), pluralize(out.Bounds().Dx()*out.Bounds().Dy(), "pixel")))

	output := opts.output
	if output == "" {
		output = transform.OutputPath(input)
	}
	if err := transform.WriteFile(output, out); err != nil {
		return err
	}
	printFile(output)

	if opts.extract != "" {
		table, err := extract.FromImage(ctx, img, extract.Options{Logger: logger})
		if err != nil {
			return err
		}
		if err := extract.WriteFile(opts.extract, table); err != nil {
			return err
		}
		printFile(opts.extract)
	}
	return nil
}
