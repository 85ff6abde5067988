package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorbars/pkg/extract"
)

// extractOpts holds the flags of the extract command.
type extractOpts struct {
	output  string // output JSON path (default: <image base>.json)
	pad     bool   // six-digit keys
	workers int    // parallel row stripes (0 = GOMAXPROCS)
}

// extractCommand creates the extract command, which counts the colours of an image.
func (c *CLI) extractCommand() *cobra.Command {
	var opts extractOpts

	cmd := &cobra.Command{
		Use:   "extract [image]",
		Short: "Count the colours of an image into a frequency table",
		Long: `Count every pixel's colour and write the counts as a JSON frequency table.

Supported images: ` + strings.Join(extract.SupportedExtensions(), ", ") + `.
Alpha is ignored. Keys are lower-case hex without leading zeros ("ff" is pure
blue) unless --pad is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExtract(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output JSON file (default: image name with .json)")
	cmd.Flags().BoolVar(&opts.pad, "pad", false, "write six-digit keys")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel workers (default: number of CPUs)")

	return cmd
}

func (c *CLI) runExtract(ctx context.Context, input string, opts extractOpts) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	img, format, err := extract.DecodeFile(input)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logger.Debug("decoded image", "format", format, "width", b.Dx(), "height", b.Dy())

	table, err := extract.FromImage(ctx, img, extract.Options{
		PadKeys: opts.pad,
		Workers: opts.workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done("Counted " + pluralize(table.Len(), "colour"))

	output := opts.output
	if output == "" {
		output = basePath("", input) + ".json"
	}
	if err := extract.WriteFile(output, table); err != nil {
		return err
	}

	printFile(output)
	printNextStep("Render it", appName+" render "+output)
	return nil
}

// pluralize returns "1 entry", "2 entries", "3 colours".
func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	if stem, ok := strings.CutSuffix(word, "y"); ok {
		return fmt.Sprintf("%d %sies", n, stem)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
