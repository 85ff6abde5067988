package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/pipeline"
	"github.com/matzehuels/colorbars/pkg/source"
)

// renderCommand creates the render command: load a table, rank it and write
// the chart in every requested format.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		flags      pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render [source]",
		Short: "Render a colour frequency table as a bar chart",
		Long: `Render a colour frequency table as a bar chart.

The source is a JSON object mapping colour codes to frequencies, read from a
file, from stdin ("-"), or from an http(s) URL. The source is fetched once.
The most frequent entries (200 by default) are drawn in descending order,
each bar filled with its own colour.

Output goes next to the input (colors.json -> colors.svg, and the ranked
table to colors.ranked.json) unless -o is given. An output path that names
the input table is refused.
With several formats, -o is a base path and each format gets its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.renderDefaults()
			if err := applyRenderFlags(cmd, &opts, flags, formatsStr); err != nil {
				return err
			}
			opts.Source = args[0]
			return c.runRender(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, html, pdf, json (comma-separated)")
	addChartFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.Title, "title", "", "chart title")
	cmd.Flags().StringVar(&flags.Background, "background", "", "background colour (CSS)")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "disable the artifact cache")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.FormatNames(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// addChartFlags registers the flags shared by commands that rank or draw.
func addChartFlags(cmd *cobra.Command, flags *pipeline.Options) {
	cmd.Flags().IntVar(&flags.Limit, "limit", pipeline.DefaultLimit, "number of bars")
	cmd.Flags().Float64Var(&flags.Width, "width", pipeline.DefaultWidth, "chart width in pixels")
	cmd.Flags().Float64Var(&flags.Height, "height", pipeline.DefaultHeight, "chart height in pixels")
}

// applyRenderFlags copies every flag the user set onto opts, leaving config
// values in place for the rest.
func applyRenderFlags(cmd *cobra.Command, opts *pipeline.Options, flags pipeline.Options, formats string) error {
	set := cmd.Flags().Changed
	if set("limit") {
		if err := errors.ValidateLimit(flags.Limit); err != nil {
			return err
		}
		opts.Limit = flags.Limit
	}
	if set("width") {
		opts.Width = flags.Width
	}
	if set("height") {
		opts.Height = flags.Height
	}
	if set("title") {
		opts.Title = flags.Title
	}
	if set("background") {
		opts.Background = flags.Background
	}
	if set("no-cache") {
		opts.NoCache = flags.NoCache
	}
	if set("format") {
		parsed, err := pipeline.ParseFormats(formats)
		if err != nil {
			return err
		}
		opts.Formats = parsed
	}
	return nil
}

// runRender executes the pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", source.Describe(opts.Source)))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if output != source.Stdin {
		printStats(result.Stats.Bars, result.Stats.Entries, result.CacheInfo.RenderHit)
	}
	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Source,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
}

// writeArtifacts writes each artifact to disk, or a single artifact to stdout
// when the output is "-".
func writeArtifacts(p artifactWriteParams) error {
	if p.output == source.Stdin {
		if len(p.formats) != 1 {
			return fmt.Errorf("stdout output needs exactly one format, got %d", len(p.formats))
		}
		_, err := os.Stdout.Write(p.artifacts[p.formats[0]])
		return err
	}

	paths := outputPaths(p.formats, p.input, p.output)
	for _, format := range p.formats {
		if samePath(paths[format], p.input) {
			return errors.New(errors.ErrCodeInvalidPath, "output %s would overwrite the input table", paths[format])
		}
	}
	for _, format := range p.formats {
		path := paths[format]
		if err := os.WriteFile(path, p.artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPaths assigns a file to every format. A single format with an
// explicit output uses that path as-is. Paths derived from the input name
// the JSON artifact <base>.ranked.json so it never lands on the input table.
func outputPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		if f == pipeline.FormatJSON && output == "" {
			paths[f] = base + ".ranked.json"
			continue
		}
		paths[f] = base + "." + f
	}
	return paths
}

// samePath reports whether a and b name the same local file.
func samePath(a, b string) bool {
	if source.Classify(b) != source.KindFile {
		return false
	}
	if fa, err := os.Stat(a); err == nil {
		if fb, err := os.Stat(b); err == nil {
			return os.SameFile(fa, fb)
		}
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input; URL and stdin
// inputs fall back to "colorbars" in the working directory.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if source.Classify(input) != source.KindFile {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
