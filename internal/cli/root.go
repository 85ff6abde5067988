package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorbars/pkg/buildinfo"
)

// SetVersion sets the version information displayed by --version and sent in
// the User-Agent of remote fetches. main calls it when the values are not
// injected into buildinfo via ldflags.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
//
// Empty arguments leave the current value unchanged.
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}

// Execute runs the colorbars CLI with args and returns the first error.
// Logging goes to stderr at info level, or debug with --verbose.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(ctx, os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context, args []string) error {
	var verbose bool

	buildinfo.Resolve()
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	preRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		return preRun(cmd, args)
	}

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
