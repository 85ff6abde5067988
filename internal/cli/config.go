package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorbars/pkg/config"
)

// configCommand creates the config command, which prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML: built-in defaults with the
config file applied on top. Redirect the output to start a config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				path := c.configPath
				if path == "" {
					p, err := config.DefaultPath()
					if err != nil {
						return fmt.Errorf("get config path: %w", err)
					}
					path = p
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			}
			return config.Encode(cmd.OutOrStdout(), c.Config)
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file path instead")

	return cmd
}
