package commands

import (
	"fmt"
	"io"

	"github.com/ga-tools/ga-lens/pkg/services/config"
	"github.com/spf13/cobra"
)

func NewPropertiesCmd(out io.Writer) *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List the configured analytics properties",
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings(settingsPath)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			for _, p := range settings.Catalog() {
				fmt.Fprintf(out, "%s\t%s\n", p.ID, p.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&settingsPath, "settings", "galens.yaml", "Path to the settings file")

	return cmd
}
