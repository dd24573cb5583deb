package terminal

import (
	"io"
	"os"

	"github.com/ga-tools/ga-lens/pkg/runtime/terminal/commands"
	"github.com/ga-tools/ga-lens/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	output   io.Writer
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		output:   opts.Output,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ga-lens",
		Short: "Analytics period and property comparison tool",
	}

	cmd.AddCommand(commands.NewCompareCmd(cli.reporter))
	cmd.AddCommand(commands.NewPropertiesCmd(cli.output))

	return cmd
}
