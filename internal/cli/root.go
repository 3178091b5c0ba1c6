package cli

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time.
var Version = "dev"

// NewRootCmd creates the navkit root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navkit",
		Short: "Navigation-state toolkit for embedded web apps",
		Long: `navkit tracks a browsing context's location, derives its base-URI
prefix, converts between absolute and base-relative paths, and journals
dispatched navigations.

The uri commands are one-shot conversions; sim drives a scripted browsing
context; history inspects the recorded visit journal.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewURICmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewSimCmd())
	cmd.AddCommand(NewConfigCmd())

	return cmd
}
