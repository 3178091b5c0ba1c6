package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/config"
	"github.com/bnema/navkit/internal/infrastructure/hostbridge"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/navigation"
)

// NewURICmd creates the uri command group: one-shot conversions against a
// static browsing context described by flags (or the configured defaults).
func NewURICmd() *cobra.Command {
	var location, base string

	cmd := &cobra.Command{
		Use:   "uri",
		Short: "Base-prefix derivation and URI conversion",
	}
	cmd.PersistentFlags().StringVar(&location, "location", "", "Absolute URI of the browsing context (default from config)")
	cmd.PersistentFlags().StringVar(&base, "base", "", "Declared base URI of the document (default from config)")

	newManager := func() (context.Context, *navigation.Manager, error) {
		if err := config.Init(); err != nil {
			return nil, nil, err
		}
		cfg := config.Get()
		if location == "" {
			location = cfg.Sim.Location
		}
		if base == "" {
			base = cfg.Sim.BaseURI
		}

		ctx := logging.WithContext(context.Background(), logging.NewFromEnv())
		bridge := hostbridge.NewStaticBridge(location, base)
		return ctx, navigation.NewManagerWithState(bridge, navigation.NewState()), nil
	}

	baseCmd := &cobra.Command{
		Use:   "base",
		Short: "Print the derived base-URI prefix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, m, err := newManager()
			if err != nil {
				return err
			}
			prefix, err := m.BasePrefix(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prefix)
			return nil
		},
	}

	absCmd := &cobra.Command{
		Use:   "abs <relative-uri>",
		Short: "Resolve a relative URI against the base prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, m, err := newManager()
			if err != nil {
				return err
			}
			abs, err := m.ToAbsolute(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), abs)
			return nil
		},
	}

	relCmd := &cobra.Command{
		Use:   "rel <absolute-uri>",
		Short: "Convert an absolute URI to a base-relative path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, m, err := newManager()
			if err != nil {
				return err
			}
			rel, err := m.ToBaseRelative(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rel)
			return nil
		},
	}

	cmd.AddCommand(baseCmd)
	cmd.AddCommand(absCmd)
	cmd.AddCommand(relCmd)

	return cmd
}
