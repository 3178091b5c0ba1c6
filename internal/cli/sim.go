package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/application/usecase"
	"github.com/bnema/navkit/internal/config"
	"github.com/bnema/navkit/internal/infrastructure/hostbridge"
	"github.com/bnema/navkit/internal/logging"
	"github.com/bnema/navkit/internal/navigation"
)

// NewSimCmd creates the sim command: drives the navigation manager against a
// scripted browsing context instead of a live WebKit view.
func NewSimCmd() *cobra.Command {
	var (
		location   string
		base       string
		scriptPath string
		record     bool
	)

	cmd := &cobra.Command{
		Use:   "sim [uri...]",
		Short: "Simulate navigations against a scripted browsing context",
		Long: `Run a simulated browsing context and feed its navigations through the
navigation manager. Positional URIs are navigated in order; --script runs a
JavaScript scenario (history.pushState, location.assign) inside the context.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}
			defer closeApp(app)

			ctx := logging.WithComponent(app.Context(), "sim")
			log := logging.FromContext(ctx)

			// Scenarios can run for a while; pick up logging changes live.
			config.OnConfigChange(func(c *config.Config) {
				zerolog.SetGlobalLevel(logging.ParseLevel(c.Logging.Level))
				log.Info().Str("level", c.Logging.Level).Msg("logging level reloaded")
			})
			if err := config.Watch(); err != nil {
				log.Warn().Err(err).Msg("config watch unavailable")
			}

			if location == "" {
				location = app.Config.Sim.Location
			}
			if base == "" {
				base = app.Config.Sim.BaseURI
			}

			bridge, err := hostbridge.NewSimBridge(ctx, location, base)
			if err != nil {
				return fmt.Errorf("failed to start browsing context: %w", err)
			}

			m := navigation.NewManagerWithState(bridge, navigation.NewState())
			bridge.SetDispatcher(func(newURI string) {
				m.Dispatch(ctx, newURI)
			})

			prefix, err := m.BasePrefix(ctx)
			if err != nil {
				return fmt.Errorf("failed to derive base prefix: %w", err)
			}
			fmt.Printf("base prefix: %s\n", prefix)

			if _, err := m.AddListener(ctx, func(newURI string) {
				rel, relErr := m.ToBaseRelative(ctx, newURI)
				if relErr != nil {
					fmt.Printf("navigated: %s (outside base)\n", newURI)
					return
				}
				fmt.Printf("navigated: %s -> %s\n", newURI, rel)
			}); err != nil {
				return fmt.Errorf("failed to register navigation listener: %w", err)
			}

			if record {
				recorder := usecase.NewRecordVisitUseCase(ctx, app.Visits)
				defer recorder.Close()
				if _, err := recorder.Attach(ctx, m); err != nil {
					return fmt.Errorf("failed to attach visit recorder: %w", err)
				}
				log.Debug().Msg("visit recording enabled")
			}

			if scriptPath != "" {
				src, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("failed to read scenario script: %w", err)
				}
				if err := bridge.RunScript(string(src)); err != nil {
					return fmt.Errorf("scenario script failed: %w", err)
				}
			}

			for _, uri := range args {
				if err := bridge.Navigate(uri); err != nil {
					return fmt.Errorf("failed to navigate to %s: %w", uri, err)
				}
			}

			current, err := m.AbsoluteURI(ctx)
			if err != nil {
				return fmt.Errorf("failed to read current location: %w", err)
			}
			fmt.Printf("final location: %s\n", current)

			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "Initial absolute URI of the context (default from config)")
	cmd.Flags().StringVar(&base, "base", "", "Declared base URI of the document (default from config)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "JavaScript scenario to run inside the context")
	cmd.Flags().BoolVar(&record, "record", false, "Record navigations into the visit database")

	return cmd
}
