package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/cli/model"
	"github.com/bnema/navkit/internal/cli/styles"
)

const (
	defaultHistoryLimit = 20
	defaultSearchLimit  = 10
	maxURIDisplay       = 70
)

// NewHistoryCmd creates the history command group over recorded visits.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recorded visits",
		Long: `Manage recorded visits with various subcommands:
  list   - Show recently visited locations
  search - Search through recorded visits
  browse - Browse visits interactively
  clear  - Clear recorded visits (with confirmation)
  stats  - Show visit statistics`,
		RunE: listVisits,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recently visited locations",
		RunE:  listVisits,
	}
	listCmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Number of entries to show")

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search through recorded visits",
		Args:  cobra.ExactArgs(1),
		RunE:  searchVisits,
	}
	searchCmd.Flags().IntP("limit", "n", defaultSearchLimit, "Number of results to show")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse recorded visits interactively",
		RunE:  browseVisits,
	}
	browseCmd.Flags().IntP("limit", "n", 200, "Maximum number of entries to load")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear recorded visits",
		Long:  `Clear all recorded visits. This action cannot be undone.`,
		RunE:  clearVisits,
	}
	clearCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show visit statistics",
		RunE:  showVisitStats,
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Number of entries to show")

	cmd.AddCommand(listCmd)
	cmd.AddCommand(searchCmd)
	cmd.AddCommand(browseCmd)
	cmd.AddCommand(clearCmd)
	cmd.AddCommand(statsCmd)

	return cmd
}

func listVisits(cmd *cobra.Command, _ []string) error {
	app, err := NewApp()
	if err != nil {
		return err
	}
	defer closeApp(app)

	limit, _ := cmd.Flags().GetInt("limit")

	visits, err := app.Visits.GetRecent(app.Context(), limit, 0)
	if err != nil {
		return fmt.Errorf("failed to load visits: %w", err)
	}

	if len(visits) == 0 {
		fmt.Println("No visits recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "VISITS\tLAST SEEN\tURI")
	fmt.Fprintln(w, "------\t---------\t---")

	for _, v := range visits {
		lastSeen := v.LastSeen.Format("Jan 02")
		if time.Since(v.LastSeen) < 24*time.Hour {
			lastSeen = v.LastSeen.Format("15:04")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", v.Count, lastSeen, truncateString(v.URI, maxURIDisplay))
	}

	return nil
}

func searchVisits(cmd *cobra.Command, args []string) error {
	app, err := NewApp()
	if err != nil {
		return err
	}
	defer closeApp(app)

	query := args[0]
	limit, _ := cmd.Flags().GetInt("limit")

	visits, err := app.Visits.Search(app.Context(), query, limit)
	if err != nil {
		return fmt.Errorf("failed to search visits: %w", err)
	}

	if len(visits) == 0 {
		fmt.Printf("No visits found matching '%s'.\n", query)
		return nil
	}

	fmt.Printf("Found %d result(s) for '%s':\n\n", len(visits), query)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "VISITS\tLAST SEEN\tURI")
	fmt.Fprintln(w, "------\t---------\t---")

	for _, v := range visits {
		fmt.Fprintf(w, "%d\t%s\t%s\n",
			v.Count, v.LastSeen.Format("Jan 02 15:04"), truncateString(v.URI, maxURIDisplay))
	}

	return nil
}

func browseVisits(cmd *cobra.Command, _ []string) error {
	app, err := NewApp()
	if err != nil {
		return err
	}
	defer closeApp(app)

	limit, _ := cmd.Flags().GetInt("limit")

	visits, err := app.Visits.GetRecent(app.Context(), limit, 0)
	if err != nil {
		return fmt.Errorf("failed to load visits: %w", err)
	}
	if len(visits) == 0 {
		fmt.Println("No visits recorded.")
		return nil
	}

	m := model.NewHistoryModel(styles.NewTheme(), visits)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run visit browser: %w", err)
	}

	if hm, ok := final.(model.HistoryModel); ok && hm.Selected != "" {
		fmt.Println(hm.Selected)
	}
	return nil
}

func clearVisits(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		fmt.Print("This will permanently delete all recorded visits. Continue? [y/N]: ")
		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	app, err := NewApp()
	if err != nil {
		return err
	}
	defer closeApp(app)

	if err := app.Visits.DeleteAll(app.Context()); err != nil {
		return fmt.Errorf("failed to clear visits: %w", err)
	}

	fmt.Println("Recorded visits cleared.")
	return nil
}

func showVisitStats(_ *cobra.Command, _ []string) error {
	app, err := NewApp()
	if err != nil {
		return err
	}
	defer closeApp(app)

	stats, err := app.Visits.GetStats(app.Context())
	if err != nil {
		return fmt.Errorf("failed to get visit statistics: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "Visit Statistics")
	fmt.Fprintln(w, "================")
	fmt.Fprintf(w, "Distinct URIs:\t%d\n", stats.TotalURIs)
	fmt.Fprintf(w, "Total visits:\t%d\n", stats.TotalVisits)

	return nil
}

func closeApp(app *App) {
	if err := app.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
