package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"poultry360/cmd/poultry360/ui"
	"poultry360/internal/store"
)

var dashboardPlain bool

// dashboardCmd opens the interactive dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard: overview counters, flock summary,
recent activity, and production performance, refreshed on demand.

Pass --plain to print a one-shot text rendering instead of the
interactive view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dashboardPlain {
			return runDashboardPlain(cmd)
		}
		return runDashboardTUI(cmd)
	},
}

func newDashboardStores() (*store.DashboardStore, *store.FlockStore) {
	dash := store.NewDashboardStore(client)
	dash.ActivityLimit = cfg.Dashboard.ActivityLimit
	dash.PerformancePeriod = cfg.Dashboard.PerformancePeriod
	return dash, store.NewFlockStore(client)
}

func runDashboardTUI(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	// Resume the session so the header can show who is signed in. A
	// rejected token ends up anonymous and fails the auth gate below.
	snap := sess.Bootstrap(cmd.Context())
	if snap.Identity == nil {
		return fmt.Errorf("stored credential was rejected; run 'poultry360 login' again")
	}

	dash, flocks := newDashboardStores()
	model := ui.NewModel(dash, flocks, snap.Identity, cfg.Dashboard.Currency)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}

func runDashboardPlain(cmd *cobra.Command) error {
	if err := requireAuth(); err != nil {
		return err
	}

	dash, _ := newDashboardStores()
	dash.Refresh(cmd.Context())
	if msg := dash.ErrorMessage(); msg != "" && dash.Overview() == nil {
		return fmt.Errorf("%s", msg)
	}

	if ov := dash.Overview(); ov != nil {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FARMS\tFLOCKS\tBIRDS\tEGGS TODAY\tDEATHS TODAY")
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n",
			ov.Farms, ov.Flocks, ov.TotalBirds, ov.TodayEggs, ov.MortalityToday)
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if acts := dash.Activities(); len(acts) > 0 {
		fmt.Println("\nRecent activity:")
		for _, a := range acts {
			fmt.Printf("  %-10s %-11s %s\n", a.Date, a.Type, a.Description)
		}
	}
	if msg := dash.ErrorMessage(); msg != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}
	return nil
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardPlain, "plain", false, "Print a one-shot text dashboard")
	rootCmd.AddCommand(dashboardCmd)
}
