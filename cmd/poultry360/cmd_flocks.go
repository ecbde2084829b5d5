package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"poultry360/internal/domain"
	"poultry360/internal/store"
)

var (
	batchParams  domain.BatchParams
	flocksRemote bool
)

// flocksCmd groups flock subcommands
var flocksCmd = &cobra.Command{
	Use:     "flocks",
	Aliases: []string{"batches"},
	Short:   "Manage flocks",
	Long: `List, inspect, and edit flocks (batches of birds).

Available subcommands:
  list   - List flocks with age and survival figures
  show   - Show one flock
  create - Create a flock
  update - Update a flock
  delete - Delete a flock`,
	RunE: runFlocksList,
}

var flocksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List flocks",
	RunE:  runFlocksList,
}

var flocksShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one flock",
	Long: `Show one flock.

By default the flock is resolved from the cached first page of the
list, matching the dashboard's behavior; pass --remote to ask the
server for the record directly.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlocksShow,
}

var flocksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a flock",
	RunE:  runFlocksCreate,
}

var flocksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a flock",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlocksUpdate,
}

var flocksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a flock",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlocksDelete,
}

func runFlocksList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	flocks := store.NewFlockStore(client)
	flocks.Refresh(cmd.Context())
	if msg := flocks.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBATCH\tFARM\tTYPE\tBIRDS\tAGE\tSURVIVAL\tSTATUS")
	for _, b := range flocks.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s/%s\t%dw\t%.1f%%\t%s\n",
			b.ID, b.BatchNumber, b.FarmName, b.PoultryType,
			domain.FormatNumber(b.CurrentCount), domain.FormatNumber(b.InitialCount),
			domain.AgeWeeks(b.ArrivalDate, now),
			domain.SurvivalRate(b.CurrentCount, b.InitialCount),
			b.Status)
	}
	return w.Flush()
}

func runFlocksShow(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid flock id %q", args[0])
	}

	flocks := store.NewFlockStore(client)
	if flocksRemote {
		flocks.SetLookupStrategy(store.LookupRemote)
	}
	flocks.Lookup(cmd.Context(), id)
	if msg := flocks.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	b := flocks.Current()
	if b == nil {
		return fmt.Errorf("flock %d not found", id)
	}

	fmt.Printf("%s (#%d)\n", b.BatchNumber, b.ID)
	fmt.Printf("  Farm:      %s\n", b.FarmName)
	fmt.Printf("  Type:      %s (%s)\n", b.PoultryType, b.Breed)
	fmt.Printf("  Birds:     %s of %s\n", domain.FormatNumber(b.CurrentCount), domain.FormatNumber(b.InitialCount))
	fmt.Printf("  Age:       %d weeks (arrived %s)\n", domain.AgeWeeks(b.ArrivalDate, time.Now()), domain.FormatDate(b.ArrivalDate))
	fmt.Printf("  Mortality: %s birds (%.1f%%)\n",
		domain.FormatNumber(domain.Mortality(b.InitialCount, b.CurrentCount)),
		domain.MortalityRate(domain.Mortality(b.InitialCount, b.CurrentCount), b.InitialCount))
	fmt.Printf("  Survival:  %.1f%%\n", domain.SurvivalRate(b.CurrentCount, b.InitialCount))
	fmt.Printf("  Status:    %s\n", b.Status)
	if b.Notes != "" {
		fmt.Printf("  Notes:     %s\n", b.Notes)
	}
	return nil
}

func runFlocksCreate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	flocks := store.NewFlockStore(client)
	if err := flocks.Create(cmd.Context(), batchParams); err != nil {
		return fmt.Errorf("%s", flocks.ErrorMessage())
	}
	fmt.Printf("Flock %q created.\n", batchParams.BatchNumber)
	return nil
}

func runFlocksUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid flock id %q", args[0])
	}
	flocks := store.NewFlockStore(client)
	if err := flocks.Update(cmd.Context(), id, batchParams); err != nil {
		return fmt.Errorf("%s", flocks.ErrorMessage())
	}
	fmt.Printf("Flock %d updated.\n", id)
	return nil
}

func runFlocksDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid flock id %q", args[0])
	}
	flocks := store.NewFlockStore(client)
	if err := flocks.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", flocks.ErrorMessage())
	}
	fmt.Printf("Flock %d deleted.\n", id)
	return nil
}

func addFlockFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&batchParams.BatchNumber, "batch-number", "", "Batch number, e.g. LAY-001")
	cmd.Flags().IntVar(&batchParams.FarmID, "farm", 0, "Owning farm id")
	cmd.Flags().StringVar(&batchParams.PoultryType, "type", "", "Poultry type (broiler, layer)")
	cmd.Flags().StringVar(&batchParams.Breed, "breed", "", "Breed")
	cmd.Flags().IntVar(&batchParams.InitialCount, "initial-count", 0, "Initial bird count")
	cmd.Flags().IntVar(&batchParams.CurrentCount, "current-count", 0, "Current bird count")
	cmd.Flags().StringVar(&batchParams.ArrivalDate, "arrival-date", "", "Arrival date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&batchParams.Status, "status", "", "Status (active, completed, transferred)")
	cmd.Flags().StringVar(&batchParams.Notes, "notes", "", "Free-form notes")
}

func init() {
	flocksShowCmd.Flags().BoolVar(&flocksRemote, "remote", false, "Resolve the flock on the server instead of the cached list")
	addFlockFlags(flocksCreateCmd)
	_ = flocksCreateCmd.MarkFlagRequired("batch-number")
	_ = flocksCreateCmd.MarkFlagRequired("farm")
	addFlockFlags(flocksUpdateCmd)

	flocksCmd.AddCommand(flocksListCmd, flocksShowCmd, flocksCreateCmd, flocksUpdateCmd, flocksDeleteCmd)
	rootCmd.AddCommand(flocksCmd)
}
