package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"poultry360/internal/domain"
	"poultry360/internal/store"
)

var (
	productionParams domain.ProductionParams
	feedParams       domain.FeedParams
	mortalityParams  domain.MortalityParams
	healthParams     domain.HealthParams
)

// recordsCmd groups the four daily record types
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage daily records",
	Long: `Manage the four daily record types kept per flock.

Available subcommands:
  production - Egg collection records
  feed       - Feed consumption records
  mortality  - Mortality records
  health     - Health and treatment records`,
}

// Production

var productionCmd = &cobra.Command{
	Use:   "production",
	Short: "Egg production records",
	RunE:  runProductionList,
}

var productionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List production records",
	RunE:  runProductionList,
}

var productionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an egg collection",
	RunE:  runProductionAdd,
}

var productionUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a production record",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductionUpdate,
}

var productionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a production record",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductionDelete,
}

func runProductionList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	s := store.NewProductionStore(client)
	s.Refresh(cmd.Context())
	if msg := s.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tBATCH\tEGGS\tBROKEN\tBY")
	for _, r := range s.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, domain.FormatDate(r.DateRecorded), r.BatchNumber,
			domain.FormatNumber(r.EggsCollected), r.BrokenEggs, r.CollectedByName)
	}
	return w.Flush()
}

func runProductionAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	s := store.NewProductionStore(client)
	if err := s.Create(cmd.Context(), productionParams); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Println("Production record added.")
	return nil
}

func runProductionUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	s := store.NewProductionStore(client)
	if err := s.Update(cmd.Context(), id, productionParams); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Printf("Production record %d updated.\n", id)
	return nil
}

func runProductionDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	s := store.NewProductionStore(client)
	if err := s.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Printf("Production record %d deleted.\n", id)
	return nil
}

// Feed

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Feed consumption records",
	RunE:  runFeedList,
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feed records",
	RunE:  runFeedList,
}

var feedAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a feeding",
	RunE:  runFeedAdd,
}

var feedDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a feed record",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedDelete,
}

func runFeedList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	s := store.NewFeedStore(client)
	s.Refresh(cmd.Context())
	if msg := s.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tBATCH\tFEED\tQTY (KG)\tCOST")
	for _, r := range s.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f\t%s\n",
			r.ID, domain.FormatDate(r.DateFed), r.BatchNumber,
			r.FeedType, r.QuantityKg, domain.FormatCurrency(r.Cost, cfg.Dashboard.Currency))
	}
	return w.Flush()
}

func runFeedAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	s := store.NewFeedStore(client)
	if err := s.Create(cmd.Context(), feedParams); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Println("Feed record added.")
	return nil
}

func runFeedDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	s := store.NewFeedStore(client)
	if err := s.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Printf("Feed record %d deleted.\n", id)
	return nil
}

// Mortality

var mortalityCmd = &cobra.Command{
	Use:   "mortality",
	Short: "Mortality records",
	RunE:  runMortalityList,
}

var mortalityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mortality records",
	RunE:  runMortalityList,
}

var mortalityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record bird deaths",
	RunE:  runMortalityAdd,
}

var mortalityDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a mortality record",
	Args:  cobra.ExactArgs(1),
	RunE:  runMortalityDelete,
}

func runMortalityList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	s := store.NewMortalityStore(client)
	s.Refresh(cmd.Context())
	if msg := s.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tBATCH\tDEATHS\tCAUSE")
	for _, r := range s.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			r.ID, domain.FormatDate(r.DateRecorded), r.BatchNumber,
			r.MortalityCount, r.Cause)
	}
	return w.Flush()
}

func runMortalityAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	s := store.NewMortalityStore(client)
	if err := s.Create(cmd.Context(), mortalityParams); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Println("Mortality record added.")
	return nil
}

func runMortalityDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	s := store.NewMortalityStore(client)
	if err := s.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Printf("Mortality record %d deleted.\n", id)
	return nil
}

// Health

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Health and treatment records",
	RunE:  runHealthList,
}

var healthListCmd = &cobra.Command{
	Use:   "list",
	Short: "List health records",
	RunE:  runHealthList,
}

var healthAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a health check or treatment",
	RunE:  runHealthAdd,
}

var healthUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a health record",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealthUpdate,
}

var healthDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a health record",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealthDelete,
}

func runHealthList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	s := store.NewHealthStore(client)
	s.Refresh(cmd.Context())
	if msg := s.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tBATCH\tSTATUS\tTREATMENT")
	for _, r := range s.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, domain.FormatDate(r.DateRecorded), r.BatchNumber,
			r.HealthStatus, r.Treatment)
	}
	return w.Flush()
}

func runHealthAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	s := store.NewHealthStore(client)
	if err := s.Create(cmd.Context(), healthParams); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Println("Health record added.")
	return nil
}

func runHealthUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	s := store.NewHealthStore(client)
	if err := s.Update(cmd.Context(), id, healthParams); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Printf("Health record %d updated.\n", id)
	return nil
}

func runHealthDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	s := store.NewHealthStore(client)
	if err := s.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", s.ErrorMessage())
	}
	fmt.Printf("Health record %d deleted.\n", id)
	return nil
}

func parseRecordID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q", arg)
	}
	return id, nil
}

func addProductionFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&productionParams.BatchID, "flock", 0, "Flock id")
	cmd.Flags().StringVar(&productionParams.DateRecorded, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&productionParams.EggsCollected, "eggs", 0, "Eggs collected")
	cmd.Flags().IntVar(&productionParams.BrokenEggs, "broken", 0, "Broken eggs")
	cmd.Flags().IntVar(&productionParams.AbnormalEggs, "abnormal", 0, "Abnormal eggs")
	cmd.Flags().StringVar(&productionParams.Notes, "notes", "", "Free-form notes")
}

func init() {
	addProductionFlags(productionAddCmd)
	_ = productionAddCmd.MarkFlagRequired("flock")
	_ = productionAddCmd.MarkFlagRequired("eggs")
	addProductionFlags(productionUpdateCmd)
	productionCmd.AddCommand(productionListCmd, productionAddCmd, productionUpdateCmd, productionDeleteCmd)

	feedAddCmd.Flags().IntVar(&feedParams.BatchID, "flock", 0, "Flock id")
	feedAddCmd.Flags().StringVar(&feedParams.FeedType, "type", "", "Feed type, e.g. starter, grower")
	feedAddCmd.Flags().Float64Var(&feedParams.QuantityKg, "quantity", 0, "Quantity in kilograms")
	feedAddCmd.Flags().Float64Var(&feedParams.Cost, "cost", 0, "Cost of the feed")
	feedAddCmd.Flags().StringVar(&feedParams.DateFed, "date", "", "Date (YYYY-MM-DD)")
	feedAddCmd.Flags().StringVar(&feedParams.Notes, "notes", "", "Free-form notes")
	_ = feedAddCmd.MarkFlagRequired("flock")
	_ = feedAddCmd.MarkFlagRequired("type")
	_ = feedAddCmd.MarkFlagRequired("quantity")
	feedCmd.AddCommand(feedListCmd, feedAddCmd, feedDeleteCmd)

	mortalityAddCmd.Flags().IntVar(&mortalityParams.BatchID, "flock", 0, "Flock id")
	mortalityAddCmd.Flags().StringVar(&mortalityParams.DateRecorded, "date", "", "Date (YYYY-MM-DD)")
	mortalityAddCmd.Flags().IntVar(&mortalityParams.MortalityCount, "count", 0, "Number of deaths")
	mortalityAddCmd.Flags().StringVar(&mortalityParams.Cause, "cause", "", "Cause of death")
	mortalityAddCmd.Flags().StringVar(&mortalityParams.Notes, "notes", "", "Free-form notes")
	_ = mortalityAddCmd.MarkFlagRequired("flock")
	_ = mortalityAddCmd.MarkFlagRequired("count")
	mortalityCmd.AddCommand(mortalityListCmd, mortalityAddCmd, mortalityDeleteCmd)

	addHealthFlags(healthAddCmd)
	_ = healthAddCmd.MarkFlagRequired("flock")
	_ = healthAddCmd.MarkFlagRequired("status")
	addHealthFlags(healthUpdateCmd)
	healthCmd.AddCommand(healthListCmd, healthAddCmd, healthUpdateCmd, healthDeleteCmd)

	recordsCmd.AddCommand(productionCmd, feedCmd, mortalityCmd, healthCmd)
	rootCmd.AddCommand(recordsCmd)
}

func addHealthFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&healthParams.BatchID, "flock", 0, "Flock id")
	cmd.Flags().StringVar(&healthParams.DateRecorded, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&healthParams.HealthStatus, "status", "", "Health status (healthy, sick, recovering)")
	cmd.Flags().StringVar(&healthParams.Treatment, "treatment", "", "Treatment given")
	cmd.Flags().StringVar(&healthParams.Notes, "notes", "", "Free-form notes")
}
