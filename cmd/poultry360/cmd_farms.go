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

var farmParams domain.FarmParams

// farmsCmd groups farm subcommands
var farmsCmd = &cobra.Command{
	Use:   "farms",
	Short: "Manage farms",
	Long: `List, inspect, and edit farms.

Available subcommands:
  list   - List farms with flock and bird counts
  show   - Show one farm
  create - Create a farm
  update - Update a farm
  delete - Delete a farm`,
	RunE: runFarmsList,
}

var farmsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List farms",
	RunE:  runFarmsList,
}

var farmsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one farm",
	Args:  cobra.ExactArgs(1),
	RunE:  runFarmsShow,
}

var farmsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a farm",
	RunE:  runFarmsCreate,
}

var farmsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a farm",
	Args:  cobra.ExactArgs(1),
	RunE:  runFarmsUpdate,
}

var farmsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a farm",
	Args:  cobra.ExactArgs(1),
	RunE:  runFarmsDelete,
}

func runFarmsList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	farms := store.NewFarmStore(client)
	farms.Refresh(cmd.Context())
	if msg := farms.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tTYPE\tCAPACITY\tFLOCKS\tBIRDS")
	for _, f := range farms.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			f.ID, f.Name, f.Location, f.FarmType,
			domain.FormatNumber(f.Capacity), f.ActiveBatches, domain.FormatNumber(f.TotalBirds))
	}
	return w.Flush()
}

func runFarmsShow(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid farm id %q", args[0])
	}

	farms := store.NewFarmStore(client)
	farms.Lookup(cmd.Context(), id)
	if msg := farms.ErrorMessage(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	f := farms.Current()
	if f == nil {
		return fmt.Errorf("farm %d not found", id)
	}

	fmt.Printf("%s (#%d)\n", f.Name, f.ID)
	fmt.Printf("  Location: %s\n", f.Location)
	fmt.Printf("  Type:     %s\n", f.FarmType)
	fmt.Printf("  Capacity: %s birds\n", domain.FormatNumber(f.Capacity))
	if f.CreatedAt != "" {
		fmt.Printf("  Created:  %s\n", domain.FormatDate(f.CreatedAt))
	}
	return nil
}

func runFarmsCreate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	farms := store.NewFarmStore(client)
	if err := farms.Create(cmd.Context(), farmParams); err != nil {
		return fmt.Errorf("%s", farms.ErrorMessage())
	}
	fmt.Printf("Farm %q created.\n", farmParams.Name)
	return nil
}

func runFarmsUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid farm id %q", args[0])
	}
	farms := store.NewFarmStore(client)
	if err := farms.Update(cmd.Context(), id, farmParams); err != nil {
		return fmt.Errorf("%s", farms.ErrorMessage())
	}
	fmt.Printf("Farm %d updated.\n", id)
	return nil
}

func runFarmsDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid farm id %q", args[0])
	}
	farms := store.NewFarmStore(client)
	if err := farms.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("%s", farms.ErrorMessage())
	}
	fmt.Printf("Farm %d deleted.\n", id)
	return nil
}

func addFarmFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&farmParams.Name, "name", "", "Farm name")
	cmd.Flags().StringVar(&farmParams.Location, "location", "", "Farm location")
	cmd.Flags().StringVar(&farmParams.FarmType, "type", "", "Farm type (broiler, layer, mixed)")
	cmd.Flags().IntVar(&farmParams.Capacity, "capacity", 0, "Bird capacity")
}

func init() {
	addFarmFlags(farmsCreateCmd)
	_ = farmsCreateCmd.MarkFlagRequired("name")
	addFarmFlags(farmsUpdateCmd)

	farmsCmd.AddCommand(farmsListCmd, farmsShowCmd, farmsCreateCmd, farmsUpdateCmd, farmsDeleteCmd)
	rootCmd.AddCommand(farmsCmd)
}
