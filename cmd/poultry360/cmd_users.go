package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"poultry360/internal/domain"
)

var userParams domain.UserParams

// usersCmd groups user administration subcommands
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Administer user accounts",
	Long: `Administer user accounts within your organization.

These commands require an admin credential; the server rejects them
for other roles.`,
	RunE: runUsersList,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE:  runUsersList,
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE:  runUsersCreate,
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersUpdate,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersDelete,
}

func runUsersList(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	page, err := client.ListUsers(cmd.Context(), 1, 0)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tROLE\tACTIVE")
	for _, u := range page.Data {
		fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%t\n",
			u.ID, u.Username, u.FirstName, u.LastName, u.Role, u.IsActive)
	}
	return w.Flush()
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	user, err := client.CreateUser(cmd.Context(), userParams)
	if err != nil {
		return err
	}
	fmt.Printf("User %s (#%d) created.\n", user.Username, user.ID)
	return nil
}

func runUsersUpdate(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}
	user, err := client.UpdateUser(cmd.Context(), id, userParams)
	if err != nil {
		return err
	}
	fmt.Printf("User %s updated.\n", user.Username)
	return nil
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}
	if _, err := client.DeleteUser(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("User %d deleted.\n", id)
	return nil
}

func addUserFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&userParams.Username, "username", "", "Username")
	cmd.Flags().StringVar(&userParams.Password, "password", "", "Password")
	cmd.Flags().StringVar(&userParams.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&userParams.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&userParams.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&userParams.Role, "role", "", "Role (admin, manager, worker)")
	cmd.Flags().StringVar(&userParams.Phone, "phone", "", "Phone number")
}

func init() {
	addUserFlags(usersCreateCmd)
	_ = usersCreateCmd.MarkFlagRequired("username")
	_ = usersCreateCmd.MarkFlagRequired("password")
	_ = usersCreateCmd.MarkFlagRequired("role")
	addUserFlags(usersUpdateCmd)

	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
