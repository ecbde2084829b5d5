package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"poultry360/internal/domain"
)

var (
	loginUsername string
	loginPassword string
	loginOrgSlug  string

	registerParams domain.RegisterParams
	registerOrg    string
)

// loginCmd signs in and persists the credential
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the Poultry360 server",
	Long: `Sign in with a username and password.

On success the bearer token and identity are stored in
~/.poultry360/credentials.json and reused by every other command
until 'poultry360 logout' or the server rejects the token.`,
	RunE: runLogin,
}

// logoutCmd erases the stored credential
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and erase the stored credential",
	RunE:  runLogout,
}

// registerCmd creates a new account without signing in
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account on the server.

Registration does not sign you in; run 'poultry360 login' afterwards.`,
	RunE: runRegister,
}

// whoamiCmd shows the current identity
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	RunE:  runWhoami,
}

// authStatusCmd verifies the stored credential against the server
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Verify the stored credential against the server",
	RunE:  runAuthStatus,
}

// authCmd groups credential inspection subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Inspect authentication state",
}

func runLogin(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	if loginUsername == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		loginUsername = strings.TrimSpace(line)
	}
	if loginPassword == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		loginPassword = strings.TrimSpace(line)
	}

	if err := sess.Login(cmd.Context(), loginUsername, loginPassword, loginOrgSlug); err != nil {
		return err
	}

	identity := sess.Identity()
	logger.Info("signed in", zap.String("username", identity.Username), zap.String("role", identity.Role))
	fmt.Printf("Signed in as %s (%s)\n", identity.Username, identity.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := sess.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	registerParams.OrganizationName = registerOrg
	resp, err := client.Register(cmd.Context(), registerParams)
	if err != nil {
		return err
	}
	fmt.Printf("Account %s created. Run 'poultry360 login' to sign in.\n", resp.User.Username)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	user, err := client.GetProfile(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (%s)\n", user.FirstName, user.LastName, user.Username)
	fmt.Printf("  Role:  %s\n", user.Role)
	if user.Email != "" {
		fmt.Printf("  Email: %s\n", user.Email)
	}
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	if creds.Token() == "" {
		fmt.Println("Not signed in.")
		return nil
	}

	snap := sess.Bootstrap(cmd.Context())
	if snap.Identity == nil {
		fmt.Println("Stored credential was rejected by the server; signed out.")
		return nil
	}
	fmt.Printf("Signed in as %s (%s), credential valid.\n", snap.Identity.Username, snap.Identity.Role)
	return nil
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username (prompted if omitted)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted if omitted)")
	loginCmd.Flags().StringVar(&loginOrgSlug, "org", "", "Organization slug for multi-tenant servers")

	registerCmd.Flags().StringVar(&registerParams.Username, "username", "", "Username")
	registerCmd.Flags().StringVar(&registerParams.Password, "password", "", "Password")
	registerCmd.Flags().StringVar(&registerParams.Email, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerParams.FirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerParams.LastName, "last-name", "", "Last name")
	registerCmd.Flags().StringVar(&registerOrg, "org", "", "Organization name")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("email")

	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, whoamiCmd, authCmd)
}
