package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to markline",
		Long:  "Authenticate with the markline API and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if password == "" {
				fmt.Print("Password: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = string(bytePassword)
				fmt.Println()
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			data, err := client.Login(ctx, email, password)
			if err != nil {
				// Stored credentials stay untouched on a failed login.
				return apiFailure(err, "Login failed")
			}

			store, err := loadCredentialStore()
			if err != nil {
				return err
			}

			if err := store.Save(data.Token, data.User, data.UniqueID); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			fmt.Printf("Successfully logged in as %s\n", data.User)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

// NewSignupCommand creates the signup command.
func NewSignupCommand() *cobra.Command {
	var (
		name     string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a markline account",
		Long:  "Register a new markline account and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if name == "" {
				fmt.Print("Name: ")
				name, _ = reader.ReadString('\n')
				name = strings.TrimSpace(name)
			}

			if email == "" {
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if password == "" {
				fmt.Print("Password: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = string(bytePassword)
				fmt.Println()
			}

			ctx := context.Background()

			client, err := createClient(ctx)
			if err != nil {
				return err
			}

			data, err := client.Signup(ctx, name, email, password, uuid.NewString())
			if err != nil {
				return apiFailure(err, "Signup failed")
			}

			store, err := loadCredentialStore()
			if err != nil {
				return err
			}

			if err := store.Save(data.Token, data.User, data.UniqueID); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			fmt.Printf("Account created, logged in as %s\n", data.User)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "account name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from markline",
		Long:  "Clear the stored session credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadCredentialStore()
			if err != nil {
				return err
			}

			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear credentials: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadCredentialStore()
			if err != nil {
				return err
			}

			if !store.IsAuthenticated() {
				return ErrNotLoggedIn
			}

			fmt.Printf("Logged in as %s (%s)\n", store.User(), store.UniqueID())

			return nil
		},
	}
}
