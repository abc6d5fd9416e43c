package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hireterm/hireterm/pkg/api"
	"github.com/hireterm/hireterm/pkg/config"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in and cache the access token",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var email string
		if len(args) > 0 {
			email = args[0]
		} else {
			fmt.Print("Email: ")
			if _, err := fmt.Scanln(&email); err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		client := api.New(cfg.API.URL, "", cfg.API.TimeoutOrDefault())
		resp, err := client.Login(context.Background(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := config.SaveToken(resp.AccessToken); err != nil {
			return fmt.Errorf("failed to cache token: %w", err)
		}

		fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the cached access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ClearToken(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		token := config.LoadToken()
		if token == "" {
			return fmt.Errorf("not logged in")
		}

		client := api.New(cfg.API.URL, token, cfg.API.TimeoutOrDefault())
		user, err := client.Me(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s> role=%s", user.Name, user.Email, user.Role)
		if user.Company != "" {
			fmt.Printf(" company=%s", user.Company)
		}
		fmt.Println()
		return nil
	},
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		// Piped stdin has no terminal; fall back to a plain line read
		var line string
		if _, scanErr := fmt.Fscanln(os.Stdin, &line); scanErr != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimSpace(line), nil
	}
	return string(raw), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
