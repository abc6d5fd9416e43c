package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hireterm/hireterm/pkg/api"
	"github.com/hireterm/hireterm/pkg/config"
)

var (
	registerName    string
	registerCompany string
)

var registerCmd = &cobra.Command{
	Use:       "register [candidate|recruiter] [email]",
	Short:     "Create an account and log in",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"candidate", "recruiter"},
	RunE: func(cmd *cobra.Command, args []string) error {
		role, email := args[0], args[1]
		if role != "candidate" && role != "recruiter" {
			return fmt.Errorf("role must be candidate or recruiter, got %q", role)
		}
		if role == "recruiter" && registerCompany == "" {
			return fmt.Errorf("recruiters must set --company")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		name := registerName
		if name == "" {
			fmt.Print("Name: ")
			if _, err := fmt.Scanln(&name); err != nil {
				return fmt.Errorf("failed to read name: %w", err)
			}
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		client := api.New(cfg.API.URL, "", cfg.API.TimeoutOrDefault())
		resp, err := client.Register(context.Background(), role, api.RegisterRequest{
			Email:    email,
			Password: password,
			Name:     name,
			Company:  registerCompany,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		if err := config.SaveToken(resp.AccessToken); err != nil {
			return fmt.Errorf("failed to cache token: %w", err)
		}

		fmt.Printf("Registered %s as %s\n", resp.User.Email, resp.User.Role)
		if role != cfg.Chat.Role {
			fmt.Printf("Set chat.role to %q in your settings file so the assistant answers for the right side.\n", role)
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerCompany, "company", "", "company name (recruiters only)")
	rootCmd.AddCommand(registerCmd)
}
