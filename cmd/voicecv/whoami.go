package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/auth"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session and token status",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	user := app.auth.CurrentUser()
	if user == nil {
		cmd.Println("Not logged in.")
		return nil
	}

	cmd.Printf("Username:  %s\n", user.Username)
	if user.Email != "" {
		cmd.Printf("Email:     %s\n", user.Email)
	}
	cmd.Printf("Account:   %s\n", app.auth.UserType())

	info := auth.InspectToken(app.store, time.Now())
	switch {
	case !info.Present:
		cmd.Println("Token:     none")
	case !info.JWT:
		cmd.Println("Token:     opaque")
	case info.Expired:
		cmd.Printf("Token:     expired at %s\n", info.ExpiresAt.Format(time.RFC3339))
	case !info.ExpiresAt.IsZero():
		cmd.Printf("Token:     valid until %s\n", info.ExpiresAt.Format(time.RFC3339))
	default:
		cmd.Println("Token:     valid (no expiry claim)")
	}
	return nil
}
