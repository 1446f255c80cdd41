package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend and store the session token",
	RunE:  runLogin,
}

var (
	loginUsername string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	username := loginUsername
	if username == "" {
		username, err = promptLine(cmd, "Username: ")
		if err != nil {
			return err
		}
	}
	password := loginPassword
	if password == "" {
		password, err = promptLine(cmd, "Password: ")
		if err != nil {
			return err
		}
	}

	resp, err := app.auth.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	cmd.Printf("Logged in as %s (%s)\n", resp.User.Username, app.auth.UserType())
	return nil
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and store the session token",
	RunE:  runSignup,
}

var (
	signupUsername        string
	signupEmail           string
	signupPassword        string
	signupConfirmPassword string
	signupUserType        string
)

func init() {
	signupCmd.Flags().StringVarP(&signupUsername, "username", "u", "", "Account username")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email")
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "Account password")
	signupCmd.Flags().StringVar(&signupConfirmPassword, "confirm-password", "", "Password confirmation (defaults to --password)")
	signupCmd.Flags().StringVar(&signupUserType, "type", "employee", "Account type: employee or company")

	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	confirm := signupConfirmPassword
	if confirm == "" {
		confirm = signupPassword
	}

	req := &types.SignupRequest{
		Username:        signupUsername,
		Email:           signupEmail,
		Password:        signupPassword,
		ConfirmPassword: confirm,
		UserType:        signupUserType,
	}

	resp, err := app.auth.Signup(cmd.Context(), req)
	if err != nil {
		return err
	}

	cmd.Printf("Account created; logged in as %s (%s)\n", resp.User.Username, app.auth.UserType())
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if err := app.auth.Logout(); err != nil {
		return err
	}
	cmd.Println("Logged out.")
	return nil
}

func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
