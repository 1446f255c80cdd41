package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/talentpath"
)

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Track your job applications",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your applications",
	RunE:  runApplicationsList,
}

var applicationsStatus string

var applicationsShowCmd = &cobra.Command{
	Use:   "show <application-id>",
	Short: "Show one application",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplicationsShow,
}

var applicationsWithdrawCmd = &cobra.Command{
	Use:   "withdraw <application-id>",
	Short: "Withdraw an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runApplicationsWithdraw,
}

func init() {
	applicationsListCmd.Flags().StringVar(&applicationsStatus, "status", "", "Filter by status (submitted, reviewed, shortlisted, interview, offered, rejected, withdrawn)")

	applicationsCmd.AddCommand(applicationsListCmd, applicationsShowCmd, applicationsWithdrawCmd)
	rootCmd.AddCommand(applicationsCmd)
}

func runApplicationsList(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	apps, err := talentpath.NewService(app.client).Applications(cmd.Context(), talentpath.ApplicationStatus(applicationsStatus))
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		cmd.Println("No applications.")
		return nil
	}

	for _, a := range apps {
		title := "(unknown job)"
		if a.Job != nil {
			title = fmt.Sprintf("%s at %s", a.Job.Title, a.Job.CompanyName)
		}
		viewed := ""
		if a.ViewedByRecruiter {
			viewed = "  [viewed]"
		}
		cmd.Printf("#%s  %-40s %s%s\n", a.ApplicationID, title, a.Status, viewed)
	}
	return nil
}

func runApplicationsShow(cmd *cobra.Command, args []string) error {
	app, id, err := appWithID(args, "application")
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	a, err := talentpath.NewService(app.client).Application(cmd.Context(), id)
	if err != nil {
		return err
	}

	cmd.Printf("Application #%s\n", a.ApplicationID)
	cmd.Printf("Status:    %s\n", a.Status)
	if a.Job != nil {
		cmd.Printf("Job:       %s at %s\n", a.Job.Title, a.Job.CompanyName)
	}
	if a.MatchScore > 0 {
		cmd.Printf("Match:     %.0f%%\n", a.MatchScore)
	}
	cmd.Printf("Viewed:    %t\n", a.ViewedByRecruiter)
	if a.CoverLetter != "" {
		cmd.Printf("\n%s\n", a.CoverLetter)
	}
	return nil
}

func runApplicationsWithdraw(cmd *cobra.Command, args []string) error {
	app, id, err := appWithID(args, "application")
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	if err := talentpath.NewService(app.client).Withdraw(cmd.Context(), id); err != nil {
		return err
	}
	cmd.Printf("Withdrew application #%s.\n", id)
	return nil
}

func appWithID(args []string, what string) (*app, string, error) {
	app, err := newApp()
	if err != nil {
		return nil, "", err
	}
	id := strings.TrimSpace(args[0])
	if id == "" || strings.ContainsAny(id, "/?#") {
		return nil, "", fmt.Errorf("invalid %s id %q", what, args[0])
	}
	return app, id, nil
}
