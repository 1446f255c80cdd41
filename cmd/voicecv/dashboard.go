package main

import (
	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/talentpath"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your dashboard (stats, recommendations, notifications)",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	service := talentpath.NewService(app.client)

	if app.auth.IsCompany() {
		stats, err := service.RecruiterDashboard(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("Active jobs:        %d\n", stats.ActiveJobs)
		cmd.Printf("Total applications: %d\n", stats.TotalApplications)
		cmd.Printf("New applications:   %d\n", stats.NewApplications)
		cmd.Printf("Shortlisted:        %d\n", stats.ShortlistedCount)
		return nil
	}

	dash, err := service.Dashboard(cmd.Context())
	if err != nil {
		return err
	}
	app.printer.PrintDashboard(dash)
	return nil
}
