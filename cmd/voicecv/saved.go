package main

import (
	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/talentpath"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List your saved jobs",
	RunE:  runSaved,
}

func init() {
	rootCmd.AddCommand(savedCmd)
}

func runSaved(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	jobs, err := talentpath.NewService(app.client).SavedJobs(cmd.Context())
	if err != nil {
		return err
	}
	app.printer.PrintJobList(&talentpath.JobPage{Results: jobs, Total: len(jobs), Page: 1, TotalPages: 1})
	return nil
}
