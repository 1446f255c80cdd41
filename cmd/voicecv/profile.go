package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your CV profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved profile with completeness",
	RunE:  runProfileShow,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit <field=value> [field=value ...]",
	Short: "Edit profile fields and save",
	Long: "Edit profile fields by dotted path and save, e.g.\n" +
		"  voicecv profile edit personal_info.name='Priya Sharma' experience[0].company=Acme\n" +
		"All edits are applied together; an invalid result saves nothing.",
	Args: cobra.MinimumNArgs(1),
	RunE: runProfileEdit,
}

var profileSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the local CV snapshot to the backend",
	RunE:  runProfileSync,
}

func init() {
	profileCmd.AddCommand(profileShowCmd, profileEditCmd, profileSyncCmd)
	rootCmd.AddCommand(profileCmd)
}

func (a *app) profiles() *profile.Aggregator {
	return profile.NewAggregator(a.client, a.store, a.logger)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	prof, err := app.profiles().Load(cmd.Context())
	if err != nil {
		return err
	}
	app.printer.PrintProfile(prof)
	return nil
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	aggregator := app.profiles()
	prof, err := aggregator.Load(cmd.Context())
	if err != nil {
		return err
	}

	draft, err := profile.NewDraft(prof.CV)
	if err != nil {
		return err
	}

	for _, arg := range args {
		path, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid edit %q (want field=value)", arg)
		}
		if err := draft.Set(path, value); err != nil {
			return err
		}
	}

	if err := aggregator.Save(cmd.Context(), draft); err != nil {
		return err
	}

	cv, err := draft.CV()
	if err != nil {
		return err
	}
	cmd.Printf("Saved. Profile completeness: %d%%\n", profile.Completeness(cv))
	return nil
}

func runProfileSync(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	prof, err := app.profiles().Load(cmd.Context())
	if err != nil {
		return err
	}

	draft, err := profile.NewDraft(prof.CV)
	if err != nil {
		return err
	}
	if err := app.profiles().Save(cmd.Context(), draft); err != nil {
		return err
	}
	cmd.Println("Profile synced to backend.")
	return nil
}
