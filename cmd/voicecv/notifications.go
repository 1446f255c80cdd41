package main

import (
	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/talentpath"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Job board notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications, unread first marked with •",
	RunE:  runNotificationsList,
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification read",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsRead,
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd, notificationsReadCmd)
	rootCmd.AddCommand(notificationsCmd)
}

func runNotificationsList(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	notifications, err := talentpath.NewService(app.client).Notifications(cmd.Context())
	if err != nil {
		return err
	}
	if len(notifications) == 0 {
		cmd.Println("No notifications.")
		return nil
	}

	for _, n := range notifications {
		mark := " "
		if !n.Read {
			mark = "•"
		}
		cmd.Printf("%s %s  (id %s)\n", mark, n.Message, n.NotificationID)
	}
	return nil
}

func runNotificationsRead(cmd *cobra.Command, args []string) error {
	app, id, err := appWithID(args, "notification")
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	if err := talentpath.NewService(app.client).MarkNotificationRead(cmd.Context(), id); err != nil {
		return err
	}
	cmd.Printf("Marked notification %s read.\n", id)
	return nil
}
