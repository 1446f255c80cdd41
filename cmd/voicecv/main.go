// Package main provides the voicecv CLI: a conversational CV builder
// and TalentPath job board client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voicecv",
	Short: "VoiceToCV conversational CV builder and TalentPath job board client",
	Long: "voicecv builds a CV through a conversational agent session, generates the " +
		"DOCX document, and drives the TalentPath job board: search, save, apply, " +
		"applications, notifications, and the recruiter posting surface.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
