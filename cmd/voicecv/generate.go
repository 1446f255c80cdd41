package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/preview"
	"github.com/rohan/voicecv-cli/internal/resume"
)

var generateCmd = &cobra.Command{
	Use:   "generate <session-id>",
	Short: "Generate the CV document for a completed session",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var (
	generateOutDir     string
	generateApply      string
	generateShowText   bool
	generateRenderPath string
)

func init() {
	generateCmd.Flags().StringVar(&generateOutDir, "out", ".", "Directory to write the DOCX document into")
	generateCmd.Flags().StringVar(&generateApply, "apply", "", "After generation: 'now' posts the CV to the job board, 'later' just writes the document")
	generateCmd.Flags().BoolVar(&generateShowText, "text", false, "Print the text of the HTML preview")
	generateCmd.Flags().StringVar(&generateRenderPath, "render", "", "Render the HTML preview to a screenshot at this path (requires Chrome)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	return generateAndReport(cmd, app, args[0], generateOutDir)
}

func generateAndReport(cmd *cobra.Command, app *app, sessionID, outDir string) error {
	flow := resume.NewFlow(app.client)

	result, err := flow.Generate(cmd.Context(), sessionID)
	if err != nil {
		return err
	}
	if result.Artifact.Note != "" {
		cmd.Printf("Note from backend: %s\n", result.Artifact.Note)
	}

	if err := resume.Snapshot(app.store, result); err != nil {
		return err
	}

	switch generateApply {
	case "now":
		if err := resume.ApplyNow(cmd.Context(), app.client, app.store, result); err != nil {
			return err
		}
		cmd.Println("CV posted to the job board.")
	case "later", "":
		path, err := resume.ApplyLater(result, outDir, time.Sleep)
		if err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", path)
	default:
		return fmt.Errorf("unknown --apply mode %q (want 'now' or 'later')", generateApply)
	}

	if generateShowText && result.Artifact.HTMLContent != "" {
		text, err := preview.Text(result.Artifact.HTMLContent)
		if err != nil {
			return err
		}
		cmd.Println("\n" + text)
	}

	if generateRenderPath != "" {
		if result.Artifact.HTMLContent == "" {
			return fmt.Errorf("backend returned no HTML preview to render")
		}
		if err := preview.Render(cmd.Context(), result.Artifact.HTMLContent, generateRenderPath, preview.DefaultRenderTimeout); err != nil {
			return err
		}
		cmd.Printf("Rendered preview to %s\n", generateRenderPath)
	}

	return nil
}
