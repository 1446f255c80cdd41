// Package resume implements the resume delivery flow: generation
// against a conversational session, base64 artifact decoding, document
// writing, and the post-generation apply-now / apply-later branch.
package resume

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/types"
)

// DocxMIME is the MIME type of the generated Word document.
const DocxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DefaultFileName is used when the CV carries no candidate name.
const DefaultFileName = "resume.docx"

// ErrGenerationRunning is returned when Generate is invoked while a
// prior generation is still outstanding.
var ErrGenerationRunning = errors.New("resume: generation already in progress")

// ErrNoDocument is returned when an artifact carries no DOCX payload.
var ErrNoDocument = errors.New("resume: artifact has no document")

// Result bundles the generated artifact with the session's structured
// CV so both travel together to the next screen.
type Result struct {
	Artifact *types.ResumeArtifact
	CV       *types.CV
}

// Flow drives resume generation and delivery for one session.
type Flow struct {
	client     *api.Client
	generating atomic.Bool
}

// NewFlow creates a delivery flow.
func NewFlow(client *api.Client) *Flow {
	return &Flow{client: client}
}

// Generating reports whether a generation request is outstanding.
func (f *Flow) Generating() bool {
	return f.generating.Load()
}

// Generate requests the rendered artifacts for sessionID and re-fetches
// the session's structured CV. Re-entrant calls fail fast with
// ErrGenerationRunning while a prior call is outstanding; the guard is
// always cleared on return so a failed generation can be retried.
func (f *Flow) Generate(ctx context.Context, sessionID string) (*Result, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("resume: session id is empty")
	}
	if !f.generating.CompareAndSwap(false, true) {
		return nil, ErrGenerationRunning
	}
	defer f.generating.Store(false)

	var artifact types.ResumeArtifact
	if err := f.client.Get(ctx, "/generate-cv/"+sessionID+"/", &artifact); err != nil {
		return nil, fmt.Errorf("resume generation failed: %w", err)
	}

	result := &Result{Artifact: &artifact}

	// The structured CV rides along so the profile surfaces can use it
	// without another generation. A miss here is not fatal.
	var session struct {
		CVJSON *types.CV `json:"cv_json"`
	}
	if err := f.client.Get(ctx, "/session/"+sessionID+"/", &session); err == nil {
		result.CV = session.CVJSON
	}

	return result, nil
}

// DecodeDocument decodes the artifact's base64 DOCX payload into raw
// document bytes.
func DecodeDocument(artifact *types.ResumeArtifact) ([]byte, error) {
	if artifact == nil || artifact.DocxBase64 == "" {
		return nil, ErrNoDocument
	}
	data, err := base64.StdEncoding.DecodeString(artifact.DocxBase64)
	if err != nil {
		return nil, fmt.Errorf("resume: invalid base64 document: %w", err)
	}
	return data, nil
}

// FileName derives the download name: "{name}_CV.docx" when the CV has
// a candidate name, DefaultFileName otherwise.
func FileName(cv *types.CV) string {
	if cv == nil {
		return DefaultFileName
	}
	name := strings.TrimSpace(cv.PersonalInfo.Name)
	if name == "" {
		return DefaultFileName
	}
	return name + "_CV.docx"
}

// WriteDocument writes the decoded document into dir and returns the
// full path.
func WriteDocument(dir string, cv *types.CV, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName(cv))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	return path, nil
}
