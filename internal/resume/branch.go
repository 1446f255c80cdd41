package resume

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/storage"
	"github.com/rohan/voicecv-cli/internal/types"
)

// applyLaterDelay matches the pause before leaving for home after a
// download-and-exit.
const applyLaterDelay = 1500 * time.Millisecond

// Branch is the post-generation choice offered on the success screen.
type Branch string

// Post-generation branches.
const (
	BranchApplyNow   Branch = "apply-now"
	BranchApplyLater Branch = "apply-later"
)

// Snapshot mirrors the generated CV and document into the durable store
// (currentCV as JSON, currentCVDocx as the base64 string) so the job
// board surfaces can read them without the session. A new generation
// overwrites the previous snapshot.
func Snapshot(store *storage.Store, result *Result) error {
	if result.CV != nil {
		if err := store.SetJSON(storage.KeyCV, result.CV); err != nil {
			return fmt.Errorf("failed to snapshot CV: %w", err)
		}
	}
	if result.Artifact != nil && result.Artifact.DocxBase64 != "" {
		if err := store.Set(storage.KeyCVDocx, result.Artifact.DocxBase64); err != nil {
			return fmt.Errorf("failed to snapshot document: %w", err)
		}
	}
	return nil
}

// LoadSnapshot returns the stored CV snapshot, or nil when absent.
func LoadSnapshot(store *storage.Store) *types.CV {
	var cv types.CV
	ok, err := store.GetJSON(storage.KeyCV, &cv)
	if !ok || err != nil {
		return nil
	}
	return &cv
}

// LoadSnapshotDocument returns the stored base64 document, or "".
func LoadSnapshotDocument(store *storage.Store) string {
	doc, _ := store.Get(storage.KeyCVDocx)
	return doc
}

// ApplyNow pushes the generated CV to the job board backend and
// snapshots it locally. The push is best-effort: a failure is logged
// and the caller still proceeds to the job dashboard, because the local
// snapshot keeps the profile surfaces working.
func ApplyNow(ctx context.Context, client *api.Client, store *storage.Store, result *Result) error {
	body := map[string]any{
		"cv_data":  result.CV,
		"file_url": "",
	}
	if err := client.Post(ctx, "/api/talentpath/resume/create/", body, nil); err != nil {
		slog.Warn("resume save failed, continuing to job board", "error", err)
	}
	return Snapshot(store, result)
}

// ApplyLater writes the document into dir and pauses briefly before the
// caller navigates home. Returns the written path.
func ApplyLater(result *Result, dir string, sleep func(time.Duration)) (string, error) {
	data, err := DecodeDocument(result.Artifact)
	if err != nil {
		return "", err
	}
	path, err := WriteDocument(dir, result.CV, data)
	if err != nil {
		return "", err
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(applyLaterDelay)
	return path, nil
}
