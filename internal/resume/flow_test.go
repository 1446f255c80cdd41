package resume

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/storage"
	"github.com/rohan/voicecv-cli/internal/types"
)

func generationBackend(t *testing.T, hold chan struct{}) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var generations atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/generate-cv/abc123/", func(w http.ResponseWriter, r *http.Request) {
		generations.Add(1)
		if hold != nil {
			<-hold
		}
		_, _ = w.Write([]byte(`{"docx_base64":"` +
			base64.StdEncoding.EncodeToString([]byte("docx bytes")) +
			`","html_content":"<p>CV</p>","note":"Done"}`))
	})
	mux.HandleFunc("/session/abc123/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cv_json":{"personal_info":{"name":"Priya Sharma","email":"p@example.com"}}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &generations
}

func TestGenerate_ReturnsArtifactAndCV(t *testing.T) {
	server, _ := generationBackend(t, nil)
	flow := NewFlow(api.New(server.URL))

	result, err := flow.Generate(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "<p>CV</p>", result.Artifact.HTMLContent)
	assert.Equal(t, "Done", result.Artifact.Note)
	require.NotNil(t, result.CV)
	assert.Equal(t, "Priya Sharma", result.CV.PersonalInfo.Name)
	assert.False(t, flow.Generating())
}

func TestGenerate_ReentrancyGuard(t *testing.T) {
	hold := make(chan struct{})
	server, generations := generationBackend(t, hold)
	flow := NewFlow(api.New(server.URL))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := flow.Generate(context.Background(), "abc123")
		assert.NoError(t, err)
	}()

	// Wait for the first request to be in flight, then try again.
	require.Eventually(t, flow.Generating, 2*time.Second, 5*time.Millisecond)
	_, err := flow.Generate(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrGenerationRunning)

	close(hold)
	wg.Wait()
	assert.Equal(t, int32(1), generations.Load(), "exactly one outstanding generation request")

	// The guard clears after completion, so a retry is allowed.
	_, err = flow.Generate(context.Background(), "abc123")
	assert.NoError(t, err)
}

func TestGenerate_FailureClearsGuard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	flow := NewFlow(api.New(server.URL))
	_, err := flow.Generate(context.Background(), "abc123")
	require.Error(t, err)
	assert.False(t, flow.Generating(), "a failed generation must be retryable")
}

func TestGenerate_EmptySessionID(t *testing.T) {
	flow := NewFlow(api.New("http://127.0.0.1:0"))
	_, err := flow.Generate(context.Background(), "")
	assert.Error(t, err)
}

func TestDecodeDocument_RoundTrip(t *testing.T) {
	original := []byte("PK\x03\x04 fake docx payload")
	encoded := base64.StdEncoding.EncodeToString(original)

	data, err := DecodeDocument(&types.ResumeArtifact{DocxBase64: encoded})
	require.NoError(t, err)
	assert.Equal(t, original, data)

	// Re-encoding reproduces the original string exactly.
	assert.Equal(t, encoded, base64.StdEncoding.EncodeToString(data))
}

func TestDecodeDocument_Missing(t *testing.T) {
	_, err := DecodeDocument(&types.ResumeArtifact{})
	assert.ErrorIs(t, err, ErrNoDocument)
	_, err = DecodeDocument(nil)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestDecodeDocument_InvalidBase64(t *testing.T) {
	_, err := DecodeDocument(&types.ResumeArtifact{DocxBase64: "!!! not base64 !!!"})
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		cv   *types.CV
		want string
	}{
		{name: "with candidate name", cv: &types.CV{PersonalInfo: types.PersonalInfo{Name: "Priya Sharma"}}, want: "Priya Sharma_CV.docx"},
		{name: "empty name", cv: &types.CV{}, want: "resume.docx"},
		{name: "whitespace name", cv: &types.CV{PersonalInfo: types.PersonalInfo{Name: "  "}}, want: "resume.docx"},
		{name: "nil cv", cv: nil, want: "resume.docx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.cv))
		})
	}
}

func TestWriteDocument(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cv := &types.CV{PersonalInfo: types.PersonalInfo{Name: "Priya"}}

	path, err := WriteDocument(dir, cv, []byte("doc"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Priya_CV.docx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("doc"), data)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	result := &Result{
		Artifact: &types.ResumeArtifact{DocxBase64: "ZG9jeA=="},
		CV:       &types.CV{PersonalInfo: types.PersonalInfo{Name: "Priya"}},
	}
	require.NoError(t, Snapshot(store, result))

	cv := LoadSnapshot(store)
	require.NotNil(t, cv)
	assert.Equal(t, "Priya", cv.PersonalInfo.Name)
	assert.Equal(t, "ZG9jeA==", LoadSnapshotDocument(store))
}

func TestSnapshot_NewGenerationOverwrites(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	first := &Result{CV: &types.CV{PersonalInfo: types.PersonalInfo{Name: "First"}}}
	second := &Result{CV: &types.CV{PersonalInfo: types.PersonalInfo{Name: "Second"}}}
	require.NoError(t, Snapshot(store, first))
	require.NoError(t, Snapshot(store, second))

	assert.Equal(t, "Second", LoadSnapshot(store).PersonalInfo.Name)
}

func TestApplyNow_TolerantOfBackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	store, err := storage.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	result := &Result{CV: &types.CV{PersonalInfo: types.PersonalInfo{Name: "Priya"}}}
	err = ApplyNow(context.Background(), api.New(server.URL), store, result)
	require.NoError(t, err, "save failure must not block the dashboard handoff")
	assert.NotNil(t, LoadSnapshot(store))
}

func TestApplyLater_WritesAndDelays(t *testing.T) {
	var slept time.Duration
	dir := t.TempDir()
	result := &Result{
		Artifact: &types.ResumeArtifact{DocxBase64: base64.StdEncoding.EncodeToString([]byte("doc"))},
		CV:       &types.CV{PersonalInfo: types.PersonalInfo{Name: "Priya"}},
	}

	path, err := ApplyLater(result, dir, func(d time.Duration) { slept = d })
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, applyLaterDelay, slept)
}

func TestApplyLater_NoDocument(t *testing.T) {
	_, err := ApplyLater(&Result{Artifact: &types.ResumeArtifact{}}, t.TempDir(), func(time.Duration) {})
	assert.ErrorIs(t, err, ErrNoDocument)
}
