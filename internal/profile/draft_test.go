package profile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/storage"
	"github.com/rohan/voicecv-cli/internal/types"
)

func TestDraft_SetDottedPaths(t *testing.T) {
	draft, err := NewDraft(sampleCV())
	require.NoError(t, err)

	require.NoError(t, draft.Set("personal_info.name", "Anita Rao"))
	require.NoError(t, draft.Set("experience[0].company", "Globex"))
	require.NoError(t, draft.Set("skills.Technical[1]", "Rust"))
	require.NoError(t, draft.Set("education.degree", "M.Tech"))

	cv, err := draft.CV()
	require.NoError(t, err)
	assert.Equal(t, "Anita Rao", cv.PersonalInfo.Name)
	assert.Equal(t, "Globex", cv.Experience[0].Company)
	assert.Equal(t, []string{"Go", "Rust"}, cv.Skills["Technical"])
	assert.Equal(t, "M.Tech", cv.Education.Degree)
}

func TestDraft_SetCreatesMissingObjects(t *testing.T) {
	draft, err := NewDraft(&types.CV{})
	require.NoError(t, err)

	require.NoError(t, draft.Set("personal_info.name", "Anita"))
	value, err := draft.Get("personal_info.name")
	require.NoError(t, err)
	assert.Equal(t, "Anita", value)
}

func TestDraft_SetErrors(t *testing.T) {
	draft, err := NewDraft(sampleCV())
	require.NoError(t, err)

	assert.Error(t, draft.Set("", "x"))
	assert.Error(t, draft.Set("experience[5].company", "x"), "index past the end")
	assert.Error(t, draft.Set("experience[-1].company", "x"))
	assert.Error(t, draft.Set("personal_info[0]", "x"), "object indexed as array")
	assert.Error(t, draft.Set("personal_info.name.first", "x"), "descend into scalar")
	assert.Error(t, draft.Set("projects.title", "x"), "array addressed as object")
	assert.Error(t, draft.Set("missing_list[0]", "x"), "cannot index a missing array")
}

func TestDraft_EditsDoNotLeakUntilSave(t *testing.T) {
	original := sampleCV()
	draft, err := NewDraft(original)
	require.NoError(t, err)

	require.NoError(t, draft.Set("personal_info.name", "Changed"))
	assert.Equal(t, "Priya Sharma", original.PersonalInfo.Name, "source CV untouched")
}

func TestDraft_Discard(t *testing.T) {
	draft, err := NewDraft(sampleCV())
	require.NoError(t, err)

	require.NoError(t, draft.Set("personal_info.name", "Changed"))
	require.NoError(t, draft.Set("skills.Technical[0]", "Rust"))
	draft.Discard()

	cv, err := draft.CV()
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", cv.PersonalInfo.Name)
	assert.Equal(t, "Go", cv.Skills["Technical"][0])
}

func TestSave_PushesAndMirrors(t *testing.T) {
	var pushed map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/cv/save/", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &pushed))
	}))
	defer server.Close()

	store := testStore(t)
	require.NoError(t, store.Set(storage.KeyToken, "tok123"))

	aggregator := NewAggregator(api.New(server.URL), store, nil)
	draft, err := NewDraft(sampleCV())
	require.NoError(t, err)
	require.NoError(t, draft.Set("personal_info.name", "Anita Rao"))

	require.NoError(t, aggregator.Save(context.Background(), draft))

	personal, ok := pushed["personal_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Anita Rao", personal["name"])

	var stored types.CV
	found, err := store.GetJSON(storage.KeyCV, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Anita Rao", stored.PersonalInfo.Name)
}

func TestSave_BackendFailureLeavesStoreUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := testStore(t)
	require.NoError(t, store.Set(storage.KeyToken, "tok123"))

	aggregator := NewAggregator(api.New(server.URL), store, nil)
	draft, err := NewDraft(sampleCV())
	require.NoError(t, err)
	require.NoError(t, draft.Set("personal_info.name", "Anita Rao"))

	require.Error(t, aggregator.Save(context.Background(), draft))
	_, found := store.Get(storage.KeyCV)
	assert.False(t, found)
}

func TestSave_AnonymousMirrorsLocally(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	store := testStore(t)
	aggregator := NewAggregator(api.New(server.URL), store, nil)
	draft, err := NewDraft(sampleCV())
	require.NoError(t, err)

	require.NoError(t, aggregator.Save(context.Background(), draft))
	assert.False(t, requested)
	_, found := store.Get(storage.KeyCV)
	assert.True(t, found)
}

func TestSave_InvalidDocumentRejected(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	store := testStore(t)
	require.NoError(t, store.Set(storage.KeyToken, "tok123"))

	aggregator := NewAggregator(api.New(server.URL), store, nil)
	draft, err := NewDraft(sampleCV())
	require.NoError(t, err)
	require.NoError(t, draft.Set("experience", "five years"))

	err = aggregator.Save(context.Background(), draft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CV")
	assert.False(t, requested, "invalid draft must not reach the backend")
	_, found := store.Get(storage.KeyCV)
	assert.False(t, found)
}
