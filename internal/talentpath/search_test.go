package talentpath

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohan/voicecv-cli/internal/api"
)

// testJobID is a backend-shaped UUID primary key.
const testJobID = "550e8400-e29b-41d4-a716-446655440000"

// searchBackend serves /jobs/ with configurable pages and records every
// query received. Saved job ids persist across re-fetches.
type searchBackend struct {
	mu         sync.Mutex
	queries    []map[string]string
	saved      map[string]bool
	totalPages int
}

func newSearchBackend(t *testing.T, totalPages int) (*searchBackend, *api.Client) {
	t.Helper()
	b := &searchBackend{saved: map[string]bool{}, totalPages: totalPages}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/talentpath/jobs/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		query := map[string]string{}
		for key, vals := range r.URL.Query() {
			query[key] = vals[0]
		}
		b.queries = append(b.queries, query)
		isSaved := b.saved[testJobID]
		b.mu.Unlock()

		page, _ := strconv.Atoi(query["page"])
		resp := JobPage{
			Results:    []JobPosting{{JobID: testJobID, Title: "Backend Engineer", IsSaved: isSaved}},
			Total:      b.totalPages * 20,
			Page:       page,
			PageSize:   20,
			TotalPages: b.totalPages,
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	mux.HandleFunc("/api/talentpath/jobs/"+testJobID+"/save/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.saved[testJobID] = true
		b.mu.Unlock()
		_, _ = w.Write([]byte(`{"saved":true}`))
	})
	mux.HandleFunc("/api/talentpath/jobs/"+testJobID+"/unsave/", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.saved[testJobID] = false
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return b, api.New(server.URL)
}

func (b *searchBackend) lastQuery() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queries[len(b.queries)-1]
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestSearch_QueryParameters(t *testing.T) {
	backend, client := newSearchBackend(t, 3)
	search := NewSearch(client)
	search.SetKeyword("golang")
	search.SetFilters(Filters{
		JobType:         "full-time",
		ExperienceLevel: "mid",
		Location:        "Bengaluru",
		Remote:          boolPtr(true),
		SalaryMin:       intPtr(1200000),
	})

	_, err := search.Run(context.Background())
	require.NoError(t, err)

	query := backend.lastQuery()
	assert.Equal(t, "golang", query["keyword"])
	assert.Equal(t, "1", query["page"])
	assert.Equal(t, "full-time", query["job_type"])
	assert.Equal(t, "mid", query["experience_level"])
	assert.Equal(t, "Bengaluru", query["location"])
	assert.Equal(t, "true", query["remote"])
	assert.Equal(t, "1200000", query["salary_min"])
}

func TestSearch_EmptyFiltersOmitted(t *testing.T) {
	backend, client := newSearchBackend(t, 1)
	search := NewSearch(client)

	_, err := search.Run(context.Background())
	require.NoError(t, err)

	query := backend.lastQuery()
	assert.NotContains(t, query, "job_type")
	assert.NotContains(t, query, "experience_level")
	assert.NotContains(t, query, "location")
	assert.NotContains(t, query, "remote")
	assert.NotContains(t, query, "salary_min")
}

func TestSearch_FilterChangeResetsPage(t *testing.T) {
	changes := []struct {
		name  string
		apply func(*Search)
	}{
		{name: "job_type", apply: func(s *Search) { s.SetFilters(Filters{JobType: "contract"}) }},
		{name: "experience_level", apply: func(s *Search) { s.SetFilters(Filters{ExperienceLevel: "senior"}) }},
		{name: "location", apply: func(s *Search) { s.SetFilters(Filters{Location: "Pune"}) }},
		{name: "remote", apply: func(s *Search) { s.SetFilters(Filters{Remote: boolPtr(true)}) }},
		{name: "salary_min", apply: func(s *Search) { s.SetFilters(Filters{SalaryMin: intPtr(100)}) }},
		{name: "keyword", apply: func(s *Search) { s.SetKeyword("react") }},
		{name: "combination", apply: func(s *Search) {
			s.SetFilters(Filters{JobType: "full-time", Location: "Pune", Remote: boolPtr(false)})
		}},
		{name: "clear", apply: func(s *Search) { s.ClearFilters() }},
	}

	for _, tc := range changes {
		t.Run(tc.name, func(t *testing.T) {
			backend, client := newSearchBackend(t, 5)
			search := NewSearch(client)

			// Move off page 1 first.
			_, err := search.Run(context.Background())
			require.NoError(t, err)
			require.True(t, search.Next())
			require.True(t, search.Next())
			_, err = search.Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, "3", backend.lastQuery()["page"])

			tc.apply(search)
			_, err = search.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "1", backend.lastQuery()["page"])
		})
	}
}

func TestSearch_PaginationBounds(t *testing.T) {
	_, client := newSearchBackend(t, 2)
	search := NewSearch(client)

	// Before the first fetch there is nothing to page through.
	assert.False(t, search.Next())
	assert.False(t, search.Prev())

	_, err := search.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, search.Prev(), "previous disabled on first page")
	assert.True(t, search.Next())
	_, err = search.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, search.Next(), "next disabled on last page")
	assert.True(t, search.Prev())
	assert.Equal(t, 1, search.Page())
}

func TestSearch_SaveJobFireAndRefetch(t *testing.T) {
	backend, client := newSearchBackend(t, 1)
	search := NewSearch(client)
	_, err := search.Run(context.Background())
	require.NoError(t, err)

	page, err := search.SaveJob(context.Background(), testJobID)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.True(t, page.Results[0].IsSaved, "re-fetch reflects backend state")

	// Saving an already-saved job is idempotent for the caller.
	page, err = search.SaveJob(context.Background(), testJobID)
	require.NoError(t, err)
	assert.True(t, page.Results[0].IsSaved)

	// Two Run calls per SaveJob round trip plus the initial one.
	backend.mu.Lock()
	queries := len(backend.queries)
	backend.mu.Unlock()
	assert.Equal(t, 3, queries)
}

func TestSearch_UnsaveJobFireAndRefetch(t *testing.T) {
	_, client := newSearchBackend(t, 1)
	search := NewSearch(client)
	_, err := search.Run(context.Background())
	require.NoError(t, err)

	_, err = search.SaveJob(context.Background(), testJobID)
	require.NoError(t, err)

	page, err := search.UnsaveJob(context.Background(), testJobID)
	require.NoError(t, err)
	assert.False(t, page.Results[0].IsSaved)
}

func TestSearch_FetchFailureIsSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	search := NewSearch(api.New(server.URL))
	_, err := search.Run(context.Background())
	require.Error(t, err)

	var sectionErr *SectionError
	assert.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, "jobs", sectionErr.Section)
}
