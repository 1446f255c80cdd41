package talentpath

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rohan/voicecv-cli/internal/api"
)

// Search is the job listing pipeline: it owns the current keyword,
// filter set, page number, and the last fetched page. Any keyword or
// filter change resets pagination to page 1.
type Search struct {
	client  *api.Client
	keyword string
	filters Filters
	page    int
	last    *JobPage
}

// NewSearch creates a search pipeline starting at page 1 with no
// filters.
func NewSearch(client *api.Client) *Search {
	return &Search{client: client, page: 1}
}

// Keyword returns the current free-text keyword.
func (s *Search) Keyword() string { return s.keyword }

// Filters returns the current filter set.
func (s *Search) Filters() Filters { return s.filters }

// Page returns the current 1-indexed page number.
func (s *Search) Page() int { return s.page }

// Last returns the most recently fetched page, or nil before the first
// Run.
func (s *Search) Last() *JobPage { return s.last }

// SetKeyword updates the keyword and resets to page 1.
func (s *Search) SetKeyword(keyword string) {
	s.keyword = keyword
	s.page = 1
}

// SetFilters replaces the filter set and resets to page 1.
func (s *Search) SetFilters(filters Filters) {
	s.filters = filters
	s.page = 1
}

// ClearFilters removes every filter and resets to page 1.
func (s *Search) ClearFilters() {
	s.SetFilters(Filters{})
}

// Next advances to the next page if one exists. Reports whether the
// page changed.
func (s *Search) Next() bool {
	if s.last == nil || !s.last.HasNext() {
		return false
	}
	s.page++
	return true
}

// Prev moves to the previous page if one exists. Reports whether the
// page changed.
func (s *Search) Prev() bool {
	if s.page <= 1 {
		return false
	}
	s.page--
	return true
}

// Run fetches the current page and replaces the result list and
// pagination metadata.
func (s *Search) Run(ctx context.Context) (*JobPage, error) {
	values := s.filters.Values()
	values.Set("keyword", s.keyword)
	values.Set("page", strconv.Itoa(s.page))

	var page JobPage
	path := basePath + "/jobs/?" + values.Encode()
	if err := s.client.Get(ctx, path, &page); err != nil {
		return nil, &SectionError{Section: "jobs", Cause: err}
	}

	s.last = &page
	if page.Page > 0 {
		s.page = page.Page
	}
	return &page, nil
}

// SaveJob marks a job saved, then re-runs the current search so the
// listing reflects backend state. Saving an already-saved job is
// harmless; the re-fetch is the source of truth.
func (s *Search) SaveJob(ctx context.Context, jobID string) (*JobPage, error) {
	path := basePath + "/jobs/" + jobID + "/save/"
	if err := s.client.Post(ctx, path, nil, nil); err != nil {
		return nil, fmt.Errorf("failed to save job %s: %w", jobID, err)
	}
	return s.Run(ctx)
}

// UnsaveJob removes a saved mark, then re-runs the current search.
func (s *Search) UnsaveJob(ctx context.Context, jobID string) (*JobPage, error) {
	path := basePath + "/jobs/" + jobID + "/unsave/"
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return nil, fmt.Errorf("failed to unsave job %s: %w", jobID, err)
	}
	return s.Run(ctx)
}
