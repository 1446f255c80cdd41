package talentpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters_IsZero(t *testing.T) {
	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{JobType: "full-time"}.IsZero())
	assert.False(t, Filters{Remote: boolPtr(false)}.IsZero())
	assert.False(t, Filters{SalaryMin: intPtr(0)}.IsZero())
}

func TestFilters_ValuesFalseRemoteIsKept(t *testing.T) {
	// remote=false is an explicit on-site filter, not an unset one.
	values := Filters{Remote: boolPtr(false)}.Values()
	assert.Equal(t, "false", values.Get("remote"))
}

func TestJobPage_Bounds(t *testing.T) {
	page := JobPage{Page: 1, TotalPages: 3}
	assert.False(t, page.HasPrev())
	assert.True(t, page.HasNext())

	page = JobPage{Page: 3, TotalPages: 3}
	assert.True(t, page.HasPrev())
	assert.False(t, page.HasNext())

	page = JobPage{Page: 1, TotalPages: 1}
	assert.False(t, page.HasPrev())
	assert.False(t, page.HasNext())
}
