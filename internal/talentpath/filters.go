package talentpath

import (
	"net/url"
	"strconv"
)

// Filters is the job search filter set. Zero-value fields are omitted
// from the query string; the empty Filters means no filtering.
type Filters struct {
	JobType         string
	ExperienceLevel string
	Location        string
	Remote          *bool
	SalaryMin       *int
}

// Values encodes the filter set as query parameters.
func (f Filters) Values() url.Values {
	values := url.Values{}
	if f.JobType != "" {
		values.Set("job_type", f.JobType)
	}
	if f.ExperienceLevel != "" {
		values.Set("experience_level", f.ExperienceLevel)
	}
	if f.Location != "" {
		values.Set("location", f.Location)
	}
	if f.Remote != nil {
		values.Set("remote", strconv.FormatBool(*f.Remote))
	}
	if f.SalaryMin != nil {
		values.Set("salary_min", strconv.Itoa(*f.SalaryMin))
	}
	return values
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.JobType == "" && f.ExperienceLevel == "" && f.Location == "" &&
		f.Remote == nil && f.SalaryMin == nil
}
