// Package talentpath is the client SDK for the TalentPath job board:
// job search and filtering, save/apply tracking, applications,
// notifications, dashboards, and the recruiter posting surface.
package talentpath

import "time"

// basePath prefixes every job-board endpoint.
const basePath = "/api/talentpath"

// JobSkill is a skill requirement attached to a posting.
type JobSkill struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	IsRequired bool   `json:"is_required"`
	Importance int    `json:"importance,omitempty"`
}

// JobPosting is the backend-owned job projection. is_saved and
// has_applied are the only client-influenced fields; they are toggled
// through save/apply calls and reconciled by re-fetch.
type JobPosting struct {
	JobID           string     `json:"job_id"`
	Title           string     `json:"title"`
	CompanyName     string     `json:"company_name"`
	Location        string     `json:"location"`
	IsRemote        bool       `json:"is_remote"`
	JobType         string     `json:"job_type"`
	ExperienceLevel string     `json:"experience_level"`
	MinExperience   int        `json:"min_experience,omitempty"`
	MaxExperience   int        `json:"max_experience,omitempty"`
	Description     string     `json:"description,omitempty"`
	SalaryMin       *int       `json:"salary_min"`
	SalaryMax       *int       `json:"salary_max"`
	SalaryCurrency  string     `json:"salary_currency,omitempty"`
	SalaryDisclosed bool       `json:"salary_disclosed"`
	IsSaved         bool       `json:"is_saved"`
	HasApplied      bool       `json:"has_applied"`
	RequiredSkills  []JobSkill `json:"required_skills,omitempty"`
	MatchScore      float64    `json:"match_score,omitempty"`
	CreatedAt       string     `json:"created_at,omitempty"`
}

// ApplicationStatus enumerates backend-owned application states. The
// client only ever triggers the withdrawn transition.
type ApplicationStatus string

// Application statuses.
const (
	StatusSubmitted   ApplicationStatus = "submitted"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusInterview   ApplicationStatus = "interview"
	StatusOffered     ApplicationStatus = "offered"
	StatusRejected    ApplicationStatus = "rejected"
	StatusWithdrawn   ApplicationStatus = "withdrawn"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusSubmitted, StatusReviewed, StatusShortlisted,
		StatusInterview, StatusOffered, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Application is one job application as seen by the candidate.
type Application struct {
	ApplicationID     string            `json:"application_id"`
	Job               *JobPosting       `json:"job,omitempty"`
	Status            ApplicationStatus `json:"status"`
	MatchScore        float64           `json:"match_score,omitempty"`
	ViewedByRecruiter bool              `json:"viewed_by_recruiter"`
	CoverLetter       string            `json:"cover_letter,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

// Applicant is one application as seen by the recruiter.
type Applicant struct {
	ApplicationID string            `json:"application_id"`
	CandidateName string            `json:"candidate_name,omitempty"`
	Status        ApplicationStatus `json:"status"`
	MatchScore    float64           `json:"match_score,omitempty"`
	CoverLetter   string            `json:"cover_letter,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Notification is a job-board notification.
type Notification struct {
	NotificationID string    `json:"notification_id"`
	Title          string    `json:"title,omitempty"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// JobPage is the paginated search envelope. Pagination is 1-indexed.
type JobPage struct {
	Results    []JobPosting `json:"results"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// HasPrev reports whether a previous page exists.
func (p *JobPage) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p *JobPage) HasNext() bool { return p.Page < p.TotalPages }

// DashboardStats is the candidate dashboard counters payload.
type DashboardStats struct {
	ApplicationsCount   int `json:"applications_count"`
	SavedJobsCount      int `json:"saved_jobs_count"`
	UnreadNotifications int `json:"unread_notifications"`
	SearchAppearances   int `json:"search_appearances"`
	RecruiterActions    int `json:"recruiter_actions"`
}

// RecruiterStats is the recruiter dashboard counters payload.
type RecruiterStats struct {
	ActiveJobs        int `json:"active_jobs"`
	TotalApplications int `json:"total_applications"`
	NewApplications   int `json:"new_applications"`
	ShortlistedCount  int `json:"shortlisted_count"`
}
