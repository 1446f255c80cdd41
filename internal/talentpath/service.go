package talentpath

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rohan/voicecv-cli/internal/api"
)

// Service exposes the non-search job board operations.
type Service struct {
	client *api.Client
}

// NewService creates a job board service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Job fetches one posting with its full detail (skills included).
func (s *Service) Job(ctx context.Context, jobID string) (*JobPosting, error) {
	var job JobPosting
	path := basePath + "/jobs/" + jobID + "/"
	if err := s.client.Get(ctx, path, &job); err != nil {
		return nil, fmt.Errorf("failed to fetch job %s: %w", jobID, err)
	}
	return &job, nil
}

// SimilarJobs lists postings similar to jobID.
func (s *Service) SimilarJobs(ctx context.Context, jobID string) ([]JobPosting, error) {
	var jobs []JobPosting
	path := basePath + "/jobs/" + jobID + "/similar/"
	if err := s.client.Get(ctx, path, &jobs); err != nil {
		return nil, &SectionError{Section: "similar jobs", Cause: err}
	}
	return jobs, nil
}

// RecommendedJobs lists postings matched to the stored CV.
func (s *Service) RecommendedJobs(ctx context.Context) ([]JobPosting, error) {
	var jobs []JobPosting
	if err := s.client.Get(ctx, basePath+"/jobs/recommended/", &jobs); err != nil {
		return nil, &SectionError{Section: "recommended jobs", Cause: err}
	}
	return jobs, nil
}

// Apply submits an application with an optional cover letter.
func (s *Service) Apply(ctx context.Context, jobID string, coverLetter string) (*Application, error) {
	body := map[string]string{"cover_letter": coverLetter}
	var app Application
	path := basePath + "/jobs/" + jobID + "/apply/"
	if err := s.client.Post(ctx, path, body, &app); err != nil {
		return nil, fmt.Errorf("failed to apply to job %s: %w", jobID, err)
	}
	return &app, nil
}

// Applications lists the candidate's applications, optionally filtered
// by status.
func (s *Service) Applications(ctx context.Context, status ApplicationStatus) ([]Application, error) {
	path := basePath + "/applications/"
	if status != "" {
		if !ValidStatus(status) {
			return nil, fmt.Errorf("unknown application status %q", status)
		}
		path += "?" + url.Values{"status": []string{string(status)}}.Encode()
	}

	var apps []Application
	if err := s.client.Get(ctx, path, &apps); err != nil {
		return nil, &SectionError{Section: "applications", Cause: err}
	}
	return apps, nil
}

// Application fetches one application.
func (s *Service) Application(ctx context.Context, applicationID string) (*Application, error) {
	var app Application
	path := basePath + "/applications/" + applicationID + "/"
	if err := s.client.Get(ctx, path, &app); err != nil {
		return nil, fmt.Errorf("failed to fetch application %s: %w", applicationID, err)
	}
	return &app, nil
}

// Withdraw withdraws an application. This is the only status transition
// the client triggers directly.
func (s *Service) Withdraw(ctx context.Context, applicationID string) error {
	path := basePath + "/applications/" + applicationID + "/withdraw/"
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("failed to withdraw application %s: %w", applicationID, err)
	}
	return nil
}

// SavedJobs lists the candidate's saved postings.
func (s *Service) SavedJobs(ctx context.Context) ([]JobPosting, error) {
	var jobs []JobPosting
	if err := s.client.Get(ctx, basePath+"/saved-jobs/", &jobs); err != nil {
		return nil, &SectionError{Section: "saved jobs", Cause: err}
	}
	return jobs, nil
}

// Notifications lists the candidate's notifications.
func (s *Service) Notifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := s.client.Get(ctx, basePath+"/notifications/", &notifications); err != nil {
		return nil, &SectionError{Section: "notifications", Cause: err}
	}
	return notifications, nil
}

// MarkNotificationRead marks one notification read.
func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	path := basePath + "/notifications/" + id + "/read/"
	if err := s.client.Put(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return nil
}
