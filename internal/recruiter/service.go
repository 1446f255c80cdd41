package recruiter

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/talentpath"
)

// basePath prefixes every recruiter endpoint.
const basePath = "/api/talentpath/recruiter"

// Service exposes the recruiter operations. All of them require a
// company account token; the backend enforces that.
type Service struct {
	client *api.Client
}

// NewService creates a recruiter service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Post validates the draft locally, then creates the posting. Backend
// rejections surface the raw response body so the recruiter can see
// exactly which field the server refused.
func (s *Service) Post(ctx context.Context, draft *Draft) (*talentpath.JobPosting, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("job draft is incomplete: %w", err)
	}

	var posted talentpath.JobPosting
	if err := s.client.Post(ctx, basePath+"/jobs/create/", draft, &posted); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Body != "" {
			return nil, fmt.Errorf("backend rejected the posting: %s", apiErr.Body)
		}
		return nil, fmt.Errorf("failed to post job: %w", err)
	}
	return &posted, nil
}

// Jobs lists the recruiter's own postings.
func (s *Service) Jobs(ctx context.Context) ([]talentpath.JobPosting, error) {
	var jobs []talentpath.JobPosting
	if err := s.client.Get(ctx, basePath+"/jobs/", &jobs); err != nil {
		return nil, fmt.Errorf("failed to fetch postings: %w", err)
	}
	return jobs, nil
}

// Applicants lists applications for one posting, optionally filtered by
// status.
func (s *Service) Applicants(ctx context.Context, jobID string, status talentpath.ApplicationStatus) ([]talentpath.Applicant, error) {
	path := basePath + "/jobs/" + jobID + "/applicants/"
	if status != "" {
		if !talentpath.ValidStatus(status) {
			return nil, fmt.Errorf("unknown application status %q", status)
		}
		path += "?" + url.Values{"status": []string{string(status)}}.Encode()
	}

	var applicants []talentpath.Applicant
	if err := s.client.Get(ctx, path, &applicants); err != nil {
		return nil, fmt.Errorf("failed to fetch applicants for job %s: %w", jobID, err)
	}
	return applicants, nil
}

// UpdateApplication moves an application to a new status with optional
// recruiter notes.
func (s *Service) UpdateApplication(ctx context.Context, applicationID string, status talentpath.ApplicationStatus, notes string) error {
	if !talentpath.ValidStatus(status) {
		return fmt.Errorf("unknown application status %q", status)
	}

	body := map[string]string{"status": string(status), "notes": notes}
	path := basePath + "/applications/" + applicationID + "/update/"
	if err := s.client.Put(ctx, path, body, nil); err != nil {
		return fmt.Errorf("failed to update application %s: %w", applicationID, err)
	}
	return nil
}
