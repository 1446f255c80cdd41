package talentpath

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Dashboard aggregates the candidate landing surface. Sections that
// failed carry their error so the caller can render a distinct error
// state per section rather than a generic empty one.
type Dashboard struct {
	Stats            *DashboardStats
	Recommended      []JobPosting
	Notifications    []Notification
	StatsErr         error
	RecommendedErr   error
	NotificationsErr error
}

// Dashboard fetches the stats, recommendations, and notifications
// sections in parallel. It only returns an error when every section
// failed; partial results come back with per-section errors set.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var stats DashboardStats
		if err := s.client.Get(gCtx, basePath+"/dashboard/user/", &stats); err != nil {
			dash.StatsErr = &SectionError{Section: "dashboard stats", Cause: err}
			return nil
		}
		dash.Stats = &stats
		return nil
	})
	g.Go(func() error {
		jobs, err := s.RecommendedJobs(gCtx)
		if err != nil {
			dash.RecommendedErr = err
			return nil
		}
		dash.Recommended = jobs
		return nil
	})
	g.Go(func() error {
		notifications, err := s.Notifications(gCtx)
		if err != nil {
			dash.NotificationsErr = err
			return nil
		}
		dash.Notifications = notifications
		return nil
	})
	_ = g.Wait()

	if dash.StatsErr != nil && dash.RecommendedErr != nil && dash.NotificationsErr != nil {
		return nil, fmt.Errorf("dashboard unavailable: %w", dash.StatsErr)
	}
	return &dash, nil
}

// RecruiterDashboard fetches the recruiter counters.
func (s *Service) RecruiterDashboard(ctx context.Context) (*RecruiterStats, error) {
	var stats RecruiterStats
	if err := s.client.Get(ctx, basePath+"/dashboard/recruiter/", &stats); err != nil {
		return nil, &SectionError{Section: "recruiter dashboard", Cause: err}
	}
	return &stats, nil
}
