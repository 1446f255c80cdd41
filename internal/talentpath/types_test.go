package talentpath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The backend serializes its UUID primary keys as strings. These
// payloads mirror the serializer field lists; the IDs must survive a
// round trip untouched, not get coerced through a numeric type.

func TestJobPostingDecode_UUIDPrimaryKey(t *testing.T) {
	payload := `{
		"job_id": "550e8400-e29b-41d4-a716-446655440000",
		"title": "Backend Engineer",
		"company_name": "Orbit Labs",
		"location": "Pune",
		"is_remote": true,
		"job_type": "full_time",
		"experience_level": "mid",
		"salary_min": 1200000,
		"salary_max": 1800000,
		"salary_currency": "INR",
		"salary_disclosed": true,
		"is_saved": false,
		"has_applied": false,
		"created_at": "2026-08-01T10:00:00Z"
	}`

	var job JobPosting
	require.NoError(t, json.Unmarshal([]byte(payload), &job))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", job.JobID)
	assert.Equal(t, "Backend Engineer", job.Title)
	require.NotNil(t, job.SalaryMin)
	assert.Equal(t, 1200000, *job.SalaryMin)
}

func TestApplicationDecode_UUIDPrimaryKey(t *testing.T) {
	payload := `{
		"application_id": "9b2e8f4a-1c3d-4e5f-8a6b-7c8d9e0f1a2b",
		"job": {"job_id": "550e8400-e29b-41d4-a716-446655440000", "title": "Backend Engineer"},
		"status": "shortlisted",
		"match_score": 82.5,
		"viewed_by_recruiter": true,
		"created_at": "2026-08-02T09:30:00Z"
	}`

	var app Application
	require.NoError(t, json.Unmarshal([]byte(payload), &app))
	assert.Equal(t, "9b2e8f4a-1c3d-4e5f-8a6b-7c8d9e0f1a2b", app.ApplicationID)
	require.NotNil(t, app.Job)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", app.Job.JobID)
	assert.Equal(t, StatusShortlisted, app.Status)
}

func TestNotificationDecode_UUIDPrimaryKey(t *testing.T) {
	payload := `{
		"notification_id": "3f1c0d2e-5a6b-4c7d-9e8f-0a1b2c3d4e5f",
		"title": "Application update",
		"message": "Your application was shortlisted",
		"read": false,
		"created_at": "2026-08-03T12:00:00Z"
	}`

	var n Notification
	require.NoError(t, json.Unmarshal([]byte(payload), &n))
	assert.Equal(t, "3f1c0d2e-5a6b-4c7d-9e8f-0a1b2c3d4e5f", n.NotificationID)
	assert.Equal(t, "Your application was shortlisted", n.Message)
	assert.False(t, n.Read)
}
