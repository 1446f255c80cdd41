package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkill(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantErr        bool
		wantName       string
		wantCategory   string
		wantImportance int
	}{
		{
			name:           "Name only",
			raw:            "Go",
			wantName:       "Go",
			wantCategory:   "Technical",
			wantImportance: 5,
		},
		{
			name:           "Name and category",
			raw:            "Communication:soft",
			wantName:       "Communication",
			wantCategory:   "soft",
			wantImportance: 5,
		},
		{
			name:           "Full triple",
			raw:            "PostgreSQL:technical:9",
			wantName:       "PostgreSQL",
			wantCategory:   "technical",
			wantImportance: 9,
		},
		{
			name:           "Empty category keeps default",
			raw:            "Docker::7",
			wantName:       "Docker",
			wantCategory:   "Technical",
			wantImportance: 7,
		},
		{
			name:    "Blank name",
			raw:     " :technical:3",
			wantErr: true,
		},
		{
			name:    "Non-numeric importance",
			raw:     "Go:technical:high",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skill, err := parseSkill(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, skill.Name)
			assert.Equal(t, tt.wantCategory, skill.Category)
			assert.Equal(t, tt.wantImportance, skill.Importance)
		})
	}
}

func TestRecruiterCommands_RequireLogin(t *testing.T) {
	binaryPath := getBinaryPath(t)
	env := emptyStoreEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "post", args: []string{"recruiter", "post", "--title", "Engineer", "--company", "Acme", "--description", "Build things"}},
		{name: "jobs", args: []string{"recruiter", "jobs"}},
		{name: "applicants", args: []string{"recruiter", "applicants", "7"}},
		{name: "update", args: []string{"recruiter", "update", "3", "shortlisted"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Env = env
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), "not logged in")
		})
	}
}

func TestRecruiterUpdateCommand_InvalidID(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "recruiter", "update", "abc/../def", "shortlisted")
	cmd.Env = emptyStoreEnv(t)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid application id")
}
