package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceDisplayRole(t *testing.T) {
	tests := []struct {
		name string
		exp  Experience
		want string
	}{
		{name: "Role preferred", exp: Experience{Role: "Engineer", Title: "Dev"}, want: "Engineer"},
		{name: "Title fallback", exp: Experience{Title: "Dev"}, want: "Dev"},
		{name: "Both empty", exp: Experience{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.exp.DisplayRole())
		})
	}
}

func TestProjectDisplayName(t *testing.T) {
	assert.Equal(t, "VoiceToCV", Project{ProjectName: "VoiceToCV", Name: "other"}.DisplayName())
	assert.Equal(t, "other", Project{Name: "other"}.DisplayName())
}

func TestProjectTechnologyList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "Comma separated", raw: "Go, Postgres,Redis", want: []string{"Go", "Postgres", "Redis"}},
		{name: "Empty string", raw: "", want: nil},
		{name: "Whitespace only", raw: "   ", want: nil},
		{name: "Trailing comma", raw: "Go,", want: []string{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Project{Technologies: tt.raw}.TechnologyList())
		})
	}
}

func TestEducationDecode_BothShapes(t *testing.T) {
	var fromObject Education
	require.NoError(t, json.Unmarshal([]byte(`{"degree": "B.Tech", "institute": "IIT"}`), &fromObject))
	assert.Equal(t, "B.Tech", fromObject.Degree)

	var fromList Education
	require.NoError(t, json.Unmarshal([]byte(`[{"degree": "M.Sc"}, {"degree": "B.Sc"}]`), &fromList))
	assert.Equal(t, "M.Sc", fromList.Degree)

	var fromEmptyList Education
	require.NoError(t, json.Unmarshal([]byte(`[]`), &fromEmptyList))
	assert.Empty(t, fromEmptyList.Degree)
}

func TestCVHasSkills(t *testing.T) {
	assert.False(t, (&CV{}).HasSkills())
	assert.False(t, (&CV{Skills: map[string][]string{"Technical": {}}}).HasSkills())
	assert.True(t, (&CV{Skills: map[string][]string{"Technical": {"Go"}}}).HasSkills())
}

func TestCVDecode_BackendShape(t *testing.T) {
	payload := `{
		"personal_info": {"name": "Priya Sharma", "email": "priya@example.com"},
		"education": {"degree": "B.Tech", "institute": "IIT"},
		"experience": [{"role": "Engineer", "company": "Acme"}],
		"skills": {"Technical": ["Go", "SQL"]},
		"projects": [{"project_name": "VoiceToCV", "technologies": "Go, React"}]
	}`

	var cv CV
	require.NoError(t, json.Unmarshal([]byte(payload), &cv))

	assert.Equal(t, "Priya Sharma", cv.PersonalInfo.Name)
	assert.Equal(t, "B.Tech", cv.Education.Degree)
	require.Len(t, cv.Experience, 1)
	assert.Equal(t, "Engineer", cv.Experience[0].DisplayRole())
	assert.True(t, cv.HasSkills())
	require.Len(t, cv.Projects, 1)
	assert.Equal(t, []string{"Go", "React"}, cv.Projects[0].TechnologyList())
}
