// Package types provides type definitions for structured data exchanged
// between the VoiceToCV backend, the TalentPath job board, and the CLI.
package types

import (
	"encoding/json"
	"strings"
)

// PersonalInfo holds the contact block of a CV.
type PersonalInfo struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Education describes a single degree. The backend currently returns at
// most one, but older sessions carry a list, so both shapes are accepted
// at the decode layer.
type Education struct {
	Degree    string `json:"degree,omitempty"`
	Institute string `json:"institute,omitempty"`
	StartYear string `json:"start_year,omitempty"`
	EndYear   string `json:"end_year,omitempty"`
	GPA       string `json:"gpa,omitempty"`
}

// UnmarshalJSON accepts both the current object shape and the legacy
// list shape, keeping the first entry of a list.
func (e *Education) UnmarshalJSON(data []byte) error {
	type education Education
	var obj education
	if err := json.Unmarshal(data, &obj); err == nil {
		*e = Education(obj)
		return nil
	}
	var list []education
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if len(list) > 0 {
		*e = Education(list[0])
	}
	return nil
}

// Experience describes one work engagement.
type Experience struct {
	Role        string `json:"role,omitempty"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// DisplayRole prefers the role field, falling back to title. Both keys
// appear in backend payloads depending on the session's agent version.
func (e Experience) DisplayRole() string {
	if e.Role != "" {
		return e.Role
	}
	return e.Title
}

// Project describes a single project entry.
type Project struct {
	ProjectName  string `json:"project_name,omitempty"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
}

// DisplayName prefers project_name, falling back to name.
func (p Project) DisplayName() string {
	if p.ProjectName != "" {
		return p.ProjectName
	}
	return p.Name
}

// TechnologyList splits the comma-separated technologies field.
func (p Project) TechnologyList() []string {
	if strings.TrimSpace(p.Technologies) == "" {
		return nil
	}
	parts := strings.Split(p.Technologies, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Certification describes one certification entry.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// CV is the structured resume collected by the conversational agent.
// Skills are keyed by category ("Technical", "Soft Skills", ...), each
// mapping to a list of skill names.
type CV struct {
	PersonalInfo   PersonalInfo        `json:"personal_info"`
	Summary        string              `json:"summary,omitempty"`
	Education      Education           `json:"education,omitempty"`
	Experience     []Experience        `json:"experience,omitempty"`
	Skills         map[string][]string `json:"skills,omitempty"`
	Projects       []Project           `json:"projects,omitempty"`
	Certifications []Certification     `json:"certifications,omitempty"`
}

// HasSkills reports whether any skill category contains at least one entry.
func (c *CV) HasSkills() bool {
	for _, list := range c.Skills {
		if len(list) > 0 {
			return true
		}
	}
	return false
}
