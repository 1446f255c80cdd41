package coverletter

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rohan/voicecv-cli/internal/talentpath"
	"github.com/rohan/voicecv-cli/internal/types"
)

//go:embed prompt.json
var promptFiles embed.FS

// promptTemplate loads the drafting prompt by key from the embedded
// prompt file.
func promptTemplate(key string) (string, error) {
	raw, err := promptFiles.ReadFile("prompt.json")
	if err != nil {
		return "", fmt.Errorf("failed to read prompt file: %w", err)
	}
	var prompts map[string]string
	if err := json.Unmarshal(raw, &prompts); err != nil {
		return "", fmt.Errorf("failed to parse prompt file: %w", err)
	}
	prompt, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return prompt, nil
}

// formatPrompt replaces {{.Key}} placeholders with values from data.
func formatPrompt(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

// Drafter produces cover letters for job applications.
type Drafter struct {
	client Client
	tier   ModelTier
}

// NewDrafter creates a drafter on top of an LLM client.
func NewDrafter(client Client) *Drafter {
	return &Drafter{client: client, tier: TierStandard}
}

// WithTier overrides the model tier used for drafting.
func (d *Drafter) WithTier(tier ModelTier) *Drafter {
	d.tier = tier
	return d
}

// Draft produces a short cover letter connecting the CV to the posting.
func (d *Drafter) Draft(ctx context.Context, cv *types.CV, job *talentpath.JobPosting) (string, error) {
	if cv == nil {
		return "", fmt.Errorf("a CV is required to draft a cover letter")
	}
	if job == nil {
		return "", fmt.Errorf("a job posting is required to draft a cover letter")
	}

	template, err := promptTemplate("draft")
	if err != nil {
		return "", err
	}

	prompt := formatPrompt(template, map[string]string{
		"Name":        cv.PersonalInfo.Name,
		"Skills":      flattenSkills(cv.Skills),
		"Experience":  summarizeExperience(cv.Experience),
		"JobTitle":    job.Title,
		"Company":     job.CompanyName,
		"Description": job.Description,
	})

	letter, err := d.client.GenerateContent(ctx, prompt, d.tier)
	if err != nil {
		return "", fmt.Errorf("failed to draft cover letter: %w", err)
	}
	return strings.TrimSpace(letter), nil
}

func flattenSkills(skills map[string][]string) string {
	var all []string
	for _, list := range skills {
		all = append(all, list...)
	}
	if len(all) == 0 {
		return "(none listed)"
	}
	return strings.Join(all, ", ")
}

func summarizeExperience(entries []types.Experience) string {
	if len(entries) == 0 {
		return "(none listed)"
	}
	var lines []string
	for _, e := range entries {
		line := e.DisplayRole()
		if e.Company != "" {
			line += " at " + e.Company
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "; ")
}
