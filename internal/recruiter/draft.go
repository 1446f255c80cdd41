// Package recruiter is the client SDK for the recruiter surface:
// composing and posting jobs, listing postings, and reviewing
// applicants.
package recruiter

import (
	"github.com/go-playground/validator/v10"

	"github.com/rohan/voicecv-cli/internal/talentpath"
)

// SkillDraft is one skill requirement being composed for a posting.
type SkillDraft struct {
	Name       string `json:"name" validate:"required"`
	Category   string `json:"category"`
	IsRequired bool   `json:"is_required"`
	Importance int    `json:"importance" validate:"min=1,max=10"`
}

// NewSkillDraft returns a skill draft with the composer defaults.
func NewSkillDraft() SkillDraft {
	return SkillDraft{Category: "Technical", IsRequired: true, Importance: 5}
}

// Draft is a job posting under composition. Optional numeric fields are
// pointers so an unset salary marshals as null rather than zero.
type Draft struct {
	Title            string       `json:"title" validate:"required"`
	CompanyName      string       `json:"company_name" validate:"required"`
	Location         string       `json:"location"`
	IsRemote         bool         `json:"is_remote"`
	JobType          string       `json:"job_type" validate:"required,oneof=full-time part-time contract internship"`
	ExperienceLevel  string       `json:"experience_level" validate:"required,oneof=entry mid senior lead"`
	MinExperience    int          `json:"min_experience" validate:"min=0"`
	MaxExperience    int          `json:"max_experience" validate:"gtefield=MinExperience"`
	Description      string       `json:"description" validate:"required"`
	Responsibilities string       `json:"responsibilities"`
	Requirements     string       `json:"requirements"`
	NiceToHave       string       `json:"nice_to_have"`
	SalaryMin        *int         `json:"salary_min"`
	SalaryMax        *int         `json:"salary_max"`
	SalaryCurrency   string       `json:"salary_currency"`
	SalaryDisclosed  bool         `json:"salary_disclosed"`
	IsActive         bool         `json:"is_active"`
	Skills           []SkillDraft `json:"skills"`
}

// NewDraft returns a draft with the composer defaults.
func NewDraft() *Draft {
	return &Draft{
		JobType:         "full-time",
		ExperienceLevel: "mid",
		MaxExperience:   5,
		SalaryCurrency:  "INR",
		SalaryDisclosed: true,
		IsActive:        true,
	}
}

// AddSkill appends a copy of s to the draft's skill list. Blank skill
// names are ignored so the composer can call this unconditionally.
func (d *Draft) AddSkill(s SkillDraft) {
	if s.Name == "" {
		return
	}
	d.Skills = append(d.Skills, s)
}

// RemoveSkill removes the skill at index i. Out-of-range indexes are
// ignored.
func (d *Draft) RemoveSkill(i int) {
	if i < 0 || i >= len(d.Skills) {
		return
	}
	d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
}

// Validate checks the draft and every attached skill.
func (d *Draft) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return err
	}
	for i := range d.Skills {
		if err := validate.Struct(&d.Skills[i]); err != nil {
			return err
		}
	}
	return nil
}

// Posting converts the draft into the job board projection of a
// freshly created posting. Used for echoing back what was posted.
func (d *Draft) Posting() talentpath.JobPosting {
	return talentpath.JobPosting{
		Title:           d.Title,
		CompanyName:     d.CompanyName,
		Location:        d.Location,
		IsRemote:        d.IsRemote,
		JobType:         d.JobType,
		ExperienceLevel: d.ExperienceLevel,
		MinExperience:   d.MinExperience,
		MaxExperience:   d.MaxExperience,
		Description:     d.Description,
		SalaryMin:       d.SalaryMin,
		SalaryMax:       d.SalaryMax,
		SalaryCurrency:  d.SalaryCurrency,
		SalaryDisclosed: d.SalaryDisclosed,
	}
}
