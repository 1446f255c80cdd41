package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/recruiter"
	"github.com/rohan/voicecv-cli/internal/talentpath"
)

var recruiterCmd = &cobra.Command{
	Use:   "recruiter",
	Short: "Recruiter operations (company accounts)",
}

var recruiterPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a new job",
	RunE:  runRecruiterPost,
}

var (
	postTitle       string
	postCompany     string
	postLocation    string
	postRemote      bool
	postJobType     string
	postExperience  string
	postMinYears    int
	postMaxYears    int
	postDescription string
	postSalaryMin   int
	postSalaryMax   int
	postCurrency    string
	postUndisclosed bool
	postSkills      []string
)

var recruiterJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List your postings",
	RunE:  runRecruiterJobs,
}

var recruiterApplicantsCmd = &cobra.Command{
	Use:   "applicants <job-id>",
	Short: "List applicants for one posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecruiterApplicants,
}

var applicantsStatus string

var recruiterUpdateCmd = &cobra.Command{
	Use:   "update <application-id> <status>",
	Short: "Move an application to a new status",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecruiterUpdate,
}

var updateNotes string

func init() {
	recruiterPostCmd.Flags().StringVar(&postTitle, "title", "", "Job title (required)")
	recruiterPostCmd.Flags().StringVar(&postCompany, "company", "", "Company name (required)")
	recruiterPostCmd.Flags().StringVar(&postLocation, "location", "", "Location")
	recruiterPostCmd.Flags().BoolVar(&postRemote, "remote", false, "Remote position")
	recruiterPostCmd.Flags().StringVar(&postJobType, "type", "full-time", "Job type")
	recruiterPostCmd.Flags().StringVar(&postExperience, "experience", "mid", "Experience level")
	recruiterPostCmd.Flags().IntVar(&postMinYears, "min-years", 0, "Minimum years of experience")
	recruiterPostCmd.Flags().IntVar(&postMaxYears, "max-years", 5, "Maximum years of experience")
	recruiterPostCmd.Flags().StringVar(&postDescription, "description", "", "Job description (required)")
	recruiterPostCmd.Flags().IntVar(&postSalaryMin, "salary-min", 0, "Minimum salary (omitted when 0)")
	recruiterPostCmd.Flags().IntVar(&postSalaryMax, "salary-max", 0, "Maximum salary (omitted when 0)")
	recruiterPostCmd.Flags().StringVar(&postCurrency, "currency", "INR", "Salary currency")
	recruiterPostCmd.Flags().BoolVar(&postUndisclosed, "undisclosed", false, "Hide the salary range")
	recruiterPostCmd.Flags().StringArrayVar(&postSkills, "skill", nil,
		"Skill requirement as 'name[:category[:importance]]'; repeatable")

	recruiterApplicantsCmd.Flags().StringVar(&applicantsStatus, "status", "", "Filter by application status")
	recruiterUpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "Recruiter notes for the candidate record")

	recruiterCmd.AddCommand(recruiterPostCmd, recruiterJobsCmd, recruiterApplicantsCmd, recruiterUpdateCmd)
	rootCmd.AddCommand(recruiterCmd)
}

func requireCompany(app *app) error {
	if err := app.requireAuth(); err != nil {
		return err
	}
	if !app.auth.IsCompany() {
		return fmt.Errorf("recruiter commands need a company account (current: %s)", app.auth.UserType())
	}
	return nil
}

func runRecruiterPost(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := requireCompany(app); err != nil {
		return err
	}

	draft := recruiter.NewDraft()
	draft.Title = postTitle
	draft.CompanyName = postCompany
	draft.Location = postLocation
	draft.IsRemote = postRemote
	draft.JobType = postJobType
	draft.ExperienceLevel = postExperience
	draft.MinExperience = postMinYears
	draft.MaxExperience = postMaxYears
	draft.Description = postDescription
	draft.SalaryCurrency = postCurrency
	draft.SalaryDisclosed = !postUndisclosed
	if postSalaryMin > 0 {
		draft.SalaryMin = &postSalaryMin
	}
	if postSalaryMax > 0 {
		draft.SalaryMax = &postSalaryMax
	}

	for _, raw := range postSkills {
		skill, err := parseSkill(raw)
		if err != nil {
			return err
		}
		draft.AddSkill(skill)
	}

	posted, err := recruiter.NewService(app.client).Post(cmd.Context(), draft)
	if err != nil {
		return err
	}
	cmd.Printf("Posted job %s: %s\n", posted.JobID, posted.Title)
	return nil
}

// parseSkill parses 'name[:category[:importance]]'.
func parseSkill(raw string) (recruiter.SkillDraft, error) {
	skill := recruiter.NewSkillDraft()
	parts := strings.SplitN(raw, ":", 3)
	skill.Name = strings.TrimSpace(parts[0])
	if skill.Name == "" {
		return skill, fmt.Errorf("invalid skill %q (want 'name[:category[:importance]]')", raw)
	}
	if len(parts) > 1 && parts[1] != "" {
		skill.Category = parts[1]
	}
	if len(parts) > 2 {
		if _, err := fmt.Sscanf(parts[2], "%d", &skill.Importance); err != nil {
			return skill, fmt.Errorf("invalid skill importance in %q", raw)
		}
	}
	return skill, nil
}

func runRecruiterJobs(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := requireCompany(app); err != nil {
		return err
	}

	jobs, err := recruiter.NewService(app.client).Jobs(cmd.Context())
	if err != nil {
		return err
	}
	app.printer.PrintJobList(&talentpath.JobPage{Results: jobs, Total: len(jobs), Page: 1, TotalPages: 1})
	return nil
}

func runRecruiterApplicants(cmd *cobra.Command, args []string) error {
	app, jobID, err := appWithID(args, "job")
	if err != nil {
		return err
	}
	if err := requireCompany(app); err != nil {
		return err
	}

	applicants, err := recruiter.NewService(app.client).Applicants(cmd.Context(), jobID,
		talentpath.ApplicationStatus(applicantsStatus))
	if err != nil {
		return err
	}
	if len(applicants) == 0 {
		cmd.Println("No applicants.")
		return nil
	}

	for _, a := range applicants {
		name := a.CandidateName
		if name == "" {
			name = "(candidate)"
		}
		cmd.Printf("#%s  %-30s %-12s match %.0f%%\n", a.ApplicationID, name, a.Status, a.MatchScore)
	}
	return nil
}

func runRecruiterUpdate(cmd *cobra.Command, args []string) error {
	app, id, err := appWithID(args[:1], "application")
	if err != nil {
		return err
	}
	if err := requireCompany(app); err != nil {
		return err
	}

	status := talentpath.ApplicationStatus(args[1])
	if err := recruiter.NewService(app.client).UpdateApplication(cmd.Context(), id, status, updateNotes); err != nil {
		return err
	}
	cmd.Printf("Application #%s is now %s.\n", id, status)
	return nil
}
