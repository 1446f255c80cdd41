// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/rohan/voicecv-cli/internal/profile"
	"github.com/rohan/voicecv-cli/internal/talentpath"
	"github.com/rohan/voicecv-cli/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTranscript outputs the conversation so far, newest last.
func (p *Printer) PrintTranscript(messages []types.Message) {
	if len(messages) == 0 {
		return
	}

	var sb strings.Builder
	for i, m := range messages {
		speaker := "You"
		if m.Sender == types.SenderAgent {
			speaker = "Agent"
		}
		text := truncate(m.Text, 48)
		sb.WriteString(fmt.Sprintf("%-5s %s", speaker+":", text))
		if i < len(messages)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONVERSATION", sb.String())
}

// PrintJobList outputs a page of job search results with pagination.
func (p *Printer) PrintJobList(page *talentpath.JobPage) {
	if page == nil {
		return
	}
	if len(page.Results) == 0 {
		p.printBox("JOB SEARCH", "No jobs matched your search.")
		return
	}

	var sb strings.Builder
	for i, job := range page.Results {
		marks := []string{}
		if job.IsSaved {
			marks = append(marks, "saved")
		}
		if job.HasApplied {
			marks = append(marks, "applied")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = fmt.Sprintf(" [%s]", strings.Join(marks, ", "))
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", job.Title, suffix))
		sb.WriteString(fmt.Sprintf("    %s, %s\n", job.CompanyName, jobLocation(job)))
		sb.WriteString(fmt.Sprintf("    id %s\n", job.JobID))
		if i < len(page.Results)-1 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\nPage %d of %d (%d jobs total)", page.Page, page.TotalPages, page.Total))

	p.printBox("JOB SEARCH", sb.String())
}

// PrintJobDetail outputs one posting with skills and salary.
func (p *Printer) PrintJobDetail(job *talentpath.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job ID:   %s\n", job.JobID))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.CompanyName))
	sb.WriteString(fmt.Sprintf("Location: %s\n", jobLocation(*job)))
	sb.WriteString(fmt.Sprintf("Type:     %s (%s)\n", job.JobType, job.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Salary:   %s\n", formatSalary(*job)))

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := job.RequiredSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill.Name))
			if skill.IsRequired {
				sb.WriteString(" (required)")
			}
			sb.WriteString("\n")
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
	}

	if job.MatchScore > 0 {
		sb.WriteString(fmt.Sprintf("\nMatch score: %.0f%%", job.MatchScore))
	}

	p.printBox("JOB DETAIL", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs the resolved profile with its completeness bar.
func (p *Printer) PrintProfile(prof *profile.Profile) {
	if prof == nil || prof.CV == nil {
		return
	}

	var sb strings.Builder
	info := prof.CV.PersonalInfo
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orNA(info.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orNA(info.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orNA(info.Phone)))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", prof.Source))
	sb.WriteString(fmt.Sprintf("Complete: %s %d%%\n", completenessBar(prof.Completeness()), prof.Completeness()))

	groups := prof.SkillGroups()
	if len(groups) > 0 {
		sb.WriteString("\nSkills:\n")
		for _, group := range groups {
			skills := truncate(strings.Join(group.Skills, ", "), 40)
			sb.WriteString(fmt.Sprintf("  %s: %s\n", group.Category, skills))
		}
	}

	if n := len(prof.CV.Experience); n > 0 {
		sb.WriteString(fmt.Sprintf("\nExperience entries: %d", n))
	}

	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDashboard outputs the candidate dashboard, marking failed
// sections as unavailable rather than empty.
func (p *Printer) PrintDashboard(dash *talentpath.Dashboard) {
	if dash == nil {
		return
	}

	var sb strings.Builder
	switch {
	case dash.StatsErr != nil:
		sb.WriteString("Stats unavailable\n")
	case dash.Stats != nil:
		sb.WriteString(fmt.Sprintf("Applications: %d   Saved: %d   Unread: %d\n",
			dash.Stats.ApplicationsCount, dash.Stats.SavedJobsCount, dash.Stats.UnreadNotifications))
	}

	sb.WriteString("\nRecommended:\n")
	switch {
	case dash.RecommendedErr != nil:
		sb.WriteString("  (unavailable)\n")
	case len(dash.Recommended) == 0:
		sb.WriteString("  (none yet)\n")
	default:
		count := min(len(dash.Recommended), maxItemsToShow)
		for i := 0; i < count; i++ {
			job := dash.Recommended[i]
			sb.WriteString(fmt.Sprintf("  %s (%s)\n", job.Title, job.CompanyName))
		}
		if len(dash.Recommended) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(dash.Recommended)-maxItemsToShow))
		}
	}

	sb.WriteString("\nNotifications:\n")
	switch {
	case dash.NotificationsErr != nil:
		sb.WriteString("  (unavailable)")
	case len(dash.Notifications) == 0:
		sb.WriteString("  (none)")
	default:
		count := min(len(dash.Notifications), maxItemsToShow)
		for i := 0; i < count; i++ {
			n := dash.Notifications[i]
			mark := " "
			if !n.Read {
				mark = "•"
			}
			sb.WriteString(fmt.Sprintf("  %s %s", mark, n.Message))
			if i < count-1 {
				sb.WriteString("\n")
			}
		}
	}

	p.printBox("DASHBOARD", sb.String())
}

func jobLocation(job talentpath.JobPosting) string {
	if job.IsRemote {
		if job.Location == "" {
			return "Remote"
		}
		return job.Location + " (Remote)"
	}
	return orNA(job.Location)
}

func formatSalary(job talentpath.JobPosting) string {
	if !job.SalaryDisclosed || (job.SalaryMin == nil && job.SalaryMax == nil) {
		return "Not disclosed"
	}
	currency := job.SalaryCurrency
	if currency == "" {
		currency = "INR"
	}
	switch {
	case job.SalaryMin != nil && job.SalaryMax != nil:
		return fmt.Sprintf("%s %d - %d", currency, *job.SalaryMin, *job.SalaryMax)
	case job.SalaryMin != nil:
		return fmt.Sprintf("%s %d+", currency, *job.SalaryMin)
	default:
		return fmt.Sprintf("up to %s %d", currency, *job.SalaryMax)
	}
}

// truncate shortens s to at most max runes, ending with "..." when cut.
// Slicing runes rather than bytes keeps multibyte names intact.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func completenessBar(percent int) string {
	const width = 10
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
