package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohan/voicecv-cli/internal/coverletter"
	"github.com/rohan/voicecv-cli/internal/profile"
	"github.com/rohan/voicecv-cli/internal/talentpath"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search and interact with job postings",
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search job postings with filters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJobsSearch,
}

var (
	jobsJobType    string
	jobsExperience string
	jobsLocation   string
	jobsRemote     bool
	jobsSalaryMin  int
	jobsPage       int
)

var jobsShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show one posting in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsShow,
}

var jobsSaveCmd = &cobra.Command{
	Use:   "save <job-id>",
	Short: "Save a posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsSave,
}

var jobsUnsaveCmd = &cobra.Command{
	Use:   "unsave <job-id>",
	Short: "Remove a saved posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsUnsave,
}

var jobsApplyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a posting, optionally with a cover letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsApply,
}

var (
	applyCoverLetter string
	applyDraft       bool
)

var jobsSimilarCmd = &cobra.Command{
	Use:   "similar <job-id>",
	Short: "List postings similar to one posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsSimilar,
}

var jobsRecommendedCmd = &cobra.Command{
	Use:   "recommended",
	Short: "List postings matched to your CV",
	RunE:  runJobsRecommended,
}

func init() {
	jobsSearchCmd.Flags().StringVar(&jobsJobType, "type", "", "Job type filter (full-time, part-time, contract, internship)")
	jobsSearchCmd.Flags().StringVar(&jobsExperience, "experience", "", "Experience level filter (entry, mid, senior, lead)")
	jobsSearchCmd.Flags().StringVar(&jobsLocation, "location", "", "Location filter")
	jobsSearchCmd.Flags().BoolVar(&jobsRemote, "remote", false, "Remote-only filter")
	jobsSearchCmd.Flags().IntVar(&jobsSalaryMin, "salary-min", 0, "Minimum salary filter")
	jobsSearchCmd.Flags().IntVar(&jobsPage, "page", 1, "Page to fetch")

	jobsApplyCmd.Flags().StringVar(&applyCoverLetter, "cover-letter", "", "Cover letter text")
	jobsApplyCmd.Flags().BoolVar(&applyDraft, "draft", false, "Draft a cover letter locally with Gemini before applying")

	jobsCmd.AddCommand(jobsSearchCmd, jobsShowCmd, jobsSaveCmd, jobsUnsaveCmd,
		jobsApplyCmd, jobsSimilarCmd, jobsRecommendedCmd)
	rootCmd.AddCommand(jobsCmd)
}

// newSearch builds a search pipeline from the search flags. The page
// flag is applied after the filters since filter changes reset paging.
func newSearch(app *app, keyword string) *talentpath.Search {
	search := talentpath.NewSearch(app.client)
	search.SetKeyword(keyword)

	filters := talentpath.Filters{
		JobType:         jobsJobType,
		ExperienceLevel: jobsExperience,
		Location:        jobsLocation,
	}
	if jobsRemote {
		remote := true
		filters.Remote = &remote
	}
	if jobsSalaryMin > 0 {
		filters.SalaryMin = &jobsSalaryMin
	}
	search.SetFilters(filters)
	return search
}

func runJobsSearch(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	keyword := ""
	if len(args) > 0 {
		keyword = args[0]
	}
	search := newSearch(app, keyword)

	page, err := search.Run(cmd.Context())
	if err != nil {
		return err
	}
	for search.Page() < jobsPage && search.Next() {
		if page, err = search.Run(cmd.Context()); err != nil {
			return err
		}
	}

	app.printer.PrintJobList(page)
	return nil
}

func runJobsShow(cmd *cobra.Command, args []string) error {
	app, jobID, err := appWithJobID(args)
	if err != nil {
		return err
	}

	job, err := talentpath.NewService(app.client).Job(cmd.Context(), jobID)
	if err != nil {
		return err
	}
	app.printer.PrintJobDetail(job)
	return nil
}

func runJobsSave(cmd *cobra.Command, args []string) error {
	app, jobID, err := appWithJobID(args)
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	search := newSearch(app, "")
	if _, err := search.Run(cmd.Context()); err != nil {
		return err
	}
	if _, err := search.SaveJob(cmd.Context(), jobID); err != nil {
		return err
	}
	cmd.Printf("Saved job %s.\n", jobID)
	return nil
}

func runJobsUnsave(cmd *cobra.Command, args []string) error {
	app, jobID, err := appWithJobID(args)
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	search := newSearch(app, "")
	if _, err := search.Run(cmd.Context()); err != nil {
		return err
	}
	if _, err := search.UnsaveJob(cmd.Context(), jobID); err != nil {
		return err
	}
	cmd.Printf("Removed job %s from saved jobs.\n", jobID)
	return nil
}

func runJobsApply(cmd *cobra.Command, args []string) error {
	app, jobID, err := appWithJobID(args)
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	service := talentpath.NewService(app.client)
	letter := applyCoverLetter
	if applyDraft {
		letter, err = draftCoverLetter(cmd.Context(), app, service, jobID)
		if err != nil {
			return err
		}
		cmd.Println("Drafted cover letter:")
		cmd.Println(letter)
	}

	application, err := service.Apply(cmd.Context(), jobID, letter)
	if err != nil {
		return err
	}
	cmd.Printf("Applied to job %s (application #%s, status %s).\n",
		jobID, application.ApplicationID, application.Status)
	return nil
}

// draftCoverLetter builds a letter from the resolved profile and the
// posting. It needs GEMINI_API_KEY (or api_key in the config file).
func draftCoverLetter(ctx context.Context, app *app, service *talentpath.Service, jobID string) (string, error) {
	if app.cfg.APIKey == "" {
		return "", fmt.Errorf("cover letter drafting needs an API key (set GEMINI_API_KEY)")
	}

	prof, err := profile.NewAggregator(app.client, app.store, app.logger).Load(ctx)
	if err != nil {
		return "", err
	}
	job, err := service.Job(ctx, jobID)
	if err != nil {
		return "", err
	}

	client, err := coverletter.NewClient(ctx, nil, app.cfg.APIKey)
	if err != nil {
		return "", err
	}
	defer func() { _ = client.Close() }()

	return coverletter.NewDrafter(client).Draft(ctx, prof.CV, job)
}

func runJobsSimilar(cmd *cobra.Command, args []string) error {
	app, jobID, err := appWithJobID(args)
	if err != nil {
		return err
	}

	jobs, err := talentpath.NewService(app.client).SimilarJobs(cmd.Context(), jobID)
	if err != nil {
		return err
	}
	app.printer.PrintJobList(&talentpath.JobPage{Results: jobs, Total: len(jobs), Page: 1, TotalPages: 1})
	return nil
}

func runJobsRecommended(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	jobs, err := talentpath.NewService(app.client).RecommendedJobs(cmd.Context())
	if err != nil {
		return err
	}
	app.printer.PrintJobList(&talentpath.JobPage{Results: jobs, Total: len(jobs), Page: 1, TotalPages: 1})
	return nil
}

func appWithJobID(args []string) (*app, string, error) {
	return appWithID(args, "job")
}
