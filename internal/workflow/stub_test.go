package workflow

import (
	"context"

	"resumeflow/internal/ai"
	"resumeflow/internal/errors"
	"resumeflow/internal/jobsearch"
	"resumeflow/internal/types"
)

// stubProvider is a deterministic ai.Provider substitute. Each operation
// returns the configured value or error.
type stubProvider struct {
	profile          types.UserProfile
	profileErr       error
	job              types.JobDescription
	jobErr           error
	matches          []types.SkillMatch
	matchErr         error
	summary          string
	summaryErr       error
	coverLetter      string
	coverLetterErr   error
	matchSkillsCalls int
}

var _ ai.Provider = (*stubProvider)(nil)

func (p *stubProvider) ExtractProfile(ctx context.Context, rawProfile string) (types.UserProfile, *ai.TokenUsage, error) {
	return p.profile, nil, p.profileErr
}

func (p *stubProvider) AnalyzeJob(ctx context.Context, rawJob string) (types.JobDescription, *ai.TokenUsage, error) {
	return p.job, nil, p.jobErr
}

func (p *stubProvider) MatchSkills(ctx context.Context, profile types.UserProfile, job types.JobDescription) ([]types.SkillMatch, *ai.TokenUsage, error) {
	p.matchSkillsCalls++
	return p.matches, nil, p.matchErr
}

func (p *stubProvider) GenerateSummary(ctx context.Context, profile types.UserProfile, job types.JobDescription, matches []types.SkillMatch) (string, *ai.TokenUsage, error) {
	return p.summary, nil, p.summaryErr
}

func (p *stubProvider) GenerateCoverLetter(ctx context.Context, profile types.UserProfile, listing types.JobListing, matches []types.SkillMatch) (string, *ai.TokenUsage, error) {
	return p.coverLetter, nil, p.coverLetterErr
}

func (p *stubProvider) GetModelInfo(ctx context.Context) *ai.ModelInfo {
	return &ai.ModelInfo{Name: "stub", Available: true}
}

func (p *stubProvider) Close() error { return nil }

// stubSearcher is a deterministic jobsearch.Searcher substitute
type stubSearcher struct {
	listings   []types.JobListing
	err        error
	lastParams jobsearch.Params
}

var _ jobsearch.Searcher = (*stubSearcher)(nil)

func (s *stubSearcher) SearchJobs(ctx context.Context, params jobsearch.Params) ([]types.JobListing, error) {
	s.lastParams = params
	return s.listings, s.err
}

func testLogger() *errors.Logger {
	logger, _ := errors.New("error")
	return logger
}

func sampleProfile() types.UserProfile {
	return types.UserProfile{
		FullName: "Jane Doe",
		ContactInfo: types.ContactInfo{
			Email:    "jane@example.com",
			Location: "Austin, TX",
		},
		ProfessionalSummary: "Backend engineer",
		Skills:              []string{"Python", "AWS", "Go", "Docker", "Kubernetes", "Terraform"},
		Experience: []types.Experience{
			{
				Company:          "Acme",
				Position:         "Senior Engineer",
				StartDate:        types.NewDate(2021, 3, 1),
				Description:      "Built backend services",
				KeyAchievements:  []string{"Cut latency by 40%"},
				TechnologiesUsed: []string{"Go", "PostgreSQL", "Redis", "Kafka"},
			},
			{
				Company:          "Initech",
				Position:         "Engineer",
				StartDate:        types.NewDate(2018, 6, 1),
				EndDate:          types.NewDate(2021, 2, 1),
				Description:      "Maintained data pipelines",
				TechnologiesUsed: []string{"Python", "Airflow"},
			},
		},
	}
}
