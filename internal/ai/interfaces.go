package ai

import (
	"context"

	"resumeflow/internal/types"
)

// Provider is the LLM capability consumed by the workflow stages. All
// methods return token usage information - callers can ignore it if not
// needed. Stages receive a Provider so tests can substitute a
// deterministic stub.
type Provider interface {
	// ExtractProfile turns free-form resume/profile text into a
	// structured UserProfile.
	ExtractProfile(ctx context.Context, rawProfile string) (types.UserProfile, *TokenUsage, error)

	// AnalyzeJob turns free-form job posting text into a structured
	// JobDescription with categorized, weighted requirements.
	AnalyzeJob(ctx context.Context, rawJob string) (types.JobDescription, *TokenUsage, error)

	// MatchSkills scores the profile against one job and returns the
	// per-skill matches. A reply that is not a JSON array is an error;
	// individually invalid elements are skipped.
	MatchSkills(ctx context.Context, profile types.UserProfile, job types.JobDescription) ([]types.SkillMatch, *TokenUsage, error)

	// GenerateSummary writes a tailored professional summary for a
	// resume. The returned text is used verbatim after trimming.
	GenerateSummary(ctx context.Context, profile types.UserProfile, job types.JobDescription, matches []types.SkillMatch) (string, *TokenUsage, error)

	// GenerateCoverLetter writes the body paragraphs of a cover letter
	// for one job listing.
	GenerateCoverLetter(ctx context.Context, profile types.UserProfile, listing types.JobListing, matches []types.SkillMatch) (string, *TokenUsage, error)

	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
