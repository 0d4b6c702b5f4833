package workflow

import (
	"context"

	"resumeflow/internal/ai"
	"resumeflow/internal/errors"
	"resumeflow/internal/types"
)

// SkillsMatcher scores the profile against jobs: one model pass against
// the analyzed JobDescription (resume workflow) or one pass per searched
// listing (cover-letter workflow). Which mode runs is decided by which
// upstream artifact is present.
type SkillsMatcher struct {
	provider ai.Provider
	logger   *errors.Logger
}

// NewSkillsMatcher creates the skills matching stage
func NewSkillsMatcher(provider ai.Provider, logger *errors.Logger) *SkillsMatcher {
	return &SkillsMatcher{provider: provider, logger: logger}
}

// Name implements Stage
func (m *SkillsMatcher) Name() string {
	return StepSkillsMatching
}

// Process implements Stage
func (m *SkillsMatcher) Process(ctx context.Context, state *State) *State {
	switch {
	case state.UserProfile != nil && state.JobDescription != nil:
		return m.matchSingle(ctx, state)
	case state.UserProfile != nil && state.JobMatches != nil:
		return m.matchListings(ctx, state)
	default:
		state.AddError("Missing user profile or job matches for skills matching")
		return state
	}
}

func (m *SkillsMatcher) matchSingle(ctx context.Context, state *State) *State {
	matches, tokens, err := m.provider.MatchSkills(ctx, *state.UserProfile, *state.JobDescription)
	if err != nil {
		state.AddError("Skills matching error: %v", err)
		return state
	}

	m.logger.Info("Skills matched",
		"job_title", state.JobDescription.Title,
		"match_count", len(matches),
		"tokens", tokenTotal(tokens))

	state.SkillMatches = matches
	state.MarkCompleted(StepSkillsMatching)
	return state
}

func (m *SkillsMatcher) matchListings(ctx context.Context, state *State) *State {
	jobMatches := make([]types.JobSkillMatches, 0, len(state.JobMatches.Jobs))

	for _, listing := range state.JobMatches.Jobs {
		matches, tokens, err := m.provider.MatchSkills(ctx, *state.UserProfile, listing.ToJobDescription())
		if err != nil {
			// Matching failures on individual listings end the batch;
			// listings already matched stay in the state.
			state.JobSkillMatches = jobMatches
			state.AddError("Skills matching error: %v", err)
			return state
		}

		m.logger.Debug("Skills matched for listing",
			"job_title", listing.Title,
			"company", listing.Company,
			"match_count", len(matches),
			"tokens", tokenTotal(tokens))

		jobMatches = append(jobMatches, types.JobSkillMatches{
			JobListing:   listing,
			SkillMatches: matches,
		})
	}

	state.JobSkillMatches = jobMatches
	state.MarkCompleted(StepSkillsMatching)
	return state
}
