package workflow

import (
	"context"
	"fmt"
	"strings"

	"resumeflow/internal/ai"
	"resumeflow/internal/errors"
	"resumeflow/internal/types"
)

// CoverLetterGenerator writes one cover letter per matched listing and
// keeps those at or above the match threshold. The letter body comes
// from one model call per listing; percentage and notes are
// deterministic.
type CoverLetterGenerator struct {
	provider ai.Provider
	logger   *errors.Logger
}

// NewCoverLetterGenerator creates the cover letter generation stage
func NewCoverLetterGenerator(provider ai.Provider, logger *errors.Logger) *CoverLetterGenerator {
	return &CoverLetterGenerator{provider: provider, logger: logger}
}

// Name implements Stage
func (g *CoverLetterGenerator) Name() string {
	return StepCoverLetterGeneration
}

// Process implements Stage
func (g *CoverLetterGenerator) Process(ctx context.Context, state *State) *State {
	if state.UserProfile == nil || state.JobSkillMatches == nil {
		state.AddError("Missing required data for cover letter generation")
		return state
	}
	profile := *state.UserProfile

	letters := make([]types.GeneratedCoverLetter, 0, len(state.JobSkillMatches))
	for _, jobMatch := range state.JobSkillMatches {
		listing := jobMatch.JobListing
		matches := jobMatch.SkillMatches

		content, tokens, err := g.provider.GenerateCoverLetter(ctx, profile, listing, matches)
		if err != nil {
			state.AddError("Cover letter generation error: %v", err)
			return state
		}

		g.logger.Debug("Cover letter generated",
			"job_title", listing.Title,
			"company", listing.Company,
			"tokens", tokenTotal(tokens))

		letters = append(letters, types.GeneratedCoverLetter{
			UserProfile:        profile,
			JobDescription:     listing.ToJobDescription(),
			SkillMatches:       matches,
			CoverLetterContent: content,
			TailoringNotes:     coverLetterTailoringNotes(matches, listing),
			MatchPercentage:    matchPercentage(matches),
		})
	}

	filtered := make([]types.GeneratedCoverLetter, 0, len(letters))
	for _, letter := range letters {
		if letter.MatchPercentage >= state.MatchThreshold {
			filtered = append(filtered, letter)
		}
	}

	g.logger.Info("Cover letters generated",
		"generated", len(letters),
		"kept", len(filtered),
		"match_threshold", state.MatchThreshold)

	state.GeneratedCoverLetters = filtered
	state.MarkCompleted(StepCoverLetterGeneration)
	return state
}

// coverLetterTailoringNotes builds the deterministic suggestion list in
// a fixed order: weak misses, strong matches, company research, follow
// up.
func coverLetterTailoringNotes(matches []types.SkillMatch, listing types.JobListing) []string {
	var notes []string

	var missing []string
	for _, match := range matches {
		if !match.UserHasSkill && match.MatchScore < 0.3 {
			missing = append(missing, match.Skill)
		}
	}
	if len(missing) > 0 {
		notes = append(notes, fmt.Sprintf(
			"Consider highlighting transferable skills or learning interest in: %s",
			strings.Join(missing[:min(len(missing), 3)], ", ")))
	}

	var strong []string
	for _, match := range matches {
		if match.UserHasSkill && match.MatchScore >= 0.8 {
			strong = append(strong, match.Skill)
		}
	}
	if len(strong) > 0 {
		notes = append(notes, fmt.Sprintf(
			"Emphasize these strong skill matches in your cover letter: %s",
			strings.Join(strong[:min(len(strong), 3)], ", ")))
	}

	notes = append(notes, fmt.Sprintf(
		"Research %s's recent news, values, and culture to personalize your letter",
		listing.Company))
	notes = append(notes, "Consider following up within 1-2 weeks if you don't hear back")

	return notes
}
