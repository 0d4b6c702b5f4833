package workflow

import (
	"context"
	"encoding/json"
	"strings"

	"resumeflow/internal/ai"
	"resumeflow/internal/errors"
	"resumeflow/internal/types"
)

// ProfileExtractor turns the raw profile text into a structured
// UserProfile. Input that is already a JSON profile is decoded directly
// without involving the model.
type ProfileExtractor struct {
	provider ai.Provider
	logger   *errors.Logger
}

// NewProfileExtractor creates the profile extraction stage
func NewProfileExtractor(provider ai.Provider, logger *errors.Logger) *ProfileExtractor {
	return &ProfileExtractor{provider: provider, logger: logger}
}

// Name implements Stage
func (e *ProfileExtractor) Name() string {
	return StepProfileExtraction
}

// Process implements Stage
func (e *ProfileExtractor) Process(ctx context.Context, state *State) *State {
	raw := strings.TrimSpace(state.UserProfileRaw)
	if raw == "" {
		state.AddError("No user profile data provided")
		return state
	}

	if profile, ok := decodeStructuredProfile(raw); ok {
		e.logger.Debug("Profile input is already structured, skipping extraction",
			"full_name", profile.FullName)
		state.UserProfile = profile
		state.MarkCompleted(StepProfileExtraction)
		return state
	}

	profile, tokens, err := e.provider.ExtractProfile(ctx, raw)
	if err != nil {
		state.AddError("Profile extraction error: %v", err)
		return state
	}

	e.logger.Info("Profile extracted",
		"full_name", profile.FullName,
		"skill_count", len(profile.Skills),
		"experience_count", len(profile.Experience),
		"tokens", tokenTotal(tokens))

	state.UserProfile = &profile
	state.MarkCompleted(StepProfileExtraction)
	return state
}

// decodeStructuredProfile recognizes pre-structured JSON profile input.
// The decode is strict about shape but requires only the fields the
// extraction prompt itself requires.
func decodeStructuredProfile(raw string) (*types.UserProfile, bool) {
	if !strings.HasPrefix(raw, "{") {
		return nil, false
	}

	var profile types.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, false
	}
	if profile.FullName == "" || profile.ContactInfo.Email == "" {
		return nil, false
	}
	return &profile, true
}

func tokenTotal(tokens *ai.TokenUsage) int64 {
	if tokens == nil {
		return 0
	}
	return tokens.TotalTokens
}
