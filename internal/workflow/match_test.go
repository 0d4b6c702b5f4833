package workflow

import (
	"context"
	"strings"
	"testing"

	"resumeflow/internal/errors"
	"resumeflow/internal/types"
)

func TestSkillsMatcherMissingInputs(t *testing.T) {
	stage := NewSkillsMatcher(&stubProvider{}, testLogger())
	state := stage.Process(context.Background(), &State{})

	if len(state.Errors) != 1 || state.Errors[0] != "Missing user profile or job matches for skills matching" {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
}

func TestSkillsMatcherSingleJob(t *testing.T) {
	profile := sampleProfile()
	job := types.JobDescription{Title: "Engineer", Company: "Acme", Description: "Go"}
	matches := []types.SkillMatch{{Skill: "Go", UserHasSkill: true, MatchScore: 0.9}}

	stage := NewSkillsMatcher(&stubProvider{matches: matches}, testLogger())
	state := stage.Process(context.Background(), &State{
		UserProfile:    &profile,
		JobDescription: &job,
	})

	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	if len(state.SkillMatches) != 1 || state.SkillMatches[0].Skill != "Go" {
		t.Errorf("unexpected matches: %v", state.SkillMatches)
	}
	if len(state.StepsCompleted) != 1 || state.StepsCompleted[0] != StepSkillsMatching {
		t.Errorf("unexpected steps: %v", state.StepsCompleted)
	}
}

func TestSkillsMatcherPerListing(t *testing.T) {
	profile := sampleProfile()
	provider := &stubProvider{matches: []types.SkillMatch{{Skill: "Go", UserHasSkill: true, MatchScore: 0.8}}}

	stage := NewSkillsMatcher(provider, testLogger())
	state := stage.Process(context.Background(), &State{
		UserProfile: &profile,
		JobMatches: &types.JobMatches{
			Jobs: []types.JobListing{
				{Title: "Engineer", Company: "Acme"},
				{Title: "Developer", Company: "Initech"},
			},
			TotalResults: 2,
		},
	})

	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	if provider.matchSkillsCalls != 2 {
		t.Errorf("expected one matcher pass per listing, got %d", provider.matchSkillsCalls)
	}
	if len(state.JobSkillMatches) != 2 {
		t.Fatalf("expected 2 job match entries, got %d", len(state.JobSkillMatches))
	}
	if state.JobSkillMatches[1].JobListing.Company != "Initech" {
		t.Errorf("unexpected pairing: %+v", state.JobSkillMatches[1])
	}
}

func TestSkillsMatcherZeroListings(t *testing.T) {
	profile := sampleProfile()
	stage := NewSkillsMatcher(&stubProvider{}, testLogger())

	state := stage.Process(context.Background(), &State{
		UserProfile: &profile,
		JobMatches:  &types.JobMatches{TotalResults: 0},
	})

	if len(state.Errors) != 0 {
		t.Fatalf("zero listings should not error: %v", state.Errors)
	}
	if state.JobSkillMatches == nil {
		t.Error("expected an empty (non-nil) match list")
	}
	if len(state.StepsCompleted) != 1 {
		t.Errorf("expected completion mark: %v", state.StepsCompleted)
	}
}

func TestSkillsMatcherModelFailure(t *testing.T) {
	profile := sampleProfile()
	job := types.JobDescription{Title: "Engineer", Company: "Acme", Description: "Go"}

	stage := NewSkillsMatcher(&stubProvider{
		matchErr: errors.NewAIError(errors.ErrCodeAIResponseParse, "not an array", nil),
	}, testLogger())

	state := stage.Process(context.Background(), &State{
		UserProfile:    &profile,
		JobDescription: &job,
	})

	if len(state.Errors) != 1 || !strings.HasPrefix(state.Errors[0], "Skills matching error: ") {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
	if len(state.StepsCompleted) != 0 {
		t.Errorf("failed stage must not mark completion: %v", state.StepsCompleted)
	}
}
