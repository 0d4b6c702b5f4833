package workflow

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"resumeflow/internal/errors"
)

func TestProfileExtractorMissingInput(t *testing.T) {
	stage := NewProfileExtractor(&stubProvider{}, testLogger())
	state := stage.Process(context.Background(), &State{})

	if len(state.Errors) != 1 || state.Errors[0] != "No user profile data provided" {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
	if state.UserProfile != nil {
		t.Error("profile must stay unset")
	}
}

func TestProfileExtractorSuccess(t *testing.T) {
	profile := sampleProfile()
	stage := NewProfileExtractor(&stubProvider{profile: profile}, testLogger())

	state := stage.Process(context.Background(), &State{UserProfileRaw: "Jane Doe, backend engineer..."})
	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	if state.UserProfile == nil || state.UserProfile.FullName != "Jane Doe" {
		t.Errorf("unexpected profile: %+v", state.UserProfile)
	}
	if len(state.StepsCompleted) != 1 || state.StepsCompleted[0] != StepProfileExtraction {
		t.Errorf("unexpected steps: %v", state.StepsCompleted)
	}
}

func TestProfileExtractorFailure(t *testing.T) {
	stage := NewProfileExtractor(&stubProvider{
		profileErr: errors.NewAIError(errors.ErrCodeAIResponseParse, "not JSON", nil),
	}, testLogger())

	state := stage.Process(context.Background(), &State{UserProfileRaw: "some text"})
	if len(state.Errors) != 1 || !strings.HasPrefix(state.Errors[0], "Profile extraction error: ") {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
	if state.UserProfile != nil {
		t.Error("no partial profile may be stored on failure")
	}
}

func TestProfileExtractorStructuredInputBypassesModel(t *testing.T) {
	profile := sampleProfile()
	raw, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// The provider would fail if called; structured input never reaches it.
	stage := NewProfileExtractor(&stubProvider{
		profileErr: errors.NewAIError(errors.ErrCodeAIServiceFailed, "should not be called", nil),
	}, testLogger())

	state := stage.Process(context.Background(), &State{UserProfileRaw: string(raw)})
	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	if state.UserProfile == nil || state.UserProfile.FullName != profile.FullName {
		t.Errorf("unexpected profile: %+v", state.UserProfile)
	}
}

func TestProfileExtractorMalformedJSONFallsBackToModel(t *testing.T) {
	profile := sampleProfile()
	stage := NewProfileExtractor(&stubProvider{profile: profile}, testLogger())

	// Starts with a brace but is not a structured profile.
	state := stage.Process(context.Background(), &State{UserProfileRaw: `{"note": "just text"}`})
	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	if state.UserProfile == nil || state.UserProfile.FullName != "Jane Doe" {
		t.Errorf("expected model extraction fallback, got %+v", state.UserProfile)
	}
}
