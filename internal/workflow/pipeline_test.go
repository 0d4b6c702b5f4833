package workflow

import (
	"context"
	"strings"
	"testing"

	"resumeflow/internal/errors"
	"resumeflow/internal/types"
)

// panicStage is a stage that always panics, for boundary tests
type panicStage struct{}

func (panicStage) Name() string { return "panic_stage" }
func (panicStage) Process(ctx context.Context, state *State) *State {
	panic("boom")
}

// recordingStage records that it ran
type recordingStage struct {
	name string
	ran  *[]string
}

func (s recordingStage) Name() string { return s.name }
func (s recordingStage) Process(ctx context.Context, state *State) *State {
	*s.ran = append(*s.ran, s.name)
	return state
}

func TestPipelineRunsEveryStageAfterFailures(t *testing.T) {
	var ran []string
	pipeline := NewPipeline("test", testLogger(),
		recordingStage{name: "first", ran: &ran},
		panicStage{},
		recordingStage{name: "last", ran: &ran},
	)

	state := pipeline.Run(context.Background(), &State{})

	if len(ran) != 2 || ran[0] != "first" || ran[1] != "last" {
		t.Errorf("expected all non-panicking stages to run: %v", ran)
	}
	if len(state.Errors) != 1 || !strings.HasPrefix(state.Errors[0], "panic_stage error: ") {
		t.Errorf("expected panic converted to an error entry: %v", state.Errors)
	}
}

func TestResumePipelineEndToEnd(t *testing.T) {
	profile := sampleProfile()
	job := types.JobDescription{Title: "Backend Engineer", Company: "Acme", Description: "Go services"}
	matches := []types.SkillMatch{
		{Skill: "Go", UserHasSkill: true, MatchScore: 0.9},
		{Skill: "Docker", UserHasSkill: false, MatchScore: 0.0},
	}
	provider := &stubProvider{
		profile: profile,
		job:     job,
		matches: matches,
		summary: "Tailored summary.",
	}
	logger := testLogger()

	pipeline := NewPipeline("resume", logger,
		NewProfileExtractor(provider, logger),
		NewJobAnalyzer(provider, logger),
		NewSkillsMatcher(provider, logger),
		NewResumeGenerator(provider, logger),
	)

	state := pipeline.Run(context.Background(), &State{
		UserProfileRaw:    "Jane Doe...",
		JobDescriptionRaw: "We are hiring...",
	})

	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	wantSteps := []string{StepProfileExtraction, StepJobAnalysis, StepSkillsMatching, StepResumeGeneration}
	if len(state.StepsCompleted) != len(wantSteps) {
		t.Fatalf("unexpected steps: %v", state.StepsCompleted)
	}
	for i, step := range wantSteps {
		if state.StepsCompleted[i] != step {
			t.Errorf("step %d = %q, want %q", i, state.StepsCompleted[i], step)
		}
	}

	outcome := state.Outcome()
	if outcome.Resume == nil {
		t.Fatal("expected a resume in the outcome")
	}
	if outcome.Resume.MatchPercentage != 45.0 {
		t.Errorf("unexpected match percentage: %v", outcome.Resume.MatchPercentage)
	}
}

func TestResumePipelineExtractionFailureCascades(t *testing.T) {
	provider := &stubProvider{
		profileErr: errors.NewAIError(errors.ErrCodeAIResponseParse, "reply was not JSON", nil),
	}
	logger := testLogger()

	pipeline := NewPipeline("resume", logger,
		NewProfileExtractor(provider, logger),
		NewJobAnalyzer(provider, logger),
		NewSkillsMatcher(provider, logger),
		NewResumeGenerator(provider, logger),
	)

	state := pipeline.Run(context.Background(), &State{
		UserProfileRaw:    "Jane Doe...",
		JobDescriptionRaw: "We are hiring...",
	})

	// Extraction records its own error; the analyzer still succeeds on
	// its raw input; matcher and generator each record a missing-input
	// error of their own.
	if state.UserProfile != nil {
		t.Error("profile must stay unset after extraction failure")
	}
	if !strings.HasPrefix(state.Errors[0], "Profile extraction error: ") {
		t.Errorf("unexpected first error: %q", state.Errors[0])
	}
	if len(state.Errors) != 3 {
		t.Fatalf("expected 3 errors (extract, match, generate), got %v", state.Errors)
	}
	if state.Errors[1] != "Missing user profile or job matches for skills matching" {
		t.Errorf("unexpected second error: %q", state.Errors[1])
	}
	if state.Errors[2] != "Missing required data for resume generation" {
		t.Errorf("unexpected third error: %q", state.Errors[2])
	}
	if state.GeneratedResume != nil {
		t.Error("no resume may be produced")
	}
}

func TestCoverLetterPipelineEndToEnd(t *testing.T) {
	profile := sampleProfile()
	provider := &stubProvider{
		profile:     profile,
		matches:     []types.SkillMatch{{Skill: "Go", UserHasSkill: true, MatchScore: 0.8}},
		coverLetter: "Body paragraphs.",
	}
	searcher := &stubSearcher{listings: []types.JobListing{
		{Title: "Engineer", Company: "Acme", Location: "Remote", Description: "Go services"},
	}}
	logger := testLogger()

	pipeline := NewPipeline("cover_letter", logger,
		NewProfileExtractor(provider, logger),
		NewJobSearch(searcher, logger),
		NewSkillsMatcher(provider, logger),
		NewCoverLetterGenerator(provider, logger),
	)

	state := pipeline.Run(context.Background(), &State{
		UserProfileRaw: "Jane Doe...",
		SearchLocation: "Remote",
		MatchThreshold: 50.0,
	})

	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	if len(state.GeneratedCoverLetters) != 1 {
		t.Fatalf("expected 1 cover letter, got %d", len(state.GeneratedCoverLetters))
	}
	letter := state.GeneratedCoverLetters[0]
	if letter.MatchPercentage != 80.0 {
		t.Errorf("unexpected match percentage: %v", letter.MatchPercentage)
	}
	wantSteps := []string{StepProfileExtraction, StepJobSearch, StepSkillsMatching, StepCoverLetterGeneration}
	for i, step := range wantSteps {
		if state.StepsCompleted[i] != step {
			t.Errorf("step %d = %q, want %q", i, state.StepsCompleted[i], step)
		}
	}
}

func TestStateAccumulatorsAreAppendOnly(t *testing.T) {
	state := &State{}
	state.AddError("first: %s", "a")
	state.AddError("second: %s", "b")
	state.MarkCompleted("one")
	state.MarkCompleted("two")

	if len(state.Errors) != 2 || state.Errors[0] != "first: a" || state.Errors[1] != "second: b" {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
	if len(state.StepsCompleted) != 2 || state.StepsCompleted[0] != "one" {
		t.Errorf("unexpected steps: %v", state.StepsCompleted)
	}
	if !state.HasErrors() {
		t.Error("HasErrors must report recorded errors")
	}
}
