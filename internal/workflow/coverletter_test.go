package workflow

import (
	"context"
	"strings"
	"testing"

	"resumeflow/internal/types"
)

func TestCoverLetterGeneratorMissingInputs(t *testing.T) {
	stage := NewCoverLetterGenerator(&stubProvider{}, testLogger())
	state := stage.Process(context.Background(), &State{})

	if len(state.Errors) != 1 || state.Errors[0] != "Missing required data for cover letter generation" {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
}

func TestCoverLetterGeneratorThresholdFilter(t *testing.T) {
	profile := sampleProfile()
	stage := NewCoverLetterGenerator(&stubProvider{coverLetter: "Body paragraphs."}, testLogger())

	state := stage.Process(context.Background(), &State{
		UserProfile:    &profile,
		MatchThreshold: 50.0,
		JobSkillMatches: []types.JobSkillMatches{
			{
				JobListing: types.JobListing{Title: "Engineer", Company: "Acme"},
				SkillMatches: []types.SkillMatch{
					{Skill: "Go", UserHasSkill: true, MatchScore: 0.9},
				},
			},
			{
				JobListing: types.JobListing{Title: "Manager", Company: "Globex"},
				SkillMatches: []types.SkillMatch{
					{Skill: "Go", UserHasSkill: true, MatchScore: 0.4},
					{Skill: "Leadership", UserHasSkill: false, MatchScore: 0.0},
				},
			},
		},
	})

	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	// Acme scores 90, Globex (0.4/2)*100 = 20 and falls below the threshold.
	if len(state.GeneratedCoverLetters) != 1 {
		t.Fatalf("expected 1 letter after filtering, got %d", len(state.GeneratedCoverLetters))
	}
	letter := state.GeneratedCoverLetters[0]
	if letter.JobDescription.Company != "Acme" {
		t.Errorf("unexpected letter kept: %+v", letter.JobDescription)
	}
	if letter.MatchPercentage != 90.0 {
		t.Errorf("unexpected match percentage: %v", letter.MatchPercentage)
	}
	if letter.CoverLetterContent != "Body paragraphs." {
		t.Errorf("unexpected content: %q", letter.CoverLetterContent)
	}
}

func TestCoverLetterGeneratorZeroListings(t *testing.T) {
	profile := sampleProfile()
	stage := NewCoverLetterGenerator(&stubProvider{}, testLogger())

	state := stage.Process(context.Background(), &State{
		UserProfile:     &profile,
		JobSkillMatches: []types.JobSkillMatches{},
	})

	if len(state.Errors) != 0 {
		t.Fatalf("zero listings should not error: %v", state.Errors)
	}
	if state.GeneratedCoverLetters == nil || len(state.GeneratedCoverLetters) != 0 {
		t.Errorf("expected an empty letter list, got %v", state.GeneratedCoverLetters)
	}
	if len(state.StepsCompleted) != 1 || state.StepsCompleted[0] != StepCoverLetterGeneration {
		t.Errorf("unexpected steps: %v", state.StepsCompleted)
	}
}

func TestCoverLetterTailoringNotesFixedOrder(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "Rust", UserHasSkill: false, MatchScore: 0.1},
		{Skill: "Go", UserHasSkill: true, MatchScore: 0.9},
	}
	listing := types.JobListing{Title: "Engineer", Company: "Acme"}

	notes := coverLetterTailoringNotes(matches, listing)
	if len(notes) != 4 {
		t.Fatalf("expected 4 notes, got %d: %v", len(notes), notes)
	}
	if !strings.Contains(notes[0], "Rust") {
		t.Errorf("expected missing-skill note first: %q", notes[0])
	}
	if !strings.Contains(notes[1], "Go") {
		t.Errorf("expected strong-match note second: %q", notes[1])
	}
	if !strings.Contains(notes[2], "Research Acme's") {
		t.Errorf("expected company research note third: %q", notes[2])
	}
	if !strings.Contains(notes[3], "following up within 1-2 weeks") {
		t.Errorf("expected follow-up note last: %q", notes[3])
	}
}

func TestCoverLetterNotesWithoutMatches(t *testing.T) {
	notes := coverLetterTailoringNotes(nil, types.JobListing{Company: "Acme"})
	// Only the two fixed suggestions remain.
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d: %v", len(notes), notes)
	}
}

func TestCoverLetterListingConversionIsLossy(t *testing.T) {
	listing := types.JobListing{
		Title:       "Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Go services",
		JobType:     "full-time",
		Salary:      "$150k",
		JobURL:      "https://jobs.example/1",
	}

	job := listing.ToJobDescription()
	if job.Title != "Engineer" || job.Company != "Acme" || job.SalaryRange != "$150k" {
		t.Errorf("carried fields lost: %+v", job)
	}
	if len(job.Requirements) != 0 || len(job.Responsibilities) != 0 {
		t.Errorf("conversion must leave unknown fields empty: %+v", job)
	}
}
