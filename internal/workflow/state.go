package workflow

import (
	"fmt"

	"resumeflow/internal/types"
)

// Step names recorded in StepsCompleted, in pipeline order
const (
	StepProfileExtraction     = "profile_extraction"
	StepJobAnalysis           = "job_analysis"
	StepJobSearch             = "job_search"
	StepSkillsMatching        = "skills_matching"
	StepResumeGeneration      = "resume_generation"
	StepCoverLetterGeneration = "cover_letter_generation"
)

// State is the single mutable record threaded through every stage of one
// run. Artifact fields are set at most once; Errors and StepsCompleted
// are append-only and never cleared. The orchestrator owns the state for
// the duration of a run, so no locking is needed.
type State struct {
	// Raw inputs
	UserProfileRaw    string `json:"user_profile_raw,omitempty"`
	JobDescriptionRaw string `json:"job_description_raw,omitempty"`

	// Search and generation parameters
	SearchLocation string   `json:"search_location,omitempty"`
	JobSites       []string `json:"job_sites,omitempty"`
	MaxResults     int      `json:"max_results,omitempty"`
	HoursOld       int      `json:"hours_old,omitempty"`
	MatchThreshold float64  `json:"match_threshold,omitempty"`

	// Intermediate and terminal artifacts, nil until their stage runs
	UserProfile           *types.UserProfile           `json:"user_profile,omitempty"`
	JobDescription        *types.JobDescription        `json:"job_description,omitempty"`
	JobMatches            *types.JobMatches            `json:"job_matches,omitempty"`
	SkillMatches          []types.SkillMatch           `json:"skill_matches,omitempty"`
	JobSkillMatches       []types.JobSkillMatches      `json:"job_skill_matches,omitempty"`
	GeneratedResume       *types.GeneratedResume       `json:"generated_resume,omitempty"`
	GeneratedCoverLetters []types.GeneratedCoverLetter `json:"generated_cover_letters,omitempty"`

	Errors         []string `json:"errors,omitempty"`
	StepsCompleted []string `json:"step_completed,omitempty"`
}

// AddError appends a formatted error entry. Entries are never removed.
func (s *State) AddError(format string, args ...any) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

// MarkCompleted records that a step finished successfully
func (s *State) MarkCompleted(step string) {
	s.StepsCompleted = append(s.StepsCompleted, step)
}

// HasErrors reports whether any stage recorded an error
func (s *State) HasErrors() bool {
	return len(s.Errors) > 0
}

// Outcome is the typed result of a finished run: the terminal artifacts
// plus every accumulated error. The caller decides whether errors make
// the run a failure or a success with warnings.
type Outcome struct {
	Resume         *types.GeneratedResume       `json:"generated_resume,omitempty"`
	CoverLetters   []types.GeneratedCoverLetter `json:"generated_cover_letters,omitempty"`
	Errors         []string                     `json:"errors,omitempty"`
	StepsCompleted []string                     `json:"step_completed,omitempty"`
}

// Outcome extracts the typed result from a finished state
func (s *State) Outcome() Outcome {
	return Outcome{
		Resume:         s.GeneratedResume,
		CoverLetters:   s.GeneratedCoverLetters,
		Errors:         s.Errors,
		StepsCompleted: s.StepsCompleted,
	}
}
