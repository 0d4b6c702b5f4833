package ai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"resumeflow/internal/types"

	"google.golang.org/api/googleapi"
)

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "dial tcp: i/o timeout" }
func (fakeNetError) Timeout() bool   { return true }
func (fakeNetError) Temporary() bool { return true }

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil error", nil, false},
		{"network error", fakeNetError{}, true},
		{"wrapped network error", fmt.Errorf("call failed: %w", fakeNetError{}), true},
		{"rate limited", &googleapi.Error{Code: http.StatusTooManyRequests}, true},
		{"server error", &googleapi.Error{Code: http.StatusInternalServerError}, true},
		{"bad gateway", &googleapi.Error{Code: http.StatusBadGateway}, true},
		{"unavailable", &googleapi.Error{Code: http.StatusServiceUnavailable}, true},
		{"gateway timeout", &googleapi.Error{Code: http.StatusGatewayTimeout}, true},
		{"unauthorized", &googleapi.Error{Code: http.StatusUnauthorized}, false},
		{"bad request", &googleapi.Error{Code: http.StatusBadRequest}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.retryable {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.retryable)
			}
		})
	}
}

func TestTopMatchedSkills(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "Go", UserHasSkill: true, MatchScore: 0.95},
		{Skill: "Kubernetes", UserHasSkill: false, MatchScore: 0.9},
		{Skill: "PostgreSQL", UserHasSkill: true, MatchScore: 0.5},
		{Skill: "Docker", UserHasSkill: true, MatchScore: 0.8},
		{Skill: "Terraform", UserHasSkill: true, MatchScore: 0.75},
		{Skill: "Python", UserHasSkill: true, MatchScore: 0.72},
		{Skill: "AWS", UserHasSkill: true, MatchScore: 0.71},
		{Skill: "Kafka", UserHasSkill: true, MatchScore: 0.99},
	}

	skills := topMatchedSkills(matches, 5)
	if len(skills) != 5 {
		t.Fatalf("expected 5 skills, got %d: %v", len(skills), skills)
	}
	// Skills the user lacks or that score at/below 0.7 never appear.
	for _, skill := range skills {
		if skill == "Kubernetes" || skill == "PostgreSQL" {
			t.Errorf("unexpected skill in top matches: %s", skill)
		}
	}
	if skills[0] != "Go" {
		t.Errorf("expected Go first, got %s", skills[0])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 500); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}

	long := make([]byte, 600)
	for i := range long {
		long[i] = 'a'
	}
	got := truncate(string(long), 500)
	if len(got) != 503 {
		t.Errorf("expected 503 bytes (500 + ellipsis), got %d", len(got))
	}
	if got[500:] != "..." {
		t.Errorf("expected trailing ellipsis, got %q", got[500:])
	}
}

func TestBuildMatchProjections(t *testing.T) {
	profile := types.UserProfile{
		FullName: "Jane Doe",
		Skills:   []string{"Go", "SQL"},
		Experience: []types.Experience{
			{Company: "Acme", Position: "Engineer", Description: "Built APIs", TechnologiesUsed: []string{"Go"}},
		},
	}
	job := types.JobDescription{
		Title:       "Backend Engineer",
		Company:     "Initech",
		Description: "Go services",
	}

	profileJSON, jobJSON, err := buildMatchProjections(profile, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The projection carries skills and experience but not contact details.
	for _, want := range []string{`"Go"`, `"Acme"`, `"Engineer"`} {
		if !strings.Contains(profileJSON, want) {
			t.Errorf("profile projection missing %s:\n%s", want, profileJSON)
		}
	}
	if strings.Contains(profileJSON, "Jane Doe") {
		t.Errorf("profile projection should not include the candidate name:\n%s", profileJSON)
	}
	if !strings.Contains(jobJSON, "Initech") || !strings.Contains(jobJSON, "Backend Engineer") {
		t.Errorf("job projection missing fields:\n%s", jobJSON)
	}
}
