package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resumeflow/internal/types"
)

func TestGenerateSearchKeywords(t *testing.T) {
	profile := sampleProfile()
	keywords := generateSearchKeywords(&profile)

	if len(keywords) > 10 {
		t.Errorf("keywords capped at 10, got %d", len(keywords))
	}

	// Top 5 skills come first.
	for i, want := range []string{"Python", "AWS", "Go", "Docker", "Kubernetes"} {
		if keywords[i] != want {
			t.Errorf("keyword %d = %q, want %q", i, keywords[i], want)
		}
	}

	// Recent position titles follow.
	joined := strings.Join(keywords, "|")
	if !strings.Contains(joined, "Senior Engineer") || !strings.Contains(joined, "Engineer") {
		t.Errorf("expected recent positions in keywords: %v", keywords)
	}

	// Duplicates are removed: "Go" and "Python" appear in both skills
	// and recent technologies.
	seen := make(map[string]int)
	for _, keyword := range keywords {
		seen[strings.ToLower(keyword)]++
	}
	for keyword, count := range seen {
		if count > 1 {
			t.Errorf("keyword %q appears %d times", keyword, count)
		}
	}
}

func TestIsRemoteLocation(t *testing.T) {
	tests := []struct {
		location string
		remote   bool
	}{
		{"Remote", true},
		{"ANYWHERE", true},
		{"global", true},
		{"Austin, TX", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isRemoteLocation(tt.location); got != tt.remote {
			t.Errorf("isRemoteLocation(%q) = %v, want %v", tt.location, got, tt.remote)
		}
	}
}

func TestIsRemoteListing(t *testing.T) {
	tests := []struct {
		name    string
		listing types.JobListing
		remote  bool
	}{
		{"remote in location", types.JobListing{Location: "Remote, USA"}, true},
		{"wfh in description", types.JobListing{Description: "Flexible WFH policy"}, true},
		{"work from home", types.JobListing{Description: "This is a work from home position"}, true},
		{"on site", types.JobListing{Location: "Austin, TX", Description: "On-site role"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRemoteListing(tt.listing); got != tt.remote {
				t.Errorf("isRemoteListing() = %v, want %v", got, tt.remote)
			}
		})
	}
}

func TestJobSearchTruncatesDescriptions(t *testing.T) {
	long := strings.Repeat("x", 800) + " remote"
	searcher := &stubSearcher{listings: []types.JobListing{
		{Title: "Engineer", Company: "Acme", Description: long},
	}}

	profile := sampleProfile()
	stage := NewJobSearch(searcher, testLogger())
	state := stage.Process(context.Background(), &State{UserProfile: &profile})

	if len(state.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", state.Errors)
	}
	job := state.JobMatches.Jobs[0]
	if len(job.Description) != descriptionLimit {
		t.Errorf("expected description truncated to %d, got %d", descriptionLimit, len(job.Description))
	}
	// The remote indicator sits past the truncation point but detection
	// ran on the full text.
	if !job.IsRemote {
		t.Error("expected remote detection before truncation")
	}
}

func TestJobSearchZeroListingsIsNotAnError(t *testing.T) {
	profile := sampleProfile()
	stage := NewJobSearch(&stubSearcher{}, testLogger())
	state := stage.Process(context.Background(), &State{UserProfile: &profile})

	if len(state.Errors) != 0 {
		t.Fatalf("zero listings should not be an error: %v", state.Errors)
	}
	if state.JobMatches == nil || state.JobMatches.TotalResults != 0 {
		t.Errorf("expected total_results 0, got %+v", state.JobMatches)
	}
	if len(state.StepsCompleted) != 1 || state.StepsCompleted[0] != StepJobSearch {
		t.Errorf("expected search step completed, got %v", state.StepsCompleted)
	}
}

func TestJobSearchMissingProfile(t *testing.T) {
	stage := NewJobSearch(&stubSearcher{}, testLogger())
	state := stage.Process(context.Background(), &State{})

	if len(state.Errors) != 1 || state.Errors[0] != "User profile not found for job search" {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
	if len(state.StepsCompleted) != 0 {
		t.Errorf("failed stage must not mark completion: %v", state.StepsCompleted)
	}
}

func TestJobSearchParameterDefaults(t *testing.T) {
	searcher := &stubSearcher{}
	profile := sampleProfile()
	profile.ContactInfo.Location = ""

	stage := NewJobSearch(searcher, testLogger())
	stage.Process(context.Background(), &State{UserProfile: &profile})

	if searcher.lastParams.Location != "Remote" {
		t.Errorf("expected default location Remote, got %q", searcher.lastParams.Location)
	}
	if searcher.lastParams.MaxResults != 20 || searcher.lastParams.HoursOld != 72 {
		t.Errorf("unexpected default parameters: %+v", searcher.lastParams)
	}
	if len(searcher.lastParams.Sites) != 3 {
		t.Errorf("expected default site list, got %v", searcher.lastParams.Sites)
	}
	if got := len(strings.Fields(searcher.lastParams.Query)); got > 3 {
		t.Errorf("query should use at most 3 keywords, got %d", got)
	}
}

func TestJobSearchRemoteLocationOverride(t *testing.T) {
	searcher := &stubSearcher{}
	profile := sampleProfile()

	stage := NewJobSearch(searcher, testLogger())
	state := stage.Process(context.Background(), &State{
		UserProfile:    &profile,
		SearchLocation: "anywhere",
	})

	if searcher.lastParams.Location != "Remote" {
		t.Errorf("remote-style locations search as Remote, got %q", searcher.lastParams.Location)
	}
	if !state.JobMatches.IsRemoteSearch {
		t.Error("expected remote search flag")
	}
	if state.JobMatches.SearchLocation != "anywhere" {
		t.Errorf("the requested location is preserved in the result, got %q", state.JobMatches.SearchLocation)
	}
}

func TestJobSearchServiceFailure(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("boards unreachable")}
	profile := sampleProfile()

	stage := NewJobSearch(searcher, testLogger())
	state := stage.Process(context.Background(), &State{UserProfile: &profile})

	if len(state.Errors) != 1 || !strings.HasPrefix(state.Errors[0], "Job search failed: ") {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
	if state.JobMatches != nil {
		t.Error("failed search must not store job matches")
	}
}
