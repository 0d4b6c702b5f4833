package workflow

import (
	"context"
	"strings"

	"resumeflow/internal/errors"
	"resumeflow/internal/jobsearch"
	"resumeflow/internal/types"
)

// Defaults applied when the caller leaves search parameters unset
const (
	defaultSearchLocation = "Remote"
	defaultMaxResults     = 20
	defaultHoursOld       = 72
)

var defaultJobSites = []string{"indeed", "linkedin", "glassdoor"}

// remoteIndicators are the case-insensitive substrings that mark a
// listing (or a search location) as remote.
var remoteIndicators = []string{"remote", "work from home", "wfh", "anywhere", "virtual"}

// descriptionLimit bounds how much listing description is carried
// through the pipeline.
const descriptionLimit = 500

// JobSearch queries job boards with profile-derived keywords and maps
// the raw rows into listings.
type JobSearch struct {
	searcher jobsearch.Searcher
	logger   *errors.Logger
}

// NewJobSearch creates the job search stage
func NewJobSearch(searcher jobsearch.Searcher, logger *errors.Logger) *JobSearch {
	return &JobSearch{searcher: searcher, logger: logger}
}

// Name implements Stage
func (s *JobSearch) Name() string {
	return StepJobSearch
}

// Process implements Stage
func (s *JobSearch) Process(ctx context.Context, state *State) *State {
	if state.UserProfile == nil {
		state.AddError("User profile not found for job search")
		return state
	}
	profile := state.UserProfile

	location := state.SearchLocation
	if location == "" {
		location = profile.ContactInfo.Location
	}
	if location == "" {
		location = defaultSearchLocation
	}

	sites := state.JobSites
	if len(sites) == 0 {
		sites = defaultJobSites
	}
	maxResults := state.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	hoursOld := state.HoursOld
	if hoursOld <= 0 {
		hoursOld = defaultHoursOld
	}

	keywords := generateSearchKeywords(profile)
	isRemoteSearch := isRemoteLocation(location)

	searchLocation := location
	if isRemoteSearch {
		searchLocation = defaultSearchLocation
	}

	query := strings.Join(keywords[:min(len(keywords), 3)], " ")

	listings, err := s.searcher.SearchJobs(ctx, jobsearch.Params{
		Sites:      sites,
		Query:      query,
		Location:   searchLocation,
		MaxResults: maxResults,
		HoursOld:   hoursOld,
	})
	if err != nil {
		state.AddError("Job search failed: %v", err)
		return state
	}

	jobs := make([]types.JobListing, 0, len(listings))
	for _, listing := range listings {
		// Remote detection runs over the full description before it
		// is truncated.
		listing.IsRemote = isRemoteListing(listing)
		if len(listing.Description) > descriptionLimit {
			listing.Description = listing.Description[:descriptionLimit]
		}
		jobs = append(jobs, listing)
	}

	s.logger.Info("Job search completed",
		"query", query,
		"location", searchLocation,
		"remote_search", isRemoteSearch,
		"total_results", len(jobs))

	// Zero listings is a valid outcome, not an error.
	state.JobMatches = &types.JobMatches{
		SearchLocation: location,
		SearchKeywords: keywords,
		IsRemoteSearch: isRemoteSearch,
		Jobs:           jobs,
		TotalResults:   len(jobs),
	}
	state.MarkCompleted(StepJobSearch)
	return state
}

// generateSearchKeywords derives board-query keywords from the profile:
// top skills, the two most recent position titles, and the technologies
// of the two most recent positions, deduplicated and capped at 10.
func generateSearchKeywords(profile *types.UserProfile) []string {
	var keywords []string

	keywords = append(keywords, profile.Skills[:min(len(profile.Skills), 5)]...)

	recent := profile.Experience[:min(len(profile.Experience), 2)]
	for _, exp := range recent {
		keywords = append(keywords, exp.Position)
	}
	for _, exp := range recent {
		keywords = append(keywords, exp.TechnologiesUsed[:min(len(exp.TechnologiesUsed), 3)]...)
	}

	seen := make(map[string]bool, len(keywords))
	deduped := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" || seen[strings.ToLower(keyword)] {
			continue
		}
		seen[strings.ToLower(keyword)] = true
		deduped = append(deduped, keyword)
	}

	return deduped[:min(len(deduped), 10)]
}

// isRemoteLocation reports whether the requested location means a
// remote-only search.
func isRemoteLocation(location string) bool {
	switch strings.ToLower(location) {
	case "remote", "anywhere", "global":
		return true
	}
	return false
}

// isRemoteListing checks a listing's location and description for
// remote-work indicators.
func isRemoteListing(listing types.JobListing) bool {
	location := strings.ToLower(listing.Location)
	description := strings.ToLower(listing.Description)

	for _, indicator := range remoteIndicators {
		if strings.Contains(location, indicator) || strings.Contains(description, indicator) {
			return true
		}
	}
	return false
}
