package jobsearch

import (
	"context"

	"resumeflow/internal/types"
)

// Params describes one job-board query. Query is the space-joined
// search term, not the full keyword list.
type Params struct {
	Sites      []string
	Query      string
	Location   string
	MaxResults int
	HoursOld   int
}

// Searcher is the job-board capability consumed by the search stage.
// Implementations return listings with untruncated descriptions; the
// caller decides how much of each description to keep.
type Searcher interface {
	SearchJobs(ctx context.Context, params Params) ([]types.JobListing, error)
}
