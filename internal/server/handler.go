package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"resumeflow/internal/ai"
	"resumeflow/internal/jobsearch"
	"resumeflow/internal/observability"
	"resumeflow/internal/workflow"

	"go.opentelemetry.io/otel/attribute"
)

// createResumeHandler wraps the resume workflow with observability
func (s *Server) createResumeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeflow.api")
		ctx, span := tracer.Start(ctx, "api.resume")
		defer span.End()

		// Parse request
		var req ResumeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Missing inputs are reported by the workflow itself, but an
		// entirely empty request never reaches the pipeline.
		if strings.TrimSpace(req.UserProfile) == "" && strings.TrimSpace(req.JobDescription) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Empty request", "userProfile and jobDescription fields are required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.profile_length", len(req.UserProfile)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "resume"),
		)

		services, err := ai.NewServices(s.AppConfig, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI services", err.Error(), http.StatusInternalServerError)
			return
		}
		defer s.closeServices(services)

		pipeline := workflow.NewResumePipeline(services, s.Logger)
		state := &workflow.State{
			UserProfileRaw:    req.UserProfile,
			JobDescriptionRaw: req.JobDescription,
		}

		metrics := om.GetMetrics()
		metrics.TrackWorkflow(ctx, "resume", func(ctx context.Context) *observability.WorkflowResult {
			state = pipeline.Run(ctx, state)
			return &observability.WorkflowResult{
				ErrorCount:  len(state.Errors),
				StepsRun:    len(state.StepsCompleted),
				ArtifactSet: state.GeneratedResume != nil,
			}
		})

		outcome := state.Outcome()
		success := outcome.Resume != nil

		metrics.RecordBusinessMetric(ctx, "resume_generated", success,
			attribute.Int("error_count", len(outcome.Errors)))
		span.SetAttributes(
			attribute.Bool("success", success),
			attribute.Int("workflow.error_count", len(outcome.Errors)),
		)

		s.writeOutcome(w, outcome, success)
	}
}

// createCoverLetterHandler wraps the cover letter workflow with observability
func (s *Server) createCoverLetterHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumeflow.api")
		ctx, span := tracer.Start(ctx, "api.coverletter")
		defer span.End()

		var req CoverLetterRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.UserProfile) == "" {
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing user profile", "userProfile field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.profile_length", len(req.UserProfile)),
			attribute.String("request.location", req.Location),
			attribute.String("operation", "coverletter"),
		)

		services, err := ai.NewServices(s.AppConfig, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI services", err.Error(), http.StatusInternalServerError)
			return
		}
		defer s.closeServices(services)

		searcher, err := jobsearch.NewClient(&s.AppConfig.Search, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create job search client", err.Error(), http.StatusInternalServerError)
			return
		}

		pipeline := workflow.NewCoverLetterPipeline(services, searcher, s.Logger)
		state := s.buildCoverLetterState(req)

		metrics := om.GetMetrics()
		metrics.TrackWorkflow(ctx, "cover_letter", func(ctx context.Context) *observability.WorkflowResult {
			state = pipeline.Run(ctx, state)
			return &observability.WorkflowResult{
				ErrorCount:  len(state.Errors),
				StepsRun:    len(state.StepsCompleted),
				ArtifactSet: state.GeneratedCoverLetters != nil,
			}
		})

		outcome := state.Outcome()
		// A run that searched successfully but matched nothing is still a
		// success with an empty letter list.
		success := state.GeneratedCoverLetters != nil

		metrics.RecordBusinessMetric(ctx, "cover_letter_generated", success,
			attribute.Int("letters", len(outcome.CoverLetters)),
			attribute.Int("error_count", len(outcome.Errors)))
		span.SetAttributes(
			attribute.Bool("success", success),
			attribute.Int("response.letters", len(outcome.CoverLetters)),
			attribute.Int("workflow.error_count", len(outcome.Errors)),
		)

		s.writeOutcome(w, outcome, success)
	}
}

// buildCoverLetterState creates the initial workflow state from the
// request, falling back to configured workflow defaults.
func (s *Server) buildCoverLetterState(req CoverLetterRequest) *workflow.State {
	wf := s.AppConfig.Workflow

	location := req.Location
	if location == "" {
		location = wf.Location
	}
	sites := req.Sites
	if len(sites) == 0 {
		sites = s.AppConfig.Search.Sites
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = wf.MaxResults
	}
	hoursOld := req.HoursOld
	if hoursOld <= 0 {
		hoursOld = wf.HoursOld
	}
	threshold := wf.MatchThreshold
	if req.MatchThreshold != nil {
		threshold = *req.MatchThreshold
	}

	return &workflow.State{
		UserProfileRaw: req.UserProfile,
		SearchLocation: location,
		JobSites:       sites,
		MaxResults:     maxResults,
		HoursOld:       hoursOld,
		MatchThreshold: threshold,
	}
}

// writeOutcome writes the terminal workflow outcome. Runs that produced
// their artifact return 200 even with partial errors; runs without an
// artifact return 422.
func (s *Server) writeOutcome(w http.ResponseWriter, outcome workflow.Outcome, success bool) {
	w.Header().Set("Content-Type", "application/json")
	if !success {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		s.Logger.LogError(err, "Failed to encode workflow outcome")
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// closeServices releases per-request AI provider resources
func (s *Server) closeServices(services *ai.Services) {
	if err := services.Close(); err != nil {
		s.Logger.Warn("Failed to close AI services", "error", err)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		limited := originalMiddleware(next)
		return func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			limited(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		}
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
