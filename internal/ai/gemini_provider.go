package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"resumeflow/internal/config"
	resumeflowErrors "resumeflow/internal/errors"
	"resumeflow/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	operationType  string
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *resumeflowErrors.Logger
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *resumeflowErrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, resumeflowErrors.NewAIError(resumeflowErrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client:         client,
		operationType:  operationType,
		config:         cfg,
		circuitBreaker: NewAICircuitBreaker(operationType, cfg, logger),
		modelBreaker:   NewModelCircuitBreaker(operationType, cfg, logger),
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	return modelInfo
}

// executeWithRetry executes an AI operation with retry logic and exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			// Cap maximum backoff at 30 seconds
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Network errors (timeouts, connection issues) are retryable
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Google API errors with transient HTTP status codes
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// generateContent runs one generate-content call with tracing, circuit
// breaker, bounded per-call timeout, and retry. The raw reply text is
// returned for the caller to decode.
func (g *GeminiProvider) generateContent(
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (string, *TokenUsage, error) {
	tracer := otel.Tracer("resumeflow.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			// Bounded wait per external call; the underlying client
			// would otherwise block until the server responds.
			callCtx, cancel := context.WithTimeout(ctx, *g.config.Timeout)
			defer cancel()
			return g.client.Models.GenerateContent(callCtx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return "", nil, resumeflowErrors.NewAIError(resumeflowErrors.ErrCodeAIServiceFailed,
			"Failed to generate content for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return result.Text(), tokenUsage, nil
}

// executeStructuredOperation runs a JSON-schema operation and decodes the reply into Out.
func executeStructuredOperation[Out any](
	g *GeminiProvider,
	ctx context.Context,
	operationName string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (Out, *TokenUsage, error) {
	var output Out

	text, tokenUsage, err := g.generateContent(ctx, operationName, userPrompt, systemPrompt, genaiConfig, spanAttributes...)
	if err != nil {
		return output, nil, err
	}

	if err := json.Unmarshal([]byte(text), &output); err != nil {
		return output, nil, resumeflowErrors.NewAIError(resumeflowErrors.ErrCodeAIResponseParse,
			"Failed to parse AI response for "+operationName, err)
	}

	return output, tokenUsage, nil
}

// ExtractProfile implements Provider for profile extraction
func (g *GeminiProvider) ExtractProfile(ctx context.Context, rawProfile string) (types.UserProfile, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("extract")
	userPrompt := fmt.Sprintf(g.getUserPrompt("extract"), rawProfile)

	return executeStructuredOperation[types.UserProfile](
		g, ctx, "extract_profile", userPrompt, systemPrompt,
		g.buildProfileSchema(),
		attribute.Int("input.profile_length", len(rawProfile)),
	)
}

// AnalyzeJob implements Provider for job description analysis
func (g *GeminiProvider) AnalyzeJob(ctx context.Context, rawJob string) (types.JobDescription, *TokenUsage, error) {
	systemPrompt := g.getSystemPrompt("analyze")
	userPrompt := fmt.Sprintf(g.getUserPrompt("analyze"), rawJob)

	return executeStructuredOperation[types.JobDescription](
		g, ctx, "analyze_job", userPrompt, systemPrompt,
		g.buildJobSchema(),
		attribute.Int("input.job_length", len(rawJob)),
	)
}

// MatchSkills implements Provider for skill matching. The reply is
// requested as a raw JSON array and decoded leniently: code fences are
// stripped and invalid elements are skipped.
func (g *GeminiProvider) MatchSkills(ctx context.Context, profile types.UserProfile, job types.JobDescription) ([]types.SkillMatch, *TokenUsage, error) {
	profileJSON, jobJSON, err := buildMatchProjections(profile, job)
	if err != nil {
		return nil, nil, resumeflowErrors.NewInternalError(errCodeProjection,
			"Failed to serialize match projections", err)
	}

	systemPrompt := g.getSystemPrompt("match")
	userPrompt := fmt.Sprintf(g.getUserPrompt("match"), profileJSON, jobJSON)

	text, tokenUsage, err := g.generateContent(ctx, "match_skills", userPrompt, systemPrompt,
		g.buildTextConfig(),
		attribute.String("job.title", job.Title),
		attribute.Int("profile.skill_count", len(profile.Skills)),
	)
	if err != nil {
		return nil, nil, err
	}

	matches, err := parseSkillMatches(text, g.logger)
	if err != nil {
		return nil, tokenUsage, err
	}
	return matches, tokenUsage, nil
}

// GenerateSummary implements Provider for tailored resume summaries
func (g *GeminiProvider) GenerateSummary(ctx context.Context, profile types.UserProfile, job types.JobDescription, matches []types.SkillMatch) (string, *TokenUsage, error) {
	topSkills := topMatchedSkills(matches, 5)

	currentSummary := profile.ProfessionalSummary
	if currentSummary == "" {
		currentSummary = "No existing summary"
	}
	education := "Not specified"
	if len(profile.Education) > 0 {
		education = profile.Education[0].Degree
	}

	systemPrompt := g.getSystemPrompt("summary")
	userPrompt := fmt.Sprintf(g.getUserPrompt("summary"),
		job.Title,
		job.Company,
		currentSummary,
		strings.Join(topSkills, ", "),
		len(profile.Experience),
		education,
		truncate(job.Description, 500),
	)

	text, tokenUsage, err := g.generateContent(ctx, "generate_summary", userPrompt, systemPrompt,
		g.buildTextConfig(),
		attribute.String("job.title", job.Title),
	)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(text), tokenUsage, nil
}

// GenerateCoverLetter implements Provider for cover letter body paragraphs
func (g *GeminiProvider) GenerateCoverLetter(ctx context.Context, profile types.UserProfile, listing types.JobListing, matches []types.SkillMatch) (string, *TokenUsage, error) {
	topSkills := strings.Join(topMatchedSkills(matches, 5), ", ")
	if topSkills == "" {
		topSkills = "Skills available in profile"
	}

	location := listing.Location
	if location == "" {
		location = "Not specified"
	}
	summary := profile.ProfessionalSummary
	if summary == "" {
		summary = "No existing summary"
	}
	description := truncate(listing.Description, 800)
	if description == "" {
		description = "No detailed description available"
	}

	recentPosition := "Not specified"
	recentDescription := "No recent experience listed"
	recentAchievements := "No specific achievements listed"
	if len(profile.Experience) > 0 {
		recent := profile.Experience[0]
		recentPosition = recent.Position
		recentDescription = recent.Description
		if len(recent.KeyAchievements) > 0 {
			achievements := recent.KeyAchievements
			if len(achievements) > 3 {
				achievements = achievements[:3]
			}
			recentAchievements = strings.Join(achievements, "; ")
		}
	}

	systemPrompt := g.getSystemPrompt("coverletter")
	userPrompt := fmt.Sprintf(g.getUserPrompt("coverletter"),
		listing.Title,
		listing.Company,
		location,
		profile.FullName,
		recentPosition,
		summary,
		topSkills,
		len(profile.Experience),
		description,
		recentDescription,
		recentAchievements,
	)

	text, tokenUsage, err := g.generateContent(ctx, "generate_cover_letter", userPrompt, systemPrompt,
		g.buildTextConfig(),
		attribute.String("job.title", listing.Title),
		attribute.String("job.company", listing.Company),
	)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(text), tokenUsage, nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}
	stats["overall_healthy"] = g.circuitBreaker.IsHealthy() && g.modelBreaker.IsModelHealthy()
	return stats
}

// Close implements Provider
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

const errCodeProjection = "MATCH_PROJECTION_FAILED"

// topMatchedSkills returns up to limit skill names the user demonstrably
// has with a score above 0.7.
func topMatchedSkills(matches []types.SkillMatch, limit int) []string {
	var skills []string
	for _, match := range matches {
		if match.UserHasSkill && match.MatchScore > 0.7 {
			skills = append(skills, match.Skill)
			if len(skills) == limit {
				break
			}
		}
	}
	return skills
}

// truncate shortens s to at most n bytes. Listing descriptions are
// already truncated upstream; this guards prompt size for raw inputs.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// buildMatchProjections serializes compact projections of the profile
// and job for the matcher prompt. Only fields the matcher needs are
// included to keep the prompt small.
func buildMatchProjections(profile types.UserProfile, job types.JobDescription) (string, string, error) {
	type experienceProjection struct {
		Company          string   `json:"company"`
		Position         string   `json:"position"`
		Description      string   `json:"description"`
		TechnologiesUsed []string `json:"technologies_used,omitempty"`
		KeyAchievements  []string `json:"key_achievements,omitempty"`
	}
	type projectProjection struct {
		Name             string   `json:"name"`
		Description      string   `json:"description"`
		TechnologiesUsed []string `json:"technologies_used,omitempty"`
	}
	type educationProjection struct {
		Degree             string   `json:"degree"`
		FieldOfStudy       string   `json:"field_of_study,omitempty"`
		RelevantCoursework []string `json:"relevant_coursework,omitempty"`
	}
	type certificationProjection struct {
		Name   string `json:"name"`
		Issuer string `json:"issuer"`
	}

	profileProjection := struct {
		Skills         []string                  `json:"skills"`
		Experience     []experienceProjection    `json:"experience"`
		Projects       []projectProjection       `json:"projects"`
		Education      []educationProjection     `json:"education"`
		Certifications []certificationProjection `json:"certifications"`
	}{
		Skills:         profile.Skills,
		Experience:     make([]experienceProjection, 0, len(profile.Experience)),
		Projects:       make([]projectProjection, 0, len(profile.Projects)),
		Education:      make([]educationProjection, 0, len(profile.Education)),
		Certifications: make([]certificationProjection, 0, len(profile.Certifications)),
	}
	for _, exp := range profile.Experience {
		profileProjection.Experience = append(profileProjection.Experience, experienceProjection{
			Company:          exp.Company,
			Position:         exp.Position,
			Description:      exp.Description,
			TechnologiesUsed: exp.TechnologiesUsed,
			KeyAchievements:  exp.KeyAchievements,
		})
	}
	for _, proj := range profile.Projects {
		profileProjection.Projects = append(profileProjection.Projects, projectProjection{
			Name:             proj.Name,
			Description:      proj.Description,
			TechnologiesUsed: proj.TechnologiesUsed,
		})
	}
	for _, edu := range profile.Education {
		profileProjection.Education = append(profileProjection.Education, educationProjection{
			Degree:             edu.Degree,
			FieldOfStudy:       edu.FieldOfStudy,
			RelevantCoursework: edu.RelevantCoursework,
		})
	}
	for _, cert := range profile.Certifications {
		profileProjection.Certifications = append(profileProjection.Certifications, certificationProjection{
			Name:   cert.Name,
			Issuer: cert.Issuer,
		})
	}

	jobProjection := struct {
		Title        string                 `json:"title"`
		Company      string                 `json:"company"`
		Location     string                 `json:"location,omitempty"`
		Description  string                 `json:"description"`
		JobType      string                 `json:"job_type,omitempty"`
		Requirements []types.JobRequirement `json:"requirements,omitempty"`
	}{
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		JobType:      job.JobType,
		Requirements: job.Requirements,
	}

	profileJSON, err := json.MarshalIndent(profileProjection, "", "  ")
	if err != nil {
		return "", "", err
	}
	jobJSON, err := json.MarshalIndent(jobProjection, "", "  ")
	if err != nil {
		return "", "", err
	}
	return string(profileJSON), string(jobJSON), nil
}

// getSystemPrompt returns the system prompt for a prompt kind, resolving
// file-loaded content over config over the built-in default.
func (g *GeminiProvider) getSystemPrompt(promptKind string) string {
	loaded := config.GetPromptsForOperation(g.operationType)
	return resolvePrompt(loaded.SystemPrompt, g.config.CustomPrompts.SystemPrompt, DefaultSystemPrompts[promptKind])
}

// getUserPrompt returns the user prompt template for a prompt kind
func (g *GeminiProvider) getUserPrompt(promptKind string) string {
	loaded := config.GetPromptsForOperation(g.operationType)
	return resolvePrompt(loaded.UserPrompt, g.config.CustomPrompts.UserPrompt, DefaultUserPrompts[promptKind])
}

// buildTextConfig creates the generation config for plain-text replies
func (g *GeminiProvider) buildTextConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}
	return cfg
}

// buildProfileSchema creates the structured-output schema for profile extraction
func (g *GeminiProvider) buildProfileSchema() *genai.GenerateContentConfig {
	dateSchema := &genai.Schema{Type: genai.TypeString}
	stringList := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"full_name": {Type: genai.TypeString},
				"contact_info": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"email":     {Type: genai.TypeString},
						"phone":     {Type: genai.TypeString},
						"linkedin":  {Type: genai.TypeString},
						"github":    {Type: genai.TypeString},
						"portfolio": {Type: genai.TypeString},
						"location":  {Type: genai.TypeString},
					},
					Required: []string{"email"},
				},
				"professional_summary": {Type: genai.TypeString},
				"skills":               stringList,
				"education": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"institution":         {Type: genai.TypeString},
							"degree":              {Type: genai.TypeString},
							"field_of_study":      {Type: genai.TypeString},
							"graduation_date":     dateSchema,
							"gpa":                 {Type: genai.TypeNumber},
							"relevant_coursework": stringList,
						},
						Required: []string{"institution", "degree"},
					},
				},
				"experience": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"company":           {Type: genai.TypeString},
							"position":          {Type: genai.TypeString},
							"start_date":        dateSchema,
							"end_date":          dateSchema,
							"description":       {Type: genai.TypeString},
							"key_achievements":  stringList,
							"technologies_used": stringList,
						},
						Required: []string{"company", "position", "description"},
					},
				},
				"projects": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":              {Type: genai.TypeString},
							"description":       {Type: genai.TypeString},
							"technologies_used": stringList,
							"url":               {Type: genai.TypeString},
							"achievements":      stringList,
						},
						Required: []string{"name", "description"},
					},
				},
				"certifications": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":           {Type: genai.TypeString},
							"issuer":         {Type: genai.TypeString},
							"issue_date":     dateSchema,
							"expiry_date":    dateSchema,
							"credential_url": {Type: genai.TypeString},
						},
						Required: []string{"name", "issuer"},
					},
				},
				"languages": stringList,
			},
			Required: []string{"full_name", "contact_info"},
		},
	}

	if *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}
	return cfg
}

// buildJobSchema creates the structured-output schema for job analysis
func (g *GeminiProvider) buildJobSchema() *genai.GenerateContentConfig {
	stringList := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":            {Type: genai.TypeString},
				"company":          {Type: genai.TypeString},
				"location":         {Type: genai.TypeString},
				"job_type":         {Type: genai.TypeString},
				"salary_range":     {Type: genai.TypeString},
				"description":      {Type: genai.TypeString},
				"responsibilities": stringList,
				"requirements": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"category":             {Type: genai.TypeString},
							"skill_or_requirement": {Type: genai.TypeString},
							"importance_weight":    {Type: genai.TypeNumber},
						},
						Required: []string{"category", "skill_or_requirement", "importance_weight"},
					},
				},
				"preferred_qualifications": stringList,
				"company_culture":          {Type: genai.TypeString},
				"benefits":                 stringList,
			},
			Required: []string{"title", "company", "description"},
		},
	}

	if *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}
	return cfg
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from a Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}
