package jobsearch

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"resumeflow/internal/config"
	resumeflowErrors "resumeflow/internal/errors"
	"resumeflow/internal/types"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

// Client talks to a job-scraping HTTP service. Requests are paced with a
// token bucket, protected by a circuit breaker, and retried on transient
// failures.
type Client struct {
	baseURL    string
	apiKey     string
	country    string
	maxRetries int
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]types.JobListing]
	logger     *resumeflowErrors.Logger
}

var _ Searcher = (*Client)(nil)

// NewClient creates a search client from configuration
func NewClient(cfg *config.SearchConfig, logger *resumeflowErrors.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, resumeflowErrors.NewConfigError(resumeflowErrors.ErrCodeInvalidConfig,
			"Job search base URL is not configured", nil)
	}

	client := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		country:    cfg.Country,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}

	if cfg.RequestsPerMin > 0 {
		client.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMin)), 1)
	}

	if cfg.CircuitBreaker.Enabled {
		client.breaker = gobreaker.NewCircuitBreaker[[]types.JobListing](gobreaker.Settings{
			Name:        "JobSearch",
			MaxRequests: cfg.CircuitBreaker.MaxRequests,
			Interval:    cfg.CircuitBreaker.Interval,
			Timeout:     cfg.CircuitBreaker.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= cfg.CircuitBreaker.MinRequests &&
					failureRatio >= cfg.CircuitBreaker.FailureThreshold
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String())
			},
		})
	}

	return client, nil
}

// searchRequest is the wire format of one search query
type searchRequest struct {
	SiteNames     []string `json:"site_name"`
	SearchTerm    string   `json:"search_term"`
	Location      string   `json:"location,omitempty"`
	ResultsWanted int      `json:"results_wanted"`
	HoursOld      int      `json:"hours_old,omitempty"`
	CountryIndeed string   `json:"country_indeed,omitempty"`
}

// searchResponse is the wire format of the service's reply
type searchResponse struct {
	Count int          `json:"count"`
	Jobs  []listingRow `json:"jobs"`
}

// listingRow is one scraped job row as the service reports it
type listingRow struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	JobURL      string `json:"job_url"`
	DatePosted  string `json:"date_posted"`
	JobType     string `json:"job_type"`
	Salary      string `json:"salary"`
}

// SearchJobs implements Searcher
func (c *Client) SearchJobs(ctx context.Context, params Params) ([]types.JobListing, error) {
	tracer := otel.Tracer("resumeflow.jobsearch")
	ctx, span := tracer.Start(ctx, "jobsearch.search")
	defer span.End()

	span.SetAttributes(
		attribute.String("search.query", params.Query),
		attribute.String("search.location", params.Location),
		attribute.StringSlice("search.sites", params.Sites),
		attribute.Int("search.max_results", params.MaxResults),
	)

	execute := func() ([]types.JobListing, error) {
		return c.searchWithRetry(ctx, params)
	}

	var listings []types.JobListing
	var err error
	if c.breaker != nil {
		listings, err = c.breaker.Execute(execute)
	} else {
		listings, err = execute()
	}

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, err
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("search.result_count", len(listings)),
	)
	return listings, nil
}

// searchWithRetry retries transient failures with capped exponential
// backoff and jitter.
func (c *Client) searchWithRetry(ctx context.Context, params Params) ([]types.JobListing, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("Retrying job search",
				"attempt", attempt,
				"max_retries", c.maxRetries,
				"error", lastErr.Error())

			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			backoff := min(baseDelay+time.Duration(jitterBig.Int64()), 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		listings, err := c.doSearch(ctx, params)
		if err == nil {
			return listings, nil
		}
		lastErr = err

		if !isRetryable(err) {
			break
		}
	}

	return nil, resumeflowErrors.NewSearchError(resumeflowErrors.ErrCodeSearchFailed,
		fmt.Sprintf("Job search failed after %d attempts", c.maxRetries+1), lastErr)
}

// statusError marks an HTTP reply the caller may retry
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("search service returned status %d: %s", e.code, e.body)
}

func isRetryable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		switch statusErr.code {
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

// doSearch performs one paced request against the search service
func (c *Client) doSearch(ctx context.Context, params Params) ([]types.JobListing, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(searchRequest{
		SiteNames:     params.Sites,
		SearchTerm:    params.Query,
		Location:      params.Location,
		ResultsWanted: params.MaxResults,
		HoursOld:      params.HoursOld,
		CountryIndeed: c.country,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(raw))}
	}

	var reply searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	listings := make([]types.JobListing, 0, len(reply.Jobs))
	for _, row := range reply.Jobs {
		listings = append(listings, types.JobListing{
			Title:       row.Title,
			Company:     row.Company,
			Location:    row.Location,
			Description: row.Description,
			JobURL:      row.JobURL,
			DatePosted:  row.DatePosted,
			JobType:     row.JobType,
			Salary:      row.Salary,
		})
	}

	c.logger.Debug("Job search completed",
		"query", params.Query,
		"location", params.Location,
		"results", len(listings))

	return listings, nil
}
