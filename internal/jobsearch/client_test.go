package jobsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"resumeflow/internal/config"
	"resumeflow/internal/errors"
)

func testLogger() *errors.Logger {
	logger, _ := errors.New("error")
	return logger
}

func testConfig(baseURL string) *config.SearchConfig {
	return &config.SearchConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		Country:    "USA",
		Timeout:    5 * time.Second,
		MaxRetries: 2,
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(&config.SearchConfig{}, testLogger())
	if err == nil {
		t.Fatal("expected an error for missing base URL")
	}
}

func TestSearchJobs(t *testing.T) {
	var gotRequest searchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("expected API key header, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		json.NewEncoder(w).Encode(searchResponse{
			Count: 2,
			Jobs: []listingRow{
				{Title: "Backend Engineer", Company: "Acme", Location: "Remote", Description: "Go services", JobURL: "https://jobs.example/1"},
				{Title: "Platform Engineer", Company: "Initech", Location: "Austin, TX", DatePosted: "2025-06-01"},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listings, err := client.SearchJobs(context.Background(), Params{
		Sites:      []string{"indeed", "linkedin"},
		Query:      "Go Kubernetes AWS",
		Location:   "Remote",
		MaxResults: 20,
		HoursOld:   72,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].Title != "Backend Engineer" || listings[0].Company != "Acme" {
		t.Errorf("unexpected first listing: %+v", listings[0])
	}
	if gotRequest.SearchTerm != "Go Kubernetes AWS" {
		t.Errorf("unexpected search term: %q", gotRequest.SearchTerm)
	}
	if gotRequest.CountryIndeed != "USA" {
		t.Errorf("expected country forwarded, got %q", gotRequest.CountryIndeed)
	}
	if gotRequest.ResultsWanted != 20 || gotRequest.HoursOld != 72 {
		t.Errorf("unexpected request parameters: %+v", gotRequest)
	}
}

func TestSearchJobsRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(searchResponse{Count: 0, Jobs: nil})
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listings, err := client.SearchJobs(context.Background(), Params{Query: "Go"})
	if err != nil {
		t.Fatalf("expected retry to recover, got: %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("expected empty result set, got %d listings", len(listings))
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 calls, got %d", calls.Load())
	}
}

func TestSearchJobsDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.SearchJobs(context.Background(), Params{Query: "Go"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls.Load() != 1 {
		t.Errorf("expected a single call for a 400 reply, got %d", calls.Load())
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"rate limited", &statusError{code: http.StatusTooManyRequests}, true},
		{"server error", &statusError{code: http.StatusInternalServerError}, true},
		{"bad gateway", &statusError{code: http.StatusBadGateway}, true},
		{"unavailable", &statusError{code: http.StatusServiceUnavailable}, true},
		{"gateway timeout", &statusError{code: http.StatusGatewayTimeout}, true},
		{"bad request", &statusError{code: http.StatusBadRequest}, false},
		{"unauthorized", &statusError{code: http.StatusUnauthorized}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryable(tt.err); got != tt.retryable {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.retryable)
			}
		})
	}
}
