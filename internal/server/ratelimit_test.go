package server

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		bearer   string
		byAPIKey bool
		byIP     bool
		want     string
	}{
		{
			name:     "api key header preferred",
			apiKey:   "secret-key",
			byAPIKey: true,
			byIP:     true,
			want:     "api:secret-key",
		},
		{
			name:     "bearer token fallback",
			bearer:   "Bearer token-123",
			byAPIKey: true,
			want:     "api:token-123",
		},
		{
			name: "ip fallback",
			byIP: true,
			want: "ip:192.0.2.1",
		},
		{
			name: "no strategies",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/resume", nil)
			r.RemoteAddr = "192.0.2.1:54321"
			if tt.apiKey != "" {
				r.Header.Set("X-API-Key", tt.apiKey)
			}
			if tt.bearer != "" {
				r.Header.Set("Authorization", tt.bearer)
			}

			got := getRateLimitKey(r, tt.byAPIKey, tt.byIP)
			if got != tt.want {
				t.Errorf("getRateLimitKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIPForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/health", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "bogus, 203.0.113.9, 10.0.0.2")

	if got := getClientIP(r); got != "203.0.113.9" {
		t.Errorf("getClientIP() = %q, want first valid forwarded IP", got)
	}
}

func TestParseFirstIP(t *testing.T) {
	if got := parseFirstIP("not-an-ip, also bad"); got != "" {
		t.Errorf("expected empty string for invalid list, got %q", got)
	}
	if got := parseFirstIP(" 198.51.100.7 ,203.0.113.9"); got != "198.51.100.7" {
		t.Errorf("unexpected first IP: %q", got)
	}
}

func TestLimiterManagerAllow(t *testing.T) {
	m := NewRateLimiter(60, time.Minute, 2, nil)
	defer m.Close()

	// Burst capacity of 2 admits two immediate requests per key.
	if !m.Allow("ip:192.0.2.1") || !m.Allow("ip:192.0.2.1") {
		t.Fatal("burst requests must be allowed")
	}
	if m.Allow("ip:192.0.2.1") {
		t.Error("third immediate request must be rejected")
	}

	// Separate keys get separate buckets.
	if !m.Allow("ip:192.0.2.2") {
		t.Error("fresh key must be allowed")
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("short key must be fully masked, got %q", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("unexpected masking: %q", got)
	}
}
