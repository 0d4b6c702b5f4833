package ai

import (
	"strings"
	"testing"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `[{"skill": "Go"}]`,
			expected: `[{"skill": "Go"}]`,
		},
		{
			name:     "json fence",
			input:    "```json\n[{\"skill\": \"Go\"}]\n```",
			expected: `[{"skill": "Go"}]`,
		},
		{
			name:     "bare fence",
			input:    "```\n[]\n```",
			expected: `[]`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n[]\n```  \n",
			expected: `[]`,
		},
		{
			name:     "unterminated fence",
			input:    "```json\n[]",
			expected: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripCodeFences(tt.input)
			if got != tt.expected {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseSkillMatches(t *testing.T) {
	raw := "```json\n" + `[
		{"skill": "Go", "user_has_skill": true, "proficiency_level": "advanced", "match_score": 0.9, "evidence": ["built services"]},
		{"skill": "Kubernetes", "user_has_skill": false, "match_score": 0.2}
	]` + "\n```"

	matches, err := parseSkillMatches(raw, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Skill != "Go" || !matches[0].UserHasSkill || matches[0].MatchScore != 0.9 {
		t.Errorf("unexpected first match: %+v", matches[0])
	}
	if matches[1].Skill != "Kubernetes" || matches[1].UserHasSkill {
		t.Errorf("unexpected second match: %+v", matches[1])
	}
}

func TestParseSkillMatchesNotAnArray(t *testing.T) {
	_, err := parseSkillMatches(`{"skill": "Go"}`, nil)
	if err == nil {
		t.Fatal("expected an error for non-array response")
	}
	if !strings.Contains(err.Error(), "AI_RESPONSE_PARSE_FAILED") {
		t.Errorf("expected parse failure code in error, got: %v", err)
	}
}

func TestParseSkillMatchesSkipsInvalidElements(t *testing.T) {
	raw := `[
		{"skill": "Go", "user_has_skill": true, "match_score": 0.8},
		"not an object",
		{"user_has_skill": true, "match_score": 0.5},
		{"skill": "Docker", "user_has_skill": true, "match_score": 1.7}
	]`

	matches, err := parseSkillMatches(raw, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The string element and the element without a skill name are dropped.
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Skill != "Go" {
		t.Errorf("expected first match Go, got %q", matches[0].Skill)
	}
	// Out-of-range scores are clamped into [0, 1].
	if matches[1].Skill != "Docker" || matches[1].MatchScore != 1.0 {
		t.Errorf("expected Docker with clamped score 1.0, got %+v", matches[1])
	}
}

func TestParseSkillMatchesEmptyArray(t *testing.T) {
	matches, err := parseSkillMatches(`[]`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestResolvePrompt(t *testing.T) {
	tests := []struct {
		name        string
		fromFile    string
		fromConfig  string
		fromDefault string
		expected    string
	}{
		{"file wins", "file prompt", "config prompt", "default prompt", "file prompt"},
		{"config over default", "", "config prompt", "default prompt", "config prompt"},
		{"default fallback", "", "", "default prompt", "default prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolvePrompt(tt.fromFile, tt.fromConfig, tt.fromDefault)
			if got != tt.expected {
				t.Errorf("resolvePrompt() = %q, want %q", got, tt.expected)
			}
		})
	}
}
