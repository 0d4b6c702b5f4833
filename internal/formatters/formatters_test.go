package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"resumeflow/internal/types"
)

func sampleResume() types.GeneratedResume {
	return types.GeneratedResume{
		UserProfile: types.UserProfile{
			FullName:    "Jane Doe",
			ContactInfo: types.ContactInfo{Email: "jane@example.com"},
		},
		JobDescription:    types.JobDescription{Title: "Backend Engineer", Company: "Acme", Description: "Go"},
		CustomizedSummary: "Seasoned backend engineer.",
		Sections: []types.ResumeSection{
			{SectionName: "Professional Experience", Content: "Acme | Engineer", Priority: 3},
			{SectionName: "Contact Information", Content: "Jane Doe\njane@example.com", Priority: 1},
			{SectionName: "Technical Skills", Content: "Go, SQL", Priority: 2},
		},
		TailoringNotes:  []string{"Emphasize Go"},
		MatchPercentage: 45.0,
	}
}

func TestResumeTextFormatterSectionOrder(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleResume(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sections render by ascending priority regardless of insertion order.
	contact := strings.Index(output, "CONTACT INFORMATION")
	skills := strings.Index(output, "TECHNICAL SKILLS")
	experience := strings.Index(output, "PROFESSIONAL EXPERIENCE")
	if contact == -1 || skills == -1 || experience == -1 {
		t.Fatalf("missing section headers:\n%s", output)
	}
	if !(contact < skills && skills < experience) {
		t.Errorf("sections out of priority order:\n%s", output)
	}

	// The customized summary sits between contact and skills.
	summary := strings.Index(output, "PROFESSIONAL SUMMARY")
	if !(contact < summary && summary < skills) {
		t.Errorf("summary misplaced:\n%s", output)
	}

	if !strings.Contains(output, "Match: 45.0%") {
		t.Errorf("missing match percentage:\n%s", output)
	}
	if !strings.Contains(output, "1. Emphasize Go") {
		t.Errorf("missing tailoring note:\n%s", output)
	}
}

func TestResumeMarkdownFormatter(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleResume(), "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(output, "# Tailored Resume") {
		t.Errorf("unexpected document start:\n%s", output)
	}
	if !strings.Contains(output, "## Contact Information") {
		t.Errorf("missing section heading:\n%s", output)
	}
	if !strings.Contains(output, "**Match:** 45.0%") {
		t.Errorf("missing match percentage:\n%s", output)
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	resume := sampleResume()
	output, err := GlobalRegistry.Format(resume, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded types.GeneratedResume
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.MatchPercentage != resume.MatchPercentage ||
		decoded.CustomizedSummary != resume.CustomizedSummary ||
		len(decoded.Sections) != len(resume.Sections) {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestCoverLetterFormatters(t *testing.T) {
	batch := CoverLetterBatch{
		{
			JobDescription:     types.JobDescription{Title: "Engineer", Company: "Acme"},
			CoverLetterContent: "First paragraph.\n\nSecond paragraph.",
			TailoringNotes:     []string{"Research Acme"},
			MatchPercentage:    80.0,
		},
	}

	text, err := GlobalRegistry.Format(batch, "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "=== 1. Engineer at Acme ===") || !strings.Contains(text, "Match: 80.0%") {
		t.Errorf("unexpected text output:\n%s", text)
	}

	markdown, err := GlobalRegistry.Format(batch, "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(markdown, "## 1. Engineer at Acme") {
		t.Errorf("unexpected markdown output:\n%s", markdown)
	}
}

func TestCoverLetterFormatterEmptyBatch(t *testing.T) {
	output, err := GlobalRegistry.Format(CoverLetterBatch{}, "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "No jobs met the match threshold.") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleResume(), "pdf"); err == nil {
		t.Error("expected an error for unsupported format")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()
	want := map[string]bool{"json": false, "text": false, "markdown": false}
	for _, format := range formats {
		if _, ok := want[format]; ok {
			want[format] = true
		}
	}
	for format, seen := range want {
		if !seen {
			t.Errorf("format %q not reported", format)
		}
	}
}
