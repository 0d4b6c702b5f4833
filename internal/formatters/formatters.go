package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resumeflow/internal/types"
)

// CoverLetterBatch is the set of cover letters produced by one run,
// formatted as a single document.
type CoverLetterBatch []types.GeneratedCoverLetter

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "GeneratedResume", &ResumeTextFormatter{})
	registry.RegisterFormatter("markdown", "GeneratedResume", &ResumeMarkdownFormatter{})
	registry.RegisterFormatter("text", "CoverLetterBatch", &CoverLetterTextFormatter{})
	registry.RegisterFormatter("markdown", "CoverLetterBatch", &CoverLetterMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.GeneratedResume:
		return "GeneratedResume"
	case CoverLetterBatch:
		return "CoverLetterBatch"
	default:
		return "any"
	}
}

// sortedSections returns the sections ordered by ascending priority,
// stable for equal priorities.
func sortedSections(sections []types.ResumeSection) []types.ResumeSection {
	ordered := make([]types.ResumeSection, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})
	return ordered
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ResumeTextFormatter handles text formatting for generated resumes
type ResumeTextFormatter struct{}

func (rtf *ResumeTextFormatter) Format(data any) (string, error) {
	resume, ok := data.(types.GeneratedResume)
	if !ok {
		return "", fmt.Errorf("expected GeneratedResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== TAILORED RESUME ===\n")
	output.WriteString(fmt.Sprintf("Target: %s at %s\n", resume.JobDescription.Title, resume.JobDescription.Company))
	output.WriteString(fmt.Sprintf("Match: %.1f%%\n\n", resume.MatchPercentage))

	summaryWritten := false
	for _, section := range sortedSections(resume.Sections) {
		output.WriteString(fmt.Sprintf("=== %s ===\n", strings.ToUpper(section.SectionName)))
		output.WriteString(section.Content)
		output.WriteString("\n\n")

		// The customized summary follows the contact block.
		if !summaryWritten && section.Priority == 1 {
			output.WriteString("=== PROFESSIONAL SUMMARY ===\n")
			output.WriteString(resume.CustomizedSummary)
			output.WriteString("\n\n")
			summaryWritten = true
		}
	}
	if !summaryWritten && resume.CustomizedSummary != "" {
		output.WriteString("=== PROFESSIONAL SUMMARY ===\n")
		output.WriteString(resume.CustomizedSummary)
		output.WriteString("\n\n")
	}

	if len(resume.TailoringNotes) > 0 {
		output.WriteString("=== TAILORING NOTES ===\n")
		for i, note := range resume.TailoringNotes {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, note))
		}
	}

	return output.String(), nil
}

func (rtf *ResumeTextFormatter) SupportedType() string {
	return "GeneratedResume"
}

// ResumeMarkdownFormatter handles markdown formatting for generated resumes
type ResumeMarkdownFormatter struct{}

func (rmf *ResumeMarkdownFormatter) Format(data any) (string, error) {
	resume, ok := data.(types.GeneratedResume)
	if !ok {
		return "", fmt.Errorf("expected GeneratedResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Tailored Resume\n\n")
	output.WriteString(fmt.Sprintf("**Target:** %s at %s\n\n", resume.JobDescription.Title, resume.JobDescription.Company))
	output.WriteString(fmt.Sprintf("**Match:** %.1f%%\n\n", resume.MatchPercentage))

	summaryWritten := false
	for _, section := range sortedSections(resume.Sections) {
		output.WriteString(fmt.Sprintf("## %s\n\n", section.SectionName))
		output.WriteString(section.Content)
		output.WriteString("\n\n")

		if !summaryWritten && section.Priority == 1 {
			output.WriteString("## Professional Summary\n\n")
			output.WriteString(resume.CustomizedSummary)
			output.WriteString("\n\n")
			summaryWritten = true
		}
	}
	if !summaryWritten && resume.CustomizedSummary != "" {
		output.WriteString("## Professional Summary\n\n")
		output.WriteString(resume.CustomizedSummary)
		output.WriteString("\n\n")
	}

	if len(resume.TailoringNotes) > 0 {
		output.WriteString("## Tailoring Notes\n\n")
		for i, note := range resume.TailoringNotes {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, note))
		}
	}

	return output.String(), nil
}

func (rmf *ResumeMarkdownFormatter) SupportedType() string {
	return "GeneratedResume"
}

// CoverLetterTextFormatter handles text formatting for cover letter batches
type CoverLetterTextFormatter struct{}

func (cltf *CoverLetterTextFormatter) Format(data any) (string, error) {
	batch, ok := data.(CoverLetterBatch)
	if !ok {
		return "", fmt.Errorf("expected CoverLetterBatch, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== COVER LETTERS (%d) ===\n\n", len(batch)))
	if len(batch) == 0 {
		output.WriteString("No jobs met the match threshold.\n")
		return output.String(), nil
	}

	for i, letter := range batch {
		output.WriteString(fmt.Sprintf("=== %d. %s at %s ===\n", i+1,
			letter.JobDescription.Title, letter.JobDescription.Company))
		output.WriteString(fmt.Sprintf("Match: %.1f%%\n\n", letter.MatchPercentage))
		output.WriteString(letter.CoverLetterContent)
		output.WriteString("\n\n")

		if len(letter.TailoringNotes) > 0 {
			output.WriteString("Tailoring Notes:\n")
			for j, note := range letter.TailoringNotes {
				output.WriteString(fmt.Sprintf("%d. %s\n", j+1, note))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (cltf *CoverLetterTextFormatter) SupportedType() string {
	return "CoverLetterBatch"
}

// CoverLetterMarkdownFormatter handles markdown formatting for cover letter batches
type CoverLetterMarkdownFormatter struct{}

func (clmf *CoverLetterMarkdownFormatter) Format(data any) (string, error) {
	batch, ok := data.(CoverLetterBatch)
	if !ok {
		return "", fmt.Errorf("expected CoverLetterBatch, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Cover Letters (%d)\n\n", len(batch)))
	if len(batch) == 0 {
		output.WriteString("No jobs met the match threshold.\n")
		return output.String(), nil
	}

	for i, letter := range batch {
		output.WriteString(fmt.Sprintf("## %d. %s at %s\n\n", i+1,
			letter.JobDescription.Title, letter.JobDescription.Company))
		output.WriteString(fmt.Sprintf("**Match:** %.1f%%\n\n", letter.MatchPercentage))
		output.WriteString(letter.CoverLetterContent)
		output.WriteString("\n\n")

		if len(letter.TailoringNotes) > 0 {
			output.WriteString("### Tailoring Notes\n\n")
			for j, note := range letter.TailoringNotes {
				output.WriteString(fmt.Sprintf("%d. %s\n", j+1, note))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (clmf *CoverLetterMarkdownFormatter) SupportedType() string {
	return "CoverLetterBatch"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
