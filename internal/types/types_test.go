package types

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *Date
	}{
		{
			name:     "full date",
			input:    "2021-06-15",
			expected: NewDate(2021, time.June, 15),
		},
		{
			name:     "bare year normalizes to january first",
			input:    "2019",
			expected: NewDate(2019, time.January, 1),
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "prose date",
			input:    "June 2021",
			expected: nil,
		},
		{
			name:     "garbage",
			input:    "present",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if tt.expected == nil {
				if got != nil {
					t.Errorf("Expected nil, got %v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Expected %v, got nil", tt.expected)
			}
			if !got.Equal(tt.expected.Time) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDateUnmarshalNeverErrors(t *testing.T) {
	inputs := []string{
		`"2020-01-31"`,
		`"2020"`,
		`"not a date"`,
		`""`,
		`12345`,
		`null`,
		`{"year": 2020}`,
	}

	for _, input := range inputs {
		var edu Education
		payload := `{"institution": "X", "degree": "Y", "graduation_date": ` + input + `}`
		if err := json.Unmarshal([]byte(payload), &edu); err != nil {
			t.Errorf("Unmarshal with graduation_date=%s returned error: %v", input, err)
		}
	}
}

func TestSkillMatchClampScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected float64
	}{
		{"in range", 0.75, 0.75},
		{"above one", 1.3, 1.0},
		{"negative", -0.2, 0.0},
		{"zero", 0, 0},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := SkillMatch{Skill: "Go", MatchScore: tt.score}
			m.ClampScore()
			if m.MatchScore != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, m.MatchScore)
			}
		})
	}
}

func TestClampPercentage(t *testing.T) {
	if got := ClampPercentage(150); got != 100 {
		t.Errorf("Expected 100, got %v", got)
	}
	if got := ClampPercentage(-5); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := ClampPercentage(45.5); got != 45.5 {
		t.Errorf("Expected 45.5, got %v", got)
	}
}

func TestListingToJobDescriptionFillsEmptyDefaults(t *testing.T) {
	listing := JobListing{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Berlin",
		Description: "Build services",
		Salary:      "90k",
		JobType:     "full-time",
		JobURL:      "https://example.com/job/1",
		IsRemote:    true,
	}

	jd := listing.ToJobDescription()

	if jd.Title != listing.Title || jd.Company != listing.Company {
		t.Error("Title and company should carry over")
	}
	if jd.SalaryRange != listing.Salary {
		t.Errorf("Expected salary %q, got %q", listing.Salary, jd.SalaryRange)
	}
	// The conversion is intentionally lossy: listing-only fields drop,
	// description-only fields stay empty.
	if len(jd.Requirements) != 0 || len(jd.Responsibilities) != 0 {
		t.Error("Requirements and responsibilities should be empty")
	}
	if jd.CompanyCulture != "" {
		t.Error("Company culture should be empty")
	}
}

func TestGeneratedResumeRoundTrip(t *testing.T) {
	resume := GeneratedResume{
		UserProfile: UserProfile{
			FullName: "Jane Roe",
			ContactInfo: ContactInfo{
				Email:    "jane@example.com",
				LinkedIn: "https://linkedin.com/in/janeroe",
			},
			Skills: []string{"Go", "Kubernetes"},
			Experience: []Experience{
				{
					Company:          "Acme",
					Position:         "Engineer",
					StartDate:        NewDate(2020, time.March, 1),
					Description:      "Built things",
					KeyAchievements:  []string{"Shipped v2"},
					TechnologiesUsed: []string{"Go"},
				},
			},
			Education: []Education{
				{Institution: "State U", Degree: "BSc", GPA: 3.8},
			},
		},
		JobDescription: JobDescription{
			Title:       "Senior Engineer",
			Company:     "Globex",
			Description: "Do engineering",
			Requirements: []JobRequirement{
				{Category: RequirementRequired, SkillOrRequirement: "Go", ImportanceWeight: 1.0},
			},
		},
		SkillMatches: []SkillMatch{
			{Skill: "Go", UserHasSkill: true, MatchScore: 0.9, Evidence: []string{"4 years at Acme"}},
		},
		CustomizedSummary: "An engineer.",
		Sections: []ResumeSection{
			{SectionName: "Contact Information", Content: "Jane Roe", Priority: 1},
			{SectionName: "Technical Skills", Content: "Go, Kubernetes", Priority: 2},
		},
		TailoringNotes:  []string{"Emphasize Go"},
		MatchPercentage: 90,
	}

	data, err := json.Marshal(resume)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded GeneratedResume
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(resume, decoded) {
		t.Errorf("Round trip mismatch:\noriginal: %+v\ndecoded:  %+v", resume, decoded)
	}
}
