package types

// ContactInfo holds the contact block of a user profile. Email is the
// only field the extraction prompt requires.
type ContactInfo struct {
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Location  string `json:"location,omitempty"`
}

// Education represents one education entry in a user profile
type Education struct {
	Institution        string   `json:"institution"`
	Degree             string   `json:"degree"`
	FieldOfStudy       string   `json:"field_of_study,omitempty"`
	GraduationDate     *Date    `json:"graduation_date,omitempty"`
	GPA                float64  `json:"gpa,omitempty"`
	RelevantCoursework []string `json:"relevant_coursework,omitempty"`
}

// Experience represents one work-experience entry in a user profile
type Experience struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	StartDate        *Date    `json:"start_date,omitempty"`
	EndDate          *Date    `json:"end_date,omitempty"`
	Description      string   `json:"description"`
	KeyAchievements  []string `json:"key_achievements,omitempty"`
	TechnologiesUsed []string `json:"technologies_used,omitempty"`
}

// Project represents one project entry in a user profile
type Project struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	TechnologiesUsed []string `json:"technologies_used,omitempty"`
	URL              string   `json:"url,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

// Certification represents one certification entry in a user profile
type Certification struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	IssueDate     *Date  `json:"issue_date,omitempty"`
	ExpiryDate    *Date  `json:"expiry_date,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}

// UserProfile is the structured form of a free-text resume or profile,
// produced by the profile extraction stage and read-only afterwards.
type UserProfile struct {
	FullName            string          `json:"full_name"`
	ContactInfo         ContactInfo     `json:"contact_info"`
	ProfessionalSummary string          `json:"professional_summary,omitempty"`
	Skills              []string        `json:"skills,omitempty"`
	Education           []Education     `json:"education,omitempty"`
	Experience          []Experience    `json:"experience,omitempty"`
	Projects            []Project       `json:"projects,omitempty"`
	Certifications      []Certification `json:"certifications,omitempty"`
	Languages           []string        `json:"languages,omitempty"`
}

// Requirement categories used by the job analysis stage. The importance
// weights are assigned by the model per the analysis prompt.
const (
	RequirementRequired   = "required"
	RequirementPreferred  = "preferred"
	RequirementNiceToHave = "nice-to-have"
)

// JobRequirement is a single categorized requirement from a job posting
type JobRequirement struct {
	Category           string  `json:"category"`
	SkillOrRequirement string  `json:"skill_or_requirement"`
	ImportanceWeight   float64 `json:"importance_weight"`
}

// JobDescription is the structured form of a job posting
type JobDescription struct {
	Title                   string           `json:"title"`
	Company                 string           `json:"company"`
	Location                string           `json:"location,omitempty"`
	JobType                 string           `json:"job_type,omitempty"`
	SalaryRange             string           `json:"salary_range,omitempty"`
	Description             string           `json:"description"`
	Responsibilities        []string         `json:"responsibilities,omitempty"`
	Requirements            []JobRequirement `json:"requirements,omitempty"`
	PreferredQualifications []string         `json:"preferred_qualifications,omitempty"`
	CompanyCulture          string           `json:"company_culture,omitempty"`
	Benefits                []string         `json:"benefits,omitempty"`
}

// JobListing is the lighter-weight record returned by the job-search
// service. Converting a listing into a JobDescription fills the missing
// fields with empty defaults; the conversion is intentionally lossy.
type JobListing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	JobURL      string `json:"job_url,omitempty"`
	DatePosted  string `json:"date_posted,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	Salary      string `json:"salary,omitempty"`
	IsRemote    bool   `json:"is_remote"`
}

// ToJobDescription converts a listing into a JobDescription with empty
// defaults for the fields a listing does not carry.
func (l JobListing) ToJobDescription() JobDescription {
	return JobDescription{
		Title:       l.Title,
		Company:     l.Company,
		Location:    l.Location,
		JobType:     l.JobType,
		SalaryRange: l.Salary,
		Description: l.Description,
	}
}

// JobMatches aggregates the result of one job-search pass
type JobMatches struct {
	SearchLocation string       `json:"search_location"`
	SearchKeywords []string     `json:"search_keywords,omitempty"`
	IsRemoteSearch bool         `json:"is_remote_search"`
	Jobs           []JobListing `json:"jobs,omitempty"`
	TotalResults   int          `json:"total_results"`
}

// SkillMatch is a scored assertion of whether the candidate demonstrably
// has a skill the job asks for. MatchScore is always within [0, 1].
type SkillMatch struct {
	Skill            string   `json:"skill"`
	UserHasSkill     bool     `json:"user_has_skill"`
	ProficiencyLevel string   `json:"proficiency_level,omitempty"`
	MatchScore       float64  `json:"match_score"`
	Evidence         []string `json:"evidence,omitempty"`
}

// ClampScore normalizes the match score into [0, 1]. An out-of-range
// score from the model is a model defect, never a valid output.
func (m *SkillMatch) ClampScore() {
	if m.MatchScore < 0 {
		m.MatchScore = 0
	}
	if m.MatchScore > 1 {
		m.MatchScore = 1
	}
}

// JobSkillMatches pairs a searched listing with its skill matches
type JobSkillMatches struct {
	JobListing   JobListing   `json:"job_listing"`
	SkillMatches []SkillMatch `json:"skill_matches,omitempty"`
}

// ResumeSection is one independently rendered block of a resume. Sections
// are sorted by ascending priority at output time.
type ResumeSection struct {
	SectionName string `json:"section_name"`
	Content     string `json:"content"`
	Priority    int    `json:"priority"`
}

// GeneratedResume is the terminal artifact of the resume workflow
type GeneratedResume struct {
	UserProfile       UserProfile     `json:"user_profile"`
	JobDescription    JobDescription  `json:"job_description"`
	SkillMatches      []SkillMatch    `json:"skill_matches,omitempty"`
	CustomizedSummary string          `json:"customized_summary"`
	Sections          []ResumeSection `json:"sections,omitempty"`
	TailoringNotes    []string        `json:"tailoring_notes,omitempty"`
	MatchPercentage   float64         `json:"match_percentage"`
}

// GeneratedCoverLetter is the terminal artifact of the cover-letter
// workflow, one per job listing above the match threshold.
type GeneratedCoverLetter struct {
	UserProfile        UserProfile    `json:"user_profile"`
	JobDescription     JobDescription `json:"job_description"`
	SkillMatches       []SkillMatch   `json:"skill_matches,omitempty"`
	CoverLetterContent string         `json:"cover_letter_content"`
	TailoringNotes     []string       `json:"tailoring_notes,omitempty"`
	MatchPercentage    float64        `json:"match_percentage"`
}

// ClampPercentage normalizes a match percentage into [0, 100].
func ClampPercentage(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
