package workflow

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"resumeflow/internal/ai"
	"resumeflow/internal/errors"
	"resumeflow/internal/types"
)

// Section priorities; the formatter renders sections in ascending order.
const (
	priorityContact        = 1
	prioritySkills         = 2
	priorityExperience     = 3
	priorityEducation      = 4
	priorityProjects       = 5
	priorityCertifications = 6
)

// ResumeGenerator assembles the tailored resume: one model call for the
// customized summary, everything else deterministic.
type ResumeGenerator struct {
	provider ai.Provider
	logger   *errors.Logger
}

// NewResumeGenerator creates the resume generation stage
func NewResumeGenerator(provider ai.Provider, logger *errors.Logger) *ResumeGenerator {
	return &ResumeGenerator{provider: provider, logger: logger}
}

// Name implements Stage
func (g *ResumeGenerator) Name() string {
	return StepResumeGeneration
}

// Process implements Stage
func (g *ResumeGenerator) Process(ctx context.Context, state *State) *State {
	if state.UserProfile == nil || state.JobDescription == nil || state.SkillMatches == nil {
		state.AddError("Missing required data for resume generation")
		return state
	}
	profile := *state.UserProfile
	job := *state.JobDescription
	matches := state.SkillMatches

	summary, tokens, err := g.provider.GenerateSummary(ctx, profile, job, matches)
	if err != nil {
		state.AddError("Resume generation error: %v", err)
		return state
	}

	resume := &types.GeneratedResume{
		UserProfile:       profile,
		JobDescription:    job,
		SkillMatches:      matches,
		CustomizedSummary: summary,
		Sections:          buildResumeSections(profile, matches),
		TailoringNotes:    resumeTailoringNotes(matches, job),
		MatchPercentage:   matchPercentage(matches),
	}

	g.logger.Info("Resume generated",
		"job_title", job.Title,
		"company", job.Company,
		"match_percentage", resume.MatchPercentage,
		"section_count", len(resume.Sections),
		"tokens", tokenTotal(tokens))

	state.GeneratedResume = resume
	state.MarkCompleted(StepResumeGeneration)
	return state
}

// matchPercentage is the sum of scores over matches the user has,
// divided by the total match count. Unmatched skills weigh zero. An
// empty list scores exactly 0.
func matchPercentage(matches []types.SkillMatch) float64 {
	if len(matches) == 0 {
		return 0.0
	}

	var total float64
	for _, match := range matches {
		if match.UserHasSkill {
			total += match.MatchScore
		}
	}

	return types.ClampPercentage(total / float64(len(matches)) * 100)
}

// resumeTailoringNotes builds the deterministic suggestion list in a
// fixed order: missing high-importance skills, strong matches, then a
// responsibilities-keywords reminder.
func resumeTailoringNotes(matches []types.SkillMatch, job types.JobDescription) []string {
	var notes []string

	var missing []string
	for _, match := range matches {
		if match.UserHasSkill {
			continue
		}
		for _, req := range job.Requirements {
			if req.ImportanceWeight >= 0.8 &&
				strings.Contains(strings.ToLower(match.Skill), strings.ToLower(req.SkillOrRequirement)) {
				missing = append(missing, match.Skill)
				break
			}
		}
	}
	if len(missing) > 0 {
		notes = append(notes, fmt.Sprintf("Consider developing skills in: %s",
			strings.Join(missing[:min(len(missing), 3)], ", ")))
	}

	var strong []string
	for _, match := range matches {
		if match.UserHasSkill && match.MatchScore >= 0.8 {
			strong = append(strong, match.Skill)
		}
	}
	if len(strong) > 0 {
		notes = append(notes, fmt.Sprintf("Emphasize these strong skill matches: %s",
			strings.Join(strong[:min(len(strong), 3)], ", ")))
	}

	if len(job.Responsibilities) > 0 {
		notes = append(notes, "Include keywords from job responsibilities in your descriptions")
	}

	return notes
}

// buildResumeSections renders every resume block. Projects and
// certifications only appear when the profile has them.
func buildResumeSections(profile types.UserProfile, matches []types.SkillMatch) []types.ResumeSection {
	sections := []types.ResumeSection{
		contactSection(profile),
		skillsSection(profile, matches),
		experienceSection(profile, matches),
		educationSection(profile),
	}

	if len(profile.Projects) > 0 {
		sections = append(sections, projectsSection(profile, matches))
	}
	if len(profile.Certifications) > 0 {
		sections = append(sections, certificationsSection(profile))
	}

	return sections
}

func contactSection(profile types.UserProfile) types.ResumeSection {
	lines := []string{profile.FullName, profile.ContactInfo.Email}

	if profile.ContactInfo.Phone != "" {
		lines = append(lines, profile.ContactInfo.Phone)
	}
	if profile.ContactInfo.LinkedIn != "" {
		lines = append(lines, "LinkedIn: "+profile.ContactInfo.LinkedIn)
	}
	if profile.ContactInfo.GitHub != "" {
		lines = append(lines, "GitHub: "+profile.ContactInfo.GitHub)
	}
	if profile.ContactInfo.Location != "" {
		lines = append(lines, profile.ContactInfo.Location)
	}

	return types.ResumeSection{
		SectionName: "Contact Information",
		Content:     strings.Join(lines, "\n"),
		Priority:    priorityContact,
	}
}

// skillsSection lists matched skills first, then the remaining profile
// skills, deduplicated case-insensitively and capped at 15.
func skillsSection(profile types.UserProfile, matches []types.SkillMatch) types.ResumeSection {
	var prioritized []string

	for _, match := range matches {
		if !match.UserHasSkill || match.MatchScore <= 0.5 {
			continue
		}
		for _, userSkill := range profile.Skills {
			lowerMatch := strings.ToLower(match.Skill)
			lowerUser := strings.ToLower(userSkill)
			if strings.Contains(lowerUser, lowerMatch) || strings.Contains(lowerMatch, lowerUser) {
				prioritized = append(prioritized, match.Skill)
				break
			}
		}
	}

	for _, skill := range profile.Skills {
		duplicate := false
		for _, existing := range prioritized {
			if strings.Contains(strings.ToLower(existing), strings.ToLower(skill)) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			prioritized = append(prioritized, skill)
		}
	}

	return types.ResumeSection{
		SectionName: "Technical Skills",
		Content:     strings.Join(prioritized[:min(len(prioritized), 15)], ", "),
		Priority:    prioritySkills,
	}
}

func experienceSection(profile types.UserProfile, matches []types.SkillMatch) types.ResumeSection {
	var matchedSkills []string
	for _, match := range matches {
		if match.UserHasSkill {
			matchedSkills = append(matchedSkills, strings.ToLower(match.Skill))
		}
	}

	blocks := make([]string, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		var lines []string
		lines = append(lines, fmt.Sprintf("%s | %s", exp.Position, exp.Company))

		startDate := "Unknown"
		if exp.StartDate != nil {
			startDate = exp.StartDate.YearMonth()
		}
		endDate := "Present"
		if exp.EndDate != nil {
			endDate = exp.EndDate.YearMonth()
		}
		lines = append(lines, fmt.Sprintf("%s - %s", startDate, endDate))

		lines = append(lines, "• "+exp.Description)
		for _, achievement := range exp.KeyAchievements {
			lines = append(lines, "• "+achievement)
		}

		var relevantTechs []string
		for _, tech := range exp.TechnologiesUsed {
			for _, skill := range matchedSkills {
				if strings.Contains(strings.ToLower(tech), skill) {
					relevantTechs = append(relevantTechs, tech)
					break
				}
			}
		}
		if len(relevantTechs) > 0 {
			lines = append(lines, "Technologies: "+strings.Join(relevantTechs, ", "))
		}

		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return types.ResumeSection{
		SectionName: "Professional Experience",
		Content:     strings.Join(blocks, "\n\n"),
		Priority:    priorityExperience,
	}
}

func educationSection(profile types.UserProfile) types.ResumeSection {
	var blocks []string

	for _, edu := range profile.Education {
		parts := []string{edu.Degree}
		if edu.FieldOfStudy != "" {
			parts = append(parts, "in "+edu.FieldOfStudy)
		}
		parts = append(parts, "| "+edu.Institution)
		if edu.GraduationDate != nil {
			parts = append(parts, "| "+edu.GraduationDate.YearString())
		}
		if edu.GPA >= 3.5 {
			parts = append(parts, fmt.Sprintf("| GPA: %.2f", edu.GPA))
		}
		blocks = append(blocks, strings.Join(parts, " "))

		if len(edu.RelevantCoursework) > 0 {
			coursework := edu.RelevantCoursework[:min(len(edu.RelevantCoursework), 5)]
			blocks = append(blocks, "Relevant Coursework: "+strings.Join(coursework, ", "))
		}
	}

	return types.ResumeSection{
		SectionName: "Education",
		Content:     strings.Join(blocks, "\n\n"),
		Priority:    priorityEducation,
	}
}

// projectsSection keeps the top 3 projects ranked by how many of their
// technologies overlap matched skills, ties broken by profile order.
func projectsSection(profile types.UserProfile, matches []types.SkillMatch) types.ResumeSection {
	var matchedSkills []string
	for _, match := range matches {
		if match.UserHasSkill {
			matchedSkills = append(matchedSkills, strings.ToLower(match.Skill))
		}
	}

	type rankedProject struct {
		project   types.Project
		relevance int
		order     int
	}

	ranked := make([]rankedProject, 0, len(profile.Projects))
	for i, project := range profile.Projects {
		relevance := 0
		for _, tech := range project.TechnologiesUsed {
			for _, skill := range matchedSkills {
				if strings.Contains(strings.ToLower(tech), skill) {
					relevance++
					break
				}
			}
		}
		ranked = append(ranked, rankedProject{project: project, relevance: relevance, order: i})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].relevance != ranked[j].relevance {
			return ranked[i].relevance > ranked[j].relevance
		}
		return ranked[i].order < ranked[j].order
	})

	var blocks []string
	for _, entry := range ranked[:min(len(ranked), 3)] {
		project := entry.project

		var lines []string
		lines = append(lines, project.Name)
		if project.URL != "" {
			lines = append(lines, "("+project.URL+")")
		}
		lines = append(lines, "• "+project.Description)
		if len(project.TechnologiesUsed) > 0 {
			lines = append(lines, "Technologies: "+strings.Join(project.TechnologiesUsed, ", "))
		}
		for _, achievement := range project.Achievements {
			lines = append(lines, "• "+achievement)
		}

		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return types.ResumeSection{
		SectionName: "Key Projects",
		Content:     strings.Join(blocks, "\n\n"),
		Priority:    priorityProjects,
	}
}

func certificationsSection(profile types.UserProfile) types.ResumeSection {
	var lines []string

	for _, cert := range profile.Certifications {
		line := fmt.Sprintf("%s | %s", cert.Name, cert.Issuer)
		if cert.IssueDate != nil {
			line += " | " + cert.IssueDate.YearString()
		}
		lines = append(lines, line)
	}

	return types.ResumeSection{
		SectionName: "Certifications",
		Content:     strings.Join(lines, "\n"),
		Priority:    priorityCertifications,
	}
}
