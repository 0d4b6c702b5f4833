package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeflow/internal/errors"
	"resumeflow/internal/types"
)

// stripCodeFences removes a leading/trailing markdown code fence from an
// LLM reply. Models wrap JSON in ```json fences often enough that the
// matcher has to tolerate it.
func stripCodeFences(s string) string {
	cleaned := strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(cleaned, "```json"); ok {
		cleaned = after
	} else if after, ok := strings.CutPrefix(cleaned, "```"); ok {
		cleaned = after
	}
	if before, ok := strings.CutSuffix(strings.TrimSpace(cleaned), "```"); ok {
		cleaned = before
	}
	return strings.TrimSpace(cleaned)
}

// parseSkillMatches decodes the matcher's reply into SkillMatch values.
// A reply that is not a JSON array is an error. Individually invalid
// elements are skipped with a warning so one bad element never fails
// the batch. Scores are clamped into [0, 1].
func parseSkillMatches(raw string, logger *errors.Logger) ([]types.SkillMatch, error) {
	cleaned := stripCodeFences(raw)

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &elements); err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIResponseParse,
			fmt.Sprintf("skill match response is not a JSON array: %.200s", cleaned), err)
	}

	matches := make([]types.SkillMatch, 0, len(elements))
	for i, element := range elements {
		var match types.SkillMatch
		if err := json.Unmarshal(element, &match); err != nil {
			if logger != nil {
				logger.Warn("Skipping invalid skill match element",
					"index", i, "error", err.Error())
			}
			continue
		}
		if match.Skill == "" {
			if logger != nil {
				logger.Warn("Skipping skill match element without a skill name", "index", i)
			}
			continue
		}
		match.ClampScore()
		matches = append(matches, match)
	}

	return matches, nil
}
