package matching

import (
	"regexp"
	"strings"
)

const maxRequirementSentences = 10

var requirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:required|must have|should have|prefer(?:red)?|experience with|knowledge of)\b`),
	regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|degree|certification)\b`),
	regexp.MustCompile(`(?i)\b(?:years?)\s+(?:of\s+)?(?:experience|exp)\b`),
}

// ExtractRequirementSentences returns up to ten sentences of a job description that state a
// requirement: must-haves, degrees or years of experience. Sentences are split on periods.
func ExtractRequirementSentences(description string) []string {
	out := []string{}
	for _, sentence := range strings.Split(description, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		for _, re := range requirementPatterns {
			if re.MatchString(sentence) {
				out = append(out, sentence)
				break
			}
		}
		if len(out) == maxRequirementSentences {
			break
		}
	}
	return out
}
