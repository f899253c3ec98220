package brief

import "strings"

// GenerateNowTrigger is the literal override marker the frontend can
// embed when the user asks for the brief immediately.
const GenerateNowTrigger = "[GENERATE_NOW]"

// skipPhrases mark a reply as declining to answer the pending
// follow-up questions.
var skipPhrases = []string{
	"i don't know",
	"i dont know",
	"not sure",
	"unsure",
	"no idea",
	"skip",
}

// generateNowPhrases request immediate brief generation.
var generateNowPhrases = []string{
	"just generate",
	"generate now",
	"generate it now",
	"generate the brief now",
	"generate brief now",
	"generate anyway",
}

// DetectSkipReply reports whether the user declined to answer, e.g.
// "I don't know" or "skip this".
func DetectSkipReply(reply string) bool {
	lower := strings.ToLower(strings.TrimSpace(reply))
	if lower == "" {
		return false
	}
	for _, phrase := range skipPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// DetectGenerateNow reports whether the user asked to generate the
// brief immediately, regardless of remaining gaps.
func DetectGenerateNow(query string) bool {
	if strings.Contains(query, GenerateNowTrigger) {
		return true
	}
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return false
	}
	for _, phrase := range generateNowPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
