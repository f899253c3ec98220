package safety

import "regexp"

// Crisis risk categories
const (
	CategorySelfHarm       = "suicide_self_harm"
	CategoryFamilyViolence = "family_violence"
	CategoryChildWelfare   = "child_welfare"
	CategoryCriminal       = "criminal"
)

// PatternGroup is a named category of high-precision crisis triggers.
// Kept as data so categories and patterns can be extended without
// touching the gate's control flow.
type PatternGroup struct {
	Category string
	Patterns []*regexp.Regexp
}

// CrisisPatterns are high-confidence triggers that escalate without
// classifier verification.
var CrisisPatterns = []PatternGroup{
	{
		Category: CategorySelfHarm,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(kill myself|end my life|want to die|suicide|self.?harm)\b`),
			regexp.MustCompile(`\b(can'?t go on|no reason to live|better off dead)\b`),
		},
	},
	{
		Category: CategoryFamilyViolence,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(hit me|beat me|abused|domestic violence|scared of (my|him|her))\b`),
			regexp.MustCompile(`\b(threatened to (kill|hurt)|avo|dvo|protection order)\b`),
		},
	},
	{
		Category: CategoryChildWelfare,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(child (protection|services)|docs|took my (kids|children))\b`),
			regexp.MustCompile(`\b(child abuse|hurt (my|the) (child|kid|baby))\b`),
		},
	},
	{
		Category: CategoryCriminal,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(arrested|charged with|police (station|custody)|criminal charge)\b`),
			regexp.MustCompile(`\b(going to (jail|prison|court for crime))\b`),
		},
	},
}

// UncertainPatterns are broader, lower-precision signals. A match means
// the external classifier gets the final say.
var UncertainPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(court|hearing|deadline|tomorrow|next week)\b`),
	regexp.MustCompile(`\b(evicted?|kicked out|homeless)\b`),
	regexp.MustCompile(`\b(scared|afraid|worried|anxious)\b`),
	regexp.MustCompile(`\b(police|officer|crime)\b`),
	regexp.MustCompile(`\b(hurt|pain|danger)\b`),
}

// MatchCrisisCategory returns the first crisis category whose pattern
// matches the query, or "" if none match.
func MatchCrisisCategory(query string) string {
	lower := lowercase(query)
	for _, group := range CrisisPatterns {
		for _, pattern := range group.Patterns {
			if pattern.MatchString(lower) {
				return group.Category
			}
		}
	}
	return ""
}

// MightBeRisky reports whether the query contains uncertain vocabulary
// that warrants classifier verification.
func MightBeRisky(query string) bool {
	lower := lowercase(query)
	for _, pattern := range UncertainPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
