package safety

import (
	"context"
	"log"
	"strings"

	"legal-assist-be/pkg/agent/state"
)

// Assessment is the external classifier's verdict for an ambiguous query.
type Assessment struct {
	RequiresEscalation   bool                   `json:"requires_escalation"`
	RecommendedResources []state.CrisisResource `json:"recommended_resources"`
}

// Classifier is the external escalation classifier consulted for
// uncertain queries. May fail or time out.
type Classifier interface {
	Assess(ctx context.Context, query, jurisdiction string) (*Assessment, error)
}

// ResourceLookup resolves support resources by risk category and
// jurisdiction.
type ResourceLookup interface {
	ResourcesFor(ctx context.Context, category, jurisdiction string) []state.CrisisResource
}

// CheckResult carries the gate verdict. ClassifierErr is non-nil when
// the fallback classifier failed and the gate failed open to safe; the
// caller surfaces it to observability.
type CheckResult struct {
	Result        state.SafetyResult
	Resources     []state.CrisisResource
	ClassifierErr error
}

// Gate is the two-tier safety check: deterministic pattern matching
// first, classifier fallback only for uncertain vocabulary.
type Gate struct {
	classifier Classifier
	resources  ResourceLookup
	logger     *log.Logger
}

func NewGate(classifier Classifier, resources ResourceLookup, logger *log.Logger) *Gate {
	return &Gate{
		classifier: classifier,
		resources:  resources,
		logger:     logger,
	}
}

// Check runs the two-tier classification for one turn.
func (g *Gate) Check(ctx context.Context, query, jurisdiction string) CheckResult {
	// Empty queries short-circuit before either tier runs
	if strings.TrimSpace(query) == "" {
		return CheckResult{Result: state.SafetySafe}
	}

	// Tier 1: deterministic crisis match, no classifier call
	if category := MatchCrisisCategory(query); category != "" {
		g.logger.Printf("[SAFETY] Crisis pattern matched: category=%s", category)
		return CheckResult{
			Result:    state.SafetyEscalate,
			Resources: g.resources.ResourcesFor(ctx, category, jurisdiction),
		}
	}

	// Tier 2: classifier fallback for uncertain vocabulary only
	if MightBeRisky(query) {
		g.logger.Printf("[SAFETY] Uncertain vocabulary detected, running classifier")
		assessment, err := g.classifier.Assess(ctx, query, jurisdiction)
		if err != nil {
			// Fail open: the turn must not hang on a classifier outage.
			g.logger.Printf("[ERROR] Safety classifier failed, treating turn as safe: %v", err)
			return CheckResult{Result: state.SafetySafe, ClassifierErr: err}
		}
		if assessment.RequiresEscalation {
			return CheckResult{
				Result:    state.SafetyEscalate,
				Resources: assessment.RecommendedResources,
			}
		}
	}

	return CheckResult{Result: state.SafetySafe}
}

func lowercase(s string) string {
	return strings.ToLower(s)
}
