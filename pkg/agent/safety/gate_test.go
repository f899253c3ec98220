package safety

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"legal-assist-be/pkg/agent/state"
)

type stubClassifier struct {
	assessment *Assessment
	err        error
	called     bool
}

func (c *stubClassifier) Assess(ctx context.Context, query, jurisdiction string) (*Assessment, error) {
	c.called = true
	if c.err != nil {
		return nil, c.err
	}
	return c.assessment, nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestMatchCrisisCategory(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"I want to kill myself", CategorySelfHarm},
		{"there is no reason to live anymore", CategorySelfHarm},
		{"he hit me again last night", CategoryFamilyViolence},
		{"I need an avo against him", CategoryFamilyViolence},
		{"they took my kids away", CategoryChildWelfare},
		{"I was arrested yesterday", CategoryCriminal},
		{"my landlord raised the rent", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := MatchCrisisCategory(tt.query); got != tt.want {
				t.Errorf("MatchCrisisCategory(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestMightBeRisky(t *testing.T) {
	if !MightBeRisky("I have a court hearing tomorrow") {
		t.Error("expected court vocabulary to be risky")
	}
	if !MightBeRisky("I'm scared about being evicted") {
		t.Error("expected eviction vocabulary to be risky")
	}
	if MightBeRisky("how do I renew my car registration") {
		t.Error("expected neutral query to not be risky")
	}
}

func TestGateCrisisPatternSkipsClassifier(t *testing.T) {
	classifier := &stubClassifier{}
	gate := NewGate(classifier, NewStaticResourceLookup(), testLogger())

	result := gate.Check(context.Background(), "I want to end my life", "NSW")

	if result.Result != state.SafetyEscalate {
		t.Fatalf("Result = %q, want escalate", result.Result)
	}
	if len(result.Resources) == 0 {
		t.Error("expected crisis resources on escalation")
	}
	if classifier.called {
		t.Error("classifier must not run when a crisis pattern matched")
	}
}

func TestGateClassifierEscalates(t *testing.T) {
	classifier := &stubClassifier{
		assessment: &Assessment{
			RequiresEscalation: true,
			RecommendedResources: []state.CrisisResource{
				{Name: "Lifeline", Phone: "13 11 14"},
			},
		},
	}
	gate := NewGate(classifier, NewStaticResourceLookup(), testLogger())

	result := gate.Check(context.Background(), "I'm scared about my court hearing", "NSW")

	if !classifier.called {
		t.Fatal("expected classifier to run on uncertain vocabulary")
	}
	if result.Result != state.SafetyEscalate {
		t.Errorf("Result = %q, want escalate", result.Result)
	}
	if len(result.Resources) != 1 || result.Resources[0].Name != "Lifeline" {
		t.Errorf("Resources = %v", result.Resources)
	}
}

func TestGateClassifierSafe(t *testing.T) {
	classifier := &stubClassifier{
		assessment: &Assessment{RequiresEscalation: false},
	}
	gate := NewGate(classifier, NewStaticResourceLookup(), testLogger())

	result := gate.Check(context.Background(), "I'm worried about my lease deadline", "VIC")

	if result.Result != state.SafetySafe {
		t.Errorf("Result = %q, want safe", result.Result)
	}
	if result.ClassifierErr != nil {
		t.Errorf("ClassifierErr = %v, want nil", result.ClassifierErr)
	}
}

func TestGateFailsOpenOnClassifierError(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("timeout")}
	gate := NewGate(classifier, NewStaticResourceLookup(), testLogger())

	result := gate.Check(context.Background(), "I'm scared about my court hearing", "NSW")

	if result.Result != state.SafetySafe {
		t.Errorf("Result = %q, want safe on classifier failure", result.Result)
	}
	if result.ClassifierErr == nil {
		t.Error("expected ClassifierErr to surface the failure")
	}
}

func TestGateNeutralQuerySkipsBothTiers(t *testing.T) {
	classifier := &stubClassifier{}
	gate := NewGate(classifier, NewStaticResourceLookup(), testLogger())

	result := gate.Check(context.Background(), "how do I dispute a parking ticket", "")

	if result.Result != state.SafetySafe {
		t.Errorf("Result = %q, want safe", result.Result)
	}
	if classifier.called {
		t.Error("classifier must not run for neutral vocabulary")
	}
}

func TestGateEmptyQuery(t *testing.T) {
	classifier := &stubClassifier{}
	gate := NewGate(classifier, NewStaticResourceLookup(), testLogger())

	result := gate.Check(context.Background(), "   ", "NSW")

	if result.Result != state.SafetySafe {
		t.Errorf("Result = %q, want safe for blank query", result.Result)
	}
	if classifier.called {
		t.Error("classifier must not run for blank query")
	}
}

func TestStaticResourceLookupUnknownCategory(t *testing.T) {
	lookup := NewStaticResourceLookup()
	resources := lookup.ResourcesFor(context.Background(), "something_new", "NSW")
	if len(resources) == 0 {
		t.Error("unknown category must still return resources")
	}
}
