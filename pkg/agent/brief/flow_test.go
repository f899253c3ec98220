package brief

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"legal-assist-be/pkg/agent/state"
)

type stubExtractor struct {
	facts  *state.ExtractedFacts
	err    error
	called bool
}

func (e *stubExtractor) Extract(ctx context.Context, conversation, jurisdiction string) (*state.ExtractedFacts, error) {
	e.called = true
	return e.facts, e.err
}

type stubQuestions struct {
	result  *FollowUpQuestions
	err     error
	gotGaps []string
}

func (q *stubQuestions) Questions(ctx context.Context, summary string, missing []string) (*FollowUpQuestions, error) {
	q.gotGaps = missing
	return q.result, q.err
}

type stubGenerator struct {
	brief *StructuredBrief
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, conversation, extractedFacts, jurisdiction string) (*StructuredBrief, error) {
	return g.brief, g.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func goodFacts() *state.ExtractedFacts {
	return &state.ExtractedFacts{
		LegalArea:        "tenancy",
		SituationSummary: "Rent dispute",
		KeyFacts:         []string{"40% increase", "periodic agreement"},
		Confidence:       0.8,
	}
}

func newTestFlow(e FactExtractor, q QuestionGenerator, g Generator, maxRounds int) *Flow {
	return NewFlow(e, q, g, maxRounds, testLogger())
}

func TestCheckInfoComplete(t *testing.T) {
	extractor := &stubExtractor{facts: goodFacts()}
	flow := newTestFlow(extractor, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	patch, force := flow.CheckInfo(context.Background(), s, "all the details")

	if force {
		t.Error("force = true, want false")
	}
	s.Apply(patch)
	if !s.BriefInfoComplete {
		t.Error("expected complete record")
	}
	if RouteInfo(s) != RouteGenerate {
		t.Errorf("RouteInfo = %q, want generate", RouteInfo(s))
	}
}

func TestCheckInfoIncompleteOnGaps(t *testing.T) {
	facts := goodFacts()
	facts.MissingCriticalInfo = []string{"when notice was served", "lease type"}
	extractor := &stubExtractor{facts: facts}
	flow := newTestFlow(extractor, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	patch, _ := flow.CheckInfo(context.Background(), s, "my landlord raised the rent")
	s.Apply(patch)

	if s.BriefInfoComplete {
		t.Error("expected incomplete record with 2 gaps")
	}
	if RouteInfo(s) != RouteAsk {
		t.Errorf("RouteInfo = %q, want ask", RouteInfo(s))
	}
}

func TestCheckInfoLowConfidenceIncomplete(t *testing.T) {
	facts := goodFacts()
	facts.Confidence = 0.4
	facts.MissingCriticalInfo = []string{"details"}
	flow := newTestFlow(&stubExtractor{facts: facts}, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	patch, _ := flow.CheckInfo(context.Background(), s, "help me")
	s.Apply(patch)

	if s.BriefInfoComplete {
		t.Error("low confidence must not be complete")
	}
}

func TestCheckInfoUnknownLegalAreaIncomplete(t *testing.T) {
	facts := goodFacts()
	facts.LegalArea = "unknown"
	facts.MissingCriticalInfo = []string{"area of law"}
	flow := newTestFlow(&stubExtractor{facts: facts}, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	patch, _ := flow.CheckInfo(context.Background(), s, "something happened")
	s.Apply(patch)

	if s.BriefInfoComplete {
		t.Error("unknown legal area must not be complete")
	}
}

func TestCheckInfoSkipMovesGapsToUnknown(t *testing.T) {
	extractor := &stubExtractor{facts: goodFacts()}
	flow := newTestFlow(extractor, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	s.BriefQuestionsAsked = 1
	s.BriefMissingInfo = []string{"exact date", "amount owed"}
	s.BriefUnknownInfo = []string{"amount owed"}

	patch, force := flow.CheckInfo(context.Background(), s, "I don't know")

	if force {
		t.Error("skip must not force generation by itself")
	}
	if extractor.called {
		t.Error("skip path must not re-extract")
	}
	s.Apply(patch)

	if len(s.BriefMissingInfo) != 0 {
		t.Errorf("BriefMissingInfo = %v, want empty", s.BriefMissingInfo)
	}
	if len(s.BriefUnknownInfo) != 2 {
		t.Errorf("BriefUnknownInfo = %v, want deduplicated merge of 2", s.BriefUnknownInfo)
	}
	if !s.BriefInfoComplete {
		t.Error("skip must complete the record")
	}
}

func TestCheckInfoSkipIgnoredBeforeFirstQuestion(t *testing.T) {
	facts := goodFacts()
	facts.MissingCriticalInfo = []string{"gap one", "gap two"}
	extractor := &stubExtractor{facts: facts}
	flow := newTestFlow(extractor, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	// No questions asked yet: "not sure what to do" is the situation
	// description, not a skip.
	flow.CheckInfo(context.Background(), s, "not sure what to do about my landlord")

	if !extractor.called {
		t.Error("expected extraction when no questions are pending")
	}
}

func TestCheckInfoGenerateNowStillExtracts(t *testing.T) {
	extractor := &stubExtractor{facts: goodFacts()}
	flow := newTestFlow(extractor, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	s.BriefQuestionsAsked = 1
	_, force := flow.CheckInfo(context.Background(), s, "just generate it now")

	if !force {
		t.Error("expected force generation")
	}
	if !extractor.called {
		t.Error("generate-now must still run extraction")
	}
}

func TestCheckInfoDeclinedItemsStayUnknown(t *testing.T) {
	facts := goodFacts()
	facts.MissingCriticalInfo = []string{"exact date", "witness names"}
	flow := newTestFlow(&stubExtractor{facts: facts}, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	s.BriefUnknownInfo = []string{"exact date"}
	patch, _ := flow.CheckInfo(context.Background(), s, "there was one witness")
	s.Apply(patch)

	if len(s.BriefMissingInfo) != 1 || s.BriefMissingInfo[0] != "witness names" {
		t.Errorf("BriefMissingInfo = %v, declined items must not return", s.BriefMissingInfo)
	}
}

func TestCheckInfoExtractionFailureFailsOpen(t *testing.T) {
	flow := newTestFlow(&stubExtractor{err: errors.New("llm down")}, &stubQuestions{}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	patch, _ := flow.CheckInfo(context.Background(), s, "my situation")
	s.Apply(patch)

	if !s.BriefInfoComplete {
		t.Error("extraction failure must complete the record")
	}
	if s.BriefFacts == nil || s.BriefFacts.LegalArea != "general" {
		t.Errorf("BriefFacts = %+v, want general placeholder", s.BriefFacts)
	}
	if s.BriefFacts.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", s.BriefFacts.Confidence)
	}
}

func TestCheckInfoMaxRoundsForcesCompletion(t *testing.T) {
	facts := goodFacts()
	facts.Confidence = 0.2
	facts.MissingCriticalInfo = []string{"a", "b", "c"}
	flow := newTestFlow(&stubExtractor{facts: facts}, &stubQuestions{}, &stubGenerator{}, 2)

	s := state.NewSession("s1")
	s.BriefQuestionsAsked = 2
	patch, _ := flow.CheckInfo(context.Background(), s, "more vague details")
	s.Apply(patch)

	if !s.BriefInfoComplete {
		t.Error("round cap must force completion")
	}
}

func TestAskQuestions(t *testing.T) {
	questions := &stubQuestions{
		result: &FollowUpQuestions{Questions: []string{"When did it happen?", "Do you have the notice?"}},
	}
	flow := newTestFlow(&stubExtractor{}, questions, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	s.BriefMissingInfo = []string{"date", "notice"}
	s.BriefFacts = goodFacts()

	patch := flow.AskQuestions(context.Background(), s)
	s.Apply(patch)

	if s.BriefQuestionsAsked != 1 {
		t.Errorf("BriefQuestionsAsked = %d, want 1", s.BriefQuestionsAsked)
	}
	reply := s.Messages[len(s.Messages)-1].Content
	if !strings.Contains(reply, "1. When did it happen?") || !strings.Contains(reply, "2. Do you have the notice?") {
		t.Errorf("reply missing numbered questions:\n%s", reply)
	}
	if len(s.QuickReplies) != 3 || s.QuickReplies[2] != "Skip this" {
		t.Errorf("QuickReplies = %v", s.QuickReplies)
	}
}

func TestAskQuestionsTruncatesGaps(t *testing.T) {
	questions := &stubQuestions{
		result: &FollowUpQuestions{Questions: []string{"q"}},
	}
	flow := newTestFlow(&stubExtractor{}, questions, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	s.BriefMissingInfo = []string{"a", "b", "c", "d", "e", "f", "g"}

	flow.AskQuestions(context.Background(), s)

	if len(questions.gotGaps) != 5 {
		t.Errorf("gaps passed = %d, want 5", len(questions.gotGaps))
	}
}

func TestAskQuestionsFailureForcesCompletion(t *testing.T) {
	flow := newTestFlow(&stubExtractor{}, &stubQuestions{err: errors.New("llm down")}, &stubGenerator{}, 0)

	s := state.NewSession("s1")
	s.BriefMissingInfo = []string{"date"}

	patch := flow.AskQuestions(context.Background(), s)
	s.Apply(patch)

	if !s.BriefInfoComplete {
		t.Error("question failure must force completion")
	}
	if s.BriefQuestionsAsked != 1 {
		t.Errorf("BriefQuestionsAsked = %d, want 1", s.BriefQuestionsAsked)
	}
	reply := s.Messages[len(s.Messages)-1].Content
	if !strings.Contains(reply, "information we have") {
		t.Errorf("unexpected reply: %s", reply)
	}
}

func TestGenerateSuccess(t *testing.T) {
	generator := &stubGenerator{
		brief: &StructuredBrief{
			ExecutiveSummary: "Summary",
			LegalArea:        "tenancy",
			UrgencyLevel:     UrgencyStandard,
		},
	}
	flow := newTestFlow(&stubExtractor{}, &stubQuestions{}, generator, 0)

	s := state.NewSession("s1")
	s.Mode = state.ModeBrief
	s.BriefQuestionsAsked = 2
	s.BriefUnknownInfo = []string{"exact date"}

	patch := flow.Generate(context.Background(), s)
	s.Apply(patch)

	if s.Mode != state.ModeChat {
		t.Errorf("Mode = %q, want chat after generation", s.Mode)
	}
	if s.BriefQuestionsAsked != 0 {
		t.Errorf("BriefQuestionsAsked = %d, want reset to 0", s.BriefQuestionsAsked)
	}
	if !s.SuggestLawyer {
		t.Error("expected SuggestLawyer after a brief")
	}
	reply := s.Messages[len(s.Messages)-1].Content
	if !strings.Contains(reply, "# Lawyer Brief") || !strings.Contains(reply, "exact date") {
		t.Errorf("unexpected brief message:\n%s", reply)
	}
}

func TestGenerateFailureRestoresChatMode(t *testing.T) {
	flow := newTestFlow(&stubExtractor{}, &stubQuestions{}, &stubGenerator{err: errors.New("llm down")}, 0)

	s := state.NewSession("s1")
	s.Mode = state.ModeBrief
	s.BriefQuestionsAsked = 1

	patch := flow.Generate(context.Background(), s)
	s.Apply(patch)

	if s.Mode != state.ModeChat {
		t.Errorf("Mode = %q, session must never stay stuck in brief", s.Mode)
	}
	if s.BriefQuestionsAsked != 0 {
		t.Errorf("BriefQuestionsAsked = %d, want 0", s.BriefQuestionsAsked)
	}
	if len(s.QuickReplies) != 3 || s.QuickReplies[1] != "Try again" {
		t.Errorf("QuickReplies = %v", s.QuickReplies)
	}
	if s.SuggestLawyer {
		t.Error("failed generation must not suggest a lawyer via flag")
	}
}
