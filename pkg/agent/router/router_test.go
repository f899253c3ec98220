package router

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"legal-assist-be/pkg/agent/brief"
	"legal-assist-be/pkg/agent/chat"
	"legal-assist-be/pkg/agent/quickreply"
	"legal-assist-be/pkg/agent/safety"
	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/agent/turnctx"
)

type stubGate struct {
	result safety.CheckResult
	called bool
}

func (g *stubGate) Check(ctx context.Context, query, jurisdiction string) safety.CheckResult {
	g.called = true
	return g.result
}

type stubResponder struct {
	reply string
	err   error
}

func (r *stubResponder) Respond(ctx context.Context, s *state.Session) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}

type stubAdvisor struct {
	suggestion *quickreply.Suggestion
	err        error
}

func (a *stubAdvisor) Advise(ctx context.Context, messages []state.TurnMessage, response string) (*quickreply.Suggestion, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.suggestion, nil
}

type stubExtractor struct {
	facts *state.ExtractedFacts
	err   error
}

func (e *stubExtractor) Extract(ctx context.Context, conversation, jurisdiction string) (*state.ExtractedFacts, error) {
	return e.facts, e.err
}

type stubQuestions struct {
	result *brief.FollowUpQuestions
	err    error
}

func (q *stubQuestions) Questions(ctx context.Context, summary string, missing []string) (*brief.FollowUpQuestions, error) {
	return q.result, q.err
}

type stubGenerator struct {
	brief *brief.StructuredBrief
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, conversation, extractedFacts, jurisdiction string) (*brief.StructuredBrief, error) {
	return g.brief, g.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func safeGate() *stubGate {
	return &stubGate{result: safety.CheckResult{Result: state.SafetySafe}}
}

func defaultAdvisor() *stubAdvisor {
	return &stubAdvisor{suggestion: &quickreply.Suggestion{
		QuickReplies: []string{"Tell me more"},
		SuggestBrief: true,
	}}
}

func newTestRouter(gate SafetyChecker, responder chat.Responder, flow *brief.Flow, advisor quickreply.Advisor) *Router {
	if flow == nil {
		flow = brief.NewFlow(&stubExtractor{}, &stubQuestions{}, &stubGenerator{}, 0, testLogger())
	}
	return NewRouter(gate, responder, flow, advisor, testLogger())
}

func sessionWithUserMessage(content string) *state.Session {
	s := state.NewSession("s1")
	s.Messages = append(s.Messages, state.TurnMessage{Role: state.RoleUser, Content: content})
	return s
}

func TestRouteAfterInitialize(t *testing.T) {
	tests := []struct {
		name  string
		mode  state.Mode
		tc    turnctx.TurnContext
		want  string
	}{
		{
			name: "brief mode wins",
			mode: state.ModeBrief,
			tc:   turnctx.TurnContext{Query: "hi"},
			want: RouteBrief,
		},
		{
			name: "first message always checked",
			mode: state.ModeChat,
			tc:   turnctx.TurnContext{Query: "hi", IsFirstMessage: true},
			want: RouteCheck,
		},
		{
			name: "short benign follow-up skips the gate",
			mode: state.ModeChat,
			tc:   turnctx.TurnContext{Query: "yes that one"},
			want: RouteSkip,
		},
		{
			name: "short query with crisis word is checked",
			mode: state.ModeChat,
			tc:   turnctx.TurnContext{Query: "please help me"},
			want: RouteCheck,
		},
		{
			name: "long query is checked",
			mode: state.ModeChat,
			tc:   turnctx.TurnContext{Query: "my landlord has issued a termination notice for my apartment"},
			want: RouteCheck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := state.NewSession("s1")
			s.Mode = tt.mode
			if got := RouteAfterInitialize(s, tt.tc); got != tt.want {
				t.Errorf("RouteAfterInitialize = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunSafeChatTurn(t *testing.T) {
	gate := safeGate()
	r := newTestRouter(gate, &stubResponder{reply: "You have rights under the Residential Tenancies Act."}, nil, defaultAdvisor())

	s := sessionWithUserMessage("my landlord raised the rent by 40 percent this year")
	result := r.Run(context.Background(), s, turnctx.TurnContext{Query: s.Messages[0].Content, IsFirstMessage: true})

	if result.Terminal != NodeChatResponse {
		t.Fatalf("Terminal = %q, want chat_response", result.Terminal)
	}
	if !gate.called {
		t.Error("expected gate to run on first message")
	}
	last := s.Messages[len(s.Messages)-1]
	if last.Role != state.RoleAssistant || !strings.Contains(last.Content, "Residential Tenancies") {
		t.Errorf("unexpected reply message: %+v", last)
	}
	if len(s.QuickReplies) != 1 || !s.SuggestBrief {
		t.Errorf("advisory output not applied: replies=%v suggest=%v", s.QuickReplies, s.SuggestBrief)
	}
	if s.SafetyResult != state.SafetySafe {
		t.Errorf("SafetyResult = %q, want safe", s.SafetyResult)
	}
}

func TestRunEscalation(t *testing.T) {
	gate := &stubGate{result: safety.CheckResult{
		Result: state.SafetyEscalate,
		Resources: []state.CrisisResource{
			{Name: "Lifeline", Phone: "13 11 14", Description: "24/7 crisis support"},
		},
	}}
	r := newTestRouter(gate, &stubResponder{reply: "never sent"}, nil, defaultAdvisor())

	s := sessionWithUserMessage("I can't cope anymore and want to end things")
	result := r.Run(context.Background(), s, turnctx.TurnContext{Query: s.Messages[0].Content, IsFirstMessage: true})

	if result.Terminal != NodeEscalation {
		t.Fatalf("Terminal = %q, want escalation_response", result.Terminal)
	}
	last := s.Messages[len(s.Messages)-1]
	if !strings.Contains(last.Content, "Lifeline") || !strings.Contains(last.Content, "13 11 14") {
		t.Errorf("escalation message missing resource details:\n%s", last.Content)
	}
	if len(s.CrisisResources) != 1 {
		t.Errorf("CrisisResources = %v", s.CrisisResources)
	}
	if s.SafetyResult != state.SafetyEscalate {
		t.Errorf("SafetyResult = %q", s.SafetyResult)
	}
}

func TestRunShortQuerySkipsGate(t *testing.T) {
	gate := safeGate()
	r := newTestRouter(gate, &stubResponder{reply: "Sure."}, nil, defaultAdvisor())

	s := sessionWithUserMessage("first question about my lease agreement and bond refund")
	s.Messages = append(s.Messages,
		state.TurnMessage{Role: state.RoleAssistant, Content: "answer"},
		state.TurnMessage{Role: state.RoleUser, Content: "yes exactly"},
	)

	result := r.Run(context.Background(), s, turnctx.TurnContext{Query: "yes exactly"})

	if gate.called {
		t.Error("gate must not run for a short benign follow-up")
	}
	if result.Terminal != NodeChatResponse {
		t.Errorf("Terminal = %q, want chat_response", result.Terminal)
	}
}

func TestRunClassifierErrorSurfaced(t *testing.T) {
	gate := &stubGate{result: safety.CheckResult{
		Result:        state.SafetySafe,
		ClassifierErr: errors.New("timeout"),
	}}
	r := newTestRouter(gate, &stubResponder{reply: "ok"}, nil, defaultAdvisor())

	s := sessionWithUserMessage("I'm scared about my upcoming court hearing next week")
	result := r.Run(context.Background(), s, turnctx.TurnContext{Query: s.Messages[0].Content, IsFirstMessage: true})

	if result.ClassifierErr == nil {
		t.Error("expected classifier error to surface in the turn result")
	}
	if result.Terminal != NodeChatResponse {
		t.Errorf("Terminal = %q, the turn itself must still complete", result.Terminal)
	}
}

func TestInitializeResetsStaleTurnState(t *testing.T) {
	r := newTestRouter(safeGate(), &stubResponder{reply: "ok"}, nil, defaultAdvisor())

	s := sessionWithUserMessage("earlier crisis message that triggered escalation last turn")
	s.SafetyResult = state.SafetyEscalate
	s.QuickReplies = []string{"stale"}
	s.SuggestLawyer = true
	s.Messages = append(s.Messages,
		state.TurnMessage{Role: state.RoleAssistant, Content: "escalation reply"},
		state.TurnMessage{Role: state.RoleUser, Content: "yes exactly"},
	)

	r.Run(context.Background(), s, turnctx.TurnContext{Query: "yes exactly"})

	if s.SafetyResult == state.SafetyEscalate {
		t.Error("stale escalation verdict must not survive into the next turn")
	}
	if s.SuggestLawyer {
		t.Error("stale lawyer suggestion must be cleared")
	}
}

func TestBriefTriggerResetsEpisode(t *testing.T) {
	flow := brief.NewFlow(
		&stubExtractor{facts: &state.ExtractedFacts{
			LegalArea:           "tenancy",
			SituationSummary:    "Rent dispute",
			KeyFacts:            []string{"one fact"},
			MissingCriticalInfo: []string{"lease type", "notice date"},
			Confidence:          0.5,
		}},
		&stubQuestions{result: &brief.FollowUpQuestions{Questions: []string{"What kind of lease?"}}},
		&stubGenerator{},
		0,
		testLogger(),
	)
	r := newTestRouter(safeGate(), &stubResponder{reply: "unused"}, flow, defaultAdvisor())

	s := sessionWithUserMessage("please make the brief")
	s.BriefQuestionsAsked = 3
	s.BriefUnknownInfo = []string{"old declined item"}
	s.BriefInfoComplete = true

	result := r.Run(context.Background(), s, turnctx.TurnContext{
		Query:          "please make the brief",
		BriefTriggered: true,
	})

	if result.Terminal != NodeBriefAsk {
		t.Fatalf("Terminal = %q, want brief_ask_questions", result.Terminal)
	}
	if s.Mode != state.ModeBrief {
		t.Errorf("Mode = %q, want brief", s.Mode)
	}
	if s.BriefQuestionsAsked != 1 {
		t.Errorf("BriefQuestionsAsked = %d, want 1 after reset plus one round", s.BriefQuestionsAsked)
	}
	if len(s.BriefUnknownInfo) != 0 {
		t.Errorf("BriefUnknownInfo = %v, want cleared by fresh episode", s.BriefUnknownInfo)
	}
	last := s.Messages[len(s.Messages)-1]
	if !strings.Contains(last.Content, "What kind of lease?") {
		t.Errorf("expected follow-up question in reply:\n%s", last.Content)
	}
}

func TestBriefSkipReplyGeneratesWithUnknowns(t *testing.T) {
	flow := brief.NewFlow(
		&stubExtractor{},
		&stubQuestions{},
		&stubGenerator{brief: &brief.StructuredBrief{
			ExecutiveSummary: "Tenant rent dispute",
			LegalArea:        "tenancy",
			UrgencyLevel:     brief.UrgencyStandard,
		}},
		0,
		testLogger(),
	)
	r := newTestRouter(safeGate(), &stubResponder{reply: "unused"}, flow, defaultAdvisor())

	s := sessionWithUserMessage("my landlord raised the rent a lot")
	s.Mode = state.ModeBrief
	s.BriefQuestionsAsked = 1
	s.BriefMissingInfo = []string{"exact notice date"}
	s.Messages = append(s.Messages,
		state.TurnMessage{Role: state.RoleAssistant, Content: "When was the notice served?"},
		state.TurnMessage{Role: state.RoleUser, Content: "I don't know"},
	)

	result := r.Run(context.Background(), s, turnctx.TurnContext{Query: "I don't know"})

	if result.Terminal != NodeBriefGenerate {
		t.Fatalf("Terminal = %q, want brief_generate", result.Terminal)
	}
	if s.Mode != state.ModeChat {
		t.Errorf("Mode = %q, want chat after generation", s.Mode)
	}
	last := s.Messages[len(s.Messages)-1]
	if !strings.Contains(last.Content, "# Lawyer Brief") {
		t.Errorf("expected formatted brief:\n%s", last.Content)
	}
	if !strings.Contains(last.Content, "exact notice date") {
		t.Errorf("declined item missing from brief:\n%s", last.Content)
	}
	if !s.SuggestLawyer {
		t.Error("expected lawyer suggestion after a generated brief")
	}
}

func TestBriefGenerateNowOverridesGaps(t *testing.T) {
	flow := brief.NewFlow(
		&stubExtractor{facts: &state.ExtractedFacts{
			LegalArea:           "tenancy",
			SituationSummary:    "Rent dispute",
			MissingCriticalInfo: []string{"a", "b", "c"},
			Confidence:          0.2,
		}},
		&stubQuestions{result: &brief.FollowUpQuestions{Questions: []string{"never asked"}}},
		&stubGenerator{brief: &brief.StructuredBrief{LegalArea: "tenancy", UrgencyLevel: brief.UrgencyStandard}},
		0,
		testLogger(),
	)
	r := newTestRouter(safeGate(), &stubResponder{reply: "unused"}, flow, defaultAdvisor())

	s := sessionWithUserMessage("just generate it now")
	s.Mode = state.ModeBrief
	s.BriefQuestionsAsked = 1

	result := r.Run(context.Background(), s, turnctx.TurnContext{Query: "just generate it now"})

	if result.Terminal != NodeBriefGenerate {
		t.Fatalf("Terminal = %q, want brief_generate despite open gaps", result.Terminal)
	}
}

func TestRunResponderFailure(t *testing.T) {
	r := newTestRouter(safeGate(), &stubResponder{err: errors.New("llm down")}, nil, defaultAdvisor())

	s := sessionWithUserMessage("tell me about unfair dismissal time limits please")
	result := r.Run(context.Background(), s, turnctx.TurnContext{Query: s.Messages[0].Content, IsFirstMessage: true})

	if result.Terminal != NodeChatResponse {
		t.Fatalf("Terminal = %q", result.Terminal)
	}
	last := s.Messages[len(s.Messages)-1]
	if last.Content != chat.FallbackReply {
		t.Errorf("reply = %q, want fallback", last.Content)
	}
	if len(s.QuickReplies) != len(chat.FallbackQuickReplies) {
		t.Errorf("QuickReplies = %v, want fallback set", s.QuickReplies)
	}
	if s.SuggestBrief {
		t.Error("fallback turn must not suggest a brief")
	}
}

func TestRunAdvisorFailureUsesFallback(t *testing.T) {
	r := newTestRouter(safeGate(), &stubResponder{reply: "here is my answer"}, nil, &stubAdvisor{err: errors.New("bad json")})

	s := sessionWithUserMessage("what are my rights if my bond is withheld unfairly")
	r.Run(context.Background(), s, turnctx.TurnContext{Query: s.Messages[0].Content, IsFirstMessage: true})

	last := s.Messages[len(s.Messages)-1]
	if last.Content != "here is my answer" {
		t.Errorf("advisor failure must not replace the reply, got %q", last.Content)
	}
	fallback := quickreply.FallbackSuggestion()
	if len(s.QuickReplies) != len(fallback.QuickReplies) || s.QuickReplies[0] != fallback.QuickReplies[0] {
		t.Errorf("QuickReplies = %v, want fallback suggestion", s.QuickReplies)
	}
}

func TestInitializeMergesAmbientContext(t *testing.T) {
	r := newTestRouter(safeGate(), &stubResponder{reply: "ok"}, nil, defaultAdvisor())

	s := sessionWithUserMessage("short q")
	s.Jurisdiction = "NSW"
	s.DocumentRef = "https://example.com/old.pdf"

	r.Run(context.Background(), s, turnctx.TurnContext{
		Query:      "short q",
		LegalTopic: "parking_ticket",
		UIMode:     state.UIModeAnalysis,
	})

	if s.Jurisdiction != "NSW" {
		t.Errorf("Jurisdiction = %q, blank context must not clear it", s.Jurisdiction)
	}
	if s.DocumentRef != "https://example.com/old.pdf" {
		t.Errorf("DocumentRef = %q, blank context must not clear it", s.DocumentRef)
	}
	if s.LegalTopic != "parking_ticket" || s.UIMode != state.UIModeAnalysis {
		t.Errorf("ambient context not merged: topic=%q ui=%q", s.LegalTopic, s.UIMode)
	}
}
