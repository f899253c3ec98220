package router

import (
	"context"
	"log"
	"strings"

	"legal-assist-be/pkg/agent/brief"
	"legal-assist-be/pkg/agent/chat"
	"legal-assist-be/pkg/agent/quickreply"
	"legal-assist-be/pkg/agent/safety"
	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/agent/turnctx"
)

// Node identifies a pipeline stage. Terminal nodes emit the assistant
// reply for the turn.
type Node string

const (
	NodeInitialize    Node = "initialize"
	NodeSafetyCheck   Node = "safety_check"
	NodeEscalation    Node = "escalation_response"
	NodeChatResponse  Node = "chat_response"
	NodeBriefCheck    Node = "brief_check_info"
	NodeBriefAsk      Node = "brief_ask_questions"
	NodeBriefGenerate Node = "brief_generate"
)

// Decisions after the initialize stage.
const (
	RouteBrief = "brief"
	RouteCheck = "check"
	RouteSkip  = "skip"
)

// High-recall crisis words that disqualify the short-query safety skip.
var crisisSkipWords = []string{"help", "emergency", "scared", "hurt", "kill", "die", "suicide"}

// SafetyChecker is the two-tier gate consulted before chat replies.
type SafetyChecker interface {
	Check(ctx context.Context, query, jurisdiction string) safety.CheckResult
}

// TurnResult reports which terminal node handled the turn plus
// observability signals for the caller.
type TurnResult struct {
	Terminal Node

	// Non-nil when the safety classifier failed and the gate failed
	// open to safe.
	ClassifierErr error
}

// Router runs the per-turn state machine over a loaded session. It is
// the only component that merges stage patches into the session.
type Router struct {
	gate      SafetyChecker
	responder chat.Responder
	briefFlow *brief.Flow
	advisor   quickreply.Advisor
	logger    *log.Logger
}

func NewRouter(gate SafetyChecker, responder chat.Responder, briefFlow *brief.Flow, advisor quickreply.Advisor, logger *log.Logger) *Router {
	return &Router{
		gate:      gate,
		responder: responder,
		briefFlow: briefFlow,
		advisor:   advisor,
		logger:    logger,
	}
}

// RouteAfterInitialize is the pure routing decision taken once per
// turn after ambient context has been merged.
func RouteAfterInitialize(s *state.Session, tc turnctx.TurnContext) string {
	if s.Mode == state.ModeBrief {
		return RouteBrief
	}
	if tc.IsFirstMessage {
		return RouteCheck
	}
	if len(tc.Query) < 30 && !containsCrisisWord(tc.Query) {
		return RouteSkip
	}
	return RouteCheck
}

func containsCrisisWord(query string) bool {
	lower := strings.ToLower(query)
	for _, word := range crisisSkipWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Run executes one turn. The session must already contain the user
// message as its latest entry; Run appends the assistant reply and
// merges all stage patches. The caller persists the session afterwards.
func (r *Router) Run(ctx context.Context, s *state.Session, tc turnctx.TurnContext) TurnResult {
	r.initialize(s, tc)

	decision := RouteAfterInitialize(s, tc)
	r.logger.Printf("[ROUTER] session=%s decision=%s mode=%s first=%v query_len=%d",
		s.ID, decision, s.Mode, tc.IsFirstMessage, len(tc.Query))

	switch decision {
	case RouteBrief:
		return r.runBrief(ctx, s, tc)
	case RouteCheck:
		return r.runChecked(ctx, s, tc)
	default:
		r.runChatResponse(ctx, s)
		return TurnResult{Terminal: NodeChatResponse}
	}
}

// initialize merges ambient turn context and resets per-turn state.
// Stale safety verdicts and advisory hints never leak across turns.
func (r *Router) initialize(s *state.Session, tc turnctx.TurnContext) {
	if tc.Jurisdiction != "" {
		s.Jurisdiction = tc.Jurisdiction
	}
	if tc.DocumentRef != "" {
		s.DocumentRef = tc.DocumentRef
	}
	s.LegalTopic = tc.LegalTopic
	s.UIMode = tc.UIMode

	s.SafetyResult = state.SafetyUnknown
	s.QuickReplies = nil
	s.SuggestBrief = false
	s.SuggestLawyer = false

	if tc.BriefTriggered {
		// Fresh brief episode
		s.Mode = state.ModeBrief
		s.BriefQuestionsAsked = 0
		s.BriefFacts = nil
		s.BriefMissingInfo = nil
		s.BriefUnknownInfo = nil
		s.BriefInfoComplete = false
	}
}

func (r *Router) runChecked(ctx context.Context, s *state.Session, tc turnctx.TurnContext) TurnResult {
	check := r.gate.Check(ctx, tc.Query, s.Jurisdiction)

	s.Apply(state.Patch{
		SafetyResult:    state.Ptr(check.Result),
		CrisisResources: state.Ptr(check.Resources),
	})

	if check.Result == state.SafetyEscalate {
		s.Apply(state.Patch{
			Messages: []state.TurnMessage{{
				Role:    state.RoleAssistant,
				Content: safety.FormatEscalationMessage(check.Resources),
			}},
		})
		return TurnResult{Terminal: NodeEscalation, ClassifierErr: check.ClassifierErr}
	}

	r.runChatResponse(ctx, s)
	return TurnResult{Terminal: NodeChatResponse, ClassifierErr: check.ClassifierErr}
}

func (r *Router) runChatResponse(ctx context.Context, s *state.Session) {
	reply, err := r.responder.Respond(ctx, s)
	if err != nil {
		r.logger.Printf("[CHAT] Responder failed: %v", err)
		s.Apply(state.Patch{
			Messages:     []state.TurnMessage{{Role: state.RoleAssistant, Content: chat.FallbackReply}},
			QuickReplies: state.Ptr(chat.FallbackQuickReplies),
			SuggestBrief: state.Ptr(false),
		})
		return
	}

	suggestion, err := r.advisor.Advise(ctx, s.Messages, reply)
	if err != nil {
		r.logger.Printf("[ADVISOR] Quick reply generation failed, using fallback: %v", err)
		suggestion = quickreply.FallbackSuggestion()
	}

	s.Apply(state.Patch{
		Messages:     []state.TurnMessage{{Role: state.RoleAssistant, Content: reply}},
		QuickReplies: state.Ptr(suggestion.QuickReplies),
		SuggestBrief: state.Ptr(suggestion.SuggestBrief),
	})
}

func (r *Router) runBrief(ctx context.Context, s *state.Session, tc turnctx.TurnContext) TurnResult {
	patch, forceGenerate := r.briefFlow.CheckInfo(ctx, s, tc.Query)
	s.Apply(patch)

	route := brief.RouteInfo(s)
	if forceGenerate {
		route = brief.RouteGenerate
	}

	if route == brief.RouteGenerate {
		s.Apply(r.briefFlow.Generate(ctx, s))
		return TurnResult{Terminal: NodeBriefGenerate}
	}

	s.Apply(r.briefFlow.AskQuestions(ctx, s))
	return TurnResult{Terminal: NodeBriefAsk}
}
