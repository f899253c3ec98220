package brief

import (
	"context"
	"fmt"
	"log"
	"strings"

	"legal-assist-be/pkg/agent/state"
)

// Routing decisions after fact extraction.
const (
	RouteGenerate = "generate"
	RouteAsk      = "ask"
)

// FactExtractor analyzes the conversation and reports facts plus gaps.
type FactExtractor interface {
	Extract(ctx context.Context, conversation, jurisdiction string) (*state.ExtractedFacts, error)
}

// QuestionGenerator produces follow-up questions for the open gaps.
type QuestionGenerator interface {
	Questions(ctx context.Context, situationSummary string, missingInfo []string) (*FollowUpQuestions, error)
}

// Generator produces the final structured brief.
type Generator interface {
	Generate(ctx context.Context, conversation, extractedFacts, jurisdiction string) (*StructuredBrief, error)
}

// Flow drives the brief episode: extract facts, ask follow-ups until
// the record is good enough, then generate. Every collaborator failure
// fails open so the episode always makes forward progress.
type Flow struct {
	extractor FactExtractor
	questions QuestionGenerator
	generator Generator
	maxRounds int
	logger    *log.Logger
}

// NewFlow builds a Flow. maxRounds caps follow-up rounds before
// generation is forced; 0 means no cap.
func NewFlow(extractor FactExtractor, questions QuestionGenerator, generator Generator, maxRounds int, logger *log.Logger) *Flow {
	return &Flow{
		extractor: extractor,
		questions: questions,
		generator: generator,
		maxRounds: maxRounds,
		logger:    logger,
	}
}

// CheckInfo classifies the user's reply, re-extracts facts when needed
// and decides whether the record is complete. The second return value
// is true when the user demanded immediate generation; the caller must
// route to Generate regardless of completeness.
func (f *Flow) CheckInfo(ctx context.Context, s *state.Session, query string) (state.Patch, bool) {
	forceGenerate := DetectGenerateNow(query)

	// A skip reply moves every pending gap to the known-unknown list
	// instead of re-asking. No re-extraction on this path.
	if s.BriefQuestionsAsked > 0 && !forceGenerate && DetectSkipReply(query) {
		f.logger.Printf("[BRIEF] Skip reply: moving %d pending item(s) to unknown", len(s.BriefMissingInfo))
		return state.Patch{
			BriefMissingInfo:  state.Ptr([]string{}),
			BriefUnknownInfo:  state.Ptr(mergeUnique(s.BriefUnknownInfo, s.BriefMissingInfo)),
			BriefInfoComplete: state.Ptr(true),
		}, false
	}

	conversation := FormatConversation(s.Messages, maxConversationMessages)

	facts, err := f.extractor.Extract(ctx, conversation, s.Jurisdiction)
	if err != nil {
		f.logger.Printf("[BRIEF] Fact extraction failed, proceeding with available info: %v", err)
		return state.Patch{
			BriefFacts: &state.ExtractedFacts{
				LegalArea:           "general",
				SituationSummary:    "Could not fully analyze conversation",
				MissingCriticalInfo: []string{"Full conversation analysis failed"},
				Confidence:          0.3,
			},
			BriefMissingInfo:  state.Ptr([]string{"Unable to complete analysis - proceeding with available info"}),
			BriefInfoComplete: state.Ptr(true),
		}, forceGenerate
	}

	// Items the user already declined stay in unknown, never back to
	// missing.
	missing := subtract(facts.MissingCriticalInfo, s.BriefUnknownInfo)

	complete := facts.Confidence >= 0.6 &&
		len(missing) <= 1 &&
		facts.LegalArea != "" && facts.LegalArea != "unknown" &&
		len(facts.KeyFacts) >= 2

	if f.maxRounds > 0 && s.BriefQuestionsAsked >= f.maxRounds {
		complete = true
	}

	f.logger.Printf("[BRIEF] Facts extracted: area=%s confidence=%.2f missing=%d complete=%v",
		facts.LegalArea, facts.Confidence, len(missing), complete)

	return state.Patch{
		BriefFacts:        facts,
		BriefMissingInfo:  state.Ptr(missing),
		BriefInfoComplete: state.Ptr(complete),
	}, forceGenerate
}

// RouteInfo decides the next node after CheckInfo's patch has been
// applied. Pure function of session state.
func RouteInfo(s *state.Session) string {
	if s.BriefInfoComplete || len(s.BriefMissingInfo) == 0 {
		return RouteGenerate
	}
	return RouteAsk
}

// AskQuestions emits 1-3 follow-up questions for the open gaps and
// increments the round counter.
func (f *Flow) AskQuestions(ctx context.Context, s *state.Session) state.Patch {
	missing := s.BriefMissingInfo
	if len(missing) > 5 {
		missing = missing[:5]
	}

	summary := "User needs legal help"
	if s.BriefFacts != nil && s.BriefFacts.SituationSummary != "" {
		summary = s.BriefFacts.SituationSummary
	}

	f.logger.Printf("[BRIEF] Follow-up round %d: missing=%d", s.BriefQuestionsAsked+1, len(s.BriefMissingInfo))

	result, err := f.questions.Questions(ctx, summary, missing)
	if err != nil {
		f.logger.Printf("[BRIEF] Question generation failed, forcing completion: %v", err)
		return state.Patch{
			Messages: []state.TurnMessage{{
				Role:    state.RoleAssistant,
				Content: "I'll prepare your brief with the information we have.",
			}},
			BriefQuestionsAsked: state.Ptr(s.BriefQuestionsAsked + 1),
			BriefInfoComplete:   state.Ptr(true),
		}
	}

	var b strings.Builder
	b.WriteString("Before I prepare your lawyer brief, I need a bit more information:\n\n")
	for i, q := range result.Questions {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}

	return state.Patch{
		Messages: []state.TurnMessage{{
			Role:    state.RoleAssistant,
			Content: b.String(),
		}},
		BriefQuestionsAsked: state.Ptr(s.BriefQuestionsAsked + 1),
		QuickReplies:        state.Ptr([]string{"I don't know", "Let me explain", "Skip this"}),
	}
}

// Generate produces the final brief and returns the session to chat
// mode. Failures still leave chat mode restored so the session is
// never stuck in the brief episode.
func (f *Flow) Generate(ctx context.Context, s *state.Session) state.Patch {
	conversation := FormatConversation(s.Messages, maxConversationMessages)
	factsText := FormatFacts(s.BriefFacts)

	brief, err := f.generator.Generate(ctx, conversation, factsText, s.Jurisdiction)
	if err != nil {
		f.logger.Printf("[BRIEF] Brief generation failed: %v", err)
		return state.Patch{
			Messages: []state.TurnMessage{{
				Role: state.RoleAssistant,
				Content: "I apologize, but I encountered an issue generating your brief. " +
					"Please try again, or I can help you find a lawyer directly.",
			}},
			Mode:                state.Ptr(state.ModeChat),
			BriefQuestionsAsked: state.Ptr(0),
			QuickReplies:        state.Ptr([]string{"Find me a lawyer", "Try again", "What can you help with?"}),
		}
	}

	f.logger.Printf("[BRIEF] Brief generated: area=%s urgency=%s", brief.LegalArea, brief.UrgencyLevel)

	formatted := FormatBriefMessage(brief, s.Jurisdiction, s.BriefUnknownInfo)

	return state.Patch{
		Messages: []state.TurnMessage{{
			Role:    state.RoleAssistant,
			Content: formatted,
		}},
		Mode:                state.Ptr(state.ModeChat),
		BriefQuestionsAsked: state.Ptr(0),
		QuickReplies:        state.Ptr([]string{"Find me a lawyer", "What should I ask the lawyer?", "Explain the urgency"}),
		SuggestLawyer:       state.Ptr(true),
	}
}

func mergeUnique(base, extra []string) []string {
	merged := append([]string{}, base...)
	for _, item := range extra {
		if !containsString(merged, item) {
			merged = append(merged, item)
		}
	}
	return merged
}

func subtract(items, exclude []string) []string {
	result := []string{}
	for _, item := range items {
		if !containsString(exclude, item) {
			result = append(result, item)
		}
	}
	return result
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
