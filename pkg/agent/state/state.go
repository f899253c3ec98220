package state

// Mode selects which subflow owns the current turn.
type Mode string

const (
	ModeChat  Mode = "chat"
	ModeBrief Mode = "brief"
)

// UIMode is a presentation hint consumed by the chat responder only.
type UIMode string

const (
	UIModeChat     UIMode = "chat"
	UIModeAnalysis UIMode = "analysis"
)

// SafetyResult is recomputed on every turn that runs the safety gate.
type SafetyResult string

const (
	SafetyUnknown  SafetyResult = "unknown"
	SafetySafe     SafetyResult = "safe"
	SafetyEscalate SafetyResult = "escalate"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TurnMessage is one entry in the append-only conversation history.
type TurnMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CrisisResource is a support service surfaced on escalation.
type CrisisResource struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExtractedFacts is the structured result of conversation fact extraction.
type ExtractedFacts struct {
	LegalArea           string   `json:"legal_area"`
	SituationSummary    string   `json:"situation_summary"`
	KeyFacts            []string `json:"key_facts"`
	PartiesInvolved     []string `json:"parties_involved"`
	TimelineEvents      []string `json:"timeline_events"`
	DocumentsMentioned  []string `json:"documents_mentioned"`
	UserGoals           []string `json:"user_goals"`
	MissingCriticalInfo []string `json:"missing_critical_info"`
	Confidence          float64  `json:"confidence"`
}

// Session is the single source of truth for one conversation.
// It is read, processed and written back as one logical unit per turn;
// stages never mutate it directly - they emit a Patch that the
// orchestrator merges.
type Session struct {
	ID       string        `json:"id"`
	UserID   string        `json:"user_id"`
	Messages []TurnMessage `json:"messages"`

	Mode   Mode   `json:"mode"`
	UIMode UIMode `json:"ui_mode"`

	// Ambient context, set by the turn context extractor
	LegalTopic   string `json:"legal_topic"`
	Jurisdiction string `json:"jurisdiction"`
	DocumentRef  string `json:"document_ref"`

	SafetyResult    SafetyResult     `json:"safety_result"`
	CrisisResources []CrisisResource `json:"crisis_resources,omitempty"`

	BriefFacts          *ExtractedFacts `json:"brief_facts,omitempty"`
	BriefMissingInfo    []string        `json:"brief_missing_info,omitempty"`
	BriefUnknownInfo    []string        `json:"brief_unknown_info,omitempty"`
	BriefInfoComplete   bool            `json:"brief_info_complete"`
	BriefQuestionsAsked int             `json:"brief_questions_asked"`

	// Advisory UI hints, recomputed every turn, never load-bearing
	QuickReplies  []string `json:"quick_replies,omitempty"`
	SuggestBrief  bool     `json:"suggest_brief"`
	SuggestLawyer bool     `json:"suggest_lawyer"`
}

// NewSession creates an empty chat-mode session.
func NewSession(id string) *Session {
	return &Session{
		ID:           id,
		Mode:         ModeChat,
		UIMode:       UIModeChat,
		LegalTopic:   "general",
		SafetyResult: SafetyUnknown,
	}
}

// LastUserMessage returns the content of the most recent user turn,
// or "" if there is none.
func (s *Session) LastUserMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleUser {
			return s.Messages[i].Content
		}
	}
	return ""
}

// Patch is the output of a pipeline stage. Nil fields are untouched by
// Apply, so each stage only declares the state it owns.
type Patch struct {
	Messages []TurnMessage // assistant messages to append

	Mode            *Mode
	SafetyResult    *SafetyResult
	CrisisResources *[]CrisisResource

	BriefFacts          *ExtractedFacts
	BriefMissingInfo    *[]string
	BriefUnknownInfo    *[]string
	BriefInfoComplete   *bool
	BriefQuestionsAsked *int

	QuickReplies  *[]string
	SuggestBrief  *bool
	SuggestLawyer *bool
}

// Apply merges a stage patch into the session. Only the orchestrator
// calls this, once per stage output.
func (s *Session) Apply(p Patch) {
	s.Messages = append(s.Messages, p.Messages...)

	if p.Mode != nil {
		s.Mode = *p.Mode
	}
	if p.SafetyResult != nil {
		s.SafetyResult = *p.SafetyResult
	}
	if p.CrisisResources != nil {
		s.CrisisResources = *p.CrisisResources
	}
	if p.BriefFacts != nil {
		s.BriefFacts = p.BriefFacts
	}
	if p.BriefMissingInfo != nil {
		s.BriefMissingInfo = *p.BriefMissingInfo
	}
	if p.BriefUnknownInfo != nil {
		s.BriefUnknownInfo = *p.BriefUnknownInfo
	}
	if p.BriefInfoComplete != nil {
		s.BriefInfoComplete = *p.BriefInfoComplete
	}
	if p.BriefQuestionsAsked != nil {
		s.BriefQuestionsAsked = *p.BriefQuestionsAsked
	}
	if p.QuickReplies != nil {
		s.QuickReplies = *p.QuickReplies
	}
	if p.SuggestBrief != nil {
		s.SuggestBrief = *p.SuggestBrief
	}
	if p.SuggestLawyer != nil {
		s.SuggestLawyer = *p.SuggestLawyer
	}
}

// Ptr is a convenience for building patches.
func Ptr[T any](v T) *T {
	return &v
}
