package turnctx

import (
	"regexp"
	"strings"

	"legal-assist-be/pkg/agent/state"

	"github.com/google/uuid"
)

// BriefTrigger is the literal marker the frontend embeds in the query
// when the user clicks "Generate Brief".
const BriefTrigger = "[GENERATE_BRIEF]"

// Known Australian jurisdiction codes.
var JurisdictionCodes = []string{"NSW", "VIC", "QLD", "SA", "WA", "TAS", "NT", "ACT"}

var urlPattern = regexp.MustCompile(`https?://[^\s"]+`)

// Payload is the raw per-turn input: the visible history plus an
// ambient-context map of free-text hints keyed by description.
type Payload struct {
	SessionID string
	Messages  []state.TurnMessage
	Context   map[string]string
}

// TurnContext is the parsed per-turn input consumed by the router.
type TurnContext struct {
	SessionID      string
	Query          string
	IsFirstMessage bool
	BriefTriggered bool

	Jurisdiction string
	DocumentRef  string
	LegalTopic   string
	UIMode       state.UIMode
}

// Extract parses the raw payload into a TurnContext. It never fails:
// malformed ambient values degrade to defaults.
func Extract(p Payload) TurnContext {
	var query string
	for i := len(p.Messages) - 1; i >= 0; i-- {
		if p.Messages[i].Role == state.RoleUser {
			query = strings.TrimSpace(p.Messages[i].Content)
			break
		}
	}

	sessionID := p.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	tc := TurnContext{
		SessionID:      sessionID,
		IsFirstMessage: len(p.Messages) <= 1,
		Jurisdiction:   extractJurisdiction(p.Context),
		DocumentRef:    extractDocumentRef(p.Context),
		LegalTopic:     extractLegalTopic(p.Context),
		UIMode:         extractUIMode(p.Context),
	}

	if strings.Contains(query, BriefTrigger) {
		tc.BriefTriggered = true
		query = strings.TrimSpace(strings.ReplaceAll(query, BriefTrigger, ""))
	}
	tc.Query = query

	return tc
}

// contextValue finds an ambient hint whose description contains the
// keyword (case-insensitive) and returns its cleaned value.
func contextValue(context map[string]string, keyword string) string {
	keyword = strings.ToLower(keyword)
	for description, value := range context {
		if strings.Contains(strings.ToLower(description), keyword) {
			return CleanContextValue(value)
		}
	}
	return ""
}

// CleanContextValue strips one layer of surrounding quotes and
// unescapes inner quotes. The upstream UI protocol double-serializes
// strings, so values can arrive as `"NSW"` instead of `NSW`.
func CleanContextValue(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return strings.ReplaceAll(value, `\"`, `"`)
}

func extractJurisdiction(context map[string]string) string {
	cleaned := contextValue(context, "state/territory")
	if cleaned == "" {
		return ""
	}

	// Match a known code anywhere in the text, e.g. "User is in NSW"
	upper := strings.ToUpper(cleaned)
	for _, code := range JurisdictionCodes {
		if strings.Contains(upper, code) {
			return code
		}
	}
	return cleaned
}

func extractDocumentRef(context map[string]string) string {
	cleaned := contextValue(context, "document")
	if cleaned == "" {
		return ""
	}
	if match := urlPattern.FindString(cleaned); match != "" {
		return match
	}
	return ""
}

func extractLegalTopic(context map[string]string) string {
	cleaned := contextValue(context, "legal topic")
	if cleaned == "" {
		return "general"
	}

	upper := strings.ToUpper(cleaned)
	switch {
	case strings.Contains(upper, "PARKING") || strings.Contains(upper, "TICKET") || strings.Contains(upper, "FINE"):
		return "parking_ticket"
	case strings.Contains(upper, "INSURANCE") || strings.Contains(upper, "CLAIM"):
		return "insurance_claim"
	default:
		return "general"
	}
}

func extractUIMode(context map[string]string) state.UIMode {
	cleaned := contextValue(context, "UI mode")
	if cleaned == "" {
		return state.UIModeChat
	}
	if strings.Contains(strings.ToUpper(cleaned), "ANALYSIS MODE") {
		return state.UIModeAnalysis
	}
	return state.UIModeChat
}
