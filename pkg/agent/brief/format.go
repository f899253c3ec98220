package brief

import (
	"strings"

	"legal-assist-be/pkg/agent/state"
)

const maxConversationMessages = 20

// FormatConversation renders the last messages of the history for LLM
// context.
func FormatConversation(messages []state.TurnMessage, maxMessages int) string {
	if maxMessages <= 0 {
		maxMessages = maxConversationMessages
	}
	start := 0
	if len(messages) > maxMessages {
		start = len(messages) - maxMessages
	}

	var parts []string
	for _, msg := range messages[start:] {
		switch msg.Role {
		case state.RoleUser:
			parts = append(parts, "User: "+msg.Content)
		case state.RoleAssistant:
			parts = append(parts, "Assistant: "+msg.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}

// FormatFacts renders extracted facts for the generation prompt.
func FormatFacts(facts *state.ExtractedFacts) string {
	if facts == nil {
		return ""
	}

	var parts []string

	if facts.LegalArea != "" {
		parts = append(parts, "**Legal Area:** "+facts.LegalArea)
	}
	if facts.SituationSummary != "" {
		parts = append(parts, "**Summary:** "+facts.SituationSummary)
	}
	if len(facts.KeyFacts) > 0 {
		parts = append(parts, "**Key Facts:**")
		for _, fact := range facts.KeyFacts {
			parts = append(parts, "- "+fact)
		}
	}
	if len(facts.PartiesInvolved) > 0 {
		parts = append(parts, "**Parties:** "+strings.Join(facts.PartiesInvolved, ", "))
	}
	if len(facts.TimelineEvents) > 0 {
		parts = append(parts, "**Timeline:**")
		for _, event := range facts.TimelineEvents {
			parts = append(parts, "- "+event)
		}
	}
	if len(facts.DocumentsMentioned) > 0 {
		parts = append(parts, "**Documents:** "+strings.Join(facts.DocumentsMentioned, ", "))
	}
	if len(facts.UserGoals) > 0 {
		parts = append(parts, "**User Goals:**")
		for _, goal := range facts.UserGoals {
			parts = append(parts, "- "+goal)
		}
	}

	return strings.Join(parts, "\n")
}

var urgencyLabels = map[string]string{
	UrgencyUrgent:      "🔴 Urgent",
	UrgencyStandard:    "🟡 Standard",
	UrgencyLowPriority: "🟢 Low Priority",
}

// FormatBriefMessage renders the brief as a readable chat message.
// Items the user declined to answer are listed in an explicit
// "Information Not Provided" section, never silently dropped.
func FormatBriefMessage(b *StructuredBrief, jurisdiction string, unknownInfo []string) string {
	label, ok := urgencyLabels[b.UrgencyLevel]
	if !ok {
		label = "⚪ " + b.UrgencyLevel
	}

	resolvedJurisdiction := b.Jurisdiction
	if resolvedJurisdiction == "" {
		resolvedJurisdiction = jurisdiction
	}
	if resolvedJurisdiction == "" {
		resolvedJurisdiction = "Australia"
	}

	lines := []string{
		"# Lawyer Brief",
		"",
		"## Summary",
		b.ExecutiveSummary,
		"",
		"**Urgency:** " + label,
		"*" + b.UrgencyReason + "*",
		"",
		"**Legal Area:** " + strings.Title(b.LegalArea),
		"**Jurisdiction:** " + resolvedJurisdiction,
		"",
		"---",
		"",
		"## Your Situation",
		b.SituationNarrative,
		"",
	}

	if len(b.KeyFacts) > 0 {
		lines = append(lines, "## Key Facts")
		for _, fact := range b.KeyFacts {
			lines = append(lines, "- "+fact)
		}
		lines = append(lines, "")
	}

	if len(b.Parties) > 0 {
		lines = append(lines, "**Parties Involved:** "+strings.Join(b.Parties, ", "), "")
	}

	if len(b.DocumentsEvidence) > 0 {
		lines = append(lines, "## Documents & Evidence")
		for _, doc := range b.DocumentsEvidence {
			lines = append(lines, "- "+doc)
		}
		lines = append(lines, "")
	}

	if len(b.ClientGoals) > 0 {
		lines = append(lines, "## Your Goals")
		for _, goal := range b.ClientGoals {
			lines = append(lines, "- "+goal)
		}
		lines = append(lines, "")
	}

	if len(b.FactGaps) > 0 {
		lines = append(lines, "## Information to Gather", "*These are things the lawyer may ask about:*")
		for _, gap := range b.FactGaps {
			lines = append(lines, "- "+gap)
		}
		lines = append(lines, "")
	}

	if len(unknownInfo) > 0 {
		lines = append(lines, "## Information Not Provided", "*You told me you weren't sure about these:*")
		for _, item := range unknownInfo {
			lines = append(lines, "- "+item)
		}
		lines = append(lines, "")
	}

	if len(b.PotentialIssues) > 0 {
		lines = append(lines, "## Potential Legal Issues")
		for _, issue := range b.PotentialIssues {
			lines = append(lines, "- "+issue)
		}
		lines = append(lines, "")
	}

	if len(b.QuestionsForLawyer) > 0 {
		lines = append(lines, "## Questions for Your Lawyer")
		for _, q := range b.QuestionsForLawyer {
			lines = append(lines, "- "+q)
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"---",
		"",
		"*This brief summarizes our conversation. Share it with a lawyer for professional advice.*",
	)

	return strings.Join(lines, "\n")
}
