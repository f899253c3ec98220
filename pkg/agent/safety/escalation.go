package safety

import (
	"strings"

	"legal-assist-be/pkg/agent/state"
)

// FormatEscalationMessage renders the crisis response shown in place of
// a normal reply.
func FormatEscalationMessage(resources []state.CrisisResource) string {
	var lines []string
	for _, r := range resources {
		line := "**" + r.Name + "**"
		if r.Phone != "" {
			line += " - " + r.Phone
		}
		if r.Description != "" {
			line += "\n  _" + r.Description + "_"
		}
		if r.URL != "" {
			line += "\n  " + r.URL
		}
		lines = append(lines, line)
	}
	resourcesText := strings.Join(lines, "\n\n")

	var b strings.Builder
	b.WriteString("I'm concerned about what you've shared. Your safety and wellbeing come first.\n\n")
	b.WriteString("**Please contact these services for immediate support:**\n\n")
	b.WriteString(resourcesText)
	b.WriteString("\n\n---\n\n")
	b.WriteString("These services are free and confidential. They can provide the urgent, professional support that I, as an AI assistant, cannot offer.\n\n")
	b.WriteString("If you have other legal questions that aren't urgent safety matters, I'm still here to help with general legal information.")
	return b.String()
}
