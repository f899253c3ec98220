package brief

import (
	"fmt"
	"strings"
	"testing"

	"legal-assist-be/pkg/agent/state"
)

func TestFormatConversationTruncates(t *testing.T) {
	var messages []state.TurnMessage
	for i := 0; i < 30; i++ {
		messages = append(messages, state.TurnMessage{Role: state.RoleUser, Content: fmt.Sprintf("message %d", i)})
	}

	out := FormatConversation(messages, 20)

	if strings.Contains(out, "message 9\n") || strings.Contains(out, "message 0") {
		t.Error("expected early messages to be dropped")
	}
	if !strings.Contains(out, "message 10") || !strings.Contains(out, "message 29") {
		t.Error("expected the last 20 messages to be kept")
	}
}

func TestFormatConversationRoles(t *testing.T) {
	out := FormatConversation([]state.TurnMessage{
		{Role: state.RoleUser, Content: "hello"},
		{Role: state.RoleAssistant, Content: "hi"},
		{Role: "system", Content: "ignored"},
	}, 0)

	want := "User: hello\n\nAssistant: hi"
	if out != want {
		t.Errorf("FormatConversation = %q, want %q", out, want)
	}
}

func TestFormatFactsNil(t *testing.T) {
	if out := FormatFacts(nil); out != "" {
		t.Errorf("FormatFacts(nil) = %q, want empty", out)
	}
}

func TestFormatFacts(t *testing.T) {
	out := FormatFacts(&state.ExtractedFacts{
		LegalArea:        "tenancy",
		SituationSummary: "Rent dispute",
		KeyFacts:         []string{"rent raised 40%", "periodic lease"},
		PartiesInvolved:  []string{"tenant", "landlord"},
	})

	for _, want := range []string{
		"**Legal Area:** tenancy",
		"**Summary:** Rent dispute",
		"- rent raised 40%",
		"**Parties:** tenant, landlord",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatFacts missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatBriefMessage(t *testing.T) {
	b := &StructuredBrief{
		ExecutiveSummary:   "Tenant facing a steep rent increase.",
		LegalArea:          "tenancy",
		Jurisdiction:       "NSW",
		SituationNarrative: "The landlord issued a 40% increase.",
		KeyFacts:           []string{"Increase notice received 1 June"},
		ClientGoals:        []string{"Challenge the increase"},
		QuestionsForLawyer: []string{"Is the notice valid?"},
		UrgencyLevel:       UrgencyUrgent,
		UrgencyReason:      "30 day tribunal deadline",
	}

	out := FormatBriefMessage(b, "VIC", nil)

	for _, want := range []string{
		"# Lawyer Brief",
		"🔴 Urgent",
		"**Jurisdiction:** NSW", // brief's own jurisdiction wins over session's
		"## Key Facts",
		"## Questions for Your Lawyer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("brief missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Information Not Provided") {
		t.Error("unknown section must be absent when nothing was declined")
	}
}

func TestFormatBriefMessageUnknownSection(t *testing.T) {
	b := &StructuredBrief{
		ExecutiveSummary: "Summary",
		LegalArea:        "employment",
		UrgencyLevel:     UrgencyStandard,
	}

	out := FormatBriefMessage(b, "", []string{"exact dismissal date", "contract terms"})

	if !strings.Contains(out, "## Information Not Provided") {
		t.Fatal("expected unknown info section")
	}
	if !strings.Contains(out, "- exact dismissal date") || !strings.Contains(out, "- contract terms") {
		t.Error("expected declined items listed verbatim")
	}
	if !strings.Contains(out, "**Jurisdiction:** Australia") {
		t.Error("expected Australia fallback when no jurisdiction known")
	}
}

func TestFormatBriefMessageUnknownUrgency(t *testing.T) {
	b := &StructuredBrief{UrgencyLevel: "critical"}
	out := FormatBriefMessage(b, "", nil)
	if !strings.Contains(out, "⚪ critical") {
		t.Errorf("expected fallback urgency label in:\n%s", out)
	}
}
