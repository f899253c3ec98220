package turnctx

import (
	"testing"

	"legal-assist-be/pkg/agent/state"
)

func TestExtractQueryAndTrigger(t *testing.T) {
	tests := []struct {
		name          string
		messages      []state.TurnMessage
		wantQuery     string
		wantTriggered bool
		wantFirst     bool
	}{
		{
			name: "plain query",
			messages: []state.TurnMessage{
				{Role: state.RoleUser, Content: "  my landlord raised the rent  "},
			},
			wantQuery: "my landlord raised the rent",
			wantFirst: true,
		},
		{
			name: "brief trigger stripped",
			messages: []state.TurnMessage{
				{Role: state.RoleUser, Content: "first"},
				{Role: state.RoleAssistant, Content: "reply"},
				{Role: state.RoleUser, Content: "[GENERATE_BRIEF] please"},
			},
			wantQuery:     "please",
			wantTriggered: true,
			wantFirst:     false,
		},
		{
			name: "latest user message wins over assistant",
			messages: []state.TurnMessage{
				{Role: state.RoleUser, Content: "question"},
				{Role: state.RoleAssistant, Content: "answer"},
			},
			wantQuery: "question",
			wantFirst: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := Extract(Payload{SessionID: "s1", Messages: tt.messages})

			if tc.Query != tt.wantQuery {
				t.Errorf("Query = %q, want %q", tc.Query, tt.wantQuery)
			}
			if tc.BriefTriggered != tt.wantTriggered {
				t.Errorf("BriefTriggered = %v, want %v", tc.BriefTriggered, tt.wantTriggered)
			}
			if tc.IsFirstMessage != tt.wantFirst {
				t.Errorf("IsFirstMessage = %v, want %v", tc.IsFirstMessage, tt.wantFirst)
			}
		})
	}
}

func TestExtractGeneratesSessionID(t *testing.T) {
	tc := Extract(Payload{})
	if tc.SessionID == "" {
		t.Error("expected generated session id for empty payload")
	}

	tc = Extract(Payload{SessionID: "keep-me"})
	if tc.SessionID != "keep-me" {
		t.Errorf("SessionID = %q, want %q", tc.SessionID, "keep-me")
	}
}

func TestExtractJurisdiction(t *testing.T) {
	tests := []struct {
		name    string
		context map[string]string
		want    string
	}{
		{
			name:    "code in prose",
			context: map[string]string{"User's State/Territory": "User is in NSW"},
			want:    "NSW",
		},
		{
			name:    "double serialized value",
			context: map[string]string{"state/territory of the user": `"VIC"`},
			want:    "VIC",
		},
		{
			name:    "lowercase code",
			context: map[string]string{"State/Territory": "qld"},
			want:    "QLD",
		},
		{
			name:    "unrecognized text kept as is",
			context: map[string]string{"State/Territory": "somewhere else"},
			want:    "somewhere else",
		},
		{
			name:    "missing key",
			context: map[string]string{"unrelated": "NSW"},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := Extract(Payload{SessionID: "s1", Context: tt.context})
			if tc.Jurisdiction != tt.want {
				t.Errorf("Jurisdiction = %q, want %q", tc.Jurisdiction, tt.want)
			}
		})
	}
}

func TestExtractDocumentRef(t *testing.T) {
	tc := Extract(Payload{SessionID: "s1", Context: map[string]string{
		"Document the user is viewing": `The user has open "https://example.com/lease.pdf" right now`,
	}})
	if tc.DocumentRef != "https://example.com/lease.pdf" {
		t.Errorf("DocumentRef = %q", tc.DocumentRef)
	}

	tc = Extract(Payload{SessionID: "s1", Context: map[string]string{
		"Document the user is viewing": "no url here",
	}})
	if tc.DocumentRef != "" {
		t.Errorf("DocumentRef = %q, want empty for value without URL", tc.DocumentRef)
	}
}

func TestExtractLegalTopic(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"Parking ticket dispute", "parking_ticket"},
		{"disputing a FINE", "parking_ticket"},
		{"insurance claim denied", "insurance_claim"},
		{"divorce", "general"},
		{"", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			context := map[string]string{}
			if tt.value != "" {
				context["Legal topic selected"] = tt.value
			}
			tc := Extract(Payload{SessionID: "s1", Context: context})
			if tc.LegalTopic != tt.want {
				t.Errorf("LegalTopic(%q) = %q, want %q", tt.value, tc.LegalTopic, tt.want)
			}
		})
	}
}

func TestExtractUIMode(t *testing.T) {
	tc := Extract(Payload{SessionID: "s1", Context: map[string]string{
		"Current UI mode": "ANALYSIS MODE enabled",
	}})
	if tc.UIMode != state.UIModeAnalysis {
		t.Errorf("UIMode = %q, want analysis", tc.UIMode)
	}

	tc = Extract(Payload{SessionID: "s1"})
	if tc.UIMode != state.UIModeChat {
		t.Errorf("UIMode = %q, want chat default", tc.UIMode)
	}
}

func TestCleanContextValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"NSW"`, "NSW"},
		{`plain`, "plain"},
		{`"said \"hello\""`, `said "hello"`},
		{`""`, ""},
	}

	for _, tt := range tests {
		if got := CleanContextValue(tt.in); got != tt.want {
			t.Errorf("CleanContextValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
