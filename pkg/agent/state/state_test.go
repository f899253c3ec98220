package state

import (
	"testing"
)

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession("abc")

	if s.ID != "abc" {
		t.Errorf("ID = %q, want %q", s.ID, "abc")
	}
	if s.Mode != ModeChat {
		t.Errorf("Mode = %q, want %q", s.Mode, ModeChat)
	}
	if s.UIMode != UIModeChat {
		t.Errorf("UIMode = %q, want %q", s.UIMode, UIModeChat)
	}
	if s.LegalTopic != "general" {
		t.Errorf("LegalTopic = %q, want %q", s.LegalTopic, "general")
	}
	if s.SafetyResult != SafetyUnknown {
		t.Errorf("SafetyResult = %q, want %q", s.SafetyResult, SafetyUnknown)
	}
}

func TestApplyNilFieldsUntouched(t *testing.T) {
	s := NewSession("abc")
	s.Mode = ModeBrief
	s.BriefQuestionsAsked = 2
	s.QuickReplies = []string{"keep me"}

	s.Apply(Patch{
		SafetyResult: Ptr(SafetySafe),
	})

	if s.Mode != ModeBrief {
		t.Errorf("Mode changed by unrelated patch: %q", s.Mode)
	}
	if s.BriefQuestionsAsked != 2 {
		t.Errorf("BriefQuestionsAsked changed by unrelated patch: %d", s.BriefQuestionsAsked)
	}
	if len(s.QuickReplies) != 1 || s.QuickReplies[0] != "keep me" {
		t.Errorf("QuickReplies changed by unrelated patch: %v", s.QuickReplies)
	}
	if s.SafetyResult != SafetySafe {
		t.Errorf("SafetyResult = %q, want %q", s.SafetyResult, SafetySafe)
	}
}

func TestApplyAppendsMessages(t *testing.T) {
	s := NewSession("abc")
	s.Messages = []TurnMessage{{Role: RoleUser, Content: "hello"}}

	s.Apply(Patch{
		Messages: []TurnMessage{{Role: RoleAssistant, Content: "hi there"}},
	})

	if len(s.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(s.Messages))
	}
	if s.Messages[1].Role != RoleAssistant || s.Messages[1].Content != "hi there" {
		t.Errorf("appended message = %+v", s.Messages[1])
	}
}

func TestApplyCanSetEmptySlices(t *testing.T) {
	s := NewSession("abc")
	s.BriefMissingInfo = []string{"when it happened", "amount owed"}
	s.QuickReplies = []string{"Skip this"}

	s.Apply(Patch{
		BriefMissingInfo: Ptr([]string{}),
		QuickReplies:     Ptr([]string{}),
	})

	if len(s.BriefMissingInfo) != 0 {
		t.Errorf("BriefMissingInfo = %v, want empty", s.BriefMissingInfo)
	}
	if len(s.QuickReplies) != 0 {
		t.Errorf("QuickReplies = %v, want empty", s.QuickReplies)
	}
}

func TestLastUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		messages []TurnMessage
		want     string
	}{
		{
			name: "latest user message wins",
			messages: []TurnMessage{
				{Role: RoleUser, Content: "first"},
				{Role: RoleAssistant, Content: "reply"},
				{Role: RoleUser, Content: "second"},
			},
			want: "second",
		},
		{
			name: "skips trailing assistant message",
			messages: []TurnMessage{
				{Role: RoleUser, Content: "question"},
				{Role: RoleAssistant, Content: "answer"},
			},
			want: "question",
		},
		{
			name:     "empty history",
			messages: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{Messages: tt.messages}
			if got := s.LastUserMessage(); got != tt.want {
				t.Errorf("LastUserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
