package quickreply

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/llm"
)

type stubProvider struct {
	response string
	err      error
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.response, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.response, p.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testMessages() []state.TurnMessage {
	return []state.TurnMessage{
		{Role: state.RoleUser, Content: "my landlord raised the rent"},
	}
}

func TestAdviseParsesJSON(t *testing.T) {
	advisor := NewLLMAdvisor(&stubProvider{
		response: "Here you go:\n{\"quick_replies\": [\"What are my options?\", \"What happens next?\"], \"suggest_brief\": true}",
	}, testLogger())

	suggestion, err := advisor.Advise(context.Background(), testMessages(), "reply")
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(suggestion.QuickReplies) != 2 {
		t.Errorf("QuickReplies = %v", suggestion.QuickReplies)
	}
	if !suggestion.SuggestBrief {
		t.Error("expected SuggestBrief = true")
	}
}

func TestAdviseTruncatesToFour(t *testing.T) {
	advisor := NewLLMAdvisor(&stubProvider{
		response: `{"quick_replies": ["a", "b", "c", "d", "e", "f"], "suggest_brief": false}`,
	}, testLogger())

	suggestion, err := advisor.Advise(context.Background(), testMessages(), "reply")
	if err != nil {
		t.Fatalf("Advise() error = %v", err)
	}
	if len(suggestion.QuickReplies) != 4 {
		t.Errorf("len(QuickReplies) = %d, want 4", len(suggestion.QuickReplies))
	}
}

func TestAdviseErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{"provider failure", &stubProvider{err: errors.New("timeout")}},
		{"no json in response", &stubProvider{response: "sorry, I cannot do that"}},
		{"malformed json", &stubProvider{response: `{"quick_replies": [broken}`}},
		{"empty suggestions", &stubProvider{response: `{"quick_replies": [], "suggest_brief": false}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisor := NewLLMAdvisor(tt.provider, testLogger())
			if _, err := advisor.Advise(context.Background(), testMessages(), "reply"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFallbackSuggestion(t *testing.T) {
	s := FallbackSuggestion()
	if len(s.QuickReplies) == 0 {
		t.Error("fallback must carry quick replies")
	}
	if s.SuggestBrief {
		t.Error("fallback must not suggest a brief")
	}
}
