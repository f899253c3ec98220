package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/llm"
)

const (
	maxHistoryMessages = 20
	knowledgeLimit     = 4
)

// LLMResponder generates the chat reply, grounded on knowledge base
// passages when a searcher is configured.
type LLMResponder struct {
	llmProvider llm.LLMProvider
	knowledge   KnowledgeSearcher
	logger      *log.Logger
}

var _ Responder = &LLMResponder{}

// NewLLMResponder builds the responder. knowledge may be nil; replies
// are then generated without retrieved passages.
func NewLLMResponder(llmProvider llm.LLMProvider, knowledge KnowledgeSearcher, logger *log.Logger) *LLMResponder {
	return &LLMResponder{
		llmProvider: llmProvider,
		knowledge:   knowledge,
		logger:      logger,
	}
}

func (r *LLMResponder) Respond(ctx context.Context, s *state.Session) (string, error) {
	var snippets []Snippet
	if r.knowledge != nil {
		query := s.LastUserMessage()
		if query != "" {
			found, err := r.knowledge.Search(ctx, query, s.Jurisdiction, knowledgeLimit)
			if err != nil {
				// Retrieval failure degrades to an ungrounded reply.
				r.logger.Printf("[CHAT] Knowledge search failed, replying without references: %v", err)
			} else {
				snippets = found
			}
		}
	}

	messages := r.buildMessages(s, snippets)

	response, err := r.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.3))
	if err != nil {
		return "", fmt.Errorf("chat response call failed: %w", err)
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return "", fmt.Errorf("empty chat response")
	}

	return response, nil
}

func (r *LLMResponder) buildMessages(s *state.Session, snippets []Snippet) []llm.Message {
	messages := []llm.Message{{
		Role:    "system",
		Content: r.buildSystemPrompt(s, snippets),
	}}

	history := s.Messages
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	for _, msg := range history {
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	return messages
}

func (r *LLMResponder) buildSystemPrompt(s *state.Session, snippets []Snippet) string {
	var prompt strings.Builder

	if s.UIMode == state.UIModeAnalysis {
		prompt.WriteString(analysisModePrompt)
	} else {
		prompt.WriteString(chatModePrompt)
	}

	if playbook, ok := topicPlaybooks[s.LegalTopic]; ok {
		prompt.WriteString(playbook)
	}

	jurisdiction := s.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = "Not specified"
	}
	hasDocument := "No"
	if s.DocumentRef != "" {
		hasDocument = "Yes"
	}
	documentRef := s.DocumentRef
	if documentRef == "" {
		documentRef = "None"
	}

	prompt.WriteString("\n\n## User Context\n")
	prompt.WriteString("- State/Territory: " + jurisdiction + "\n")
	prompt.WriteString("- Has uploaded document: " + hasDocument + "\n")
	prompt.WriteString("- Document URL: " + documentRef + "\n")

	if len(snippets) > 0 {
		prompt.WriteString("\n## Reference Material\n")
		prompt.WriteString("Use ONLY these passages when citing legislation. Cite the source URL where one is given.\n\n")
		for i, snippet := range snippets {
			prompt.WriteString(fmt.Sprintf("### [%d] %s\n", i+1, snippet.Title))
			prompt.WriteString(snippet.Content + "\n")
			if snippet.URL != "" {
				prompt.WriteString("Source: " + snippet.URL + "\n")
			}
			prompt.WriteString("\n")
		}
	}

	return prompt.String()
}
