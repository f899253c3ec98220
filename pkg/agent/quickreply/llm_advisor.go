package quickreply

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/llm"
)

const contextMessages = 6

// LLMAdvisor asks the model for natural follow-up chips.
type LLMAdvisor struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

var _ Advisor = &LLMAdvisor{}

func NewLLMAdvisor(llmProvider llm.LLMProvider, logger *log.Logger) *LLMAdvisor {
	return &LLMAdvisor{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (a *LLMAdvisor) Advise(ctx context.Context, messages []state.TurnMessage, response string) (*Suggestion, error) {
	prompt := a.buildPrompt(messages, response)

	raw, err := a.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return nil, fmt.Errorf("quick reply call failed: %w", err)
	}

	jsonContent := extractJSON(raw)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in quick reply response")
	}

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(jsonContent), &suggestion); err != nil {
		return nil, fmt.Errorf("quick reply JSON unmarshal failed: %w", err)
	}

	if len(suggestion.QuickReplies) == 0 {
		return nil, fmt.Errorf("quick reply response contained no suggestions")
	}
	if len(suggestion.QuickReplies) > 4 {
		suggestion.QuickReplies = suggestion.QuickReplies[:4]
	}

	return &suggestion, nil
}

func (a *LLMAdvisor) buildPrompt(messages []state.TurnMessage, response string) string {
	start := 0
	if len(messages) > contextMessages {
		start = len(messages) - contextMessages
	}
	var conversation strings.Builder
	for _, msg := range messages[start:] {
		switch msg.Role {
		case state.RoleUser:
			conversation.WriteString("User: " + msg.Content + "\n")
		case state.RoleAssistant:
			conversation.WriteString("Assistant: " + msg.Content + "\n")
		}
	}

	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("Based on this conversation, suggest 2-4 quick reply options that would be natural for the user to say next.\n\n")
	prompt.WriteString("Make them:\n")
	prompt.WriteString("- Short (2-6 words each)\n")
	prompt.WriteString("- Natural and conversational\n")
	prompt.WriteString("- Useful for moving the conversation forward\n")
	prompt.WriteString("- Diverse (different types of follow-ups)\n\n")
	prompt.WriteString("Examples: \"What are my options?\", \"How do I do that?\", \"What happens next?\", \"What about costs?\", \"Generate a brief\"\n\n")
	prompt.WriteString("Also indicate if the situation seems complex enough that a formal lawyer brief would be helpful.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<conversation>\n")
	prompt.WriteString(conversation.String())
	prompt.WriteString("</conversation>\n\n")

	prompt.WriteString("<assistant_response>\n")
	prompt.WriteString(response)
	prompt.WriteString("\n</assistant_response>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"quick_replies\": [\"What are my options?\", \"What happens next?\"],\n")
	prompt.WriteString("  \"suggest_brief\": false\n")
	prompt.WriteString("}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
