package brief

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/llm"
)

// LLMFactExtractor extracts structured facts from the conversation
// using an LLM.
type LLMFactExtractor struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

var _ FactExtractor = &LLMFactExtractor{}

func NewLLMFactExtractor(llmProvider llm.LLMProvider, logger *log.Logger) *LLMFactExtractor {
	return &LLMFactExtractor{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (e *LLMFactExtractor) Extract(ctx context.Context, conversation, jurisdiction string) (*state.ExtractedFacts, error) {
	prompt := e.buildPrompt(conversation, jurisdiction)

	response, err := e.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		return nil, fmt.Errorf("fact extraction call failed: %w", err)
	}

	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in extractor response")
	}

	var facts state.ExtractedFacts
	if err := json.Unmarshal([]byte(jsonContent), &facts); err != nil {
		return nil, fmt.Errorf("extractor JSON unmarshal failed: %w", err)
	}

	if facts.Confidence < 0 {
		facts.Confidence = 0
	}
	if facts.Confidence > 1 {
		facts.Confidence = 1
	}

	return &facts, nil
}

func (e *LLMFactExtractor) buildPrompt(conversation, jurisdiction string) string {
	if jurisdiction == "" {
		jurisdiction = "Not specified"
	}

	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are analyzing a conversation between a user and a legal assistant to extract facts for a lawyer brief.\n\n")
	prompt.WriteString("Extract all relevant facts that would help a lawyer understand:\n")
	prompt.WriteString("1. What the legal situation is\n")
	prompt.WriteString("2. Who is involved\n")
	prompt.WriteString("3. What happened and when\n")
	prompt.WriteString("4. What documents or evidence exist\n")
	prompt.WriteString("5. What the user wants\n\n")
	prompt.WriteString("For a useful brief we need at minimum: the general nature of the legal problem, ")
	prompt.WriteString("the user's role in the situation, what outcome the user wants, and any urgent deadlines. ")
	prompt.WriteString("If these are unclear, list them in missing_critical_info.\n")
	prompt.WriteString("If something is implied but not stated, note it as uncertain.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<conversation>\n")
	prompt.WriteString(conversation)
	prompt.WriteString("\n</conversation>\n\n")

	prompt.WriteString("<jurisdiction>" + jurisdiction + "</jurisdiction>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"legal_area\": \"tenancy|employment|family|consumer|criminal|general\",\n")
	prompt.WriteString("  \"situation_summary\": \"brief summary of the situation\",\n")
	prompt.WriteString("  \"key_facts\": [\"fact 1\", \"fact 2\"],\n")
	prompt.WriteString("  \"parties_involved\": [\"landlord\", \"tenant\"],\n")
	prompt.WriteString("  \"timeline_events\": [\"event 1\"],\n")
	prompt.WriteString("  \"documents_mentioned\": [\"lease agreement\"],\n")
	prompt.WriteString("  \"user_goals\": [\"goal 1\"],\n")
	prompt.WriteString("  \"missing_critical_info\": [\"missing item 1\"],\n")
	prompt.WriteString("  \"confidence\": 0.7\n")
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
