package brief

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"legal-assist-be/pkg/llm"
)

// LLMGenerator produces the final structured brief from the full
// conversation and extracted facts.
type LLMGenerator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

var _ Generator = &LLMGenerator{}

func NewLLMGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *LLMGenerator {
	return &LLMGenerator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (g *LLMGenerator) Generate(ctx context.Context, conversation, extractedFacts, jurisdiction string) (*StructuredBrief, error) {
	prompt := g.buildPrompt(conversation, extractedFacts, jurisdiction)

	response, err := g.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0), llm.WithMaxTokens(3000))
	if err != nil {
		return nil, fmt.Errorf("brief generation call failed: %w", err)
	}

	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in brief response")
	}

	var brief StructuredBrief
	if err := json.Unmarshal([]byte(jsonContent), &brief); err != nil {
		return nil, fmt.Errorf("brief JSON unmarshal failed: %w", err)
	}

	switch brief.UrgencyLevel {
	case UrgencyUrgent, UrgencyStandard, UrgencyLowPriority:
	default:
		brief.UrgencyLevel = UrgencyStandard
	}

	return &brief, nil
}

func (g *LLMGenerator) buildPrompt(conversation, extractedFacts, jurisdiction string) string {
	if jurisdiction == "" {
		jurisdiction = "Not specified"
	}

	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are generating a comprehensive lawyer brief based on the conversation between a user and a legal assistant.\n\n")
	prompt.WriteString("Generate a professional, structured brief that a lawyer can use to quickly understand:\n")
	prompt.WriteString("1. What this case is about\n")
	prompt.WriteString("2. Key facts and timeline\n")
	prompt.WriteString("3. Who is involved\n")
	prompt.WriteString("4. What documents exist\n")
	prompt.WriteString("5. What the client wants\n")
	prompt.WriteString("6. What questions the client should discuss with the lawyer\n\n")
	prompt.WriteString("Urgency guidelines:\n")
	prompt.WriteString("- urgent: court/tribunal deadlines within 14 days, limitation periods about to expire, ")
	prompt.WriteString("risk of eviction, termination or harm, criminal charges pending, family violence or safety concerns\n")
	prompt.WriteString("- standard: active disputes requiring resolution, deadlines within 1-3 months, complex matters needing analysis\n")
	prompt.WriteString("- low_priority: information gathering stage, no immediate deadlines, preventative advice sought\n\n")
	prompt.WriteString("Be thorough but concise. The brief should help a lawyer understand the situation without reading the entire conversation.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<jurisdiction>" + jurisdiction + "</jurisdiction>\n\n")

	prompt.WriteString("<conversation>\n")
	prompt.WriteString(conversation)
	prompt.WriteString("\n</conversation>\n\n")

	prompt.WriteString("<extracted_facts>\n")
	prompt.WriteString(extractedFacts)
	prompt.WriteString("\n</extracted_facts>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"executive_summary\": \"1-2 sentence summary of the matter\",\n")
	prompt.WriteString("  \"legal_area\": \"primary legal area\",\n")
	prompt.WriteString("  \"jurisdiction\": \"relevant Australian jurisdiction\",\n")
	prompt.WriteString("  \"situation_narrative\": \"clear narrative of the client's situation\",\n")
	prompt.WriteString("  \"key_facts\": [\"fact 1\"],\n")
	prompt.WriteString("  \"fact_gaps\": [\"unknown item 1\"],\n")
	prompt.WriteString("  \"parties\": [\"party 1\"],\n")
	prompt.WriteString("  \"documents_evidence\": [\"document 1\"],\n")
	prompt.WriteString("  \"client_goals\": [\"goal 1\"],\n")
	prompt.WriteString("  \"potential_issues\": [\"issue 1\"],\n")
	prompt.WriteString("  \"questions_for_lawyer\": [\"question 1\"],\n")
	prompt.WriteString("  \"urgency_level\": \"urgent|standard|low_priority\",\n")
	prompt.WriteString("  \"urgency_reason\": \"brief explanation of urgency level\"\n")
	prompt.WriteString("}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}
