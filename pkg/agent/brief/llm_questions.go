package brief

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"legal-assist-be/pkg/llm"
)

// LLMQuestionGenerator turns open fact gaps into short, conversational
// follow-up questions.
type LLMQuestionGenerator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

var _ QuestionGenerator = &LLMQuestionGenerator{}

func NewLLMQuestionGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *LLMQuestionGenerator {
	return &LLMQuestionGenerator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (g *LLMQuestionGenerator) Questions(ctx context.Context, situationSummary string, missingInfo []string) (*FollowUpQuestions, error) {
	prompt := g.buildPrompt(situationSummary, missingInfo)

	response, err := g.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.3))
	if err != nil {
		return nil, fmt.Errorf("follow-up question call failed: %w", err)
	}

	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in question response")
	}

	var result FollowUpQuestions
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return nil, fmt.Errorf("question JSON unmarshal failed: %w", err)
	}

	if len(result.Questions) == 0 {
		return nil, fmt.Errorf("question response contained no questions")
	}
	if len(result.Questions) > 3 {
		result.Questions = result.Questions[:3]
	}

	return &result, nil
}

func (g *LLMQuestionGenerator) buildPrompt(situationSummary string, missingInfo []string) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You need to ask the user some follow-up questions before generating their lawyer brief.\n\n")
	prompt.WriteString("Generate 1-3 targeted questions that will:\n")
	prompt.WriteString("1. Fill the most critical gaps\n")
	prompt.WriteString("2. Be conversational and not feel like an interrogation\n")
	prompt.WriteString("3. Help generate a useful lawyer brief\n\n")
	prompt.WriteString("Keep questions focused and practical. Don't ask about irrelevant details.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<what_we_know>\n")
	prompt.WriteString(situationSummary)
	prompt.WriteString("\n</what_we_know>\n\n")

	prompt.WriteString("<missing_information>\n")
	for _, item := range missingInfo {
		prompt.WriteString("- " + item + "\n")
	}
	prompt.WriteString("</missing_information>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"questions\": [\"question 1\", \"question 2\"],\n")
	prompt.WriteString("  \"question_context\": \"why these questions are needed\"\n")
	prompt.WriteString("}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}
