package safety

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"legal-assist-be/pkg/llm"
)

// LLMClassifier asks the model for an escalation verdict on queries the
// deterministic tier could not decide.
type LLMClassifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

var _ Classifier = &LLMClassifier{}

func NewLLMClassifier(llmProvider llm.LLMProvider, logger *log.Logger) *LLMClassifier {
	return &LLMClassifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (c *LLMClassifier) Assess(ctx context.Context, query, jurisdiction string) (*Assessment, error) {
	prompt := c.buildPrompt(query, jurisdiction)

	response, err := c.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		return nil, fmt.Errorf("safety classifier call failed: %w", err)
	}

	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in classifier response")
	}

	var assessment Assessment
	if err := json.Unmarshal([]byte(jsonContent), &assessment); err != nil {
		return nil, fmt.Errorf("classifier JSON unmarshal failed: %w", err)
	}

	c.logger.Printf("[SAFETY] Classifier verdict: escalate=%v resources=%d",
		assessment.RequiresEscalation, len(assessment.RecommendedResources))

	return &assessment, nil
}

func (c *LLMClassifier) buildPrompt(query, jurisdiction string) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are a crisis triage classifier for an Australian legal assistant.\n")
	prompt.WriteString("Decide whether the user's message indicates an urgent safety or welfare crisis\n")
	prompt.WriteString("(self-harm, family violence, child welfare, imminent criminal-justice crisis).\n")
	prompt.WriteString("Routine legal stress (deadlines, disputes, worry) is NOT a crisis.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<user_message>\n")
	prompt.WriteString(query)
	prompt.WriteString("\n</user_message>\n\n")

	if jurisdiction != "" {
		prompt.WriteString("<jurisdiction>" + jurisdiction + "</jurisdiction>\n\n")
	}

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"requires_escalation\": false,\n")
	prompt.WriteString("  \"recommended_resources\": [\n")
	prompt.WriteString("    {\"name\": \"Lifeline\", \"phone\": \"13 11 14\", \"url\": \"\", \"description\": \"24/7 crisis support\"}\n")
	prompt.WriteString("  ]\n")
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
