package brief

// FollowUpQuestions are targeted questions to fill fact gaps.
type FollowUpQuestions struct {
	Questions []string `json:"questions"`
	Rationale string   `json:"question_context"`
}

// Urgency levels for a generated brief.
const (
	UrgencyUrgent      = "urgent"
	UrgencyStandard    = "standard"
	UrgencyLowPriority = "low_priority"
)

// StructuredBrief is the comprehensive lawyer brief generated from the
// conversation.
type StructuredBrief struct {
	ExecutiveSummary   string   `json:"executive_summary"`
	LegalArea          string   `json:"legal_area"`
	Jurisdiction       string   `json:"jurisdiction"`
	SituationNarrative string   `json:"situation_narrative"`
	KeyFacts           []string `json:"key_facts"`
	FactGaps           []string `json:"fact_gaps"`
	Parties            []string `json:"parties"`
	DocumentsEvidence  []string `json:"documents_evidence"`
	ClientGoals        []string `json:"client_goals"`
	PotentialIssues    []string `json:"potential_issues"`
	QuestionsForLawyer []string `json:"questions_for_lawyer"`
	UrgencyLevel       string   `json:"urgency_level"`
	UrgencyReason      string   `json:"urgency_reason"`
}
