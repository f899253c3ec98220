package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeDocument is one passage of legislation or legal guidance in
// the retrieval corpus.
type KnowledgeDocument struct {
	Id           uuid.UUID
	Title        string
	Content      string
	Source       string
	URL          string
	LegalArea    string
	Jurisdiction string
	Embedding    []float32
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// ScoredKnowledgeDocument wraps a document with its similarity score.
type ScoredKnowledgeDocument struct {
	Document   *KnowledgeDocument
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}
