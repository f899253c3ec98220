package contract

import (
	"context"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, doc *entity.KnowledgeDocument) error
	CreateBulk(ctx context.Context, docs []*entity.KnowledgeDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar runs pgvector cosine search, optionally scoped to a
	// jurisdiction (national documents always qualify).
	SearchSimilar(ctx context.Context, embedding []float32, jurisdiction string, limit int) ([]*entity.ScoredKnowledgeDocument, error)
	// SearchLexical runs a full-text search over title and content,
	// used when the query cannot be embedded.
	SearchLexical(ctx context.Context, query, jurisdiction string, limit int) ([]*entity.KnowledgeDocument, error)
}
