package mapper

import (
	"time"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(d *model.KnowledgeDocument) *entity.KnowledgeDocument {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeDocument{
		Id:           d.Id,
		Title:        d.Title,
		Content:      d.Content,
		Source:       d.Source,
		URL:          d.URL,
		LegalArea:    d.LegalArea,
		Jurisdiction: d.Jurisdiction,
		Embedding:    d.Embedding.Slice(),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *KnowledgeMapper) ToModel(d *entity.KnowledgeDocument) *model.KnowledgeDocument {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.KnowledgeDocument{
		Id:           d.Id,
		Title:        d.Title,
		Content:      d.Content,
		Source:       d.Source,
		URL:          d.URL,
		LegalArea:    d.LegalArea,
		Jurisdiction: d.Jurisdiction,
		Embedding:    pgvector.NewVector(d.Embedding),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
