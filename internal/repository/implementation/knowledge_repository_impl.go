package implementation

import (
	"context"
	"errors"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/mapper"
	"legal-assist-be/internal/model"
	"legal-assist-be/internal/repository/contract"
	"legal-assist-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, doc *entity.KnowledgeDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeRepositoryImpl) CreateBulk(ctx context.Context, docs []*entity.KnowledgeDocument) error {
	if len(docs) == 0 {
		return nil
	}
	models := make([]*model.KnowledgeDocument, len(docs))
	for i, d := range docs {
		models[i] = r.mapper.ToModel(d)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*docs[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *KnowledgeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeDocument{}, id).Error
}

func (r *KnowledgeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeDocument, error) {
	var m model.KnowledgeDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KnowledgeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDocument, error) {
	var models []*model.KnowledgeDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KnowledgeDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *KnowledgeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *KnowledgeRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, jurisdiction string, limit int) ([]*entity.ScoredKnowledgeDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	type result struct {
		model.KnowledgeDocument
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("knowledge_documents").
		Select("knowledge_documents.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("deleted_at IS NULL")

	// National documents (empty jurisdiction) always qualify
	if jurisdiction != "" {
		query = query.Where("jurisdiction = ? OR jurisdiction = ''", jurisdiction)
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*entity.ScoredKnowledgeDocument, len(results))
	for i, res := range results {
		scored[i] = &entity.ScoredKnowledgeDocument{
			Document:   r.mapper.ToEntity(&res.KnowledgeDocument),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *KnowledgeRepositoryImpl) SearchLexical(ctx context.Context, searchQuery, jurisdiction string, limit int) ([]*entity.KnowledgeDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	var models []*model.KnowledgeDocument

	query := r.db.WithContext(ctx).
		Where("to_tsvector('english', title || ' ' || content) @@ plainto_tsquery('english', ?)", searchQuery)

	if jurisdiction != "" {
		query = query.Where("jurisdiction = ? OR jurisdiction = ''", jurisdiction)
	}

	if err := query.Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.KnowledgeDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
