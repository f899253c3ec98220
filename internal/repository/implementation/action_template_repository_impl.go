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
	"gorm.io/gorm"
)

type ActionTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewActionTemplateRepository(db *gorm.DB) contract.ActionTemplateRepository {
	return &ActionTemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

func (r *ActionTemplateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActionTemplateRepositoryImpl) Create(ctx context.Context, template *entity.ActionTemplate) error {
	m := r.mapper.ActionTemplateToModel(template)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ActionTemplateToEntity(m)
	return nil
}

func (r *ActionTemplateRepositoryImpl) CreateBulk(ctx context.Context, templates []*entity.ActionTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	models := make([]*model.ActionTemplate, len(templates))
	for i, t := range templates {
		models[i] = r.mapper.ActionTemplateToModel(t)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*templates[i] = *r.mapper.ActionTemplateToEntity(m)
	}
	return nil
}

func (r *ActionTemplateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ActionTemplate{}, id).Error
}

func (r *ActionTemplateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionTemplate, error) {
	var m model.ActionTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ActionTemplateToEntity(&m), nil
}

func (r *ActionTemplateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionTemplate, error) {
	var models []*model.ActionTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ActionTemplate, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ActionTemplateToEntity(m)
	}
	return entities, nil
}

func (r *ActionTemplateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ActionTemplate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
