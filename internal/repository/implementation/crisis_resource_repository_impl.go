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

type CrisisResourceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewCrisisResourceRepository(db *gorm.DB) contract.CrisisResourceRepository {
	return &CrisisResourceRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

func (r *CrisisResourceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CrisisResourceRepositoryImpl) Create(ctx context.Context, resource *entity.CrisisResource) error {
	m := r.mapper.CrisisResourceToModel(resource)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*resource = *r.mapper.CrisisResourceToEntity(m)
	return nil
}

func (r *CrisisResourceRepositoryImpl) CreateBulk(ctx context.Context, resources []*entity.CrisisResource) error {
	if len(resources) == 0 {
		return nil
	}
	models := make([]*model.CrisisResource, len(resources))
	for i, res := range resources {
		models[i] = r.mapper.CrisisResourceToModel(res)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*resources[i] = *r.mapper.CrisisResourceToEntity(m)
	}
	return nil
}

func (r *CrisisResourceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CrisisResource{}, id).Error
}

func (r *CrisisResourceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CrisisResource, error) {
	var m model.CrisisResource
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CrisisResourceToEntity(&m), nil
}

func (r *CrisisResourceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CrisisResource, error) {
	var models []*model.CrisisResource
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CrisisResource, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CrisisResourceToEntity(m)
	}
	return entities, nil
}

func (r *CrisisResourceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CrisisResource{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
