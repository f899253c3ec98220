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

type LawyerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectoryMapper
}

func NewLawyerRepository(db *gorm.DB) contract.LawyerRepository {
	return &LawyerRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectoryMapper(),
	}
}

func (r *LawyerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LawyerRepositoryImpl) Create(ctx context.Context, lawyer *entity.Lawyer) error {
	m := r.mapper.LawyerToModel(lawyer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*lawyer = *r.mapper.LawyerToEntity(m)
	return nil
}

func (r *LawyerRepositoryImpl) CreateBulk(ctx context.Context, lawyers []*entity.Lawyer) error {
	if len(lawyers) == 0 {
		return nil
	}
	models := make([]*model.Lawyer, len(lawyers))
	for i, l := range lawyers {
		models[i] = r.mapper.LawyerToModel(l)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*lawyers[i] = *r.mapper.LawyerToEntity(m)
	}
	return nil
}

func (r *LawyerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Lawyer{}, id).Error
}

func (r *LawyerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lawyer, error) {
	var m model.Lawyer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LawyerToEntity(&m), nil
}

func (r *LawyerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lawyer, error) {
	var models []*model.Lawyer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Lawyer, len(models))
	for i, m := range models {
		entities[i] = r.mapper.LawyerToEntity(m)
	}
	return entities, nil
}

func (r *LawyerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Lawyer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
