package contract

import (
	"context"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CrisisResourceRepository interface {
	Create(ctx context.Context, resource *entity.CrisisResource) error
	CreateBulk(ctx context.Context, resources []*entity.CrisisResource) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CrisisResource, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CrisisResource, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
