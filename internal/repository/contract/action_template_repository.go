package contract

import (
	"context"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ActionTemplateRepository interface {
	Create(ctx context.Context, template *entity.ActionTemplate) error
	CreateBulk(ctx context.Context, templates []*entity.ActionTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionTemplate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
