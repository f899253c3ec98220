package contract

import (
	"context"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LawyerRepository interface {
	Create(ctx context.Context, lawyer *entity.Lawyer) error
	CreateBulk(ctx context.Context, lawyers []*entity.Lawyer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lawyer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lawyer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
