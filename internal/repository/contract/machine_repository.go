package contract

import (
	"context"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MachineRepository interface {
	Create(ctx context.Context, machine *entity.Machine) error
	Update(ctx context.Context, machine *entity.Machine) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Machine, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Machine, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
