package contract

import (
	"context"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DrawingRepository interface {
	Create(ctx context.Context, drawing *entity.MachineDrawing) error
	Update(ctx context.Context, drawing *entity.MachineDrawing) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByMachineId(ctx context.Context, machineId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MachineDrawing, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MachineDrawing, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
