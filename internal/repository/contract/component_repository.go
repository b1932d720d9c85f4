package contract

import (
	"context"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ComponentRepository interface {
	Create(ctx context.Context, component *entity.Component) error
	Update(ctx context.Context, component *entity.Component) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByMachineId(ctx context.Context, machineId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Component, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Component, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ComponentImageRepository interface {
	Create(ctx context.Context, image *entity.ComponentImage) error
	Update(ctx context.Context, image *entity.ComponentImage) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByComponentId(ctx context.Context, componentId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComponentImage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ComponentSpecificationRepository interface {
	Create(ctx context.Context, spec *entity.ComponentSpecification) error
	DeleteByComponentId(ctx context.Context, componentId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComponentSpecification, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
