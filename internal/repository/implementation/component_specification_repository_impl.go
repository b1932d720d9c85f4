package implementation

import (
	"context"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/mapper"
	"parts-catalog-be/internal/model"
	"parts-catalog-be/internal/repository/contract"
	"parts-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComponentSpecificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComponentSpecificationMapper
}

func NewComponentSpecificationRepository(db *gorm.DB) contract.ComponentSpecificationRepository {
	return &ComponentSpecificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewComponentSpecificationMapper(),
	}
}

func (r *ComponentSpecificationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComponentSpecificationRepositoryImpl) Create(ctx context.Context, spec *entity.ComponentSpecification) error {
	m := r.mapper.ToModel(spec)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*spec = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComponentSpecificationRepositoryImpl) DeleteByComponentId(ctx context.Context, componentId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("component_id = ?", componentId).Delete(&model.ComponentSpecification{}).Error
}

func (r *ComponentSpecificationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComponentSpecification, error) {
	var models []*model.ComponentSpecification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ComponentSpecificationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ComponentSpecification{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
