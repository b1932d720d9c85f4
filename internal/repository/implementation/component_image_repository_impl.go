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

type ComponentImageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComponentImageMapper
}

func NewComponentImageRepository(db *gorm.DB) contract.ComponentImageRepository {
	return &ComponentImageRepositoryImpl{
		db:     db,
		mapper: mapper.NewComponentImageMapper(),
	}
}

func (r *ComponentImageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComponentImageRepositoryImpl) Create(ctx context.Context, image *entity.ComponentImage) error {
	m := r.mapper.ToModel(image)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComponentImageRepositoryImpl) Update(ctx context.Context, image *entity.ComponentImage) error {
	m := r.mapper.ToModel(image)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComponentImageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ComponentImage{}, id).Error
}

func (r *ComponentImageRepositoryImpl) DeleteByComponentId(ctx context.Context, componentId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("component_id = ?", componentId).Delete(&model.ComponentImage{}).Error
}

func (r *ComponentImageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ComponentImage, error) {
	var models []*model.ComponentImage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ComponentImageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ComponentImage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
