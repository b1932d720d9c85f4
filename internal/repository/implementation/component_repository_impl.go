package implementation

import (
	"context"
	"errors"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/mapper"
	"parts-catalog-be/internal/model"
	"parts-catalog-be/internal/repository/contract"
	"parts-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComponentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComponentMapper
}

func NewComponentRepository(db *gorm.DB) contract.ComponentRepository {
	return &ComponentRepositoryImpl{
		db:     db,
		mapper: mapper.NewComponentMapper(),
	}
}

func (r *ComponentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComponentRepositoryImpl) Create(ctx context.Context, component *entity.Component) error {
	m := r.mapper.ToModel(component)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*component = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComponentRepositoryImpl) Update(ctx context.Context, component *entity.Component) error {
	m := r.mapper.ToModel(component)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*component = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComponentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Component{}, id).Error
}

func (r *ComponentRepositoryImpl) DeleteByMachineId(ctx context.Context, machineId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("machine_id = ?", machineId).Delete(&model.Component{}).Error
}

func (r *ComponentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Component, error) {
	var m model.Component
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ComponentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Component, error) {
	var models []*model.Component
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ComponentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Component{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
