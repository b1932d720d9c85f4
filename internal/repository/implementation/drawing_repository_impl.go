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

type DrawingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MachineDrawingMapper
}

func NewDrawingRepository(db *gorm.DB) contract.DrawingRepository {
	return &DrawingRepositoryImpl{
		db:     db,
		mapper: mapper.NewMachineDrawingMapper(),
	}
}

func (r *DrawingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DrawingRepositoryImpl) Create(ctx context.Context, drawing *entity.MachineDrawing) error {
	m := r.mapper.ToModel(drawing)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*drawing = *r.mapper.ToEntity(m)
	return nil
}

func (r *DrawingRepositoryImpl) Update(ctx context.Context, drawing *entity.MachineDrawing) error {
	m := r.mapper.ToModel(drawing)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*drawing = *r.mapper.ToEntity(m)
	return nil
}

func (r *DrawingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MachineDrawing{}, id).Error
}

func (r *DrawingRepositoryImpl) DeleteByMachineId(ctx context.Context, machineId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("machine_id = ?", machineId).Delete(&model.MachineDrawing{}).Error
}

func (r *DrawingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MachineDrawing, error) {
	var m model.MachineDrawing
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DrawingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MachineDrawing, error) {
	var models []*model.MachineDrawing
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DrawingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MachineDrawing{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
