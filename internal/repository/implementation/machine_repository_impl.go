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

type MachineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MachineMapper
}

func NewMachineRepository(db *gorm.DB) contract.MachineRepository {
	return &MachineRepositoryImpl{
		db:     db,
		mapper: mapper.NewMachineMapper(),
	}
}

func (r *MachineRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MachineRepositoryImpl) Create(ctx context.Context, machine *entity.Machine) error {
	m := r.mapper.ToModel(machine)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*machine = *r.mapper.ToEntity(m)
	return nil
}

func (r *MachineRepositoryImpl) Update(ctx context.Context, machine *entity.Machine) error {
	m := r.mapper.ToModel(machine)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*machine = *r.mapper.ToEntity(m)
	return nil
}

func (r *MachineRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Machine{}, id).Error
}

func (r *MachineRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Machine, error) {
	var m model.Machine
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MachineRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Machine, error) {
	var models []*model.Machine
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MachineRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Machine{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
