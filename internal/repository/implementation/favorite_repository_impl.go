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

type FavoriteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FavoriteMapper
}

func NewFavoriteRepository(db *gorm.DB) contract.FavoriteRepository {
	return &FavoriteRepositoryImpl{
		db:     db,
		mapper: mapper.NewFavoriteMapper(),
	}
}

func (r *FavoriteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FavoriteRepositoryImpl) Create(ctx context.Context, favorite *entity.Favorite) error {
	m := r.mapper.ToModel(favorite)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*favorite = *r.mapper.ToEntity(m)
	return nil
}

func (r *FavoriteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Favorite{}, id).Error
}

func (r *FavoriteRepositoryImpl) FindByKey(ctx context.Context, userKey string, ref entity.FavoriteRef) (*entity.Favorite, error) {
	machineId, componentId := mapper.RefColumns(ref)

	var m model.Favorite
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND favorite_type = ?", userKey, string(ref.Kind))
	if machineId != nil {
		query = query.Where("machine_id = ?", *machineId)
	}
	if componentId != nil {
		query = query.Where("component_id = ?", *componentId)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FavoriteRepositoryImpl) DeleteByKey(ctx context.Context, userKey string, ref entity.FavoriteRef) (int64, error) {
	machineId, componentId := mapper.RefColumns(ref)
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND favorite_type = ?", userKey, string(ref.Kind))
	if machineId != nil {
		query = query.Where("machine_id = ?", *machineId)
	}
	if componentId != nil {
		query = query.Where("component_id = ?", *componentId)
	}
	result := query.Delete(&model.Favorite{})
	return result.RowsAffected, result.Error
}

func (r *FavoriteRepositoryImpl) DeleteByRef(ctx context.Context, ref entity.FavoriteRef) error {
	machineId, componentId := mapper.RefColumns(ref)
	query := r.db.WithContext(ctx).Where("favorite_type = ?", string(ref.Kind))
	if machineId != nil {
		query = query.Where("machine_id = ?", *machineId)
	}
	if componentId != nil {
		query = query.Where("component_id = ?", *componentId)
	}
	return query.Delete(&model.Favorite{}).Error
}

func (r *FavoriteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error) {
	var models []*model.Favorite
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FavoriteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Favorite{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
