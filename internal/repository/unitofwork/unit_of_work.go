package unitofwork

import (
	"context"

	"parts-catalog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MachineRepository() contract.MachineRepository
	CategoryRepository() contract.CategoryRepository
	ComponentRepository() contract.ComponentRepository
	ComponentImageRepository() contract.ComponentImageRepository
	ComponentSpecificationRepository() contract.ComponentSpecificationRepository
	DrawingRepository() contract.DrawingRepository
	FavoriteRepository() contract.FavoriteRepository
	SearchHistoryRepository() contract.SearchHistoryRepository
}
