package service

import (
	"context"
	"time"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/pkg/apperror"
	"parts-catalog-be/internal/pkg/filestore"
	"parts-catalog-be/internal/repository/specification"
	"parts-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICategoryService interface {
	List(ctx context.Context, req *dto.ListCategoriesRequest) (*dto.Paginated[dto.CategoryResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.UpdateCategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Components(ctx context.Context, req *dto.ListCategoryComponentsRequest) (*dto.Paginated[dto.ComponentResponse], error)
}

type categoryService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            filestore.Store
	publisherService IPublisherService
}

func NewCategoryService(
	uowFactory unitofwork.RepositoryFactory,
	store filestore.Store,
	publisherService IPublisherService,
) ICategoryService {
	return &categoryService{
		uowFactory:       uowFactory,
		store:            store,
		publisherService: publisherService,
	}
}

func (s *categoryService) List(ctx context.Context, req *dto.ListCategoriesRequest) (*dto.Paginated[dto.CategoryResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, perPage := normalizePage(req.Page, req.PerPage)

	specs := []specification.Specification{}
	if req.Search != "" {
		specs = append(specs, specification.CategorySearch{Query: req.Search})
	}

	total, err := uow.CategoryRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs, specification.OrderBy{Field: "name"}, pagination(page, perPage))
	categories, err := uow.CategoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res := categoryToResponse(c)
		if req.WithCounts {
			count, err := uow.ComponentRepository().Count(ctx, specification.ByCategoryID{CategoryID: c.Id})
			if err != nil {
				return nil, err
			}
			res.ComponentsCount = &count
		}
		items = append(items, res)
	}

	return &dto.Paginated[dto.CategoryResponse]{
		Items:      items,
		Pagination: pageMeta(page, perPage, total),
	}, nil
}

func (s *categoryService) Show(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("category")
	}

	res := categoryToResponse(category)

	count, err := uow.ComponentRepository().Count(ctx, specification.ByCategoryID{CategoryID: id})
	if err != nil {
		return nil, err
	}
	res.ComponentsCount = &count

	recent, err := uow.ComponentRepository().FindAll(ctx,
		specification.ByCategoryID{CategoryID: id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 10},
	)
	if err != nil {
		return nil, err
	}
	res.RecentComponents, err = assembleComponents(ctx, uow, recent)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := entity.Category{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if req.Image != nil {
		path, err := s.store.Save("categories", req.Image.Name, req.Image.Data)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		category.ImagePath = path
	}

	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}

	return &dto.CreateCategoryResponse{Id: category.Id}, nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.UpdateCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("category")
	}

	now := time.Now()
	category.Name = req.Name
	category.Description = req.Description
	category.UpdatedAt = &now

	oldImage := ""
	if req.Image != nil {
		path, err := s.store.Save("categories", req.Image.Name, req.Image.Data)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		oldImage = category.ImagePath
		category.ImagePath = path
	}

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}

	if oldImage != "" {
		_ = s.publisherService.Publish(ctx, cleanupPayload([]string{oldImage}))
	}

	return &dto.UpdateCategoryResponse{Id: category.Id}, nil
}

// Delete refuses to remove a category that still has components; callers
// must move or delete them first.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NotFound("category")
	}

	count, err := uow.ComponentRepository().Count(ctx, specification.ByCategoryID{CategoryID: id})
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.Conflict("category still has components")
	}

	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return err
	}

	if category.ImagePath != "" {
		_ = s.publisherService.Publish(ctx, cleanupPayload([]string{category.ImagePath}))
	}
	return nil
}

func (s *categoryService) Components(ctx context.Context, req *dto.ListCategoryComponentsRequest) (*dto.Paginated[dto.ComponentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.CategoryId})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("category")
	}

	page, perPage := normalizePage(req.Page, req.PerPage)
	specs := []specification.Specification{specification.ByCategoryID{CategoryID: req.CategoryId}}
	if req.Search != "" {
		specs = append(specs, specification.ComponentSearch{Query: req.Search})
	}

	total, err := uow.ComponentRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs, specification.OrderBy{Field: "pos_number"}, pagination(page, perPage))
	components, err := uow.ComponentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items, err := assembleComponents(ctx, uow, components)
	if err != nil {
		return nil, err
	}

	return &dto.Paginated[dto.ComponentResponse]{
		Items:      items,
		Pagination: pageMeta(page, perPage, total),
	}, nil
}
