package controller

import (
	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/serverutils"
	"parts-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	AdvancedSearch(ctx *fiber.Ctx) error
	Suggestions(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type searchController struct {
	service service.ISearchService
}

func NewSearchController(service service.ISearchService) ISearchController {
	return &searchController{service: service}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Get("", c.Search)
	h.Get("advanced", c.AdvancedSearch)
	h.Get("suggestions", c.Suggestions)
	h.Get("history", c.History)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	req := dto.GlobalSearchRequest{
		Query:   ctx.Query("query"),
		Type:    ctx.Query("type"),
		Page:    queryInt(ctx, "page"),
		PerPage: queryInt(ctx, "per_page"),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.Context(), serverutils.UserKey(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search", res))
}

func (c *searchController) AdvancedSearch(ctx *fiber.Ctx) error {
	machineId, err := queryUUID(ctx, "machine_id")
	if err != nil {
		return err
	}
	categoryId, err := queryUUID(ctx, "category_id")
	if err != nil {
		return err
	}

	req := dto.AdvancedSearchRequest{
		Query:             ctx.Query("query"),
		MachineId:         machineId,
		CategoryId:        categoryId,
		IsSparePart:       queryBool(ctx, "is_spare_part"),
		IsWearingPart:     queryBool(ctx, "is_wearing_part"),
		HasSpecifications: queryBool(ctx, "has_specifications"),
		HasImages:         queryBool(ctx, "has_images"),
		Page:              queryInt(ctx, "page"),
		PerPage:           queryInt(ctx, "per_page"),
	}

	res, err := c.service.AdvancedSearch(ctx.Context(), serverutils.UserKey(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advanced search", res))
}

func (c *searchController) Suggestions(ctx *fiber.Ctx) error {
	req := dto.SuggestionsRequest{
		Query: ctx.Query("query"),
		Limit: queryInt(ctx, "limit"),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Suggestions(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search suggestions", res))
}

func (c *searchController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History(ctx.Context(), serverutils.UserKey(ctx), ctx.Query("type"), queryInt(ctx, "limit"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search history", res))
}
