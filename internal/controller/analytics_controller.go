package controller

import (
	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/serverutils"
	"parts-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	PopularQueries(ctx *fiber.Ctx) error
	SearchTrends(ctx *fiber.Ctx) error
	PopularMachines(ctx *fiber.Ctx) error
	PopularComponents(ctx *fiber.Ctx) error
	UserFavorites(ctx *fiber.Ctx) error
}

type analyticsController struct {
	service service.IAnalyticsService
}

func NewAnalyticsController(service service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{service: service}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analytics/v1")
	h.Get("popular-queries", c.PopularQueries)
	h.Get("search-trends", c.SearchTrends)
	h.Get("popular-machines", c.PopularMachines)
	h.Get("popular-components", c.PopularComponents)
	h.Get("user-favorites", c.UserFavorites)
}

func analyticsRequest(ctx *fiber.Ctx) (dto.AnalyticsRequest, error) {
	req := dto.AnalyticsRequest{
		Period: ctx.Query("period"),
		Type:   ctx.Query("type"),
		Limit:  queryInt(ctx, "limit"),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return req, err
	}
	return req, nil
}

func (c *analyticsController) PopularQueries(ctx *fiber.Ctx) error {
	req, err := analyticsRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.PopularQueries(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list popular queries", res))
}

func (c *analyticsController) SearchTrends(ctx *fiber.Ctx) error {
	req, err := analyticsRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.SearchTrends(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list search trends", res))
}

func (c *analyticsController) PopularMachines(ctx *fiber.Ctx) error {
	req, err := analyticsRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.PopularMachines(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list popular machines", res))
}

func (c *analyticsController) PopularComponents(ctx *fiber.Ctx) error {
	req, err := analyticsRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.PopularComponents(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list popular components", res))
}

func (c *analyticsController) UserFavorites(ctx *fiber.Ctx) error {
	res, err := c.service.UserFavorites(ctx.Context(), serverutils.UserKey(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success user favorites analytics", res))
}
