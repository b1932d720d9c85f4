package controller

import (
	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/apperror"
	"parts-catalog-be/internal/pkg/serverutils"
	"parts-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFavoriteController interface {
	RegisterRoutes(r fiber.Router)
	Toggle(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Check(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	MachinesWithComponents(ctx *fiber.Ctx) error
}

type favoriteController struct {
	service service.IFavoriteService
}

func NewFavoriteController(service service.IFavoriteService) IFavoriteController {
	return &favoriteController{service: service}
}

func (c *favoriteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/favorites/v1")
	h.Get("", c.List)
	h.Post("", c.Add)
	h.Delete("", c.Remove)
	h.Post("toggle", c.Toggle)
	h.Get("check", c.Check)
	h.Get("machines-with-components", c.MachinesWithComponents)
}

func (c *favoriteController) Toggle(ctx *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Toggle(ctx.Context(), serverutils.UserKey(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle favorite", res))
}

func (c *favoriteController) Add(ctx *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.Context(), serverutils.UserKey(ctx), &req)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return ctx.Status(status).JSON(serverutils.SuccessResponse("Success add favorite", res))
}

func (c *favoriteController) Remove(ctx *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Remove(ctx.Context(), serverutils.UserKey(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove favorite", res))
}

func (c *favoriteController) Check(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Query("id"))
	if err != nil {
		return apperror.Validation("id", "invalid id")
	}

	req := dto.FavoriteRequest{
		Type: ctx.Query("favorite_type"),
		Id:   id,
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Exists(ctx.Context(), serverutils.UserKey(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check favorite", res))
}

func (c *favoriteController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListForUser(ctx.Context(), serverutils.UserKey(ctx), ctx.Query("favorite_type"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list favorites", res))
}

func (c *favoriteController) MachinesWithComponents(ctx *fiber.Ctx) error {
	res, err := c.service.MachinesWithComponents(ctx.Context(), serverutils.UserKey(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list favorite machines with components", res))
}
