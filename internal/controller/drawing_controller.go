package controller

import (
	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/serverutils"
	"parts-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDrawingController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ClickableAreas(ctx *fiber.Ctx) error
	SetClickableAreas(ctx *fiber.Ctx) error
	FindComponent(ctx *fiber.Ctx) error
}

type drawingController struct {
	service service.IDrawingService
}

func NewDrawingController(service service.IDrawingService) IDrawingController {
	return &drawingController{service: service}
}

func (c *drawingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/drawings/v1")
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/clickable-areas", c.ClickableAreas)
	h.Post(":id/clickable-areas", c.SetClickableAreas)
	h.Post(":id/find-component", c.FindComponent)
}

func (c *drawingController) Show(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show drawing", res))
}

func (c *drawingController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateDrawingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	file, err := formFile(ctx, "file")
	if err != nil {
		return err
	}
	req.File = file

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create drawing", res))
}

func (c *drawingController) Update(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateDrawingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	file, err := formFile(ctx, "file")
	if err != nil {
		return err
	}
	req.File = file

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update drawing", res))
}

func (c *drawingController) Delete(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete drawing", nil))
}

func (c *drawingController) ClickableAreas(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ClickableAreas(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list clickable areas", res))
}

func (c *drawingController) SetClickableAreas(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.SetClickableAreasRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetClickableAreas(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update clickable areas", res))
}

func (c *drawingController) FindComponent(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.FindComponentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.FindComponent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success find component", res))
}
