package controller

import (
	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/serverutils"
	"parts-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMachineController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Components(ctx *fiber.Ctx) error
	Drawing(ctx *fiber.Ctx) error
}

type machineController struct {
	service service.IMachineService
}

func NewMachineController(service service.IMachineService) IMachineController {
	return &machineController{service: service}
}

func (c *machineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/machines/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/components", c.Components)
	h.Get(":id/drawing", c.Drawing)
}

func (c *machineController) List(ctx *fiber.Ctx) error {
	req := dto.ListMachinesRequest{
		Search:  ctx.Query("search"),
		Page:    queryInt(ctx, "page"),
		PerPage: queryInt(ctx, "per_page"),
	}

	res, err := c.service.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list machines", res))
}

func (c *machineController) Show(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show machine", res))
}

func (c *machineController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMachineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	image, err := formFile(ctx, "image")
	if err != nil {
		return err
	}
	req.Image = image

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create machine", res))
}

func (c *machineController) Update(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateMachineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	image, err := formFile(ctx, "image")
	if err != nil {
		return err
	}
	req.Image = image

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update machine", res))
}

func (c *machineController) Delete(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete machine", nil))
}

func (c *machineController) Components(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}
	categoryId, err := queryUUID(ctx, "category_id")
	if err != nil {
		return err
	}

	req := dto.ListMachineComponentsRequest{
		MachineId:     id,
		CategoryId:    categoryId,
		IsSparePart:   queryBool(ctx, "is_spare_part"),
		IsWearingPart: queryBool(ctx, "is_wearing_part"),
		Search:        ctx.Query("search"),
		Page:          queryInt(ctx, "page"),
		PerPage:       queryInt(ctx, "per_page"),
	}

	res, err := c.service.Components(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list machine components", res))
}

func (c *machineController) Drawing(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.DrawingByType(ctx.Context(), id, ctx.Query("type", "exploded"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show machine drawing", res))
}
