package controller

import (
	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/apperror"
	"parts-catalog-be/internal/pkg/serverutils"
	"parts-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IComponentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	FindByPosition(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type componentController struct {
	service service.IComponentService
}

func NewComponentController(service service.IComponentService) IComponentController {
	return &componentController{service: service}
}

func (c *componentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/components/v1")
	h.Get("", c.List)
	h.Get("search", c.Search)
	h.Get("find-by-position", c.FindByPosition)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *componentController) List(ctx *fiber.Ctx) error {
	machineId, err := queryUUID(ctx, "machine_id")
	if err != nil {
		return err
	}
	categoryId, err := queryUUID(ctx, "category_id")
	if err != nil {
		return err
	}

	req := dto.ListComponentsRequest{
		MachineId:     machineId,
		CategoryId:    categoryId,
		IsSparePart:   queryBool(ctx, "is_spare_part"),
		IsWearingPart: queryBool(ctx, "is_wearing_part"),
		Search:        ctx.Query("search"),
		Page:          queryInt(ctx, "page"),
		PerPage:       queryInt(ctx, "per_page"),
	}

	res, err := c.service.List(ctx.Context(), serverutils.UserKey(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list components", res))
}

func (c *componentController) Search(ctx *fiber.Ctx) error {
	machineId, err := queryUUID(ctx, "machine_id")
	if err != nil {
		return err
	}
	categoryId, err := queryUUID(ctx, "category_id")
	if err != nil {
		return err
	}

	req := dto.SearchComponentsRequest{
		Query:         ctx.Query("query"),
		MachineId:     machineId,
		CategoryId:    categoryId,
		IsSparePart:   queryBool(ctx, "is_spare_part"),
		IsWearingPart: queryBool(ctx, "is_wearing_part"),
		Page:          queryInt(ctx, "page"),
		PerPage:       queryInt(ctx, "per_page"),
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.Context(), serverutils.UserKey(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search components", res))
}

func (c *componentController) Show(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show component", res))
}

func (c *componentController) FindByPosition(ctx *fiber.Ctx) error {
	machineId, err := uuid.Parse(ctx.Query("machine_id"))
	if err != nil {
		return apperror.Validation("machine_id", "invalid id")
	}

	req := dto.FindByPositionRequest{
		MachineId: machineId,
		PosNumber: ctx.Query("pos_number"),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.FindByPosition(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success find component by position", res))
}

func (c *componentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateComponentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	images, err := formFiles(ctx, "images")
	if err != nil {
		return err
	}
	req.Images = images

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create component", res))
}

func (c *componentController) Update(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateComponentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	images, err := formFiles(ctx, "images")
	if err != nil {
		return err
	}
	req.Images = images

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update component", res))
}

func (c *componentController) Delete(ctx *fiber.Ctx) error {
	id, err := pathId(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete component", nil))
}
