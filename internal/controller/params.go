package controller

import (
	"io"
	"strconv"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Query parameters are parsed explicitly: pointer-typed filters must
// distinguish "absent" from "false", which QueryParser cannot express.

func pathId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.Validation("id", "invalid id")
	}
	return id, nil
}

func queryUUID(ctx *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.Validation(key, "invalid id")
	}
	return &id, nil
}

func queryBool(ctx *fiber.Ctx, key string) *bool {
	raw := ctx.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(ctx *fiber.Ctx, key string) int {
	v, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// formFile reads a single optional upload from a multipart request.
func formFile(ctx *fiber.Ctx, field string) (*dto.FileUpload, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &dto.FileUpload{Name: fh.Filename, Data: data}, nil
}

// formFiles reads every upload under the field of a multipart request.
func formFiles(ctx *fiber.Ctx, field string) ([]dto.FileUpload, error) {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}

	uploads := make([]dto.FileUpload, 0)
	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, dto.FileUpload{Name: fh.Filename, Data: data})
	}
	return uploads, nil
}
