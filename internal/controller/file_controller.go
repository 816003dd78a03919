package controller

import (
	"io"

	"project-collab-be/internal/dto"
	"project-collab-be/internal/pkg/serverutils"
	"project-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
}

type fileController struct {
	fileService service.IFileService
	authGuard   fiber.Handler
}

func NewFileController(fileService service.IFileService, authGuard fiber.Handler) IFileController {
	return &fileController{
		fileService: fileService,
		authGuard:   authGuard,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/file/v1")
	h.Use(c.authGuard)

	h.Get("subproject/:id", c.list)
	h.Get("subproject/:id/presign", c.presign)
	h.Post("subproject/:id/upload", serverutils.AdminOnly, c.upload)
	h.Delete("subproject/:id", serverutils.AdminOnly, c.delete)
	h.Post("share", c.share)
}

func (c *fileController) list(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.fileService.List(ctx.Context(), identity, id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list files", res))
}

func (c *fileController) presign(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	key := ctx.Query("key")
	if key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "key query is required")
	}

	res, err := c.fileService.Presign(ctx.Context(), identity, id, key)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success presign download", res))
}

func (c *fileController) upload(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file form field is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	res, err := c.fileService.Upload(ctx.Context(), identity, id, fileHeader.Filename, contentType, data)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success upload file", res))
}

func (c *fileController) delete(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	key := ctx.Query("key")
	if key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "key query is required")
	}

	if err := c.fileService.Delete(ctx.Context(), identity, id, key); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete file", nil))
}

func (c *fileController) share(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.ShareFilesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.fileService.Share(ctx.Context(), identity, &req); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success share files", nil))
}
