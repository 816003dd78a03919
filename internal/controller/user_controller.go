package controller

import (
	"project-collab-be/internal/dto"
	"project-collab-be/internal/pkg/serverutils"
	"project-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	Directory(ctx *fiber.Ctx) error
	Contacts(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	authGuard   fiber.Handler
}

func NewUserController(userService service.IUserService, authGuard fiber.Handler) IUserController {
	return &userController{
		userService: userService,
		authGuard:   authGuard,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(c.authGuard)
	h.Get("profile", c.Profile)
	h.Put("profile", c.UpdateProfile)
	h.Get("contacts", c.Contacts)
	h.Get("directory", serverutils.AdminOnly, c.Directory)
	h.Delete(":id", serverutils.AdminOnly, c.Delete)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	res, err := c.userService.GetProfile(ctx.Context(), identity.UserID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), identity.UserID, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *userController) Directory(ctx *fiber.Ctx) error {
	var req dto.FilterUsersRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid filters")
	}

	res, err := c.userService.FilterUsers(ctx.Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success filter users", res))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	userId, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.userService.DeleteUser(ctx.Context(), userId); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete user", nil))
}

func (c *userController) Contacts(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	res, err := c.userService.Contacts(ctx.Context(), identity.UserID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list contacts", res))
}
