package controller

import (
	"project-collab-be/internal/dto"
	"project-collab-be/internal/pkg/serverutils"
	"project-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBidController interface {
	RegisterRoutes(r fiber.Router)
}

type bidController struct {
	bidService service.IBidService
	authGuard  fiber.Handler
}

func NewBidController(bidService service.IBidService, authGuard fiber.Handler) IBidController {
	return &bidController{
		bidService: bidService,
		authGuard:  authGuard,
	}
}

func (c *bidController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bid/v1")
	h.Use(c.authGuard)

	h.Post("", c.submit)
	h.Get("mine/:subProjectId", c.mine)
	h.Get("subproject/:subProjectId", serverutils.AdminOnly, c.listForSubProject)
}

func (c *bidController) submit(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.SubmitBidDecisionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.bidService.SubmitDecision(ctx.Context(), identity, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit bid decision", res))
}

func (c *bidController) mine(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	subProjectId, err := parseUUIDParam(ctx, "subProjectId")
	if err != nil {
		return err
	}

	res, err := c.bidService.MyDecision(ctx.Context(), identity.UserID, subProjectId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show bid decision", res))
}

func (c *bidController) listForSubProject(ctx *fiber.Ctx) error {
	subProjectId, err := parseUUIDParam(ctx, "subProjectId")
	if err != nil {
		return err
	}

	res, err := c.bidService.ListForSubProject(ctx.Context(), subProjectId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list bid decisions", res))
}
