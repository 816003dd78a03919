package controller

import (
	"project-collab-be/internal/dto"
	"project-collab-be/internal/pkg/serverutils"
	"project-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
}

type feedbackController struct {
	feedbackService service.IFeedbackService
	authGuard       fiber.Handler
}

func NewFeedbackController(feedbackService service.IFeedbackService, authGuard fiber.Handler) IFeedbackController {
	return &feedbackController{
		feedbackService: feedbackService,
		authGuard:       authGuard,
	}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feedback/v1")
	h.Use(c.authGuard)

	h.Post("", c.submit)
	h.Get("subproject/:id", c.listForSubProject)
	h.Patch(":id/moderate", serverutils.AdminOnly, c.moderate)
	h.Get("project/:id/stats", serverutils.AdminOnly, c.projectStats)
}

func (c *feedbackController) submit(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.feedbackService.Submit(ctx.Context(), identity, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit feedback", res))
}

func (c *feedbackController) listForSubProject(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.feedbackService.ListForSubProject(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list feedback", res))
}

func (c *feedbackController) moderate(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ModerateFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.feedbackService.Moderate(ctx.Context(), id, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success moderate feedback", res))
}

func (c *feedbackController) projectStats(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.feedbackService.ProjectStats(ctx.Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success project feedback stats", res))
}
