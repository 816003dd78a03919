package controller

import (
	"project-collab-be/internal/dto"
	"project-collab-be/internal/pkg/serverutils"
	"project-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
}

type questionController struct {
	questionService service.IQuestionService
	authGuard       fiber.Handler
}

func NewQuestionController(questionService service.IQuestionService, authGuard fiber.Handler) IQuestionController {
	return &questionController{
		questionService: questionService,
		authGuard:       authGuard,
	}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/question/v1")
	h.Use(c.authGuard)

	h.Post("", c.ask)
	h.Get("", c.list)
	h.Get("bulletins", c.listBulletins)
	h.Post("bulletins", serverutils.AdminOnly, c.postBulletin)
	h.Post(":id/answer", serverutils.AdminOnly, c.answer)
	h.Delete(":id", serverutils.AdminOnly, c.delete)
}

func (c *questionController) ask(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.AskQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.questionService.Ask(ctx.Context(), identity, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success ask question", res))
}

func (c *questionController) list(ctx *fiber.Ctx) error {
	subProjectId, err := uuid.Parse(ctx.Query("subProjectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "subProjectId query is required")
	}
	unansweredOnly := ctx.QueryBool("unanswered")

	res, err := c.questionService.ListQuestions(ctx.Context(), subProjectId, unansweredOnly)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list questions", res))
}

func (c *questionController) listBulletins(ctx *fiber.Ctx) error {
	subProjectId, err := uuid.Parse(ctx.Query("subProjectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "subProjectId query is required")
	}

	res, err := c.questionService.ListBulletins(ctx.Context(), subProjectId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list bulletins", res))
}

func (c *questionController) postBulletin(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.PostBulletinRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.questionService.PostBulletin(ctx.Context(), identity, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success post bulletin", res))
}

func (c *questionController) answer(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AnswerQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.questionService.Answer(ctx.Context(), id, identity, &req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *questionController) delete(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.questionService.Delete(ctx.Context(), id); err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete question", nil))
}
