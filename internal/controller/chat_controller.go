package controller

import (
	"project-collab-be/internal/pkg/serverutils"
	"project-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IChatController serves the REST side of chat: history and unread counts.
// Live messaging happens over the websocket gateway.
type IChatController interface {
	RegisterRoutes(r fiber.Router)
}

type chatController struct {
	chatService service.IChatService
	authGuard   fiber.Handler
}

func NewChatController(chatService service.IChatService, authGuard fiber.Handler) IChatController {
	return &chatController{
		chatService: chatService,
		authGuard:   authGuard,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(c.authGuard)

	h.Get("history/:otherId", c.history)
	h.Get("unread/:otherId", c.unread)
}

func (c *chatController) history(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	otherId, err := parseUUIDParam(ctx, "otherId")
	if err != nil {
		return err
	}

	res, err := c.chatService.History(ctx.Context(), identity.UserID, otherId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success conversation history", res))
}

func (c *chatController) unread(ctx *fiber.Ctx) error {
	identity, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}
	otherId, err := parseUUIDParam(ctx, "otherId")
	if err != nil {
		return err
	}

	res, err := c.chatService.UnreadCount(ctx.Context(), identity.UserID, otherId)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success unread count", res))
}
