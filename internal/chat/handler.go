package chat

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Handler mounts the websocket endpoint. Authentication happens inside the
// gateway handshake, not here, so the upgrade itself is open.
type Handler struct {
	gateway *Gateway
}

func NewHandler(gateway *Gateway) *Handler {
	return &Handler{gateway: gateway}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	ws := router.Group("/ws")

	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	ws.Get("/chat", websocket.New(func(conn *websocket.Conn) {
		h.gateway.HandleConnection(conn)
	}))
}
