package serverutils

import (
	"project-collab-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// JwtMiddleware guards REST routes using the shared token verifier.
// The decoded identity is stored in Locals under "identity" and the
// subject id under "user_id" for handlers that only need the id.
func JwtMiddleware(verifier token.Verifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}

		identity, err := verifier.Verify(authHeader[7:])
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		ctx.Locals("identity", identity)
		ctx.Locals("user_id", identity.UserID.String())
		return ctx.Next()
	}
}

// AdminOnly must run after JwtMiddleware.
func AdminOnly(ctx *fiber.Ctx) error {
	identity, ok := ctx.Locals("identity").(*token.Identity)
	if !ok || (identity.Role != "admin" && identity.Role != "superAdmin") {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin access required"})
	}
	return ctx.Next()
}

// CallerIdentity extracts the identity set by JwtMiddleware.
func CallerIdentity(ctx *fiber.Ctx) (*token.Identity, bool) {
	identity, ok := ctx.Locals("identity").(*token.Identity)
	return identity, ok
}
