// Package middleware chứa các middleware dùng chung cho API.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

// ActorContextMiddleware đọc định danh người thao tác từ header X-Actor-ID
// và lưu vào request context dưới key "actor_id".
// Header không có hoặc không hợp lệ thì bỏ qua, các route mutating sẽ
// tự kiểm tra qua RequireActorMiddleware.
func ActorContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		actorIDStr := c.Get("X-Actor-ID")
		if actorIDStr == "" {
			return c.Next()
		}
		if !primitive.IsValidObjectID(actorIDStr) {
			return c.Next()
		}
		c.Locals("actor_id", actorIDStr)
		return c.Next()
	}
}

// RequireActorMiddleware bắt buộc request phải có định danh người thao tác hợp lệ.
// Dùng cho các route ghi dữ liệu (create/update/delete/publish).
func RequireActorMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		actorIDStr := c.Get("X-Actor-ID")
		if actorIDStr == "" {
			return respondActorError(c, common.ErrActorMissing)
		}
		if !primitive.IsValidObjectID(actorIDStr) {
			return respondActorError(c, common.ErrActorInvalid)
		}
		c.Locals("actor_id", actorIDStr)
		return c.Next()
	}
}

func respondActorError(c fiber.Ctx, err error) error {
	appErr, ok := err.(*common.Error)
	if !ok {
		return basehdl.JSONResponse(c, common.StatusUnauthorized, fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	return basehdl.JSONResponse(c, appErr.StatusCode, fiber.Map{
		"success": false,
		"message": appErr.Message,
	})
}
