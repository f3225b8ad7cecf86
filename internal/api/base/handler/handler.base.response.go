package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Thành công: {"success": true, "message": ..., "data": ...} với status 200.
// Lỗi: {"success": false, "message": ...} với status code từ error.
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	h.handleResponseWithStatus(c, common.StatusOK, common.MsgSuccess, data, err)
}

// HandleResponseWithMessage như HandleResponse nhưng cho phép tùy chỉnh message khi thành công
func (h *BaseHandler) HandleResponseWithMessage(c fiber.Ctx, message string, data interface{}, err error) {
	h.handleResponseWithStatus(c, common.StatusOK, message, data, err)
}

// HandleCreatedResponse trả về response 201 cho thao tác tạo mới
func (h *BaseHandler) HandleCreatedResponse(c fiber.Ctx, data interface{}, err error) {
	h.handleResponseWithStatus(c, common.StatusCreated, common.MsgCreated, data, err)
}

// HandleDeletedResponse trả về response 200 không kèm data cho thao tác xóa
func (h *BaseHandler) HandleDeletedResponse(c fiber.Ctx, err error) {
	h.handleResponseWithStatus(c, common.StatusOK, common.MsgDeleted, nil, err)
}

func (h *BaseHandler) handleResponseWithStatus(c fiber.Ctx, statusCode int, message string, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"success": false,
				"message": customErr.Message,
			})
			return
		}
		// Lỗi chưa được phân loại coi như lỗi hệ thống
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	JSONResponse(c, statusCode, body)
}
