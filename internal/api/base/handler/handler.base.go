// Package basehdl cung cấp phần nền cho các Fiber handler:
// parse/validate request, phân trang, chuẩn hóa response.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
)

// BaseHandler là base handler cho các Fiber handler.
// Domain handler embed struct này để dùng chung phần parse request và response.
type BaseHandler struct{}

// NewBaseHandler tạo mới một BaseHandler
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	// Validate với validator từ global (struct tag: validate, oneof, objectid, ...)
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// GetIDParam lấy và validate ObjectID từ URI params.
// paramName mặc định là "id" nếu truyền chuỗi rỗng.
func (h *BaseHandler) GetIDParam(c fiber.Ctx, paramName string) (primitive.ObjectID, error) {
	if paramName == "" {
		paramName = "id"
	}
	id := c.Params(paramName)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return objID, nil
}

// ParsePagination lấy page và limit từ query string.
// page mặc định 1, limit mặc định 10 và bị chặn trên bởi cấu hình PaginationMaxLimit.
func (h *BaseHandler) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	if global.ServerConfig != nil && global.ServerConfig.PaginationMaxLimit > 0 {
		maxLimit := int64(global.ServerConfig.PaginationMaxLimit)
		if limit > maxLimit {
			limit = maxLimit
		}
	}

	return page, limit
}

// GetActorID lấy định danh người thao tác từ context (được gán bởi actor middleware).
// Trả về lỗi 401 nếu request chưa có actor.
func (h *BaseHandler) GetActorID(c fiber.Ctx) (primitive.ObjectID, error) {
	actorStr, ok := c.Locals("actor_id").(string)
	if !ok || actorStr == "" {
		return primitive.NilObjectID, common.ErrActorMissing
	}
	actorID, err := primitive.ObjectIDFromHex(actorStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrActorInvalid
	}
	return actorID, nil
}
