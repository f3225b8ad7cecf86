package facilityhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	facilitydto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/dto"
	facilitysvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/service"
)

// FloorHandler xử lý các request liên quan đến MapFloor
type FloorHandler struct {
	*basehdl.BaseHandler
	FloorService *facilitysvc.FloorService
}

// NewFloorHandler tạo mới FloorHandler
func NewFloorHandler() (*FloorHandler, error) {
	floorService, err := facilitysvc.NewFloorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create floor service: %v", err)
	}
	return &FloorHandler{
		BaseHandler:  basehdl.NewBaseHandler(),
		FloorService: floorService,
	}, nil
}

// Create tạo mới một tầng
func (h *FloorHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input facilitydto.FloorCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorService.Create(c.Context(), &input)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách tầng có phân trang
func (h *FloorHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		query := facilitysvc.FloorListQuery{
			Organization: c.Query("organization"),
			Building:     c.Query("building"),
			Search:       c.Query("search"),
		}
		if isActiveStr := c.Query("isActive"); isActiveStr != "" {
			if isActive, err := strconv.ParseBool(isActiveStr); err == nil {
				query.IsActive = &isActive
			}
		}
		data, err := h.FloorService.List(c.Context(), query, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một tầng theo ID
func (h *FloorHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một tầng
func (h *FloorHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input facilitydto.FloorUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorService.Update(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một tầng (bị chặn khi còn sơ đồ tầng tham chiếu)
func (h *FloorHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.FloorService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}
