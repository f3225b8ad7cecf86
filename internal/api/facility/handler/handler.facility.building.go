// Package facilityhdl - handler cho domain facility.
package facilityhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	facilitydto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/dto"
	facilitysvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/service"
)

// BuildingHandler xử lý các request liên quan đến MapBuilding
type BuildingHandler struct {
	*basehdl.BaseHandler
	BuildingService *facilitysvc.BuildingService
}

// NewBuildingHandler tạo mới BuildingHandler
func NewBuildingHandler() (*BuildingHandler, error) {
	buildingService, err := facilitysvc.NewBuildingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create building service: %v", err)
	}
	return &BuildingHandler{
		BaseHandler:     basehdl.NewBaseHandler(),
		BuildingService: buildingService,
	}, nil
}

// Create tạo mới một tòa nhà
func (h *BuildingHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input facilitydto.BuildingCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.BuildingService.Create(c.Context(), &input)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách tòa nhà có phân trang
func (h *BuildingHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		query := facilitysvc.BuildingListQuery{
			Organization: c.Query("organization"),
			Search:       c.Query("search"),
		}
		data, err := h.BuildingService.List(c.Context(), query, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một tòa nhà theo ID
func (h *BuildingHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.BuildingService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một tòa nhà
func (h *BuildingHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input facilitydto.BuildingUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.BuildingService.Update(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một tòa nhà (bị chặn khi còn tầng hoặc sơ đồ tầng)
func (h *BuildingHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.BuildingService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}
