package planhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	plandto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/dto"
	plansvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/service"
)

// LayerHandler xử lý các request liên quan đến MapLayer
type LayerHandler struct {
	*basehdl.BaseHandler
	LayerService *plansvc.LayerService
}

// NewLayerHandler tạo mới LayerHandler
func NewLayerHandler() (*LayerHandler, error) {
	layerService, err := plansvc.NewLayerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create layer service: %v", err)
	}
	return &LayerHandler{
		BaseHandler:  basehdl.NewBaseHandler(),
		LayerService: layerService,
	}, nil
}

// Create tạo mới một layer
func (h *LayerHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input plandto.LayerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.LayerService.Create(c.Context(), &input)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách layer có phân trang
func (h *LayerHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		query := plansvc.LayerListQuery{
			FloorPlanVersion: c.Query("floorPlanVersion"),
			Type:             c.Query("type"),
			Search:           c.Query("search"),
		}
		data, err := h.LayerService.List(c.Context(), query, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một layer theo ID
func (h *LayerHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.LayerService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một layer
func (h *LayerHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input plandto.LayerUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.LayerService.Update(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một layer (bị chặn khi còn phần tử trực thuộc)
func (h *LayerHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.LayerService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}
