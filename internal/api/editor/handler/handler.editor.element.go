package editorhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	editordto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/dto"
	editorsvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/service"
)

// ElementHandler xử lý các request liên quan đến map element tổng quát
type ElementHandler struct {
	*basehdl.BaseHandler
	ElementService *editorsvc.MapElementService
}

// NewElementHandler tạo mới ElementHandler
func NewElementHandler() (*ElementHandler, error) {
	elementService, err := editorsvc.NewMapElementService()
	if err != nil {
		return nil, fmt.Errorf("failed to create map element service: %v", err)
	}
	return &ElementHandler{
		BaseHandler:    basehdl.NewBaseHandler(),
		ElementService: elementService,
	}, nil
}

// Create tạo mới một map element
func (h *ElementHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input editordto.ElementCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.ElementService.Create(c.Context(), &input, actorID)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách map element có phân trang
func (h *ElementHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		query := editorsvc.ElementListQuery{
			FloorPlanVersion: c.Query("floorPlanVersion"),
			Layer:            c.Query("layer"),
			Type:             c.Query("type"),
			Status:           c.Query("status"),
			Search:           c.Query("search"),
		}
		data, err := h.ElementService.List(c.Context(), query, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một map element theo ID
func (h *ElementHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.ElementService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một map element
func (h *ElementHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input editordto.ElementUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.ElementService.Update(c.Context(), id, &input, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một map element
func (h *ElementHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.ElementService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}
