package editorhdl

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	editordto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	editorsvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/service"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

// EntranceHandler xử lý các request liên quan đến lối vào
type EntranceHandler struct {
	*basehdl.BaseHandler
	EntranceService *editorsvc.EntranceService
}

// NewEntranceHandler tạo mới EntranceHandler
func NewEntranceHandler() (*EntranceHandler, error) {
	entranceService, err := editorsvc.NewEntranceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create entrance service: %v", err)
	}
	return &EntranceHandler{
		BaseHandler:     basehdl.NewBaseHandler(),
		EntranceService: entranceService,
	}, nil
}

// Create tạo mới một lối vào
func (h *EntranceHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input editordto.EntranceCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		planID, err := primitive.ObjectIDFromHex(input.FloorPlan)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		entrance := models.MapEditorEntrance{
			FloorPlan:   planID,
			Name:        strings.TrimSpace(input.Name),
			Type:        input.Type,
			Description: input.Description,
			Coordinates: models.Point{X: input.Coordinates.X, Y: input.Coordinates.Y},
			IsActive:    true,
		}
		data, err := h.EntranceService.Create(c.Context(), &entrance, actorID)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách lối vào có phân trang
func (h *EntranceHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		data, err := h.EntranceService.List(c.Context(), parseEditorListQuery(c), page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một lối vào theo ID
func (h *EntranceHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.EntranceService.GetById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một lối vào
func (h *EntranceHandler) Update(c fiber.Ctx) error {
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
		var input editordto.EntranceUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		patch := make(map[string]interface{})
		if input.Name != nil {
			patch["name"] = strings.TrimSpace(*input.Name)
		}
		if input.Type != nil {
			patch["type"] = *input.Type
		}
		if input.Description != nil {
			patch["description"] = *input.Description
		}
		if input.Coordinates != nil {
			patch["coordinates"] = models.Point{X: input.Coordinates.X, Y: input.Coordinates.Y}
		}
		if input.IsActive != nil {
			patch["isActive"] = *input.IsActive
		}

		data, err := h.EntranceService.Update(c.Context(), id, patch, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một lối vào
func (h *EntranceHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.EntranceService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}

// DeleteByFloorPlan xóa toàn bộ lối vào của một sơ đồ tầng
func (h *EntranceHandler) DeleteByFloorPlan(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, err := requiredFloorPlanID(c.Query("floorPlan"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		deleted, err := h.EntranceService.DeleteByFloorPlan(c.Context(), planID)
		h.HandleResponseWithMessage(c, "Đã xóa các lối vào của sơ đồ tầng", fiber.Map{"deletedCount": deleted}, err)
		return nil
	})
}
