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

// RestrictedZoneHandler xử lý các request liên quan đến vùng hạn chế
type RestrictedZoneHandler struct {
	*basehdl.BaseHandler
	RestrictedZoneService *editorsvc.RestrictedZoneService
}

// NewRestrictedZoneHandler tạo mới RestrictedZoneHandler
func NewRestrictedZoneHandler() (*RestrictedZoneHandler, error) {
	zoneService, err := editorsvc.NewRestrictedZoneService()
	if err != nil {
		return nil, fmt.Errorf("failed to create restricted zone service: %v", err)
	}
	return &RestrictedZoneHandler{
		BaseHandler:           basehdl.NewBaseHandler(),
		RestrictedZoneService: zoneService,
	}, nil
}

// Create tạo mới một vùng hạn chế
func (h *RestrictedZoneHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input editordto.RestrictedZoneCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		planID, err := primitive.ObjectIDFromHex(input.FloorPlan)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		zone := models.MapEditorRestrictedZone{
			FloorPlan:   planID,
			Name:        strings.TrimSpace(input.Name),
			Description: input.Description,
			Coordinates: models.Rect{
				X:      input.Coordinates.X,
				Y:      input.Coordinates.Y,
				Width:  input.Coordinates.Width,
				Height: input.Coordinates.Height,
			},
			IsActive: true,
		}
		data, err := h.RestrictedZoneService.Create(c.Context(), &zone, actorID)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách vùng hạn chế có phân trang
func (h *RestrictedZoneHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		data, err := h.RestrictedZoneService.List(c.Context(), parseEditorListQuery(c), page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một vùng hạn chế theo ID
func (h *RestrictedZoneHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.RestrictedZoneService.GetById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một vùng hạn chế
func (h *RestrictedZoneHandler) Update(c fiber.Ctx) error {
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
		var input editordto.RestrictedZoneUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		patch := make(map[string]interface{})
		if input.Name != nil {
			patch["name"] = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			patch["description"] = *input.Description
		}
		if input.Coordinates != nil {
			patch["coordinates"] = models.Rect{
				X:      input.Coordinates.X,
				Y:      input.Coordinates.Y,
				Width:  input.Coordinates.Width,
				Height: input.Coordinates.Height,
			}
		}
		if input.IsActive != nil {
			patch["isActive"] = *input.IsActive
		}

		data, err := h.RestrictedZoneService.Update(c.Context(), id, patch, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một vùng hạn chế
func (h *RestrictedZoneHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.RestrictedZoneService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}

// DeleteByFloorPlan xóa toàn bộ vùng hạn chế của một sơ đồ tầng
func (h *RestrictedZoneHandler) DeleteByFloorPlan(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, err := requiredFloorPlanID(c.Query("floorPlan"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		deleted, err := h.RestrictedZoneService.DeleteByFloorPlan(c.Context(), planID)
		h.HandleResponseWithMessage(c, "Đã xóa các vùng hạn chế của sơ đồ tầng", fiber.Map{"deletedCount": deleted}, err)
		return nil
	})
}
