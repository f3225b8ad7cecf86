// Package editorhdl - handler cho domain editor.
package editorhdl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	editordto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	editorsvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/service"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

// POIHandler xử lý các request liên quan đến POI
type POIHandler struct {
	*basehdl.BaseHandler
	POIService *editorsvc.POIService
}

// NewPOIHandler tạo mới POIHandler
func NewPOIHandler() (*POIHandler, error) {
	poiService, err := editorsvc.NewPOIService()
	if err != nil {
		return nil, fmt.Errorf("failed to create poi service: %v", err)
	}
	return &POIHandler{
		BaseHandler: basehdl.NewBaseHandler(),
		POIService:  poiService,
	}, nil
}

// parseEditorListQuery đọc các tham số lọc chung của danh sách editor
func parseEditorListQuery(c fiber.Ctx) editorsvc.EditorListQuery {
	query := editorsvc.EditorListQuery{
		FloorPlan: c.Query("floorPlan"),
		Category:  c.Query("category"),
		Type:      c.Query("type"),
		Search:    c.Query("search"),
	}
	if isActiveStr := c.Query("isActive"); isActiveStr != "" {
		if isActive, err := strconv.ParseBool(isActiveStr); err == nil {
			query.IsActive = &isActive
		}
	}
	if allStr := c.Query("all"); allStr != "" {
		if all, err := strconv.ParseBool(allStr); err == nil {
			query.All = all
		}
	}
	return query
}

// requiredFloorPlanID đọc tham số floorPlan bắt buộc của các thao tác xóa hàng loạt
func requiredFloorPlanID(value string) (primitive.ObjectID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số floorPlan", common.StatusBadRequest, nil)
	}
	planID, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidFormat
	}
	return planID, nil
}

// Create tạo mới một POI
func (h *POIHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input editordto.POICreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		planID, err := primitive.ObjectIDFromHex(input.FloorPlan)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		poi := models.MapEditorPOI{
			FloorPlan:   planID,
			Name:        strings.TrimSpace(input.Name),
			Category:    input.Category,
			Description: input.Description,
			Coordinates: models.Point{X: input.Coordinates.X, Y: input.Coordinates.Y},
			IsActive:    true,
		}
		data, err := h.POIService.Create(c.Context(), &poi, actorID)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách POI có phân trang
func (h *POIHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		data, err := h.POIService.List(c.Context(), parseEditorListQuery(c), page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một POI theo ID
func (h *POIHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.POIService.GetById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một POI
func (h *POIHandler) Update(c fiber.Ctx) error {
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
		var input editordto.POIUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		patch := make(map[string]interface{})
		if input.Name != nil {
			patch["name"] = strings.TrimSpace(*input.Name)
		}
		if input.Category != nil {
			patch["category"] = *input.Category
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

		data, err := h.POIService.Update(c.Context(), id, patch, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một POI
func (h *POIHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.POIService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}

// DeleteByFloorPlan xóa toàn bộ POI của một sơ đồ tầng
func (h *POIHandler) DeleteByFloorPlan(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, err := requiredFloorPlanID(c.Query("floorPlan"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		deleted, err := h.POIService.DeleteByFloorPlan(c.Context(), planID)
		h.HandleResponseWithMessage(c, "Đã xóa các POI của sơ đồ tầng", fiber.Map{"deletedCount": deleted}, err)
		return nil
	})
}
