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

// MeasurementHandler xử lý các request liên quan đến phép đo
type MeasurementHandler struct {
	*basehdl.BaseHandler
	MeasurementService *editorsvc.MeasurementService
}

// NewMeasurementHandler tạo mới MeasurementHandler
func NewMeasurementHandler() (*MeasurementHandler, error) {
	measurementService, err := editorsvc.NewMeasurementService()
	if err != nil {
		return nil, fmt.Errorf("failed to create measurement service: %v", err)
	}
	return &MeasurementHandler{
		BaseHandler:        basehdl.NewBaseHandler(),
		MeasurementService: measurementService,
	}, nil
}

func toPoints(inputs []editordto.PointInput) []models.Point {
	points := make([]models.Point, 0, len(inputs))
	for _, p := range inputs {
		points = append(points, models.Point{X: p.X, Y: p.Y})
	}
	return points
}

// Create tạo mới một phép đo
func (h *MeasurementHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input editordto.MeasurementCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		planID, err := primitive.ObjectIDFromHex(input.FloorPlan)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		measurement := models.MapEditorMeasurement{
			FloorPlan: planID,
			Name:      strings.TrimSpace(input.Name),
			Label:     input.Label,
			Points:    toPoints(input.Points),
			Distance:  input.Distance,
			Unit:      input.Unit,
			IsActive:  true,
		}
		data, err := h.MeasurementService.Create(c.Context(), &measurement, actorID)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách phép đo có phân trang
func (h *MeasurementHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		data, err := h.MeasurementService.List(c.Context(), parseEditorListQuery(c), page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một phép đo theo ID
func (h *MeasurementHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.MeasurementService.GetById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một phép đo
func (h *MeasurementHandler) Update(c fiber.Ctx) error {
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
		var input editordto.MeasurementUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		patch := make(map[string]interface{})
		if input.Name != nil {
			patch["name"] = strings.TrimSpace(*input.Name)
		}
		if input.Label != nil {
			patch["label"] = *input.Label
		}
		if input.Points != nil {
			patch["points"] = toPoints(input.Points)
		}
		if input.Distance != nil {
			patch["distance"] = *input.Distance
		}
		if input.Unit != nil {
			patch["unit"] = *input.Unit
		}
		if input.IsActive != nil {
			patch["isActive"] = *input.IsActive
		}

		data, err := h.MeasurementService.Update(c.Context(), id, patch, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một phép đo
func (h *MeasurementHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.MeasurementService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}

// DeleteByFloorPlan xóa toàn bộ phép đo của một sơ đồ tầng
func (h *MeasurementHandler) DeleteByFloorPlan(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, err := requiredFloorPlanID(c.Query("floorPlan"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		deleted, err := h.MeasurementService.DeleteByFloorPlan(c.Context(), planID)
		h.HandleResponseWithMessage(c, "Đã xóa các phép đo của sơ đồ tầng", fiber.Map{"deletedCount": deleted}, err)
		return nil
	})
}
