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

// ElevatorHandler xử lý các request liên quan đến thang máy
type ElevatorHandler struct {
	*basehdl.BaseHandler
	ElevatorService *editorsvc.ElevatorService
}

// NewElevatorHandler tạo mới ElevatorHandler
func NewElevatorHandler() (*ElevatorHandler, error) {
	elevatorService, err := editorsvc.NewElevatorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create elevator service: %v", err)
	}
	return &ElevatorHandler{
		BaseHandler:     basehdl.NewBaseHandler(),
		ElevatorService: elevatorService,
	}, nil
}

// Create tạo mới một thang máy
func (h *ElevatorHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input editordto.ElevatorCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		planID, err := primitive.ObjectIDFromHex(input.FloorPlan)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		elevator := models.MapEditorElevator{
			FloorPlan:        planID,
			Name:             strings.TrimSpace(input.Name),
			Description:      input.Description,
			Coordinates:      models.Point{X: input.Coordinates.X, Y: input.Coordinates.Y},
			ConnectsToFloors: input.ConnectsToFloors,
			IsActive:         true,
		}
		data, err := h.ElevatorService.Create(c.Context(), &elevator, actorID)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách thang máy có phân trang
func (h *ElevatorHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		data, err := h.ElevatorService.List(c.Context(), parseEditorListQuery(c), page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một thang máy theo ID
func (h *ElevatorHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.ElevatorService.GetById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một thang máy
func (h *ElevatorHandler) Update(c fiber.Ctx) error {
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
		var input editordto.ElevatorUpdateInput
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
			patch["coordinates"] = models.Point{X: input.Coordinates.X, Y: input.Coordinates.Y}
		}
		if input.ConnectsToFloors != nil {
			patch["connectsToFloors"] = input.ConnectsToFloors
		}
		if input.IsActive != nil {
			patch["isActive"] = *input.IsActive
		}

		data, err := h.ElevatorService.Update(c.Context(), id, patch, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một thang máy
func (h *ElevatorHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.ElevatorService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}

// DeleteByFloorPlan xóa toàn bộ thang máy của một sơ đồ tầng
func (h *ElevatorHandler) DeleteByFloorPlan(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, err := requiredFloorPlanID(c.Query("floorPlan"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		deleted, err := h.ElevatorService.DeleteByFloorPlan(c.Context(), planID)
		h.HandleResponseWithMessage(c, "Đã xóa các thang máy của sơ đồ tầng", fiber.Map{"deletedCount": deleted}, err)
		return nil
	})
}
