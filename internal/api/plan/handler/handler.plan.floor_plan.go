// Package planhdl - handler cho domain plan.
package planhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	plandto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/dto"
	plansvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/service"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

// FloorPlanHandler xử lý các request liên quan đến sơ đồ tầng và các phiên bản của nó
type FloorPlanHandler struct {
	*basehdl.BaseHandler
	FloorPlanService *plansvc.FloorPlanService
}

// NewFloorPlanHandler tạo mới FloorPlanHandler
func NewFloorPlanHandler() (*FloorPlanHandler, error) {
	floorPlanService, err := plansvc.NewFloorPlanService()
	if err != nil {
		return nil, fmt.Errorf("failed to create floor plan service: %v", err)
	}
	return &FloorPlanHandler{
		BaseHandler:      basehdl.NewBaseHandler(),
		FloorPlanService: floorPlanService,
	}, nil
}

// Create tạo mới một sơ đồ tầng kèm phiên bản đầu tiên
func (h *FloorPlanHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input plandto.FloorPlanCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorPlanService.Create(c.Context(), &input, actorID)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách sơ đồ tầng có phân trang
func (h *FloorPlanHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		query := plansvc.FloorPlanListQuery{
			Organization: c.Query("organization"),
			Building:     c.Query("building"),
			Floor:        c.Query("floor"),
			Status:       c.Query("status"),
			Search:       c.Query("search"),
			Tag:          c.Query("tag"),
		}
		data, err := h.FloorPlanService.List(c.Context(), query, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một sơ đồ tầng theo ID
func (h *FloorPlanHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorPlanService.GetById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một sơ đồ tầng
func (h *FloorPlanHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input plandto.FloorPlanUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorPlanService.Update(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Archive lưu trữ một sơ đồ tầng (thay cho xóa vật lý)
func (h *FloorPlanHandler) Archive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorPlanService.Archive(c.Context(), id)
		h.HandleResponseWithMessage(c, "Đã lưu trữ sơ đồ tầng", data, err)
		return nil
	})
}

// Publish publish phiên bản hiện tại của sơ đồ tầng
func (h *FloorPlanHandler) Publish(c fiber.Ctx) error {
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
		data, err := h.FloorPlanService.Publish(c.Context(), id, actorID)
		h.HandleResponseWithMessage(c, "Đã publish sơ đồ tầng", data, err)
		return nil
	})
}

// ListVersions trả về danh sách phiên bản của một sơ đồ tầng
func (h *FloorPlanHandler) ListVersions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := h.ParsePagination(c)
		data, err := h.FloorPlanService.Versions().ListByPlan(c.Context(), id, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// CreateVersion tạo phiên bản mới cho một sơ đồ tầng
func (h *FloorPlanHandler) CreateVersion(c fiber.Ctx) error {
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
		var input plandto.VersionCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorPlanService.Versions().Create(c.Context(), id, &input, actorID)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// UpdateVersion cập nhật nội dung một phiên bản chưa kết thúc
func (h *FloorPlanHandler) UpdateVersion(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		versionID, err := h.GetIDParam(c, "versionId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input plandto.VersionUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorPlanService.Versions().Update(c.Context(), planID, versionID, &input, actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateVersionStatus chuyển trạng thái một phiên bản theo máy trạng thái
func (h *FloorPlanHandler) UpdateVersionStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		planID, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		versionID, err := h.GetIDParam(c, "versionId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input plandto.VersionStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.FloorPlanService.Versions().UpdateStatus(c.Context(), planID, versionID, &input, actorID)
		h.HandleResponseWithMessage(c, common.MsgUpdated, data, err)
		return nil
	})
}
