package tenanthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	tenantdto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/tenant/dto"
	tenantsvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/tenant/service"
)

// VenueTemplateHandler xử lý các request liên quan đến VenueTemplate
type VenueTemplateHandler struct {
	*basehdl.BaseHandler
	VenueTemplateService *tenantsvc.VenueTemplateService
}

// NewVenueTemplateHandler tạo mới VenueTemplateHandler
func NewVenueTemplateHandler() (*VenueTemplateHandler, error) {
	templateService, err := tenantsvc.NewVenueTemplateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create venue template service: %v", err)
	}
	return &VenueTemplateHandler{
		BaseHandler:          basehdl.NewBaseHandler(),
		VenueTemplateService: templateService,
	}, nil
}

// Create tạo mới một venue template
func (h *VenueTemplateHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input tenantdto.VenueTemplateCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.VenueTemplateService.Create(c.Context(), &input)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách venue template có phân trang
func (h *VenueTemplateHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		data, err := h.VenueTemplateService.List(c.Context(), c.Query("search"), page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một venue template theo ID
func (h *VenueTemplateHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.VenueTemplateService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một venue template
func (h *VenueTemplateHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input tenantdto.VenueTemplateUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.VenueTemplateService.Update(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete xóa một venue template (bị chặn khi còn tổ chức tham chiếu)
func (h *VenueTemplateHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.VenueTemplateService.Delete(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}
