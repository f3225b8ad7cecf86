// Package tenanthdl - handler cho domain tenant.
package tenanthdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	tenantdto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/tenant/dto"
	tenantsvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/tenant/service"
)

// OrganizationHandler xử lý các request liên quan đến Organization
type OrganizationHandler struct {
	*basehdl.BaseHandler
	OrganizationService *tenantsvc.OrganizationService
}

// NewOrganizationHandler tạo mới OrganizationHandler
func NewOrganizationHandler() (*OrganizationHandler, error) {
	organizationService, err := tenantsvc.NewOrganizationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create organization service: %v", err)
	}
	return &OrganizationHandler{
		BaseHandler:         basehdl.NewBaseHandler(),
		OrganizationService: organizationService,
	}, nil
}

// Create tạo mới một tổ chức
func (h *OrganizationHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input tenantdto.OrganizationCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.OrganizationService.Create(c.Context(), &input)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// List trả về danh sách tổ chức có phân trang
func (h *OrganizationHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		query := tenantsvc.OrganizationListQuery{
			Type:   c.Query("type"),
			Search: c.Query("search"),
		}
		if isActiveStr := c.Query("isActive"); isActiveStr != "" {
			if isActive, err := strconv.ParseBool(isActiveStr); err == nil {
				query.IsActive = &isActive
			}
		}
		data, err := h.OrganizationService.List(c.Context(), query, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// GetById trả về một tổ chức theo ID
func (h *OrganizationHandler) GetById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.OrganizationService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật một tổ chức
func (h *OrganizationHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input tenantdto.OrganizationUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.OrganizationService.Update(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Delete soft delete một tổ chức (isActive=false)
func (h *OrganizationHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		_, err = h.OrganizationService.Deactivate(c.Context(), id)
		h.HandleDeletedResponse(c, err)
		return nil
	})
}
