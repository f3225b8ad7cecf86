package planhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	plandto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/dto"
	plansvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/service"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

// SettingsHandler xử lý các request liên quan đến cấu hình map manager của tổ chức
type SettingsHandler struct {
	*basehdl.BaseHandler
	SettingsService *plansvc.SettingsService
}

// NewSettingsHandler tạo mới SettingsHandler
func NewSettingsHandler() (*SettingsHandler, error) {
	settingsService, err := plansvc.NewSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %v", err)
	}
	return &SettingsHandler{
		BaseHandler:     basehdl.NewBaseHandler(),
		SettingsService: settingsService,
	}, nil
}

func (h *SettingsHandler) organizationFromQuery(c fiber.Ctx) (primitive.ObjectID, error) {
	organization := c.Query("organization")
	if organization == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu tham số organization",
			common.StatusBadRequest,
			nil,
		)
	}
	organizationID, err := primitive.ObjectIDFromHex(organization)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidFormat
	}
	return organizationID, nil
}

// Get trả về cấu hình của tổ chức, tạo mới với giá trị mặc định nếu chưa có
func (h *SettingsHandler) Get(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		organizationID, err := h.organizationFromQuery(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.SettingsService.GetOrCreateByOrganization(c.Context(), organizationID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật cấu hình của tổ chức
func (h *SettingsHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		organizationID, err := h.organizationFromQuery(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input plandto.SettingsUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.SettingsService.Update(c.Context(), organizationID, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}
