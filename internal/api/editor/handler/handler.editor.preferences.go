package editorhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/handler"
	editordto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/dto"
	editorsvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/service"
)

// PreferencesHandler xử lý các request liên quan đến tuỳ chọn editor theo người dùng
type PreferencesHandler struct {
	*basehdl.BaseHandler
	PreferencesService *editorsvc.PreferencesService
}

// NewPreferencesHandler tạo mới PreferencesHandler
func NewPreferencesHandler() (*PreferencesHandler, error) {
	preferencesService, err := editorsvc.NewPreferencesService()
	if err != nil {
		return nil, fmt.Errorf("failed to create preferences service: %v", err)
	}
	return &PreferencesHandler{
		BaseHandler:        basehdl.NewBaseHandler(),
		PreferencesService: preferencesService,
	}, nil
}

// Get trả về tuỳ chọn của người dùng hiện tại, tạo mới với mặc định nếu chưa có
func (h *PreferencesHandler) Get(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.PreferencesService.GetOrCreate(c.Context(), actorID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Update cập nhật tuỳ chọn của người dùng hiện tại
func (h *PreferencesHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input editordto.PreferencesUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.PreferencesService.Update(c.Context(), actorID, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Reset đưa tuỳ chọn của người dùng hiện tại về mặc định
func (h *PreferencesHandler) Reset(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		actorID, err := h.GetActorID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.PreferencesService.Reset(c.Context(), actorID)
		h.HandleResponseWithMessage(c, "Đã khôi phục tuỳ chọn mặc định", data, err)
		return nil
	})
}
