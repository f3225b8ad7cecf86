// Package tenantdto - các DTO cho domain tenant.
package tenantdto

// OrganizationCreateInput đầu vào khi tạo tổ chức.
type OrganizationCreateInput struct {
	Type          string `json:"type" validate:"required,oneof=hospital airport mall campus other"`
	Name          string `json:"name" validate:"required,no_xss"`
	Email         string `json:"email" validate:"required,email"`
	VenueTemplate string `json:"venueTemplate,omitempty" validate:"omitempty,objectid"`
}

// OrganizationUpdateInput đầu vào khi cập nhật tổ chức.
// Chỉ các field khác zero được đưa vào $set (partial update).
type OrganizationUpdateInput struct {
	Type          string `json:"type,omitempty" validate:"omitempty,oneof=hospital airport mall campus other"`
	Name          string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	VenueTemplate string `json:"venueTemplate,omitempty" validate:"omitempty,objectid"`
	IsActive      *bool  `json:"isActive,omitempty"`
}
