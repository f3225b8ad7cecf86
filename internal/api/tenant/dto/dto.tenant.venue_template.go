package tenantdto

// VenueTemplateCreateInput đầu vào khi tạo venue template.
type VenueTemplateCreateInput struct {
	Name                 string   `json:"name" validate:"required,no_xss"`
	Description          string   `json:"description,omitempty" validate:"omitempty,no_xss"`
	IncludedFeatures     []string `json:"includedFeatures,omitempty"`
	DefaultPOICategories []string `json:"defaultPOICategories,omitempty"`
}

// VenueTemplateUpdateInput đầu vào khi cập nhật venue template.
type VenueTemplateUpdateInput struct {
	Name                 string   `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description          string   `json:"description,omitempty" validate:"omitempty,no_xss"`
	IncludedFeatures     []string `json:"includedFeatures,omitempty"`
	DefaultPOICategories []string `json:"defaultPOICategories,omitempty"`
}
