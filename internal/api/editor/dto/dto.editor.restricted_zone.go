package editordto

// RestrictedZoneCreateInput đầu vào khi tạo vùng hạn chế
type RestrictedZoneCreateInput struct {
	FloorPlan   string    `json:"floorPlan" validate:"required,objectid"`
	Name        string    `json:"name" validate:"required,no_xss"`
	Description string    `json:"description,omitempty" validate:"omitempty,no_xss"`
	Coordinates RectInput `json:"coordinates"`
}

// RestrictedZoneUpdateInput đầu vào khi cập nhật vùng hạn chế
type RestrictedZoneUpdateInput struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description *string    `json:"description,omitempty" validate:"omitempty,no_xss"`
	Coordinates *RectInput `json:"coordinates,omitempty"`
	IsActive    *bool      `json:"isActive,omitempty"`
}
