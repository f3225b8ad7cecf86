package editordto

// EntranceCreateInput đầu vào khi tạo lối vào
type EntranceCreateInput struct {
	FloorPlan   string     `json:"floorPlan" validate:"required,objectid"`
	Name        string     `json:"name" validate:"required,no_xss"`
	Type        string     `json:"type" validate:"required,oneof=main secondary emergency service"`
	Description string     `json:"description,omitempty" validate:"omitempty,no_xss"`
	Coordinates PointInput `json:"coordinates"`
}

// EntranceUpdateInput đầu vào khi cập nhật lối vào
type EntranceUpdateInput struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,no_xss"`
	Type        *string     `json:"type,omitempty" validate:"omitempty,oneof=main secondary emergency service"`
	Description *string     `json:"description,omitempty" validate:"omitempty,no_xss"`
	Coordinates *PointInput `json:"coordinates,omitempty"`
	IsActive    *bool       `json:"isActive,omitempty"`
}
