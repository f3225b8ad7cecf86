package plandto

// LayerCreateInput đầu vào khi tạo layer.
type LayerCreateInput struct {
	FloorPlanVersion string `json:"floorPlanVersion" validate:"required,objectid"`
	Name             string `json:"name" validate:"required,no_xss"`
	Type             string `json:"type" validate:"required,oneof=poi path zone label annotation infrastructure"`
	Order            int    `json:"order,omitempty"`
}

// LayerUpdateInput đầu vào khi cập nhật layer.
type LayerUpdateInput struct {
	Name  string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Type  string `json:"type,omitempty" validate:"omitempty,oneof=poi path zone label annotation infrastructure"`
	Order *int   `json:"order,omitempty"`
}
