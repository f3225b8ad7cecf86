package editordto

// ElevatorCreateInput đầu vào khi tạo thang máy
type ElevatorCreateInput struct {
	FloorPlan        string     `json:"floorPlan" validate:"required,objectid"`
	Name             string     `json:"name" validate:"required,no_xss"`
	Description      string     `json:"description,omitempty" validate:"omitempty,no_xss"`
	Coordinates      PointInput `json:"coordinates"`
	ConnectsToFloors []string   `json:"connectsToFloors" validate:"required,min=1"`
}

// ElevatorUpdateInput đầu vào khi cập nhật thang máy
type ElevatorUpdateInput struct {
	Name             *string     `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description      *string     `json:"description,omitempty" validate:"omitempty,no_xss"`
	Coordinates      *PointInput `json:"coordinates,omitempty"`
	ConnectsToFloors []string    `json:"connectsToFloors,omitempty"`
	IsActive         *bool       `json:"isActive,omitempty"`
}
