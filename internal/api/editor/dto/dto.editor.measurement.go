package editordto

// MeasurementCreateInput đầu vào khi tạo phép đo
type MeasurementCreateInput struct {
	FloorPlan string       `json:"floorPlan" validate:"required,objectid"`
	Name      string       `json:"name" validate:"required,no_xss"`
	Label     string       `json:"label,omitempty" validate:"omitempty,no_xss"`
	Points    []PointInput `json:"points" validate:"required,min=2"`
	Distance  float64      `json:"distance"`
	Unit      string       `json:"unit,omitempty"`
}

// MeasurementUpdateInput đầu vào khi cập nhật phép đo
type MeasurementUpdateInput struct {
	Name     *string      `json:"name,omitempty" validate:"omitempty,no_xss"`
	Label    *string      `json:"label,omitempty" validate:"omitempty,no_xss"`
	Points   []PointInput `json:"points,omitempty"`
	Distance *float64     `json:"distance,omitempty"`
	Unit     *string      `json:"unit,omitempty"`
	IsActive *bool        `json:"isActive,omitempty"`
}
