package editordto

// POICreateInput đầu vào khi tạo POI
type POICreateInput struct {
	FloorPlan   string     `json:"floorPlan" validate:"required,objectid"`
	Name        string     `json:"name" validate:"required,no_xss"`
	Category    string     `json:"category" validate:"required,no_xss"`
	Description string     `json:"description,omitempty" validate:"omitempty,no_xss"`
	Coordinates PointInput `json:"coordinates"`
}

// POIUpdateInput đầu vào khi cập nhật POI.
// Field nil giữ nguyên; description gửi chuỗi rỗng sẽ bị xóa khỏi document.
type POIUpdateInput struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,no_xss"`
	Category    *string     `json:"category,omitempty" validate:"omitempty,no_xss"`
	Description *string     `json:"description,omitempty" validate:"omitempty,no_xss"`
	Coordinates *PointInput `json:"coordinates,omitempty"`
	IsActive    *bool       `json:"isActive,omitempty"`
}
