// Package editordto - các DTO cho domain editor.
package editordto

// ElementCreateInput đầu vào khi tạo map element
type ElementCreateInput struct {
	FloorPlanVersion string                 `json:"floorPlanVersion" validate:"required,objectid"`
	Layer            string                 `json:"layer,omitempty" validate:"omitempty,objectid"`
	Name             string                 `json:"name" validate:"required,no_xss"`
	Type             string                 `json:"type" validate:"required"`
	Status           string                 `json:"status,omitempty" validate:"omitempty,oneof=Draft Active Hidden Archived"`
	Geometry         map[string]interface{} `json:"geometry" validate:"required"`
	CanvasGeometry   map[string]interface{} `json:"canvasGeometry,omitempty"`
	Properties       map[string]interface{} `json:"properties,omitempty"`
	Tags             []string               `json:"tags,omitempty"`
}

// ElementUpdateInput đầu vào khi cập nhật map element
type ElementUpdateInput struct {
	Layer          *string                `json:"layer,omitempty" validate:"omitempty,objectid"`
	Name           string                 `json:"name,omitempty" validate:"omitempty,no_xss"`
	Type           string                 `json:"type,omitempty"`
	Status         string                 `json:"status,omitempty" validate:"omitempty,oneof=Draft Active Hidden Archived"`
	Geometry       map[string]interface{} `json:"geometry,omitempty"`
	CanvasGeometry map[string]interface{} `json:"canvasGeometry,omitempty"`
	Properties     map[string]interface{} `json:"properties,omitempty"`
	Tags           []string               `json:"tags,omitempty"`
}
