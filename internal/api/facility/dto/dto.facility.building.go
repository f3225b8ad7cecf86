// Package facilitydto - các DTO cho domain facility.
package facilitydto

// BuildingCreateInput đầu vào khi tạo tòa nhà.
type BuildingCreateInput struct {
	Organization string `json:"organization" validate:"required,objectid"`
	Name         string `json:"name" validate:"required,no_xss"`
	Code         string `json:"code,omitempty" validate:"omitempty,no_xss"`
	Address      string `json:"address,omitempty" validate:"omitempty,no_xss"`
}

// BuildingUpdateInput đầu vào khi cập nhật tòa nhà.
type BuildingUpdateInput struct {
	Name    string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Code    string `json:"code,omitempty" validate:"omitempty,no_xss"`
	Address string `json:"address,omitempty" validate:"omitempty,no_xss"`
}
