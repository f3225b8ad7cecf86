package facilitydto

// FloorCreateInput đầu vào khi tạo tầng.
type FloorCreateInput struct {
	Organization string `json:"organization" validate:"required,objectid"`
	Building     string `json:"building" validate:"required,objectid"`
	Name         string `json:"name" validate:"required,no_xss"`
	Level        *int   `json:"level" validate:"required"`
	Sequence     int    `json:"sequence,omitempty"`
	IsDefault    bool   `json:"isDefault,omitempty"`
}

// FloorUpdateInput đầu vào khi cập nhật tầng.
type FloorUpdateInput struct {
	Name      string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Level     *int   `json:"level,omitempty"`
	Sequence  *int   `json:"sequence,omitempty"`
	IsDefault *bool  `json:"isDefault,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
}
