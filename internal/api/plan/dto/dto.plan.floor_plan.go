// Package plandto - các DTO cho domain plan.
package plandto

// FileMetaInput metadata file bản vẽ gửi kèm request.
type FileMetaInput struct {
	Name     string `json:"name" validate:"required"`
	URL      string `json:"url" validate:"required"`
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// FloorPlanCreateInput đầu vào khi tạo sơ đồ tầng.
type FloorPlanCreateInput struct {
	Organization string             `json:"organization" validate:"required,objectid"`
	Building     string             `json:"building" validate:"required,objectid"`
	Floor        string             `json:"floor" validate:"required,objectid"`
	Name         string             `json:"name" validate:"required,no_xss"`
	Status       string             `json:"status,omitempty" validate:"omitempty,oneof=Draft New Building Published Archived"`
	File         *FileMetaInput     `json:"file,omitempty"`
	Tags         []string           `json:"tags,omitempty"`
	Settings     *PlanSettingsInput `json:"settings,omitempty"`
}

// FloorPlanUpdateInput đầu vào khi cập nhật sơ đồ tầng.
type FloorPlanUpdateInput struct {
	Building string             `json:"building,omitempty" validate:"omitempty,objectid"`
	Floor    string             `json:"floor,omitempty" validate:"omitempty,objectid"`
	Name     string             `json:"name,omitempty" validate:"omitempty,no_xss"`
	Status   string             `json:"status,omitempty" validate:"omitempty,oneof=Draft New Building Published Archived"`
	File     *FileMetaInput     `json:"file,omitempty"`
	Preview  string             `json:"preview,omitempty"`
	Tags     []string           `json:"tags,omitempty"`
	Settings *PlanSettingsInput `json:"settings,omitempty"`
	IsLocked *bool              `json:"isLocked,omitempty"`
}

// PlanSettingsInput override cấu hình canvas khi tạo/cập nhật sơ đồ.
// Field nil giữ giá trị mặc định từ MapManagerSettings của tổ chức.
type PlanSettingsInput struct {
	GridSize              *int    `json:"gridSize,omitempty"`
	GridUnit              *string `json:"gridUnit,omitempty"`
	SnapToGrid            *bool   `json:"snapToGrid,omitempty"`
	ShowGrid              *bool   `json:"showGrid,omitempty"`
	DefaultZoom           *int    `json:"defaultZoom,omitempty"`
	AutoPublish           *bool   `json:"autoPublish,omitempty"`
	VersionControlEnabled *bool   `json:"versionControlEnabled,omitempty"`
}
