package plandto

// SettingsUpdateInput đầu vào khi cập nhật cấu hình map manager của tổ chức.
type SettingsUpdateInput struct {
	GridSize              *int    `json:"gridSize,omitempty"`
	GridUnit              *string `json:"gridUnit,omitempty"`
	SnapToGrid            *bool   `json:"snapToGrid,omitempty"`
	ShowGrid              *bool   `json:"showGrid,omitempty"`
	DefaultZoom           *int    `json:"defaultZoom,omitempty"`
	AutoPublish           *bool   `json:"autoPublish,omitempty"`
	VersionControlEnabled *bool   `json:"versionControlEnabled,omitempty"`
}
