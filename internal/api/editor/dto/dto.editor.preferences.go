package editordto

// PreferencesUpdateInput đầu vào khi cập nhật tuỳ chọn editor.
// layerVisibility và properties được merge nông vào giá trị hiện có.
type PreferencesUpdateInput struct {
	LayerVisibility map[string]bool        `json:"layerVisibility,omitempty"`
	GridSize        *int                   `json:"gridSize,omitempty"`
	Properties      map[string]interface{} `json:"properties,omitempty"`
}
