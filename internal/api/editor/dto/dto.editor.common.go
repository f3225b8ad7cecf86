package editordto

// PointInput tọa độ một điểm trên canvas
type PointInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RectInput tọa độ và kích thước một vùng chữ nhật trên canvas
type RectInput struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
