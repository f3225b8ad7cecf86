package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapManagerSettings cấu hình map manager, mỗi tổ chức một document.
// Các giá trị ở đây được copy vào FloorPlan.Settings khi tạo sơ đồ mới.
type MapManagerSettings struct {
	ID                    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Organization          primitive.ObjectID `json:"organization" bson:"organization" index:"unique"`
	GridSize              int                `json:"gridSize" bson:"gridSize" default:"10"`
	GridUnit              string             `json:"gridUnit" bson:"gridUnit" default:"meters"`
	SnapToGrid            bool               `json:"snapToGrid" bson:"snapToGrid" default:"true"`
	ShowGrid              bool               `json:"showGrid" bson:"showGrid" default:"true"`
	DefaultZoom           int                `json:"defaultZoom" bson:"defaultZoom" default:"100"`
	AutoPublish           bool               `json:"autoPublish" bson:"autoPublish"`
	VersionControlEnabled bool               `json:"versionControlEnabled" bson:"versionControlEnabled" default:"true"`
	CreatedAt             int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt             int64              `json:"updatedAt" bson:"updatedAt"`
}

// DefaultPlanSettings trả về PlanSettings dẫn xuất từ settings của tổ chức
func (s *MapManagerSettings) DefaultPlanSettings() PlanSettings {
	return PlanSettings{
		GridSize:              s.GridSize,
		GridUnit:              s.GridUnit,
		SnapToGrid:            s.SnapToGrid,
		ShowGrid:              s.ShowGrid,
		DefaultZoom:           s.DefaultZoom,
		AutoPublish:           s.AutoPublish,
		VersionControlEnabled: s.VersionControlEnabled,
	}
}
