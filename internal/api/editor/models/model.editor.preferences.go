package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapEditorPreferences tuỳ chọn editor theo từng người dùng, mỗi user một document
type MapEditorPreferences struct {
	ID              primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	User            primitive.ObjectID     `json:"user" bson:"user" index:"unique"`
	LayerVisibility map[string]bool        `json:"layerVisibility" bson:"layerVisibility"`
	GridSize        int                    `json:"gridSize" bson:"gridSize" default:"10"`
	Properties      map[string]interface{} `json:"properties,omitempty" bson:"properties,omitempty"`
	CreatedAt       int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64                  `json:"updatedAt" bson:"updatedAt"`
}

// DefaultLayerVisibility trả về trạng thái hiển thị layer mặc định của editor
func DefaultLayerVisibility() map[string]bool {
	return map[string]bool{
		"pois":            true,
		"entrances":       true,
		"elevators":       true,
		"measurements":    true,
		"restrictedZones": true,
		"none":            false,
	}
}
