package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LayerType các loại layer
const (
	LayerTypePOI         = "poi"
	LayerTypePath        = "path"
	LayerTypeZone        = "zone"
	LayerTypeLabel       = "label"
	LayerTypeAnnotation  = "annotation"
	LayerTypeInfra       = "infrastructure"
)

// ElementCounts cache số lượng phần tử theo trạng thái trong một layer
type ElementCounts struct {
	Total     int `json:"total" bson:"total"`
	Draft     int `json:"draft" bson:"draft"`
	Published int `json:"published" bson:"published"`
}

// MapLayer là một nhóm phần tử có thứ tự, thuộc một phiên bản sơ đồ tầng.
// Tên layer unique trong phạm vi một phiên bản. Xóa layer bị chặn khi còn phần tử.
type MapLayer struct {
	_Relationships   struct{}           `relationship:"collection:map_elements,field:layer,message:Không thể xóa layer vì có %d phần tử trực thuộc. Vui lòng xóa hoặc di chuyển các phần tử trước."`
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FloorPlanVersion primitive.ObjectID `json:"floorPlanVersion" bson:"floorPlanVersion" index:"single:1;compound:layer_name_unique"`
	Name             string             `json:"name" bson:"name" index:"compound:layer_name_unique"`
	Type             string             `json:"type" bson:"type" index:"single:1"`
	Order            int                `json:"order" bson:"order"`
	ElementCounts    ElementCounts      `json:"elementCounts" bson:"elementCounts"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
