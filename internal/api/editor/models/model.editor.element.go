package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ElementStatus các trạng thái của một phần tử trên sơ đồ
const (
	ElementStatusDraft    = "Draft"
	ElementStatusActive   = "Active"
	ElementStatusHidden   = "Hidden"
	ElementStatusArchived = "Archived"
)

// MapElement là phần tử tổng quát vẽ trên một phiên bản sơ đồ tầng.
// Nếu gán vào layer thì layer phải thuộc cùng phiên bản với phần tử.
type MapElement struct {
	ID               primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	FloorPlanVersion primitive.ObjectID     `json:"floorPlanVersion" bson:"floorPlanVersion" index:"single:1"`
	Layer            *primitive.ObjectID    `json:"layer,omitempty" bson:"layer,omitempty" index:"single:1,sparse"`
	Name             string                 `json:"name" bson:"name"`
	Type             string                 `json:"type" bson:"type" index:"single:1"`
	Status           string                 `json:"status" bson:"status" index:"single:1" default:"Draft"`
	Geometry         map[string]interface{} `json:"geometry" bson:"geometry"`
	CanvasGeometry   map[string]interface{} `json:"canvasGeometry,omitempty" bson:"canvasGeometry,omitempty"`
	Properties       map[string]interface{} `json:"properties,omitempty" bson:"properties,omitempty"`
	Tags             []string               `json:"tags" bson:"tags"`
	CreatedBy        *primitive.ObjectID    `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy        *primitive.ObjectID    `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt        int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64                  `json:"updatedAt" bson:"updatedAt"`
}
