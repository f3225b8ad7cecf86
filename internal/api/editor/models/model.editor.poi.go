package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// MapEditorPOI điểm quan tâm (point of interest) vẽ trên một sơ đồ tầng
type MapEditorPOI struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	FloorPlan     primitive.ObjectID  `json:"floorPlan" bson:"floorPlan" index:"single:1"`
	FloorPlanInfo *FloorPlanSummary   `json:"floorPlanInfo,omitempty" bson:"-"`
	Name          string              `json:"name" bson:"name"`
	Category      string              `json:"category" bson:"category" index:"single:1"`
	Description   string              `json:"description,omitempty" bson:"description,omitempty"`
	Coordinates   Point               `json:"coordinates" bson:"coordinates"`
	IsActive      bool                `json:"isActive" bson:"isActive" default:"true"`
	CreatedBy     *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy     *primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}

func (m *MapEditorPOI) GetID() primitive.ObjectID          { return m.ID }
func (m *MapEditorPOI) GetFloorPlan() primitive.ObjectID   { return m.FloorPlan }
func (m *MapEditorPOI) SetFloorPlanSummary(s *FloorPlanSummary) { m.FloorPlanInfo = s }

func (m *MapEditorPOI) StampCreated(actor primitive.ObjectID) {
	m.CreatedBy = &actor
	m.UpdatedBy = &actor
	m.CreatedAt = time.Now().UnixMilli()
}

func (m *MapEditorPOI) StampUpdated(actor primitive.ObjectID) {
	m.UpdatedBy = &actor
}
