package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// MapEditorMeasurement phép đo khoảng cách giữa các điểm trên sơ đồ tầng
type MapEditorMeasurement struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	FloorPlan     primitive.ObjectID  `json:"floorPlan" bson:"floorPlan" index:"single:1"`
	FloorPlanInfo *FloorPlanSummary   `json:"floorPlanInfo,omitempty" bson:"-"`
	Name          string              `json:"name" bson:"name"`
	Label         string              `json:"label,omitempty" bson:"label,omitempty"`
	Points        []Point             `json:"points" bson:"points"`
	Distance      float64             `json:"distance" bson:"distance"`
	Unit          string              `json:"unit" bson:"unit" default:"meters"`
	IsActive      bool                `json:"isActive" bson:"isActive" default:"true"`
	CreatedBy     *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy     *primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}

func (m *MapEditorMeasurement) GetID() primitive.ObjectID          { return m.ID }
func (m *MapEditorMeasurement) GetFloorPlan() primitive.ObjectID   { return m.FloorPlan }
func (m *MapEditorMeasurement) SetFloorPlanSummary(s *FloorPlanSummary) { m.FloorPlanInfo = s }

func (m *MapEditorMeasurement) StampCreated(actor primitive.ObjectID) {
	m.CreatedBy = &actor
	m.UpdatedBy = &actor
	m.CreatedAt = time.Now().UnixMilli()
}

func (m *MapEditorMeasurement) StampUpdated(actor primitive.ObjectID) {
	m.UpdatedBy = &actor
}
