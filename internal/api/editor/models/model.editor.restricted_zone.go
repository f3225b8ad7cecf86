package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// MapEditorRestrictedZone vùng hạn chế vẽ trên một sơ đồ tầng.
// Kích thước vùng (width/height) luôn dương.
type MapEditorRestrictedZone struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	FloorPlan     primitive.ObjectID  `json:"floorPlan" bson:"floorPlan" index:"single:1"`
	FloorPlanInfo *FloorPlanSummary   `json:"floorPlanInfo,omitempty" bson:"-"`
	Name          string              `json:"name" bson:"name"`
	Description   string              `json:"description,omitempty" bson:"description,omitempty"`
	Coordinates   Rect                `json:"coordinates" bson:"coordinates"`
	IsActive      bool                `json:"isActive" bson:"isActive" default:"true"`
	CreatedBy     *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy     *primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}

func (m *MapEditorRestrictedZone) GetID() primitive.ObjectID          { return m.ID }
func (m *MapEditorRestrictedZone) GetFloorPlan() primitive.ObjectID   { return m.FloorPlan }
func (m *MapEditorRestrictedZone) SetFloorPlanSummary(s *FloorPlanSummary) { m.FloorPlanInfo = s }

func (m *MapEditorRestrictedZone) StampCreated(actor primitive.ObjectID) {
	m.CreatedBy = &actor
	m.UpdatedBy = &actor
	m.CreatedAt = time.Now().UnixMilli()
}

func (m *MapEditorRestrictedZone) StampUpdated(actor primitive.ObjectID) {
	m.UpdatedBy = &actor
}
