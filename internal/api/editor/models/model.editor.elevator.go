package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// MapEditorElevator thang máy vẽ trên một sơ đồ tầng.
// connectsToFloors là danh sách nhãn tầng mà thang máy kết nối, luôn có ít nhất một tầng.
type MapEditorElevator struct {
	ID               primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	FloorPlan        primitive.ObjectID  `json:"floorPlan" bson:"floorPlan" index:"single:1"`
	FloorPlanInfo    *FloorPlanSummary   `json:"floorPlanInfo,omitempty" bson:"-"`
	Name             string              `json:"name" bson:"name"`
	Description      string              `json:"description,omitempty" bson:"description,omitempty"`
	Coordinates      Point               `json:"coordinates" bson:"coordinates"`
	ConnectsToFloors []string            `json:"connectsToFloors" bson:"connectsToFloors"`
	IsActive         bool                `json:"isActive" bson:"isActive" default:"true"`
	CreatedBy        *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy        *primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	CreatedAt        int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64               `json:"updatedAt" bson:"updatedAt"`
}

func (m *MapEditorElevator) GetID() primitive.ObjectID          { return m.ID }
func (m *MapEditorElevator) GetFloorPlan() primitive.ObjectID   { return m.FloorPlan }
func (m *MapEditorElevator) SetFloorPlanSummary(s *FloorPlanSummary) { m.FloorPlanInfo = s }

func (m *MapEditorElevator) StampCreated(actor primitive.ObjectID) {
	m.CreatedBy = &actor
	m.UpdatedBy = &actor
	m.CreatedAt = time.Now().UnixMilli()
}

func (m *MapEditorElevator) StampUpdated(actor primitive.ObjectID) {
	m.UpdatedBy = &actor
}
