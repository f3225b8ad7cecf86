package plansvc

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
)

func TestPlanStatsFilters(t *testing.T) {
	versionID := primitive.NewObjectID()
	plan := models.FloorPlan{ID: primitive.NewObjectID(), CurrentVersion: &versionID}

	elementFilter, layerFilter, poiFilter := planStatsFilters(plan)

	wantVersion := bson.M{"floorPlanVersion": versionID}
	if !reflect.DeepEqual(elementFilter, wantVersion) {
		t.Errorf("element filter = %v, muốn %v", elementFilter, wantVersion)
	}
	if !reflect.DeepEqual(layerFilter, wantVersion) {
		t.Errorf("layer filter = %v, muốn %v", layerFilter, wantVersion)
	}
	wantPOI := bson.M{"floorPlan": plan.ID, "isActive": true}
	if !reflect.DeepEqual(poiFilter, wantPOI) {
		t.Errorf("poi filter = %v, muốn %v", poiFilter, wantPOI)
	}
}

func TestPlanStatsFilters_NoCurrentVersion(t *testing.T) {
	plan := models.FloorPlan{ID: primitive.NewObjectID()}

	elementFilter, layerFilter, poiFilter := planStatsFilters(plan)

	if elementFilter != nil {
		t.Errorf("chưa có currentVersion thì element filter phải nil, nhận được %v", elementFilter)
	}
	if layerFilter != nil {
		t.Errorf("chưa có currentVersion thì layer filter phải nil, nhận được %v", layerFilter)
	}
	if poiFilter["isActive"] != true {
		t.Errorf("poi filter vẫn phải đếm POI đang hoạt động, nhận được %v", poiFilter)
	}
}
