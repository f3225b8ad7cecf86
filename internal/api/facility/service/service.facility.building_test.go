package facilitysvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestActiveFloorFilter(t *testing.T) {
	buildingID := primitive.NewObjectID()
	filter := activeFloorFilter(buildingID)

	if filter["building"] != buildingID {
		t.Errorf("building = %v, muốn %v", filter["building"], buildingID)
	}
	if filter["isActive"] != true {
		t.Error("floorCount chỉ được đếm tầng isActive=true")
	}
	if len(filter) != 2 {
		t.Errorf("filter có %d điều kiện, muốn 2", len(filter))
	}
}
