package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDefaultLayerVisibility(t *testing.T) {
	visibility := DefaultLayerVisibility()

	visible := []string{"pois", "entrances", "elevators", "measurements", "restrictedZones"}
	for _, layer := range visible {
		shown, ok := visibility[layer]
		if !ok {
			t.Errorf("layer %q phải có trong cấu hình mặc định", layer)
			continue
		}
		if !shown {
			t.Errorf("layer %q phải hiển thị mặc định", layer)
		}
	}

	if visibility["none"] {
		t.Error("layer 'none' phải ẩn mặc định")
	}

	// Mỗi lần gọi phải trả về map mới, tránh caller sửa chung một map
	visibility["pois"] = false
	if !DefaultLayerVisibility()["pois"] {
		t.Error("DefaultLayerVisibility phải trả về map độc lập mỗi lần gọi")
	}
}

func TestStampCreated(t *testing.T) {
	actor := primitive.NewObjectID()
	poi := MapEditorPOI{Name: "Quầy lễ tân"}

	poi.StampCreated(actor)

	if poi.CreatedBy == nil || *poi.CreatedBy != actor {
		t.Error("StampCreated phải ghi nhận createdBy")
	}
	if poi.UpdatedBy == nil || *poi.UpdatedBy != actor {
		t.Error("StampCreated phải ghi nhận updatedBy")
	}
	if poi.CreatedAt == 0 {
		t.Error("StampCreated phải ghi nhận thời điểm tạo")
	}
}

func TestStampUpdated(t *testing.T) {
	creator := primitive.NewObjectID()
	editor := primitive.NewObjectID()

	poi := MapEditorPOI{Name: "Quầy lễ tân"}
	poi.StampCreated(creator)
	poi.StampUpdated(editor)

	if poi.CreatedBy == nil || *poi.CreatedBy != creator {
		t.Error("StampUpdated không được thay đổi createdBy")
	}
	if poi.UpdatedBy == nil || *poi.UpdatedBy != editor {
		t.Error("StampUpdated phải ghi nhận người sửa mới")
	}
}
