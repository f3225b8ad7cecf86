package editorsvc

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildEditorListFilter_DefaultIsActive(t *testing.T) {
	filter, err := buildEditorListFilter(EditorListQuery{})
	if err != nil {
		t.Fatalf("query rỗng không được lỗi: %v", err)
	}
	if filter["isActive"] != true {
		t.Errorf("không truyền isActive phải mặc định lọc isActive=true, nhận được %v", filter["isActive"])
	}
}

func TestBuildEditorListFilter_ExplicitIsActive(t *testing.T) {
	inactive := false
	filter, err := buildEditorListFilter(EditorListQuery{IsActive: &inactive})
	if err != nil {
		t.Fatalf("query hợp lệ không được lỗi: %v", err)
	}
	if filter["isActive"] != false {
		t.Errorf("truyền isActive=false phải lọc đúng giá trị đó, nhận được %v", filter["isActive"])
	}
}

func TestBuildEditorListFilter_AllSkipsIsActive(t *testing.T) {
	filter, err := buildEditorListFilter(EditorListQuery{All: true})
	if err != nil {
		t.Fatalf("query hợp lệ không được lỗi: %v", err)
	}
	if _, ok := filter["isActive"]; ok {
		t.Error("all=true không được lọc theo isActive")
	}
}

func TestBuildEditorListFilter_SearchAcrossFields(t *testing.T) {
	filter, err := buildEditorListFilter(EditorListQuery{Search: "quầy (lễ tân)", All: true})
	if err != nil {
		t.Fatalf("query hợp lệ không được lỗi: %v", err)
	}

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("search phải dựng điều kiện $or, nhận được %T", filter["$or"])
	}
	rx := bson.M{"$regex": `quầy \(lễ tân\)`, "$options": "i"}
	want := []bson.M{{"name": rx}, {"category": rx}, {"description": rx}}
	if !reflect.DeepEqual(or, want) {
		t.Errorf("$or = %v, muốn khớp name/category/description với pattern đã escape %v", or, want)
	}
}

func TestBuildEditorListFilter_FloorPlan(t *testing.T) {
	planID := primitive.NewObjectID()
	filter, err := buildEditorListFilter(EditorListQuery{FloorPlan: planID.Hex()})
	if err != nil {
		t.Fatalf("floorPlan hex hợp lệ không được lỗi: %v", err)
	}
	if filter["floorPlan"] != planID {
		t.Errorf("floorPlan = %v, muốn %v", filter["floorPlan"], planID)
	}

	if _, err := buildEditorListFilter(EditorListQuery{FloorPlan: "khong-phai-hex"}); err == nil {
		t.Error("floorPlan không phải hex phải trả về lỗi")
	}
}
