package basesvc

import (
	"reflect"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeParent struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`

	_Relationships struct{} `relationship:"collection:map_floors,field:building,message:Không thể xóa tòa nhà vì còn %d tầng"`
}

type fakeParentMulti struct {
	ID primitive.ObjectID `bson:"_id"`

	_Relationships struct{} `relationship:"collection:floor_plans,field:organization|collection:map_buildings,field:organization,optional:true,cascade:true"`
}

type fakeNoRelationship struct {
	ID primitive.ObjectID `bson:"_id"`
}

type fakeBadEntries struct {
	ID primitive.ObjectID `bson:"_id"`

	_Relationships struct{} `relationship:"collection:orphans|field:lonely"`
}

func TestParseRelationshipTag_SingleWithMessage(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(fakeParent{}))
	if len(rels) != 1 {
		t.Fatalf("số quan hệ = %d, muốn 1", len(rels))
	}
	rel := rels[0]
	if rel.CollectionName != "map_floors" {
		t.Errorf("collection = %q, muốn 'map_floors'", rel.CollectionName)
	}
	if rel.FieldName != "building" {
		t.Errorf("field = %q, muốn 'building'", rel.FieldName)
	}
	if rel.ErrorMessage != "Không thể xóa tòa nhà vì còn %d tầng" {
		t.Errorf("message = %q không đúng", rel.ErrorMessage)
	}
	if rel.Optional || rel.Cascade {
		t.Error("optional và cascade phải là false khi không khai báo")
	}
}

func TestParseRelationshipTag_MultiEntry(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(fakeParentMulti{}))
	if len(rels) != 2 {
		t.Fatalf("số quan hệ = %d, muốn 2", len(rels))
	}
	first := rels[0]
	if first.CollectionName != "floor_plans" || first.FieldName != "organization" {
		t.Errorf("quan hệ đầu tiên không đúng: %+v", first)
	}
	// Message mặc định phải chứa %d để format số record tham chiếu
	if !strings.Contains(first.ErrorMessage, "%d") {
		t.Errorf("message mặc định phải chứa %%d, nhận được %q", first.ErrorMessage)
	}
	if !strings.Contains(first.ErrorMessage, "floor_plans") {
		t.Errorf("message mặc định phải nêu tên collection, nhận được %q", first.ErrorMessage)
	}
	second := rels[1]
	if !second.Optional {
		t.Error("quan hệ thứ hai phải optional")
	}
	if !second.Cascade {
		t.Error("quan hệ thứ hai phải cascade")
	}
}

func TestParseRelationshipTag_NoTag(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(fakeNoRelationship{}))
	if len(rels) != 0 {
		t.Errorf("model không có tag phải trả về 0 quan hệ, nhận được %d", len(rels))
	}
}

func TestParseRelationshipTag_IncompleteEntriesDropped(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(fakeBadEntries{}))
	if len(rels) != 0 {
		t.Errorf("entry thiếu collection hoặc field phải bị bỏ qua, nhận được %d quan hệ", len(rels))
	}
}

func TestGetIDFromModel(t *testing.T) {
	id := primitive.NewObjectID()

	got, ok := getIDFromModel(fakeParent{ID: id})
	if !ok {
		t.Fatal("model có ID phải trả về ok = true")
	}
	if got != id {
		t.Errorf("ID = %s, muốn %s", got.Hex(), id.Hex())
	}

	if _, ok := getIDFromModel(fakeParent{}); ok {
		t.Error("model có ID zero phải trả về ok = false")
	}

	if _, ok := getIDFromModel(&fakeParent{ID: id}); !ok {
		t.Error("con trỏ tới model có ID phải trả về ok = true")
	}

	var nilPtr *fakeParent
	if _, ok := getIDFromModel(nilPtr); ok {
		t.Error("con trỏ nil phải trả về ok = false")
	}

	if _, ok := getIDFromModel("not a struct"); ok {
		t.Error("giá trị không phải struct phải trả về ok = false")
	}
}
