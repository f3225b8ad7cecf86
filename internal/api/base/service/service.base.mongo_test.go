package basesvc

import (
	"reflect"
	"testing"
)

type fakeDefaults struct {
	Name      string `bson:"name"`
	Status    string `bson:"status" default:"Draft"`
	IsActive  bool   `bson:"isActive" default:"true"`
	GridSize  int    `bson:"gridSize" default:"10"`
	Version   int64  `bson:"version" default:"1"`
	NoBson    string `default:"ignored"`
	Skipped   string `bson:"-" default:"ignored"`
	NoDefault string `bson:"noDefault"`
}

func TestParseDefaultValue(t *testing.T) {
	if got := parseDefaultValue("true", reflect.TypeOf(false)); got != true {
		t.Errorf("parseDefaultValue bool 'true' = %v, muốn true", got)
	}
	if got := parseDefaultValue("rác", reflect.TypeOf(false)); got != false {
		t.Errorf("chuỗi bool không hợp lệ phải trả về false, nhận được %v", got)
	}
	if got := parseDefaultValue("10", reflect.TypeOf(int(0))); got != int32(10) {
		t.Errorf("parseDefaultValue int '10' = %v (%T), muốn int32(10)", got, got)
	}
	if got := parseDefaultValue("42", reflect.TypeOf(int64(0))); got != int64(42) {
		t.Errorf("parseDefaultValue int64 '42' = %v (%T), muốn int64(42)", got, got)
	}
	if got := parseDefaultValue("Draft", reflect.TypeOf("")); got != "Draft" {
		t.Errorf("parseDefaultValue string = %v, muốn 'Draft'", got)
	}
	if got := parseDefaultValue("1.5", reflect.TypeOf(float64(0))); got != nil {
		t.Errorf("kiểu không hỗ trợ phải trả về nil, nhận được %v", got)
	}
}

func TestGetInsertDefaultsFromModelType(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(fakeDefaults{}))
	if len(defaults) != 4 {
		t.Fatalf("số default = %d, muốn 4: %v", len(defaults), defaults)
	}
	if defaults["status"] != "Draft" {
		t.Errorf("defaults[status] = %v, muốn 'Draft'", defaults["status"])
	}
	if defaults["isActive"] != true {
		t.Errorf("defaults[isActive] = %v, muốn true", defaults["isActive"])
	}
	if defaults["gridSize"] != int32(10) {
		t.Errorf("defaults[gridSize] = %v (%T), muốn int32(10)", defaults["gridSize"], defaults["gridSize"])
	}
	if defaults["version"] != int64(1) {
		t.Errorf("defaults[version] = %v (%T), muốn int64(1)", defaults["version"], defaults["version"])
	}
	if _, ok := defaults["NoBson"]; ok {
		t.Error("field không có bson tag không được vào map default")
	}

	// Con trỏ tới struct cũng phải đọc được
	viaPtr := getInsertDefaultsFromModelType(reflect.TypeOf(&fakeDefaults{}))
	if len(viaPtr) != 4 {
		t.Errorf("đọc qua con trỏ trả về %d default, muốn 4", len(viaPtr))
	}

	if got := getInsertDefaultsFromModelType(reflect.TypeOf("not a struct")); got != nil {
		t.Errorf("kiểu không phải struct phải trả về nil, nhận được %v", got)
	}
}

func TestApplyInsertDefaultsToModel(t *testing.T) {
	doc := fakeDefaults{Name: "Sơ đồ tầng G"}
	applyInsertDefaultsToModel(&doc)

	if doc.Status != "Draft" {
		t.Errorf("Status = %q, muốn 'Draft'", doc.Status)
	}
	if !doc.IsActive {
		t.Error("IsActive phải được set true từ default tag")
	}
	// int32 từ tag phải được convert sang kiểu int của field
	if doc.GridSize != 10 {
		t.Errorf("GridSize = %d, muốn 10", doc.GridSize)
	}
	if doc.Version != 1 {
		t.Errorf("Version = %d, muốn 1", doc.Version)
	}
	if doc.Name != "Sơ đồ tầng G" {
		t.Errorf("field đã có giá trị không được thay đổi, Name = %q", doc.Name)
	}
}

func TestApplyInsertDefaultsToModel_NonZeroPreserved(t *testing.T) {
	doc := fakeDefaults{Status: "Published", GridSize: 25}
	applyInsertDefaultsToModel(&doc)

	if doc.Status != "Published" {
		t.Errorf("Status đã có giá trị phải giữ nguyên, nhận được %q", doc.Status)
	}
	if doc.GridSize != 25 {
		t.Errorf("GridSize đã có giá trị phải giữ nguyên, nhận được %d", doc.GridSize)
	}
	// Field zero còn lại vẫn phải nhận default
	if !doc.IsActive {
		t.Error("IsActive vẫn phải nhận default khi đang zero")
	}
}

func TestApplyInsertDefaultsToModel_InvalidInput(t *testing.T) {
	// Không panic với nil hoặc giá trị không phải con trỏ struct
	applyInsertDefaultsToModel(nil)
	applyInsertDefaultsToModel(fakeDefaults{})
	applyInsertDefaultsToModel(new(int))
}
