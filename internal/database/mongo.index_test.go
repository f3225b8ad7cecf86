package database

import (
	"testing"
)

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single:1,order:-1"); got != -1 {
		t.Errorf("parseOrder với order:-1 = %d, muốn -1", got)
	}
	if got := parseOrder("single:1"); got != 1 {
		t.Errorf("parseOrder mặc định = %d, muốn 1", got)
	}
	if got := parseOrder("unique"); got != 1 {
		t.Errorf("parseOrder không có order = %d, muốn 1", got)
	}
}

func TestParseIndexTag_Single(t *testing.T) {
	configs := parseIndexTag("single:1")
	if len(configs) != 1 {
		t.Fatalf("số cấu hình = %d, muốn 1", len(configs))
	}
	if configs[0]["single"] != "1" {
		t.Errorf("single = %q, muốn '1'", configs[0]["single"])
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	configs := parseIndexTag("unique,sparse")
	if len(configs) != 1 {
		t.Fatalf("số cấu hình = %d, muốn 1", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Error("cấu hình phải có key 'unique'")
	}
	if _, ok := configs[0]["sparse"]; !ok {
		t.Error("cấu hình phải có key 'sparse'")
	}
}

func TestParseIndexTag_MultiEntry(t *testing.T) {
	configs := parseIndexTag("single:1;compound:org_building_unique,sparse")
	if len(configs) != 2 {
		t.Fatalf("số cấu hình = %d, muốn 2", len(configs))
	}
	if configs[0]["single"] != "1" {
		t.Errorf("cấu hình đầu tiên single = %q, muốn '1'", configs[0]["single"])
	}
	if configs[1]["compound"] != "org_building_unique" {
		t.Errorf("compound group = %q, muốn 'org_building_unique'", configs[1]["compound"])
	}
	if _, ok := configs[1]["sparse"]; !ok {
		t.Error("cấu hình compound phải có key 'sparse'")
	}
}

func TestParseIndexTag_Text(t *testing.T) {
	configs := parseIndexTag("text")
	if len(configs) != 1 {
		t.Fatalf("số cấu hình = %d, muốn 1", len(configs))
	}
	if _, ok := configs[0]["text"]; !ok {
		t.Error("cấu hình phải có key 'text'")
	}
}
