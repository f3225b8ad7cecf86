package global

import (
	"testing"
)

type customTagInput struct {
	ID   string `validate:"omitempty,objectid"`
	Name string `validate:"omitempty,no_xss"`
}

func TestValidateObjectID(t *testing.T) {
	InitValidator()

	cases := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"chuỗi rỗng hợp lệ", "", false},
		{"hex hợp lệ", "507f1f77bcf86cd799439011", false},
		{"hex sai độ dài", "507f1f77", true},
		{"không phải hex", "zzzzzzzzzzzzzzzzzzzzzzzz", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(customTagInput{ID: tc.id})
			if (err != nil) != tc.wantErr {
				t.Errorf("objectid(%q) err = %v, muốn wantErr=%v", tc.id, err, tc.wantErr)
			}
		})
	}
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"văn bản thường", "Sảnh chính tầng 1", false},
		{"chuỗi rỗng", "", false},
		{"thẻ script", "<script>alert(1)</script>", true},
		{"thẻ script viết hoa", "<SCRIPT>alert(1)</SCRIPT>", true},
		{"giao thức javascript", "javascript:alert(1)", true},
		{"thuộc tính onerror", "x onerror=alert(1)", true},
		{"thẻ iframe", "<iframe src=x>", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(customTagInput{Name: tc.value})
			if (err != nil) != tc.wantErr {
				t.Errorf("no_xss(%q) err = %v, muốn wantErr=%v", tc.value, err, tc.wantErr)
			}
		})
	}
}
