package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIs_MatchesByCode(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Sơ đồ tầng không tồn tại", StatusNotFound, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Error("lỗi cùng mã và status code phải khớp qua errors.Is, bất kể message")
	}
	if errors.Is(err, ErrDuplicate) {
		t.Error("lỗi khác status code không được khớp")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Error("lỗi khác mã không được khớp")
	}
}

func TestErrorIs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("lưu sơ đồ thất bại: %w", ErrDuplicate)
	if !errors.Is(wrapped, ErrDuplicate) {
		t.Error("lỗi bọc qua %w vẫn phải khớp sentinel")
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Tổ chức")
	if err.Error() != "Tổ chức không tồn tại" {
		t.Errorf("message = %q, muốn 'Tổ chức không tồn tại'", err.Error())
	}
	if !IsNotFound(err) {
		t.Error("NewNotFoundError phải được IsNotFound nhận diện")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NewNotFoundError phải khớp sentinel ErrNotFound")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Error("ErrNotFound phải là not-found")
	}
	if IsNotFound(ErrDuplicate) {
		t.Error("ErrDuplicate không phải not-found")
	}
	if IsNotFound(errors.New("lỗi thường")) {
		t.Error("lỗi không có status code không phải not-found")
	}
	if IsNotFound(nil) {
		t.Error("nil không phải not-found")
	}
	if !IsNotFound(fmt.Errorf("tầng: %w", NewNotFoundError("Tầng"))) {
		t.Error("lỗi not-found bọc qua %w vẫn phải nhận diện được")
	}
}

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil phải trả về nil, nhận được %v", got)
	}

	if got := ConvertMongoError(mongo.ErrNoDocuments); !errors.Is(got, ErrNotFound) {
		t.Errorf("mongo.ErrNoDocuments phải chuyển thành ErrNotFound, nhận được %v", got)
	}

	dupErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	if got := ConvertMongoError(dupErr); !errors.Is(got, ErrDuplicate) {
		t.Errorf("lỗi duplicate key phải chuyển thành ErrDuplicate, nhận được %v", got)
	}

	// Lỗi đã phân loại thì giữ nguyên, không bọc lại
	already := NewNotFoundError("Layer")
	if got := ConvertMongoError(already); got != already {
		t.Errorf("lỗi đã phân loại phải giữ nguyên, nhận được %v", got)
	}

	// Lỗi lạ được quy về lỗi database chung với status 500
	var e *Error
	got := ConvertMongoError(errors.New("lỗi không xác định"))
	if !errors.As(got, &e) {
		t.Fatalf("lỗi lạ phải được bọc thành *Error, nhận được %T", got)
	}
	if e.StatusCode != StatusInternalServerError {
		t.Errorf("status code = %d, muốn %d", e.StatusCode, StatusInternalServerError)
	}
}

func TestNewErrorStatusCode(t *testing.T) {
	err := NewError(ErrCodeBusinessState, "Phiên bản đã publish", StatusBadRequest, map[string]string{"status": "Published"})
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("NewError phải trả về *Error")
	}
	if e.StatusCode != StatusBadRequest {
		t.Errorf("status code = %d, muốn %d", e.StatusCode, StatusBadRequest)
	}
	if e.Code.Code != ErrCodeBusinessState.Code {
		t.Errorf("mã lỗi = %q, muốn %q", e.Code.Code, ErrCodeBusinessState.Code)
	}
	if e.Details == nil {
		t.Error("details phải được giữ lại")
	}
}

func TestNewReferenceError(t *testing.T) {
	err := NewReferenceError("Tầng không thuộc tòa nhà đã khai báo")
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("NewReferenceError phải trả về *Error")
	}
	if e.Code.Code != ErrCodeValidationReference.Code {
		t.Errorf("mã lỗi = %q, muốn %q", e.Code.Code, ErrCodeValidationReference.Code)
	}
	if e.StatusCode != StatusBadRequest {
		t.Errorf("status code = %d, muốn %d", e.StatusCode, StatusBadRequest)
	}
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("Mã tòa nhà đã tồn tại trong tổ chức")
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("NewConflictError phải trả về *Error")
	}
	if e.StatusCode != StatusConflict {
		t.Errorf("status code = %d, muốn %d", e.StatusCode, StatusConflict)
	}
	if !errors.Is(err, ErrDuplicate) {
		t.Error("NewConflictError phải khớp sentinel ErrDuplicate")
	}
}
