package editorsvc

import (
	"errors"
	"testing"

	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("phải trả về lỗi validation")
	}
	var cerr *common.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("lỗi phải là *common.Error, nhận được %T", err)
	}
	if cerr.StatusCode != common.StatusBadRequest {
		t.Errorf("status code = %d, muốn %d", cerr.StatusCode, common.StatusBadRequest)
	}
}

func TestValidateElevatorCreate(t *testing.T) {
	elevator := &models.MapEditorElevator{ConnectsToFloors: []string{"G", "1"}}
	if err := ValidateElevatorCreate(elevator); err != nil {
		t.Errorf("thang máy có tầng kết nối phải hợp lệ, lỗi: %v", err)
	}

	assertValidationError(t, ValidateElevatorCreate(&models.MapEditorElevator{}))
	assertValidationError(t, ValidateElevatorCreate(&models.MapEditorElevator{ConnectsToFloors: []string{}}))
}

func TestValidateElevatorUpdate(t *testing.T) {
	existing := &models.MapEditorElevator{ConnectsToFloors: []string{"G"}}

	if err := ValidateElevatorUpdate(existing, map[string]interface{}{"name": "Thang A"}); err != nil {
		t.Errorf("patch không đụng connectsToFloors phải hợp lệ, lỗi: %v", err)
	}
	if err := ValidateElevatorUpdate(existing, map[string]interface{}{"connectsToFloors": []string{"G", "2"}}); err != nil {
		t.Errorf("patch với danh sách tầng hợp lệ không được lỗi: %v", err)
	}

	assertValidationError(t, ValidateElevatorUpdate(existing, map[string]interface{}{"connectsToFloors": []string{}}))
}

func TestValidateRestrictedZoneCreate(t *testing.T) {
	valid := &models.MapEditorRestrictedZone{Coordinates: models.Rect{X: 0, Y: 0, Width: 10, Height: 5}}
	if err := ValidateRestrictedZoneCreate(valid); err != nil {
		t.Errorf("vùng có kích thước dương phải hợp lệ, lỗi: %v", err)
	}

	assertValidationError(t, ValidateRestrictedZoneCreate(&models.MapEditorRestrictedZone{
		Coordinates: models.Rect{Width: 0, Height: 5},
	}))
	assertValidationError(t, ValidateRestrictedZoneCreate(&models.MapEditorRestrictedZone{
		Coordinates: models.Rect{Width: 10, Height: 0},
	}))
}

func TestValidateRestrictedZoneUpdate(t *testing.T) {
	existing := &models.MapEditorRestrictedZone{Coordinates: models.Rect{Width: 10, Height: 5}}

	if err := ValidateRestrictedZoneUpdate(existing, map[string]interface{}{"name": "Khu cấm"}); err != nil {
		t.Errorf("patch không đụng coordinates phải hợp lệ, lỗi: %v", err)
	}
	if err := ValidateRestrictedZoneUpdate(existing, map[string]interface{}{
		"coordinates": models.Rect{Width: 3, Height: 4},
	}); err != nil {
		t.Errorf("patch với kích thước hợp lệ không được lỗi: %v", err)
	}

	assertValidationError(t, ValidateRestrictedZoneUpdate(existing, map[string]interface{}{
		"coordinates": models.Rect{Width: 0, Height: 4},
	}))
}

func TestValidateMeasurementCreate(t *testing.T) {
	valid := &models.MapEditorMeasurement{Distance: 0}
	if err := ValidateMeasurementCreate(valid); err != nil {
		t.Errorf("khoảng cách 0 phải hợp lệ, lỗi: %v", err)
	}

	assertValidationError(t, ValidateMeasurementCreate(&models.MapEditorMeasurement{Distance: -1.5}))
}

func TestValidateMeasurementUpdate(t *testing.T) {
	existing := &models.MapEditorMeasurement{Distance: 12.5}

	if err := ValidateMeasurementUpdate(existing, map[string]interface{}{"label": "Hành lang"}); err != nil {
		t.Errorf("patch không đụng distance phải hợp lệ, lỗi: %v", err)
	}
	if err := ValidateMeasurementUpdate(existing, map[string]interface{}{"distance": 3.2}); err != nil {
		t.Errorf("patch với distance hợp lệ không được lỗi: %v", err)
	}

	assertValidationError(t, ValidateMeasurementUpdate(existing, map[string]interface{}{"distance": -0.1}))
}
