package editorsvc

import (
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

// ValidateElevatorCreate thang máy phải kết nối ít nhất một tầng
func ValidateElevatorCreate(doc *models.MapEditorElevator) error {
	if len(doc.ConnectsToFloors) < 1 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Thang máy phải kết nối ít nhất một tầng",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// ValidateElevatorUpdate không cho phép cập nhật xóa sạch danh sách tầng kết nối
func ValidateElevatorUpdate(existing *models.MapEditorElevator, patch map[string]interface{}) error {
	value, ok := patch["connectsToFloors"]
	if !ok {
		return nil
	}
	floors, ok := value.([]string)
	if !ok || len(floors) < 1 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Thang máy phải kết nối ít nhất một tầng",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// ValidateRestrictedZoneCreate vùng hạn chế phải có kích thước dương
func ValidateRestrictedZoneCreate(doc *models.MapEditorRestrictedZone) error {
	return validateZoneRect(doc.Coordinates)
}

// ValidateRestrictedZoneUpdate kiểm tra kích thước khi patch thay coordinates
func ValidateRestrictedZoneUpdate(existing *models.MapEditorRestrictedZone, patch map[string]interface{}) error {
	value, ok := patch["coordinates"]
	if !ok {
		return nil
	}
	rect, ok := value.(models.Rect)
	if !ok {
		return common.ErrInvalidFormat
	}
	return validateZoneRect(rect)
}

func validateZoneRect(rect models.Rect) error {
	if rect.Width < 1 || rect.Height < 1 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Kích thước vùng hạn chế phải lớn hơn 0",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// ValidateMeasurementCreate khoảng cách đo không được âm
func ValidateMeasurementCreate(doc *models.MapEditorMeasurement) error {
	return validateMeasurementDistance(doc.Distance)
}

// ValidateMeasurementUpdate kiểm tra khoảng cách khi patch thay distance
func ValidateMeasurementUpdate(existing *models.MapEditorMeasurement, patch map[string]interface{}) error {
	value, ok := patch["distance"]
	if !ok {
		return nil
	}
	distance, ok := value.(float64)
	if !ok {
		return common.ErrInvalidFormat
	}
	return validateMeasurementDistance(distance)
}

func validateMeasurementDistance(distance float64) error {
	if distance < 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Khoảng cách đo không được âm",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}
