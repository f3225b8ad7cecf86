package editorsvc

import (
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
)

// POIService service cho POI
type POIService = DocumentService[models.MapEditorPOI, *models.MapEditorPOI]

// EntranceService service cho lối vào
type EntranceService = DocumentService[models.MapEditorEntrance, *models.MapEditorEntrance]

// ElevatorService service cho thang máy
type ElevatorService = DocumentService[models.MapEditorElevator, *models.MapEditorElevator]

// MeasurementService service cho phép đo
type MeasurementService = DocumentService[models.MapEditorMeasurement, *models.MapEditorMeasurement]

// RestrictedZoneService service cho vùng hạn chế
type RestrictedZoneService = DocumentService[models.MapEditorRestrictedZone, *models.MapEditorRestrictedZone]

// NewPOIService tạo mới POIService
func NewPOIService() (*POIService, error) {
	return NewDocumentService[models.MapEditorPOI](global.ColNames.MapEditorPOIs, "POI", nil, nil)
}

// NewEntranceService tạo mới EntranceService
func NewEntranceService() (*EntranceService, error) {
	return NewDocumentService[models.MapEditorEntrance](global.ColNames.MapEditorEntrances, "Entrance", nil, nil)
}

// NewElevatorService tạo mới ElevatorService
func NewElevatorService() (*ElevatorService, error) {
	return NewDocumentService[models.MapEditorElevator](
		global.ColNames.MapEditorElevators,
		"Elevator",
		ValidateElevatorCreate,
		ValidateElevatorUpdate,
	)
}

// NewMeasurementService tạo mới MeasurementService
func NewMeasurementService() (*MeasurementService, error) {
	return NewDocumentService[models.MapEditorMeasurement](
		global.ColNames.MapEditorMeasurements,
		"Measurement",
		ValidateMeasurementCreate,
		ValidateMeasurementUpdate,
	)
}

// NewRestrictedZoneService tạo mới RestrictedZoneService
func NewRestrictedZoneService() (*RestrictedZoneService, error) {
	return NewDocumentService[models.MapEditorRestrictedZone](
		global.ColNames.MapEditorZones,
		"Restricted zone",
		ValidateRestrictedZoneCreate,
		ValidateRestrictedZoneUpdate,
	)
}
