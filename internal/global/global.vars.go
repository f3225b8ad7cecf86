package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cybercircusofficail/Karepilot-Backend-sub000/config"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/registry"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Organizations         string // Tên collection cho tổ chức (tenant)
	VenueTemplates        string // Tên collection cho venue template
	MapBuildings          string // Tên collection cho tòa nhà
	MapFloors             string // Tên collection cho tầng
	FloorPlans            string // Tên collection cho sơ đồ tầng
	FloorPlanVersions     string // Tên collection cho phiên bản sơ đồ tầng
	MapLayers             string // Tên collection cho layer trên một phiên bản
	MapElements           string // Tên collection cho map element tổng quát
	MapEditorPOIs         string // Tên collection cho POI
	MapEditorEntrances    string // Tên collection cho lối vào
	MapEditorElevators    string // Tên collection cho thang máy
	MapEditorMeasurements string // Tên collection cho phép đo
	MapEditorZones        string // Tên collection cho vùng hạn chế
	MapManagerSettings    string // Tên collection cho cấu hình map manager theo tổ chức
	MapEditorPreferences  string // Tên collection cho tuỳ chọn editor theo người dùng
}

// Các biến toàn cục
var Validate *validator.Validate            // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client           // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration      // Cấu hình của server
var ColNames CollectionNames = *new(CollectionNames) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
