package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cybercircusofficail/Karepilot-Backend-sub000/config"
	editormodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	facilitymodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/models"
	planmodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
	tenantmodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/tenant/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/database"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.Organizations = "organizations"
	global.ColNames.VenueTemplates = "venue_templates"

	global.ColNames.MapBuildings = "map_buildings"
	global.ColNames.MapFloors = "map_floors"

	global.ColNames.FloorPlans = "floor_plans"
	global.ColNames.FloorPlanVersions = "floor_plan_versions"
	global.ColNames.MapLayers = "map_layers"
	global.ColNames.MapElements = "map_elements"
	global.ColNames.MapManagerSettings = "map_manager_settings"

	// Map editor (tiền tố map_editor_)
	global.ColNames.MapEditorPOIs = "map_editor_pois"
	global.ColNames.MapEditorEntrances = "map_editor_entrances"
	global.ColNames.MapEditorElevators = "map_editor_elevators"
	global.ColNames.MapEditorMeasurements = "map_editor_measurements"
	global.ColNames.MapEditorZones = "map_editor_restricted_zones"
	global.ColNames.MapEditorPreferences = "map_editor_preferences"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// collectionNames trả về danh sách tất cả collection của hệ thống
func collectionNames() []string {
	return []string{
		global.ColNames.Organizations,
		global.ColNames.VenueTemplates,
		global.ColNames.MapBuildings,
		global.ColNames.MapFloors,
		global.ColNames.FloorPlans,
		global.ColNames.FloorPlanVersions,
		global.ColNames.MapLayers,
		global.ColNames.MapElements,
		global.ColNames.MapManagerSettings,
		global.ColNames.MapEditorPOIs,
		global.ColNames.MapEditorEntrances,
		global.ColNames.MapEditorElevators,
		global.ColNames.MapEditorMeasurements,
		global.ColNames.MapEditorZones,
		global.ColNames.MapEditorPreferences,
	}
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	dbName := global.ServerConfig.MongoDB_DBName
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session, dbName, collectionNames()); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Organizations), tenantmodels.Organization{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.VenueTemplates), tenantmodels.VenueTemplate{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapBuildings), facilitymodels.MapBuilding{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapFloors), facilitymodels.MapFloor{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.FloorPlans), planmodels.FloorPlan{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.FloorPlanVersions), planmodels.FloorPlanVersion{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapLayers), planmodels.MapLayer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapManagerSettings), planmodels.MapManagerSettings{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapElements), editormodels.MapElement{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapEditorPOIs), editormodels.MapEditorPOI{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapEditorEntrances), editormodels.MapEditorEntrance{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapEditorElevators), editormodels.MapEditorElevator{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapEditorMeasurements), editormodels.MapEditorMeasurement{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapEditorZones), editormodels.MapEditorRestrictedZone{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MapEditorPreferences), editormodels.MapEditorPreferences{})
}
