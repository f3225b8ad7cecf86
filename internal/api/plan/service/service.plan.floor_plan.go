package plansvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/models"
	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	facilitymodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/models"
	plandto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/utility"
)

// FloorPlanListQuery các điều kiện lọc cho danh sách sơ đồ tầng
type FloorPlanListQuery struct {
	Organization string // Lọc theo tổ chức
	Building     string // Lọc theo tòa nhà
	Floor        string // Lọc theo tầng
	Status       string // Lọc theo trạng thái
	Search       string // Tìm kiếm không phân biệt hoa thường trên name
	Tag          string // Lọc theo tag
}

// FloorPlanService là cấu trúc chứa các phương thức liên quan đến sơ đồ tầng
type FloorPlanService struct {
	*basesvc.BaseServiceMongoImpl[models.FloorPlan]
	versionService  *VersionService
	settingsService *SettingsService
	buildingBase    *basesvc.BaseServiceMongoImpl[facilitymodels.MapBuilding]
	floorBase       *basesvc.BaseServiceMongoImpl[facilitymodels.MapFloor]
}

// NewFloorPlanService tạo mới FloorPlanService
func NewFloorPlanService() (*FloorPlanService, error) {
	planCollection, exist := global.RegistryCollections.Get(global.ColNames.FloorPlans)
	if !exist {
		return nil, fmt.Errorf("failed to get floor plans collection: %v", common.ErrNotFound)
	}
	buildingCollection, exist := global.RegistryCollections.Get(global.ColNames.MapBuildings)
	if !exist {
		return nil, fmt.Errorf("failed to get map buildings collection: %v", common.ErrNotFound)
	}
	floorCollection, exist := global.RegistryCollections.Get(global.ColNames.MapFloors)
	if !exist {
		return nil, fmt.Errorf("failed to get map floors collection: %v", common.ErrNotFound)
	}

	versionService, err := NewVersionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create version service: %v", err)
	}
	settingsService, err := NewSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %v", err)
	}

	return &FloorPlanService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.FloorPlan](planCollection),
		versionService:       versionService,
		settingsService:      settingsService,
		buildingBase:         basesvc.NewBaseServiceMongo[facilitymodels.MapBuilding](buildingCollection),
		floorBase:            basesvc.NewBaseServiceMongo[facilitymodels.MapFloor](floorCollection),
	}, nil
}

// validateReferences là điểm kiểm tra tham chiếu duy nhất của FloorPlan:
// organization tồn tại, building thuộc organization, floor thuộc đúng building và organization.
func (s *FloorPlanService) validateReferences(ctx context.Context, organizationID, buildingID, floorID primitive.ObjectID) error {
	orgCollection, exist := global.RegistryCollections.Get(global.ColNames.Organizations)
	if !exist {
		return common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection organizations", common.StatusInternalServerError, nil)
	}
	orgCount, err := orgCollection.CountDocuments(ctx, bson.M{"_id": organizationID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if orgCount == 0 {
		return common.NewNotFoundError("Organization")
	}

	building, err := s.buildingBase.FindOneById(ctx, buildingID)
	if err != nil {
		if common.IsNotFound(err) {
			return common.NewNotFoundError("Building")
		}
		return err
	}
	if building.Organization != organizationID {
		return common.NewReferenceError("Tòa nhà không thuộc tổ chức đã khai báo")
	}

	floor, err := s.floorBase.FindOneById(ctx, floorID)
	if err != nil {
		if common.IsNotFound(err) {
			return common.NewNotFoundError("Floor")
		}
		return err
	}
	if floor.Building != buildingID || floor.Organization != organizationID {
		return common.NewReferenceError("Tầng không thuộc tòa nhà đã khai báo")
	}
	return nil
}

// resolveSettings lấy cấu hình mặc định của tổ chức rồi ghi đè các field người dùng gửi lên
func (s *FloorPlanService) resolveSettings(ctx context.Context, organizationID primitive.ObjectID, input *plandto.PlanSettingsInput) (models.PlanSettings, error) {
	orgSettings, err := s.settingsService.GetOrCreateByOrganization(ctx, organizationID)
	if err != nil {
		return models.PlanSettings{}, err
	}
	settings := orgSettings.DefaultPlanSettings()
	applySettingsInput(&settings, input)
	return settings, nil
}

func applySettingsInput(settings *models.PlanSettings, input *plandto.PlanSettingsInput) {
	if input == nil {
		return
	}
	if input.GridSize != nil {
		settings.GridSize = *input.GridSize
	}
	if input.GridUnit != nil {
		settings.GridUnit = *input.GridUnit
	}
	if input.SnapToGrid != nil {
		settings.SnapToGrid = *input.SnapToGrid
	}
	if input.ShowGrid != nil {
		settings.ShowGrid = *input.ShowGrid
	}
	if input.DefaultZoom != nil {
		settings.DefaultZoom = *input.DefaultZoom
	}
	if input.AutoPublish != nil {
		settings.AutoPublish = *input.AutoPublish
	}
	if input.VersionControlEnabled != nil {
		settings.VersionControlEnabled = *input.VersionControlEnabled
	}
}

// Create tạo mới một sơ đồ tầng và seed phiên bản đầu tiên
func (s *FloorPlanService) Create(ctx context.Context, input *plandto.FloorPlanCreateInput, actorID primitive.ObjectID) (models.FloorPlan, error) {
	var zero models.FloorPlan

	organizationID, err := primitive.ObjectIDFromHex(input.Organization)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	buildingID, err := primitive.ObjectIDFromHex(input.Building)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	floorID, err := primitive.ObjectIDFromHex(input.Floor)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	if err := s.validateReferences(ctx, organizationID, buildingID, floorID); err != nil {
		return zero, err
	}

	settings, err := s.resolveSettings(ctx, organizationID, input.Settings)
	if err != nil {
		return zero, err
	}

	plan := models.FloorPlan{
		Organization: organizationID,
		Building:     buildingID,
		Floor:        floorID,
		Name:         strings.TrimSpace(input.Name),
		Status:       input.Status,
		Settings:     settings,
		Tags:         input.Tags,
	}
	if plan.Tags == nil {
		plan.Tags = []string{}
	}
	if input.File != nil {
		plan.File = &models.FileMeta{
			Name:       input.File.Name,
			URL:        input.File.URL,
			Size:       input.File.Size,
			MimeType:   input.File.MimeType,
			UploadedAt: time.Now().UnixMilli(),
		}
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, plan)
	if err != nil {
		return zero, err
	}

	// Seed phiên bản 1, đồng thời trỏ currentVersion của plan
	if _, err := s.versionService.Create(ctx, created.ID, &plandto.VersionCreateInput{
		File:              input.File,
		ChangeDescription: "Khởi tạo sơ đồ",
	}, actorID); err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.FindOneById(ctx, created.ID)
}

// Update cập nhật một sơ đồ tầng (partial update).
// Nếu building/floor thay đổi thì kiểm tra lại chuỗi tham chiếu với giá trị hiệu lực.
func (s *FloorPlanService) Update(ctx context.Context, id primitive.ObjectID, input *plandto.FloorPlanUpdateInput) (models.FloorPlan, error) {
	var zero models.FloorPlan

	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{Set: make(map[string]interface{})}

	effectiveBuilding := existing.Building
	effectiveFloor := existing.Floor
	if input.Building != "" {
		buildingID, err := primitive.ObjectIDFromHex(input.Building)
		if err != nil {
			return zero, common.ErrInvalidFormat
		}
		effectiveBuilding = buildingID
		update.Set["building"] = buildingID
	}
	if input.Floor != "" {
		floorID, err := primitive.ObjectIDFromHex(input.Floor)
		if err != nil {
			return zero, common.ErrInvalidFormat
		}
		effectiveFloor = floorID
		update.Set["floor"] = floorID
	}
	if input.Building != "" || input.Floor != "" {
		if err := s.validateReferences(ctx, existing.Organization, effectiveBuilding, effectiveFloor); err != nil {
			return zero, err
		}
	}

	if input.Name != "" {
		update.Set["name"] = strings.TrimSpace(input.Name)
	}
	if input.Status != "" {
		update.Set["status"] = input.Status
	}
	if input.Preview != "" {
		update.Set["preview"] = input.Preview
	}
	if input.Tags != nil {
		update.Set["tags"] = input.Tags
	}
	if input.IsLocked != nil {
		update.Set["isLocked"] = *input.IsLocked
	}
	if input.File != nil {
		update.Set["file"] = models.FileMeta{
			Name:       input.File.Name,
			URL:        input.File.URL,
			Size:       input.File.Size,
			MimeType:   input.File.MimeType,
			UploadedAt: time.Now().UnixMilli(),
		}
	}
	if input.Settings != nil {
		settings := existing.Settings
		applySettingsInput(&settings, input.Settings)
		update.Set["settings"] = settings
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// List trả về danh sách sơ đồ tầng có phân trang
func (s *FloorPlanService) List(ctx context.Context, query FloorPlanListQuery, page, limit int64) (*basemodels.PaginateResult[models.FloorPlan], error) {
	filter := bson.M{}
	if query.Organization != "" {
		organizationID, err := primitive.ObjectIDFromHex(query.Organization)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		filter["organization"] = organizationID
	}
	if query.Building != "" {
		buildingID, err := primitive.ObjectIDFromHex(query.Building)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		filter["building"] = buildingID
	}
	if query.Floor != "" {
		floorID, err := primitive.ObjectIDFromHex(query.Floor)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		filter["floor"] = floorID
	}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.Tag != "" {
		filter["tags"] = query.Tag
	}
	if query.Search != "" {
		filter["name"] = utility.SearchRegex(query.Search)
	}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
}

// planStatsFilters dựng các filter đếm cho stats của sơ đồ: element và layer đếm trên
// currentVersion, POI đếm trực tiếp trên sơ đồ (chỉ POI đang hoạt động).
// Chưa có currentVersion thì hai filter đầu nil, tức là đếm bằng 0.
func planStatsFilters(plan models.FloorPlan) (elementFilter, layerFilter, poiFilter bson.M) {
	if plan.CurrentVersion != nil {
		elementFilter = bson.M{"floorPlanVersion": *plan.CurrentVersion}
		layerFilter = bson.M{"floorPlanVersion": *plan.CurrentVersion}
	}
	poiFilter = bson.M{"floorPlan": plan.ID, "isActive": true}
	return elementFilter, layerFilter, poiFilter
}

// countForStats đếm document theo filter; filter nil nghĩa là không có gì để đếm
func (s *FloorPlanService) countForStats(ctx context.Context, collectionName string, filter bson.M) (int, error) {
	if filter == nil {
		return 0, nil
	}
	collection, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return 0, common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection "+collectionName, common.StatusInternalServerError, nil)
	}
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return int(count), nil
}

// GetById trả về một sơ đồ tầng với stats được tính lại tại thời điểm đọc.
// Đếm lại bằng count query thay vì tăng giảm counter, cùng lý do với floorCount của tòa nhà.
func (s *FloorPlanService) GetById(ctx context.Context, id primitive.ObjectID) (models.FloorPlan, error) {
	var zero models.FloorPlan

	plan, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	elementFilter, layerFilter, poiFilter := planStatsFilters(plan)
	elementCount, err := s.countForStats(ctx, global.ColNames.MapElements, elementFilter)
	if err != nil {
		return zero, err
	}
	layerCount, err := s.countForStats(ctx, global.ColNames.MapLayers, layerFilter)
	if err != nil {
		return zero, err
	}
	poiCount, err := s.countForStats(ctx, global.ColNames.MapEditorPOIs, poiFilter)
	if err != nil {
		return zero, err
	}

	stats := models.PlanStats{
		ElementCount: elementCount,
		LayerCount:   layerCount,
		POICount:     poiCount,
	}
	if stats == plan.Stats {
		return plan, nil
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"stats": stats}}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// Publish publish phiên bản hiện tại của sơ đồ và đồng bộ trạng thái plan
func (s *FloorPlanService) Publish(ctx context.Context, id primitive.ObjectID, actorID primitive.ObjectID) (models.FloorPlan, error) {
	var zero models.FloorPlan
	if _, err := s.versionService.Publish(ctx, id, actorID); err != nil {
		return zero, err
	}
	return s.BaseServiceMongoImpl.FindOneById(ctx, id)
}

// Archive lưu trữ một sơ đồ tầng thay cho xóa vật lý.
// Sơ đồ lưu trữ được mở khóa để không giữ lock mồ côi.
func (s *FloorPlanService) Archive(ctx context.Context, id primitive.ObjectID) (models.FloorPlan, error) {
	var zero models.FloorPlan

	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if existing.Status == models.FloorPlanStatusArchived {
		return existing, nil
	}

	update := &basesvc.UpdateData{
		Set:   map[string]interface{}{"status": models.FloorPlanStatusArchived, "isLocked": false},
		Unset: map[string]interface{}{"lockedBy": ""},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// Versions ủy quyền cho VersionService, phục vụ các route lồng /floor-plans/:id/versions
func (s *FloorPlanService) Versions() *VersionService {
	return s.versionService
}
