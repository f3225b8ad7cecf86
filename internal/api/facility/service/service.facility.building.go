// Package facilitysvc - service cho domain facility (MapBuilding, MapFloor).
package facilitysvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/models"
	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	facilitydto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/utility"
)

// BuildingListQuery các điều kiện lọc cho danh sách tòa nhà
type BuildingListQuery struct {
	Organization string // Lọc theo tổ chức
	Search       string // Tìm kiếm không phân biệt hoa thường trên name/code
}

// BuildingService là cấu trúc chứa các phương thức liên quan đến tòa nhà
type BuildingService struct {
	*basesvc.BaseServiceMongoImpl[models.MapBuilding]
}

// NewBuildingService tạo mới BuildingService
func NewBuildingService() (*BuildingService, error) {
	buildingCollection, exist := global.RegistryCollections.Get(global.ColNames.MapBuildings)
	if !exist {
		return nil, fmt.Errorf("failed to get map buildings collection: %v", common.ErrNotFound)
	}

	return &BuildingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MapBuilding](buildingCollection),
	}, nil
}

// validateReferences là điểm kiểm tra tham chiếu duy nhất của MapBuilding:
// organization phải tồn tại. Mọi thao tác ghi đều đi qua đây.
func (s *BuildingService) validateReferences(ctx context.Context, organizationID primitive.ObjectID) error {
	orgCollection, exist := global.RegistryCollections.Get(global.ColNames.Organizations)
	if !exist {
		return common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection organizations", common.StatusInternalServerError, nil)
	}
	count, err := orgCollection.CountDocuments(ctx, bson.M{"_id": organizationID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.NewNotFoundError("Organization")
	}
	return nil
}

// Create tạo mới một tòa nhà
func (s *BuildingService) Create(ctx context.Context, input *facilitydto.BuildingCreateInput) (models.MapBuilding, error) {
	var zero models.MapBuilding

	organizationID, err := primitive.ObjectIDFromHex(input.Organization)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	if err := s.validateReferences(ctx, organizationID); err != nil {
		return zero, err
	}

	building := models.MapBuilding{
		Organization: organizationID,
		Name:         strings.TrimSpace(input.Name),
		Code:         strings.TrimSpace(input.Code),
		Address:      strings.TrimSpace(input.Address),
		FloorCount:   0,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, building)
}

// Update cập nhật một tòa nhà (partial update; organization không đổi được)
func (s *BuildingService) Update(ctx context.Context, id primitive.ObjectID, input *facilitydto.BuildingUpdateInput) (models.MapBuilding, error) {
	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.Name != "" {
		update.Set["name"] = strings.TrimSpace(input.Name)
	}
	if input.Code != "" {
		update.Set["code"] = strings.TrimSpace(input.Code)
	}
	if input.Address != "" {
		update.Set["address"] = strings.TrimSpace(input.Address)
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// List trả về danh sách tòa nhà có phân trang
func (s *BuildingService) List(ctx context.Context, query BuildingListQuery, page, limit int64) (*basemodels.PaginateResult[models.MapBuilding], error) {
	filter := bson.M{}
	if query.Organization != "" {
		organizationID, err := primitive.ObjectIDFromHex(query.Organization)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		filter["organization"] = organizationID
	}
	if query.Search != "" {
		rx := utility.SearchRegex(query.Search)
		filter["$or"] = []bson.M{
			{"name": rx},
			{"code": rx},
		}
	}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
}

// Delete xóa một tòa nhà.
// Relationship tag trên model chặn xóa khi còn tầng hoặc sơ đồ tầng tham chiếu.
func (s *BuildingService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// activeFloorFilter là filter đếm tầng của floorCount: chỉ tầng isActive=true.
func activeFloorFilter(buildingID primitive.ObjectID) bson.M {
	return bson.M{"building": buildingID, "isActive": true}
}

// RecomputeFloorCount tính lại floorCount = count(tầng isActive=true của tòa nhà).
// Tính lại bằng count query sau mỗi thay đổi tầng, không tăng giảm counter, để tránh drift.
func (s *BuildingService) RecomputeFloorCount(ctx context.Context, buildingID primitive.ObjectID) error {
	floorCollection, exist := global.RegistryCollections.Get(global.ColNames.MapFloors)
	if !exist {
		return common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection map floors", common.StatusInternalServerError, nil)
	}
	count, err := floorCollection.CountDocuments(ctx, activeFloorFilter(buildingID))
	if err != nil {
		return common.ConvertMongoError(err)
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"floorCount": count}}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, buildingID, update)
	return err
}

// SetDefaultFloor trỏ building.defaultFloor tới tầng được chọn
func (s *BuildingService) SetDefaultFloor(ctx context.Context, buildingID, floorID primitive.ObjectID) error {
	update := &basesvc.UpdateData{Set: map[string]interface{}{"defaultFloor": floorID}}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, buildingID, update)
	return err
}
