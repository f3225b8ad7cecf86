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

// FloorListQuery các điều kiện lọc cho danh sách tầng
type FloorListQuery struct {
	Organization string // Lọc theo tổ chức
	Building     string // Lọc theo tòa nhà
	Search       string // Tìm kiếm không phân biệt hoa thường trên name
	IsActive     *bool  // nil = không lọc
}

// FloorService là cấu trúc chứa các phương thức liên quan đến tầng
type FloorService struct {
	*basesvc.BaseServiceMongoImpl[models.MapFloor]
	buildingService *BuildingService
}

// NewFloorService tạo mới FloorService
func NewFloorService() (*FloorService, error) {
	floorCollection, exist := global.RegistryCollections.Get(global.ColNames.MapFloors)
	if !exist {
		return nil, fmt.Errorf("failed to get map floors collection: %v", common.ErrNotFound)
	}

	buildingService, err := NewBuildingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create building service: %v", err)
	}

	return &FloorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MapFloor](floorCollection),
		buildingService:      buildingService,
	}, nil
}

// validateReferences là điểm kiểm tra tham chiếu duy nhất của MapFloor:
// organization tồn tại, building tồn tại và building thuộc đúng organization khai báo.
func (s *FloorService) validateReferences(ctx context.Context, organizationID, buildingID primitive.ObjectID) error {
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

	building, err := s.buildingService.FindOneById(ctx, buildingID)
	if err != nil {
		if common.IsNotFound(err) {
			return common.NewNotFoundError("Building")
		}
		return err
	}
	if building.Organization != organizationID {
		return common.NewReferenceError("Tòa nhà không thuộc tổ chức đã khai báo")
	}
	return nil
}

// applyDefaultFloor đặt tầng làm mặc định của tòa nhà:
// unset isDefault trên mọi tầng khác (một bulk update), rồi trỏ building.defaultFloor tới tầng này.
func (s *FloorService) applyDefaultFloor(ctx context.Context, buildingID, floorID primitive.ObjectID) error {
	unsetFilter := bson.M{
		"building": buildingID,
		"_id":      bson.M{"$ne": floorID},
		"isDefault": true,
	}
	unsetUpdate := &basesvc.UpdateData{Set: map[string]interface{}{"isDefault": false}}
	if _, err := s.BaseServiceMongoImpl.UpdateMany(ctx, unsetFilter, unsetUpdate, nil); err != nil {
		return err
	}
	return s.buildingService.SetDefaultFloor(ctx, buildingID, floorID)
}

// Create tạo mới một tầng
func (s *FloorService) Create(ctx context.Context, input *facilitydto.FloorCreateInput) (models.MapFloor, error) {
	var zero models.MapFloor

	organizationID, err := primitive.ObjectIDFromHex(input.Organization)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	buildingID, err := primitive.ObjectIDFromHex(input.Building)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	if err := s.validateReferences(ctx, organizationID, buildingID); err != nil {
		return zero, err
	}

	floor := models.MapFloor{
		Organization: organizationID,
		Building:     buildingID,
		Name:         strings.TrimSpace(input.Name),
		Sequence:     input.Sequence,
		IsDefault:    input.IsDefault,
		IsActive:     true,
	}
	if input.Level != nil {
		floor.Level = *input.Level
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, floor)
	if err != nil {
		return zero, err
	}

	if created.IsDefault {
		if err := s.applyDefaultFloor(ctx, buildingID, created.ID); err != nil {
			return zero, err
		}
	}
	if err := s.buildingService.RecomputeFloorCount(ctx, buildingID); err != nil {
		return zero, err
	}

	return created, nil
}

// Update cập nhật một tầng (partial update)
func (s *FloorService) Update(ctx context.Context, id primitive.ObjectID, input *facilitydto.FloorUpdateInput) (models.MapFloor, error) {
	var zero models.MapFloor

	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.Name != "" {
		update.Set["name"] = strings.TrimSpace(input.Name)
	}
	if input.Level != nil {
		update.Set["level"] = *input.Level
	}
	if input.Sequence != nil {
		update.Set["sequence"] = *input.Sequence
	}
	if input.IsDefault != nil {
		update.Set["isDefault"] = *input.IsDefault
	}
	if input.IsActive != nil {
		update.Set["isActive"] = *input.IsActive
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	if err != nil {
		return zero, err
	}

	if input.IsDefault != nil && *input.IsDefault {
		if err := s.applyDefaultFloor(ctx, existing.Building, id); err != nil {
			return zero, err
		}
	}
	if input.IsActive != nil {
		if err := s.buildingService.RecomputeFloorCount(ctx, existing.Building); err != nil {
			return zero, err
		}
	}

	return updated, nil
}

// List trả về danh sách tầng có phân trang
func (s *FloorService) List(ctx context.Context, query FloorListQuery, page, limit int64) (*basemodels.PaginateResult[models.MapFloor], error) {
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
	if query.IsActive != nil {
		filter["isActive"] = *query.IsActive
	}
	if query.Search != "" {
		filter["name"] = utility.SearchRegex(query.Search)
	}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
}

// Delete xóa một tầng, sau đó tính lại floorCount của tòa nhà.
// Relationship tag trên model chặn xóa khi còn sơ đồ tầng tham chiếu.
func (s *FloorService) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		return err
	}
	return s.buildingService.RecomputeFloorCount(ctx, existing.Building)
}
