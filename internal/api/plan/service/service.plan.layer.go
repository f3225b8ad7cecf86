package plansvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/models"
	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	plandto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/utility"
)

// LayerListQuery các điều kiện lọc cho danh sách layer
type LayerListQuery struct {
	FloorPlanVersion string // Lọc theo phiên bản sơ đồ
	Type             string // Lọc theo loại layer
	Search           string // Tìm kiếm không phân biệt hoa thường trên name
}

// LayerService là cấu trúc chứa các phương thức liên quan đến layer
type LayerService struct {
	*basesvc.BaseServiceMongoImpl[models.MapLayer]
	versionCollectionName string
}

// NewLayerService tạo mới LayerService
func NewLayerService() (*LayerService, error) {
	layerCollection, exist := global.RegistryCollections.Get(global.ColNames.MapLayers)
	if !exist {
		return nil, fmt.Errorf("failed to get map layers collection: %v", common.ErrNotFound)
	}

	return &LayerService{
		BaseServiceMongoImpl:  basesvc.NewBaseServiceMongo[models.MapLayer](layerCollection),
		versionCollectionName: global.ColNames.FloorPlanVersions,
	}, nil
}

// validateReferences là điểm kiểm tra tham chiếu duy nhất của MapLayer:
// phiên bản sơ đồ phải tồn tại.
func (s *LayerService) validateReferences(ctx context.Context, versionID primitive.ObjectID) error {
	versionCollection, exist := global.RegistryCollections.Get(s.versionCollectionName)
	if !exist {
		return common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection floor plan versions", common.StatusInternalServerError, nil)
	}
	count, err := versionCollection.CountDocuments(ctx, bson.M{"_id": versionID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.NewNotFoundError("Floor plan version")
	}
	return nil
}

// Create tạo mới một layer
func (s *LayerService) Create(ctx context.Context, input *plandto.LayerCreateInput) (models.MapLayer, error) {
	var zero models.MapLayer

	versionID, err := primitive.ObjectIDFromHex(input.FloorPlanVersion)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if err := s.validateReferences(ctx, versionID); err != nil {
		return zero, err
	}

	layer := models.MapLayer{
		FloorPlanVersion: versionID,
		Name:             strings.TrimSpace(input.Name),
		Type:             input.Type,
		Order:            input.Order,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, layer)
}

// Update cập nhật một layer (partial update)
func (s *LayerService) Update(ctx context.Context, id primitive.ObjectID, input *plandto.LayerUpdateInput) (models.MapLayer, error) {
	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.Name != "" {
		update.Set["name"] = strings.TrimSpace(input.Name)
	}
	if input.Type != "" {
		update.Set["type"] = input.Type
	}
	if input.Order != nil {
		update.Set["order"] = *input.Order
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// List trả về danh sách layer có phân trang, sắp xếp theo order tăng dần
func (s *LayerService) List(ctx context.Context, query LayerListQuery, page, limit int64) (*basemodels.PaginateResult[models.MapLayer], error) {
	filter := bson.M{}
	if query.FloorPlanVersion != "" {
		versionID, err := primitive.ObjectIDFromHex(query.FloorPlanVersion)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		filter["floorPlanVersion"] = versionID
	}
	if query.Type != "" {
		filter["type"] = query.Type
	}
	if query.Search != "" {
		filter["name"] = utility.SearchRegex(query.Search)
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, opts)
}

// Delete xóa một layer. Relationship tag trên model chặn xóa khi còn phần tử.
func (s *LayerService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// RecomputeElementCounts tính lại cache số lượng phần tử của một layer
func (s *LayerService) RecomputeElementCounts(ctx context.Context, layerID primitive.ObjectID) error {
	elementCollection, exist := global.RegistryCollections.Get(global.ColNames.MapElements)
	if !exist {
		return common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection map elements", common.StatusInternalServerError, nil)
	}

	total, err := elementCollection.CountDocuments(ctx, bson.M{"layer": layerID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	draft, err := elementCollection.CountDocuments(ctx, bson.M{"layer": layerID, "status": "Draft"})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	published, err := elementCollection.CountDocuments(ctx, bson.M{"layer": layerID, "status": "Active"})
	if err != nil {
		return common.ConvertMongoError(err)
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"elementCounts": models.ElementCounts{
			Total:     int(total),
			Draft:     int(draft),
			Published: int(published),
		},
	}}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, layerID, update)
	return err
}
