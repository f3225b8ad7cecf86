package editorsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/models"
	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	editordto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	planmodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
	plansvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/service"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/utility"
)

// ElementListQuery các điều kiện lọc cho danh sách map element
type ElementListQuery struct {
	FloorPlanVersion string // Lọc theo phiên bản sơ đồ
	Layer            string // Lọc theo layer
	Type             string // Lọc theo loại phần tử
	Status           string // Lọc theo trạng thái
	Search           string // Tìm kiếm không phân biệt hoa thường trên name
}

// MapElementService là cấu trúc chứa các phương thức liên quan đến map element tổng quát
type MapElementService struct {
	*basesvc.BaseServiceMongoImpl[models.MapElement]
	versionBase  *basesvc.BaseServiceMongoImpl[planmodels.FloorPlanVersion]
	layerBase    *basesvc.BaseServiceMongoImpl[planmodels.MapLayer]
	layerService *plansvc.LayerService
}

// NewMapElementService tạo mới MapElementService
func NewMapElementService() (*MapElementService, error) {
	elementCollection, exist := global.RegistryCollections.Get(global.ColNames.MapElements)
	if !exist {
		return nil, fmt.Errorf("failed to get map elements collection: %v", common.ErrNotFound)
	}
	versionCollection, exist := global.RegistryCollections.Get(global.ColNames.FloorPlanVersions)
	if !exist {
		return nil, fmt.Errorf("failed to get floor plan versions collection: %v", common.ErrNotFound)
	}
	layerCollection, exist := global.RegistryCollections.Get(global.ColNames.MapLayers)
	if !exist {
		return nil, fmt.Errorf("failed to get map layers collection: %v", common.ErrNotFound)
	}

	layerService, err := plansvc.NewLayerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create layer service: %v", err)
	}

	return &MapElementService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MapElement](elementCollection),
		versionBase:          basesvc.NewBaseServiceMongo[planmodels.FloorPlanVersion](versionCollection),
		layerBase:            basesvc.NewBaseServiceMongo[planmodels.MapLayer](layerCollection),
		layerService:         layerService,
	}, nil
}

// elementRecountTargets trả về các layer cần tính lại elementCounts sau một thay đổi:
// phần tử đổi layer thì cả layer cũ lẫn layer mới, đổi trạng thái thì layer hiện tại.
func elementRecountTargets(oldLayer, newLayer *primitive.ObjectID, statusChanged bool) []primitive.ObjectID {
	if oldLayer != nil && newLayer != nil && *oldLayer == *newLayer {
		if statusChanged {
			return []primitive.ObjectID{*newLayer}
		}
		return nil
	}
	var targets []primitive.ObjectID
	if oldLayer != nil {
		targets = append(targets, *oldLayer)
	}
	if newLayer != nil {
		targets = append(targets, *newLayer)
	}
	return targets
}

// recountLayers tính lại cache elementCounts cho từng layer bị ảnh hưởng
func (s *MapElementService) recountLayers(ctx context.Context, layerIDs []primitive.ObjectID) error {
	for _, layerID := range layerIDs {
		if err := s.layerService.RecomputeElementCounts(ctx, layerID); err != nil {
			return err
		}
	}
	return nil
}

// validateReferences là điểm kiểm tra tham chiếu duy nhất của MapElement:
// phiên bản tồn tại, và nếu gán layer thì layer phải thuộc cùng phiên bản.
func (s *MapElementService) validateReferences(ctx context.Context, versionID primitive.ObjectID, layerID *primitive.ObjectID) error {
	exists, err := s.versionBase.DocumentExists(ctx, bson.M{"_id": versionID})
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFoundError("Floor plan version")
	}

	if layerID == nil {
		return nil
	}
	layer, err := s.layerBase.FindOneById(ctx, *layerID)
	if err != nil {
		if common.IsNotFound(err) {
			return common.NewNotFoundError("Layer")
		}
		return err
	}
	if layer.FloorPlanVersion != versionID {
		return common.NewReferenceError("Layer không thuộc phiên bản sơ đồ của phần tử")
	}
	return nil
}

// Create tạo mới một map element
func (s *MapElementService) Create(ctx context.Context, input *editordto.ElementCreateInput, actorID primitive.ObjectID) (models.MapElement, error) {
	var zero models.MapElement

	versionID, err := primitive.ObjectIDFromHex(input.FloorPlanVersion)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	var layerID *primitive.ObjectID
	if input.Layer != "" {
		parsed, err := primitive.ObjectIDFromHex(input.Layer)
		if err != nil {
			return zero, common.ErrInvalidFormat
		}
		layerID = &parsed
	}

	if err := s.validateReferences(ctx, versionID, layerID); err != nil {
		return zero, err
	}

	element := models.MapElement{
		FloorPlanVersion: versionID,
		Layer:            layerID,
		Name:             strings.TrimSpace(input.Name),
		Type:             input.Type,
		Status:           input.Status,
		Geometry:         input.Geometry,
		CanvasGeometry:   input.CanvasGeometry,
		Properties:       input.Properties,
		Tags:             input.Tags,
		CreatedBy:        &actorID,
		UpdatedBy:        &actorID,
	}
	if element.Tags == nil {
		element.Tags = []string{}
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, element)
	if err != nil {
		return zero, err
	}
	if created.Layer != nil {
		if err := s.recountLayers(ctx, []primitive.ObjectID{*created.Layer}); err != nil {
			return zero, err
		}
	}
	return created, nil
}

// Update cập nhật một map element (partial update).
// Layer gửi chuỗi rỗng sẽ gỡ phần tử ra khỏi layer hiện tại.
func (s *MapElementService) Update(ctx context.Context, id primitive.ObjectID, input *editordto.ElementUpdateInput, actorID primitive.ObjectID) (models.MapElement, error) {
	var zero models.MapElement

	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"updatedBy": actorID}}
	newLayer := existing.Layer
	if input.Layer != nil {
		if *input.Layer == "" {
			update.Unset = map[string]interface{}{"layer": ""}
			newLayer = nil
		} else {
			layerID, err := primitive.ObjectIDFromHex(*input.Layer)
			if err != nil {
				return zero, common.ErrInvalidFormat
			}
			if err := s.validateReferences(ctx, existing.FloorPlanVersion, &layerID); err != nil {
				return zero, err
			}
			update.Set["layer"] = layerID
			newLayer = &layerID
		}
	}
	if input.Name != "" {
		update.Set["name"] = strings.TrimSpace(input.Name)
	}
	if input.Type != "" {
		update.Set["type"] = input.Type
	}
	if input.Status != "" {
		update.Set["status"] = input.Status
	}
	if input.Geometry != nil {
		update.Set["geometry"] = input.Geometry
	}
	if input.CanvasGeometry != nil {
		update.Set["canvasGeometry"] = input.CanvasGeometry
	}
	if input.Properties != nil {
		update.Set["properties"] = input.Properties
	}
	if input.Tags != nil {
		update.Set["tags"] = input.Tags
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	if err != nil {
		return zero, err
	}

	statusChanged := input.Status != "" && input.Status != existing.Status
	if err := s.recountLayers(ctx, elementRecountTargets(existing.Layer, newLayer, statusChanged)); err != nil {
		return zero, err
	}
	return updated, nil
}

// List trả về danh sách map element có phân trang
func (s *MapElementService) List(ctx context.Context, query ElementListQuery, page, limit int64) (*basemodels.PaginateResult[models.MapElement], error) {
	filter := bson.M{}
	if query.FloorPlanVersion != "" {
		versionID, err := primitive.ObjectIDFromHex(query.FloorPlanVersion)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		filter["floorPlanVersion"] = versionID
	}
	if query.Layer != "" {
		layerID, err := primitive.ObjectIDFromHex(query.Layer)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		filter["layer"] = layerID
	}
	if query.Type != "" {
		filter["type"] = query.Type
	}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.Search != "" {
		filter["name"] = utility.SearchRegex(query.Search)
	}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
}

// Delete xóa vật lý một map element rồi tính lại elementCounts của layer chứa nó
func (s *MapElementService) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		return err
	}
	if existing.Layer != nil {
		return s.recountLayers(ctx, []primitive.ObjectID{*existing.Layer})
	}
	return nil
}
