package editorsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/models"
	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	facilitymodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/models"
	planmodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/utility"
)

// DocumentService service generic cho các thực thể map-editor.
// T là model, PT là con trỏ tới model thỏa EditorDocument.
type DocumentService[T any, PT EditorDocument[T]] struct {
	*basesvc.BaseServiceMongoImpl[T]
	planBase       *basesvc.BaseServiceMongoImpl[planmodels.FloorPlan]
	floorBase      *basesvc.BaseServiceMongoImpl[facilitymodels.MapFloor]
	entityName     string
	validateCreate CreateValidator[T]
	validateUpdate UpdateValidator[T]
}

// NewDocumentService tạo DocumentService cho một collection editor.
// validateCreate/validateUpdate nil nghĩa là loại đó không có ràng buộc riêng.
func NewDocumentService[T any, PT EditorDocument[T]](collectionName, entityName string, validateCreate CreateValidator[T], validateUpdate UpdateValidator[T]) (*DocumentService[T, PT], error) {
	collection, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", collectionName, common.ErrNotFound)
	}
	planCollection, exist := global.RegistryCollections.Get(global.ColNames.FloorPlans)
	if !exist {
		return nil, fmt.Errorf("failed to get floor plans collection: %v", common.ErrNotFound)
	}
	floorCollection, exist := global.RegistryCollections.Get(global.ColNames.MapFloors)
	if !exist {
		return nil, fmt.Errorf("failed to get map floors collection: %v", common.ErrNotFound)
	}

	return &DocumentService[T, PT]{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[T](collection),
		planBase:             basesvc.NewBaseServiceMongo[planmodels.FloorPlan](planCollection),
		floorBase:            basesvc.NewBaseServiceMongo[facilitymodels.MapFloor](floorCollection),
		entityName:           entityName,
		validateCreate:       validateCreate,
		validateUpdate:       validateUpdate,
	}, nil
}

// validateReferences là điểm kiểm tra tham chiếu duy nhất: sơ đồ tầng phải tồn tại
func (s *DocumentService[T, PT]) validateReferences(ctx context.Context, planID primitive.ObjectID) error {
	exists, err := s.planBase.DocumentExists(ctx, bson.M{"_id": planID})
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFoundError("Floor plan")
	}
	return nil
}

// populateSummary gắn thông tin sơ đồ tầng vào document lúc đọc
func (s *DocumentService[T, PT]) populateSummary(ctx context.Context, doc PT) {
	plan, err := s.planBase.FindOneById(ctx, doc.GetFloorPlan())
	if err != nil {
		return
	}
	summary := &models.FloorPlanSummary{ID: plan.ID, Title: plan.Name}
	if floor, err := s.floorBase.FindOneById(ctx, plan.Floor); err == nil {
		summary.FloorLabel = floor.Name
	}
	doc.SetFloorPlanSummary(summary)
}

// Create tạo mới một thực thể editor
func (s *DocumentService[T, PT]) Create(ctx context.Context, doc PT, actorID primitive.ObjectID) (T, error) {
	var zero T

	if err := s.validateReferences(ctx, doc.GetFloorPlan()); err != nil {
		return zero, err
	}
	if s.validateCreate != nil {
		if err := s.validateCreate((*T)(doc)); err != nil {
			return zero, err
		}
	}
	doc.StampCreated(actorID)

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, *doc)
	if err != nil {
		return zero, err
	}
	s.populateSummary(ctx, PT(&created))
	return created, nil
}

// GetById trả về một thực thể kèm thông tin sơ đồ tầng
func (s *DocumentService[T, PT]) GetById(ctx context.Context, id primitive.ObjectID) (T, error) {
	var zero T
	found, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			return zero, common.NewNotFoundError(s.entityName)
		}
		return zero, err
	}
	s.populateSummary(ctx, PT(&found))
	return found, nil
}

// Update cập nhật một thực thể theo patch đã dựng sẵn từ DTO.
// Chuỗi rỗng trên field tùy chọn được hiểu là xóa field đó khỏi document.
func (s *DocumentService[T, PT]) Update(ctx context.Context, id primitive.ObjectID, patch map[string]interface{}, actorID primitive.ObjectID) (T, error) {
	var zero T

	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			return zero, common.NewNotFoundError(s.entityName)
		}
		return zero, err
	}
	if s.validateUpdate != nil {
		if err := s.validateUpdate(&existing, patch); err != nil {
			return zero, err
		}
	}

	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	for key, value := range patch {
		if str, ok := value.(string); ok && str == "" {
			if update.Unset == nil {
				update.Unset = make(map[string]interface{})
			}
			update.Unset[key] = ""
			continue
		}
		update.Set[key] = value
	}
	update.Set["updatedBy"] = actorID

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	if err != nil {
		return zero, err
	}
	s.populateSummary(ctx, PT(&updated))
	return updated, nil
}

// buildEditorListFilter dựng filter Mongo từ điều kiện lọc danh sách.
// Search khớp substring không phân biệt hoa thường trên name, category và description.
// Không truyền isActive thì mặc định chỉ lấy bản ghi đang hoạt động.
func buildEditorListFilter(query EditorListQuery) (bson.M, error) {
	filter := bson.M{}
	if query.FloorPlan != "" {
		planID, err := primitive.ObjectIDFromHex(query.FloorPlan)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		filter["floorPlan"] = planID
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Type != "" {
		filter["type"] = query.Type
	}
	if query.Search != "" {
		rx := utility.SearchRegex(query.Search)
		filter["$or"] = []bson.M{
			{"name": rx},
			{"category": rx},
			{"description": rx},
		}
	}
	if !query.All {
		if query.IsActive != nil {
			filter["isActive"] = *query.IsActive
		} else {
			filter["isActive"] = true
		}
	}
	return filter, nil
}

// List trả về danh sách thực thể có phân trang, mặc định chỉ lấy bản ghi đang hoạt động
func (s *DocumentService[T, PT]) List(ctx context.Context, query EditorListQuery, page, limit int64) (*basemodels.PaginateResult[T], error) {
	filter, err := buildEditorListFilter(query)
	if err != nil {
		return nil, err
	}

	result, err := s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
	if err != nil {
		return nil, err
	}
	for i := range result.Items {
		s.populateSummary(ctx, PT(&result.Items[i]))
	}
	return result, nil
}

// Delete xóa vật lý một thực thể editor
func (s *DocumentService[T, PT]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		if common.IsNotFound(err) {
			return common.NewNotFoundError(s.entityName)
		}
		return err
	}
	return nil
}

// DeleteByFloorPlan xóa toàn bộ thực thể thuộc một sơ đồ tầng
func (s *DocumentService[T, PT]) DeleteByFloorPlan(ctx context.Context, planID primitive.ObjectID) (int64, error) {
	return s.BaseServiceMongoImpl.DeleteMany(ctx, bson.M{"floorPlan": planID})
}
