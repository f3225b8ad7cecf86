package editorsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	editordto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
)

// PreferencesService là cấu trúc chứa các phương thức liên quan đến tuỳ chọn editor
type PreferencesService struct {
	*basesvc.BaseServiceMongoImpl[models.MapEditorPreferences]
}

// NewPreferencesService tạo mới PreferencesService
func NewPreferencesService() (*PreferencesService, error) {
	preferencesCollection, exist := global.RegistryCollections.Get(global.ColNames.MapEditorPreferences)
	if !exist {
		return nil, fmt.Errorf("failed to get map editor preferences collection: %v", common.ErrNotFound)
	}

	return &PreferencesService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MapEditorPreferences](preferencesCollection),
	}, nil
}

// GetOrCreate trả về tuỳ chọn của người dùng, tạo mới với giá trị mặc định nếu chưa có
func (s *PreferencesService) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (models.MapEditorPreferences, error) {
	var zero models.MapEditorPreferences

	existing, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"user": userID}, nil)
	if err == nil {
		return existing, nil
	}
	if !common.IsNotFound(err) {
		return zero, err
	}

	preferences := models.MapEditorPreferences{
		User:            userID,
		LayerVisibility: models.DefaultLayerVisibility(),
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, preferences)
	if err != nil {
		// Request song song có thể đã tạo trước, đọc lại
		if errors.Is(err, common.ErrDuplicate) {
			return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"user": userID}, nil)
		}
		return zero, err
	}
	return created, nil
}

// Update cập nhật tuỳ chọn của người dùng.
// layerVisibility và properties merge nông vào giá trị hiện có, không thay thế toàn bộ.
func (s *PreferencesService) Update(ctx context.Context, userID primitive.ObjectID, input *editordto.PreferencesUpdateInput) (models.MapEditorPreferences, error) {
	var zero models.MapEditorPreferences

	existing, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.GridSize != nil {
		update.Set["gridSize"] = *input.GridSize
	}
	if input.LayerVisibility != nil {
		merged := make(map[string]bool, len(existing.LayerVisibility)+len(input.LayerVisibility))
		for key, visible := range existing.LayerVisibility {
			merged[key] = visible
		}
		for key, visible := range input.LayerVisibility {
			merged[key] = visible
		}
		update.Set["layerVisibility"] = merged
	}
	if input.Properties != nil {
		merged := make(map[string]interface{}, len(existing.Properties)+len(input.Properties))
		for key, value := range existing.Properties {
			merged[key] = value
		}
		for key, value := range input.Properties {
			merged[key] = value
		}
		update.Set["properties"] = merged
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, existing.ID, update)
}

// Reset đưa tuỳ chọn của người dùng về giá trị mặc định
func (s *PreferencesService) Reset(ctx context.Context, userID primitive.ObjectID) (models.MapEditorPreferences, error) {
	var zero models.MapEditorPreferences

	existing, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"layerVisibility": models.DefaultLayerVisibility(),
			"gridSize":        10,
		},
		Unset: map[string]interface{}{"properties": ""},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, existing.ID, update)
}
