// Package plansvc - service cho domain plan (FloorPlan, FloorPlanVersion, MapLayer, Settings).
package plansvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	plandto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
)

// SettingsService là cấu trúc chứa các phương thức liên quan đến MapManagerSettings
type SettingsService struct {
	*basesvc.BaseServiceMongoImpl[models.MapManagerSettings]
}

// NewSettingsService tạo mới SettingsService
func NewSettingsService() (*SettingsService, error) {
	settingsCollection, exist := global.RegistryCollections.Get(global.ColNames.MapManagerSettings)
	if !exist {
		return nil, fmt.Errorf("failed to get map manager settings collection: %v", common.ErrNotFound)
	}

	return &SettingsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MapManagerSettings](settingsCollection),
	}, nil
}

// GetOrCreateByOrganization trả về settings của tổ chức, tạo mới với giá trị
// mặc định (từ default tag trên model) nếu chưa có.
func (s *SettingsService) GetOrCreateByOrganization(ctx context.Context, organizationID primitive.ObjectID) (models.MapManagerSettings, error) {
	var zero models.MapManagerSettings

	existing, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"organization": organizationID}, nil)
	if err == nil {
		return existing, nil
	}
	if !common.IsNotFound(err) {
		return zero, err
	}

	settings := models.MapManagerSettings{Organization: organizationID}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, settings)
	if err != nil {
		// Request song song có thể đã tạo trước, đọc lại
		if errors.Is(err, common.ErrDuplicate) {
			return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"organization": organizationID}, nil)
		}
		return zero, err
	}
	return created, nil
}

// Update cập nhật settings của tổ chức (partial update, tạo mới trước nếu chưa có)
func (s *SettingsService) Update(ctx context.Context, organizationID primitive.ObjectID, input *plandto.SettingsUpdateInput) (models.MapManagerSettings, error) {
	var zero models.MapManagerSettings

	existing, err := s.GetOrCreateByOrganization(ctx, organizationID)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.GridSize != nil {
		update.Set["gridSize"] = *input.GridSize
	}
	if input.GridUnit != nil {
		update.Set["gridUnit"] = *input.GridUnit
	}
	if input.SnapToGrid != nil {
		update.Set["snapToGrid"] = *input.SnapToGrid
	}
	if input.ShowGrid != nil {
		update.Set["showGrid"] = *input.ShowGrid
	}
	if input.DefaultZoom != nil {
		update.Set["defaultZoom"] = *input.DefaultZoom
	}
	if input.AutoPublish != nil {
		update.Set["autoPublish"] = *input.AutoPublish
	}
	if input.VersionControlEnabled != nil {
		update.Set["versionControlEnabled"] = *input.VersionControlEnabled
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, existing.ID, update)
}
