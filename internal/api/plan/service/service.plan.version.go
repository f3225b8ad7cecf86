package plansvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/models"
	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	plandto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/logger"
)

// VersionService là cấu trúc chứa các phương thức liên quan đến FloorPlanVersion
type VersionService struct {
	*basesvc.BaseServiceMongoImpl[models.FloorPlanVersion]
	planBase *basesvc.BaseServiceMongoImpl[models.FloorPlan]
}

// NewVersionService tạo mới VersionService
func NewVersionService() (*VersionService, error) {
	versionCollection, exist := global.RegistryCollections.Get(global.ColNames.FloorPlanVersions)
	if !exist {
		return nil, fmt.Errorf("failed to get floor plan versions collection: %v", common.ErrNotFound)
	}
	planCollection, exist := global.RegistryCollections.Get(global.ColNames.FloorPlans)
	if !exist {
		return nil, fmt.Errorf("failed to get floor plans collection: %v", common.ErrNotFound)
	}

	return &VersionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.FloorPlanVersion](versionCollection),
		planBase:             basesvc.NewBaseServiceMongo[models.FloorPlan](planCollection),
	}, nil
}

// ListByPlan trả về danh sách phiên bản của một sơ đồ tầng, mới nhất trước
func (s *VersionService) ListByPlan(ctx context.Context, planID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.FloorPlanVersion], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "versionNumber", Value: -1}})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, bson.M{"floorPlan": planID}, page, limit, opts)
}

// Create tạo phiên bản mới cho một sơ đồ tầng:
// versionNumber = plan.versionNumber + 1, status Draft, canvasSettings copy từ plan,
// sau đó cập nhật versionNumber và currentVersion trên plan.
func (s *VersionService) Create(ctx context.Context, planID primitive.ObjectID, input *plandto.VersionCreateInput, actorID primitive.ObjectID) (models.FloorPlanVersion, error) {
	var zero models.FloorPlanVersion

	plan, err := s.planBase.FindOneById(ctx, planID)
	if err != nil {
		if common.IsNotFound(err) {
			return zero, common.NewNotFoundError("Floor plan")
		}
		return zero, err
	}
	if plan.Status == models.FloorPlanStatusArchived {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			"Không thể tạo phiên bản mới cho sơ đồ đã lưu trữ",
			common.StatusBadRequest,
			nil,
		)
	}

	newNumber := plan.VersionNumber + 1
	description := input.ChangeDescription
	if description == "" {
		description = fmt.Sprintf("Tạo phiên bản %d", newNumber)
	}

	version := models.FloorPlanVersion{
		FloorPlan:      planID,
		VersionNumber:  newNumber,
		Status:         models.VersionStatusDraft,
		CanvasSettings: plan.Settings,
		ChangeLog: []models.ChangeLogEntry{
			{Timestamp: time.Now().UnixMilli(), Actor: &actorID, Description: description},
		},
		CreatedBy: &actorID,
	}
	if input.File != nil {
		version.File = &models.FileMeta{
			Name:       input.File.Name,
			URL:        input.File.URL,
			Size:       input.File.Size,
			MimeType:   input.File.MimeType,
			UploadedAt: time.Now().UnixMilli(),
		}
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, version)
	if err != nil {
		return zero, err
	}

	planUpdate := &basesvc.UpdateData{Set: map[string]interface{}{
		"versionNumber":  newNumber,
		"currentVersion": created.ID,
	}}
	if _, err := s.planBase.UpdateById(ctx, planID, planUpdate); err != nil {
		return zero, err
	}

	logger.WithCollection(global.ColNames.FloorPlanVersions).
		WithField("floorPlan", planID.Hex()).
		WithField("versionNumber", newNumber).
		Info("Đã tạo phiên bản sơ đồ mới")

	return created, nil
}

// ensureVersionOwnedBy chặn truy cập phiên bản qua sai sơ đồ: versionId lồng dưới
// /floor-plans/:id phải thuộc đúng sơ đồ đó, sai thì coi như phiên bản không tồn tại.
func ensureVersionOwnedBy(version models.FloorPlanVersion, planID primitive.ObjectID) error {
	if version.FloorPlan != planID {
		return common.NewNotFoundError("Floor plan version")
	}
	return nil
}

// Update cập nhật nội dung một phiên bản chưa kết thúc.
// Phiên bản Published/Archived là bất biến, mọi chỉnh sửa bị từ chối.
func (s *VersionService) Update(ctx context.Context, planID, versionID primitive.ObjectID, input *plandto.VersionUpdateInput, actorID primitive.ObjectID) (models.FloorPlanVersion, error) {
	var zero models.FloorPlanVersion

	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, versionID)
	if err != nil {
		return zero, err
	}
	if err := ensureVersionOwnedBy(existing, planID); err != nil {
		return zero, err
	}
	if models.IsTerminalVersionStatus(existing.Status) {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Phiên bản ở trạng thái '%s' không thể chỉnh sửa", existing.Status),
			common.StatusBadRequest,
			nil,
		)
	}

	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.File != nil {
		update.Set["file"] = models.FileMeta{
			Name:       input.File.Name,
			URL:        input.File.URL,
			Size:       input.File.Size,
			MimeType:   input.File.MimeType,
			UploadedAt: time.Now().UnixMilli(),
		}
	}
	if input.ChangeDescription != "" {
		update.Push = map[string]interface{}{
			"changeLog": models.ChangeLogEntry{
				Timestamp:   time.Now().UnixMilli(),
				Actor:       &actorID,
				Description: input.ChangeDescription,
			},
		}
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, versionID, update)
}

// UpdateStatus chuyển trạng thái một phiên bản theo máy trạng thái.
// Chuyển sang Published đồng bộ luôn publishedVersion/lastPublishedAt/status trên plan.
func (s *VersionService) UpdateStatus(ctx context.Context, planID, versionID primitive.ObjectID, input *plandto.VersionStatusInput, actorID primitive.ObjectID) (models.FloorPlanVersion, error) {
	var zero models.FloorPlanVersion

	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, versionID)
	if err != nil {
		return zero, err
	}
	if err := ensureVersionOwnedBy(existing, planID); err != nil {
		return zero, err
	}

	if !models.CanTransitionVersionStatus(existing.Status, input.Status) {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển phiên bản từ trạng thái '%s' sang '%s'", existing.Status, input.Status),
			common.StatusBadRequest,
			nil,
		)
	}

	description := input.ChangeDescription
	if description == "" {
		description = fmt.Sprintf("Chuyển trạng thái từ '%s' sang '%s'", existing.Status, input.Status)
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": input.Status},
		Push: map[string]interface{}{
			"changeLog": models.ChangeLogEntry{
				Timestamp:   time.Now().UnixMilli(),
				Actor:       &actorID,
				Description: description,
			},
		},
	}
	if input.Status == models.VersionStatusPublished {
		update.Set["publishedAt"] = time.Now().UnixMilli()
		update.Set["publishedBy"] = actorID
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, versionID, update)
	if err != nil {
		return zero, err
	}

	if input.Status == models.VersionStatusPublished {
		if err := s.markPlanPublished(ctx, existing.FloorPlan, versionID); err != nil {
			return zero, err
		}
	}

	return updated, nil
}

// markPlanPublished cập nhật plan sau khi một phiên bản được publish:
// status=Published, lastPublishedAt=now, publishedVersion=version.
// currentVersion giữ nguyên, tiếp tục trỏ tới bản draft mới nhất.
func (s *VersionService) markPlanPublished(ctx context.Context, planID, versionID primitive.ObjectID) error {
	update := &basesvc.UpdateData{Set: map[string]interface{}{
		"status":           models.FloorPlanStatusPublished,
		"lastPublishedAt":  time.Now().UnixMilli(),
		"publishedVersion": versionID,
	}}
	_, err := s.planBase.UpdateById(ctx, planID, update)
	return err
}

// Publish publish phiên bản hiện tại (currentVersion) của một sơ đồ tầng
func (s *VersionService) Publish(ctx context.Context, planID primitive.ObjectID, actorID primitive.ObjectID) (models.FloorPlanVersion, error) {
	var zero models.FloorPlanVersion

	plan, err := s.planBase.FindOneById(ctx, planID)
	if err != nil {
		if common.IsNotFound(err) {
			return zero, common.NewNotFoundError("Floor plan")
		}
		return zero, err
	}
	if plan.CurrentVersion == nil || plan.CurrentVersion.IsZero() {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			"Sơ đồ chưa có phiên bản nào để publish",
			common.StatusBadRequest,
			nil,
		)
	}

	return s.UpdateStatus(ctx, planID, *plan.CurrentVersion, &plandto.VersionStatusInput{
		Status:            models.VersionStatusPublished,
		ChangeDescription: fmt.Sprintf("Publish phiên bản %d", plan.VersionNumber),
	}, actorID)
}
