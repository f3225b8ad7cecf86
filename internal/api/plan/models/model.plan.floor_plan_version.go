package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VersionStatus các trạng thái của phiên bản sơ đồ tầng
const (
	VersionStatusDraft           = "Draft"
	VersionStatusInReview        = "In Review"
	VersionStatusReadyForPublish = "Ready For Publish"
	VersionStatusPublished       = "Published"
	VersionStatusArchived        = "Archived"
)

// versionTransitions khai báo máy trạng thái:
// Draft → In Review → Ready For Publish → Published; Archived từ mọi trạng thái chưa kết thúc.
var versionTransitions = map[string][]string{
	VersionStatusDraft:           {VersionStatusInReview, VersionStatusArchived},
	VersionStatusInReview:        {VersionStatusReadyForPublish, VersionStatusDraft, VersionStatusArchived},
	VersionStatusReadyForPublish: {VersionStatusPublished, VersionStatusInReview, VersionStatusArchived},
	VersionStatusPublished:       {},
	VersionStatusArchived:        {},
}

// CanTransitionVersionStatus kiểm tra chuyển trạng thái from → to có hợp lệ không
func CanTransitionVersionStatus(from, to string) bool {
	allowed, ok := versionTransitions[from]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == to {
			return true
		}
	}
	return false
}

// IsTerminalVersionStatus kiểm tra trạng thái có phải trạng thái kết thúc không.
// Phiên bản ở trạng thái kết thúc không nhận chỉnh sửa nào nữa.
func IsTerminalVersionStatus(status string) bool {
	return status == VersionStatusPublished || status == VersionStatusArchived
}

// ChangeLogEntry một dòng trong nhật ký thay đổi của phiên bản (append-only)
type ChangeLogEntry struct {
	Timestamp   int64               `json:"timestamp" bson:"timestamp"`
	Actor       *primitive.ObjectID `json:"actor,omitempty" bson:"actor,omitempty"`
	Description string              `json:"description" bson:"description"`
}

// FloorPlanVersion là snapshot của một FloorPlan tại một thời điểm.
// Bất biến sau khi Published (chặn ở service layer, không phải ràng buộc DB).
type FloorPlanVersion struct {
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	FloorPlan      primitive.ObjectID  `json:"floorPlan" bson:"floorPlan" index:"single:1;compound:version_number_unique"`
	VersionNumber  int                 `json:"versionNumber" bson:"versionNumber" index:"compound:version_number_unique"`
	Status         string              `json:"status" bson:"status" index:"single:1" default:"Draft"`
	File           *FileMeta           `json:"file,omitempty" bson:"file,omitempty"`
	Stats          PlanStats           `json:"stats" bson:"stats"`
	CanvasSettings PlanSettings        `json:"canvasSettings" bson:"canvasSettings"`
	ChangeLog      []ChangeLogEntry    `json:"changeLog" bson:"changeLog"`
	PublishedAt    int64               `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	PublishedBy    *primitive.ObjectID `json:"publishedBy,omitempty" bson:"publishedBy,omitempty"`
	CreatedBy      *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt      int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64               `json:"updatedAt" bson:"updatedAt"`
}
