// Package models - các entity thuộc domain plan (sơ đồ tầng, phiên bản, layer, settings).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FloorPlanStatus các trạng thái của sơ đồ tầng
const (
	FloorPlanStatusDraft     = "Draft"
	FloorPlanStatusNew       = "New"
	FloorPlanStatusBuilding  = "Building"
	FloorPlanStatusPublished = "Published"
	FloorPlanStatusArchived  = "Archived"
)

// FileMeta metadata của file bản vẽ đính kèm
type FileMeta struct {
	Name       string `json:"name" bson:"name"`
	URL        string `json:"url" bson:"url"`
	Size       int64  `json:"size" bson:"size"`
	MimeType   string `json:"mimeType" bson:"mimeType"`
	UploadedAt int64  `json:"uploadedAt" bson:"uploadedAt"`
}

// PlanStats cache thống kê số lượng phần tử trên sơ đồ
type PlanStats struct {
	ElementCount int `json:"elementCount" bson:"elementCount"`
	LayerCount   int `json:"layerCount" bson:"layerCount"`
	POICount     int `json:"poiCount" bson:"poiCount"`
}

// PlanSettings cấu hình canvas của sơ đồ (copy từ MapManagerSettings khi tạo mới)
type PlanSettings struct {
	GridSize              int    `json:"gridSize" bson:"gridSize"`
	GridUnit              string `json:"gridUnit" bson:"gridUnit"`
	SnapToGrid            bool   `json:"snapToGrid" bson:"snapToGrid"`
	ShowGrid              bool   `json:"showGrid" bson:"showGrid"`
	DefaultZoom           int    `json:"defaultZoom" bson:"defaultZoom"`
	AutoPublish           bool   `json:"autoPublish" bson:"autoPublish"`
	VersionControlEnabled bool   `json:"versionControlEnabled" bson:"versionControlEnabled"`
}

// FloorPlan đại diện một sơ đồ tầng, được version hóa theo thời gian.
// currentVersion trỏ tới bản draft mới nhất đang chỉnh sửa; publishedVersion trỏ tới
// bản đã publish — hai con trỏ này có thể khác nhau.
// Xóa sơ đồ là lưu trữ (status=Archived), không bao giờ xóa vật lý.
type FloorPlan struct {
	ID               primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Organization     primitive.ObjectID  `json:"organization" bson:"organization" index:"single:1;compound:plan_name_unique"`
	Building         primitive.ObjectID  `json:"building" bson:"building" index:"single:1;compound:plan_name_unique"`
	Floor            primitive.ObjectID  `json:"floor" bson:"floor" index:"single:1;compound:plan_name_unique"`
	Name             string              `json:"name" bson:"name" index:"compound:plan_name_unique"`
	Status           string              `json:"status" bson:"status" index:"single:1" default:"Draft"`
	File             *FileMeta           `json:"file,omitempty" bson:"file,omitempty"`
	Preview          string              `json:"preview,omitempty" bson:"preview,omitempty"`
	Stats            PlanStats           `json:"stats" bson:"stats"`
	Settings         PlanSettings        `json:"settings" bson:"settings"`
	Tags             []string            `json:"tags" bson:"tags"`
	VersionNumber    int                 `json:"versionNumber" bson:"versionNumber"`
	CurrentVersion   *primitive.ObjectID `json:"currentVersion,omitempty" bson:"currentVersion,omitempty"`
	PublishedVersion *primitive.ObjectID `json:"publishedVersion,omitempty" bson:"publishedVersion,omitempty"`
	LastPublishedAt  int64               `json:"lastPublishedAt,omitempty" bson:"lastPublishedAt,omitempty"`
	IsLocked         bool                `json:"isLocked" bson:"isLocked"`
	LockedBy         *primitive.ObjectID `json:"lockedBy,omitempty" bson:"lockedBy,omitempty"`
	CreatedAt        int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64               `json:"updatedAt" bson:"updatedAt"`
}
