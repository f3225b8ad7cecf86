// Package editorsvc - service cho domain editor.
//
// Năm thực thể map-editor (POI, lối vào, thang máy, phép đo, vùng hạn chế) có chung
// vòng đời: thuộc một sơ đồ tầng, có stamp người tạo/sửa, populate thông tin sơ đồ
// lúc đọc. DocumentService là service generic dùng chung, mỗi loại chỉ cắm thêm
// validator riêng của nó.
package editorsvc

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/models"
)

// EditorDocument ràng buộc con trỏ cho các thực thể map-editor dùng chung DocumentService
type EditorDocument[T any] interface {
	*T
	GetID() primitive.ObjectID
	GetFloorPlan() primitive.ObjectID
	SetFloorPlanSummary(*models.FloorPlanSummary)
	StampCreated(actor primitive.ObjectID)
	StampUpdated(actor primitive.ObjectID)
}

// CreateValidator kiểm tra nghiệp vụ riêng của từng loại trước khi insert
type CreateValidator[T any] func(doc *T) error

// UpdateValidator kiểm tra nghiệp vụ riêng của từng loại trên patch trước khi update
type UpdateValidator[T any] func(existing *T, patch map[string]interface{}) error

// EditorListQuery các điều kiện lọc chung cho danh sách thực thể editor
type EditorListQuery struct {
	FloorPlan string // Lọc theo sơ đồ tầng
	Category  string // Lọc theo category (chỉ POI dùng)
	Type      string // Lọc theo type (chỉ lối vào dùng)
	Search    string // Tìm kiếm không phân biệt hoa thường trên name/category/description
	IsActive  *bool  // nil = chỉ lấy bản ghi đang hoạt động
	All       bool   // true = bỏ qua lọc isActive
}
