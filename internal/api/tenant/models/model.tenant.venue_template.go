package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VenueTemplate là preset tính năng/danh mục mặc định áp cho Organization mới.
// Không thể xóa khi còn Organization tham chiếu (chặn qua relationship tag).
type VenueTemplate struct {
	_Relationships       struct{}           `relationship:"collection:organizations,field:venueTemplate,message:Không thể xóa venue template vì có %d tổ chức đang sử dụng. Vui lòng chuyển các tổ chức sang template khác trước."`
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name                 string             `json:"name" bson:"name" index:"unique"`
	Description          string             `json:"description,omitempty" bson:"description,omitempty"`
	IncludedFeatures     []string           `json:"includedFeatures" bson:"includedFeatures"`
	DefaultPOICategories []string           `json:"defaultPOICategories" bson:"defaultPOICategories"`
	CreatedAt            int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt            int64              `json:"updatedAt" bson:"updatedAt"`
}
