package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapFloor đại diện một tầng thuộc một tòa nhà.
// Mỗi tòa nhà có tối đa một tầng isDefault=true (ràng buộc bằng bulk-unset khi set).
// Xóa tầng bị chặn khi còn sơ đồ tầng tham chiếu.
type MapFloor struct {
	_Relationships struct{}           `relationship:"collection:floor_plans,field:floor,message:Không thể xóa tầng vì có %d sơ đồ tầng đang tham chiếu. Vui lòng lưu trữ các sơ đồ trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Organization   primitive.ObjectID `json:"organization" bson:"organization" index:"single:1;compound:floor_name_unique;compound:floor_level_unique"`
	Building       primitive.ObjectID `json:"building" bson:"building" index:"single:1;compound:floor_name_unique;compound:floor_level_unique"`
	Name           string             `json:"name" bson:"name" index:"compound:floor_name_unique"`
	Level          int                `json:"level" bson:"level" index:"compound:floor_level_unique"`
	Sequence       int                `json:"sequence" bson:"sequence"`
	IsDefault      bool               `json:"isDefault" bson:"isDefault"`
	IsActive       bool               `json:"isActive" bson:"isActive" index:"single:1" default:"true"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
