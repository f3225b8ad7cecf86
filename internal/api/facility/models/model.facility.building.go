// Package models - các entity thuộc domain facility (tòa nhà, tầng).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapBuilding đại diện một tòa nhà thuộc một tổ chức.
// floorCount là cache dẫn xuất, được tính lại bằng count query sau mỗi thay đổi tầng.
// Xóa tòa nhà bị chặn khi còn tầng hoặc sơ đồ tầng tham chiếu.
type MapBuilding struct {
	_Relationships struct{}            `relationship:"collection:map_floors,field:building,message:Không thể xóa tòa nhà vì có %d tầng trực thuộc. Vui lòng xóa các tầng trước.|collection:floor_plans,field:building,message:Không thể xóa tòa nhà vì có %d sơ đồ tầng đang tham chiếu."`
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Organization   primitive.ObjectID  `json:"organization" bson:"organization" index:"single:1;compound:building_name_unique;compound:building_code_unique,sparse"`
	Name           string              `json:"name" bson:"name" index:"compound:building_name_unique"`
	Code           string              `json:"code,omitempty" bson:"code,omitempty" index:"compound:building_code_unique,sparse"`
	Address        string              `json:"address,omitempty" bson:"address,omitempty"`
	FloorCount     int                 `json:"floorCount" bson:"floorCount"`
	DefaultFloor   *primitive.ObjectID `json:"defaultFloor,omitempty" bson:"defaultFloor,omitempty"`
	CreatedAt      int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64               `json:"updatedAt" bson:"updatedAt"`
}
