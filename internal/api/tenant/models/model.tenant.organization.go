// Package models - các entity thuộc domain tenant.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationType các loại tổ chức
const (
	OrganizationTypeHospital = "hospital"
	OrganizationTypeAirport  = "airport"
	OrganizationTypeMall     = "mall"
	OrganizationTypeCampus   = "campus"
	OrganizationTypeOther    = "other"
)

// Organization đại diện một tổ chức (tenant gốc của toàn bộ dữ liệu bản đồ).
// Xóa tổ chức là soft delete: isActive=false, không bao giờ xóa vật lý.
type Organization struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Type          string              `json:"type" bson:"type" index:"single:1"`
	Name          string              `json:"name" bson:"name" index:"unique"`
	Email         string              `json:"email" bson:"email" index:"unique"`
	VenueTemplate *primitive.ObjectID `json:"venueTemplate,omitempty" bson:"venueTemplate,omitempty" index:"single:1"`
	IsActive      bool                `json:"isActive" bson:"isActive" index:"single:1" default:"true"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}
