// Package models - các entity thuộc domain editor (map element và các thực thể vẽ trên sơ đồ).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FloorPlanSummary thông tin rút gọn của sơ đồ tầng, populate lúc đọc, không lưu DB
type FloorPlanSummary struct {
	ID         primitive.ObjectID `json:"id"`
	Title      string             `json:"title"`
	FloorLabel string             `json:"floorLabel,omitempty"`
}

// Point tọa độ một điểm trên canvas
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Rect tọa độ và kích thước một vùng chữ nhật trên canvas
type Rect struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}
