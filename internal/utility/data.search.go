package utility

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchRegex dựng điều kiện tìm kiếm substring không phân biệt hoa thường.
// Chuỗi người dùng nhập được escape để các ký tự regex (+, (, [ ...) khớp theo nghĩa đen.
func SearchRegex(term string) bson.M {
	return bson.M{
		"$regex":   regexp.QuoteMeta(strings.TrimSpace(term)),
		"$options": "i",
	}
}
