package editorsvc

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestElementRecountTargets(t *testing.T) {
	layerA := primitive.NewObjectID()
	layerB := primitive.NewObjectID()

	cases := []struct {
		name          string
		oldLayer      *primitive.ObjectID
		newLayer      *primitive.ObjectID
		statusChanged bool
		want          []primitive.ObjectID
	}{
		{"chuyển sang layer khác tính lại cả hai", &layerA, &layerB, false, []primitive.ObjectID{layerA, layerB}},
		{"bỏ khỏi layer tính lại layer cũ", &layerA, nil, false, []primitive.ObjectID{layerA}},
		{"gán vào layer tính lại layer mới", nil, &layerB, false, []primitive.ObjectID{layerB}},
		{"cùng layer đổi status tính lại một lần", &layerA, &layerA, true, []primitive.ObjectID{layerA}},
		{"cùng layer không đổi status thì bỏ qua", &layerA, &layerA, false, nil},
		{"không thuộc layer nào thì bỏ qua", nil, nil, false, nil},
		{"không thuộc layer nào đổi status vẫn bỏ qua", nil, nil, true, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := elementRecountTargets(tc.oldLayer, tc.newLayer, tc.statusChanged)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("elementRecountTargets = %v, muốn %v", got, tc.want)
			}
		})
	}
}
