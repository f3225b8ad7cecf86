package editorhdl

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

func TestRequiredFloorPlanID(t *testing.T) {
	planID := primitive.NewObjectID()

	got, err := requiredFloorPlanID(planID.Hex())
	if err != nil {
		t.Fatalf("hex hợp lệ không được lỗi: %v", err)
	}
	if got != planID {
		t.Errorf("id = %v, muốn %v", got, planID)
	}

	got, err = requiredFloorPlanID("  " + planID.Hex() + "  ")
	if err != nil {
		t.Fatalf("hex có khoảng trắng phải được trim: %v", err)
	}
	if got != planID {
		t.Errorf("id sau trim = %v, muốn %v", got, planID)
	}
}

func TestRequiredFloorPlanID_Missing(t *testing.T) {
	for _, value := range []string{"", "   "} {
		_, err := requiredFloorPlanID(value)
		if err == nil {
			t.Fatalf("thiếu floorPlan (%q) phải trả về lỗi", value)
		}
		var cerr *common.Error
		if !errors.As(err, &cerr) {
			t.Fatalf("lỗi phải là *common.Error, nhận được %T", err)
		}
		if cerr.StatusCode != common.StatusBadRequest {
			t.Errorf("status code = %d, muốn %d", cerr.StatusCode, common.StatusBadRequest)
		}
	}
}

func TestRequiredFloorPlanID_InvalidHex(t *testing.T) {
	if _, err := requiredFloorPlanID("khong-phai-hex"); err == nil {
		t.Error("giá trị không phải hex phải trả về lỗi")
	}
}
