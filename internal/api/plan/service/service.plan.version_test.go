package plansvc

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
)

func TestEnsureVersionOwnedBy(t *testing.T) {
	planID := primitive.NewObjectID()
	version := models.FloorPlanVersion{FloorPlan: planID}

	if err := ensureVersionOwnedBy(version, planID); err != nil {
		t.Errorf("phiên bản thuộc đúng sơ đồ không được lỗi: %v", err)
	}

	err := ensureVersionOwnedBy(version, primitive.NewObjectID())
	if err == nil {
		t.Fatal("phiên bản thuộc sơ đồ khác phải bị từ chối")
	}
	if !common.IsNotFound(err) {
		t.Errorf("sai sơ đồ phải trả về not found, nhận được %v", err)
	}
	var cerr *common.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("lỗi phải là *common.Error, nhận được %T", err)
	}
	if cerr.StatusCode != common.StatusNotFound {
		t.Errorf("status code = %d, muốn %d", cerr.StatusCode, common.StatusNotFound)
	}
}
