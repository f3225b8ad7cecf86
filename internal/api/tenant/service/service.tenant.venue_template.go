package tenantsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/models"
	basesvc "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/base/service"
	tenantdto "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/tenant/dto"
	models "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/tenant/models"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/common"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/global"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/utility"
)

// VenueTemplateService là cấu trúc chứa các phương thức liên quan đến venue template
type VenueTemplateService struct {
	*basesvc.BaseServiceMongoImpl[models.VenueTemplate]
}

// NewVenueTemplateService tạo mới VenueTemplateService
func NewVenueTemplateService() (*VenueTemplateService, error) {
	templateCollection, exist := global.RegistryCollections.Get(global.ColNames.VenueTemplates)
	if !exist {
		return nil, fmt.Errorf("failed to get venue templates collection: %v", common.ErrNotFound)
	}

	return &VenueTemplateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.VenueTemplate](templateCollection),
	}, nil
}

// Create tạo mới một venue template
func (s *VenueTemplateService) Create(ctx context.Context, input *tenantdto.VenueTemplateCreateInput) (models.VenueTemplate, error) {
	template := models.VenueTemplate{
		Name:                 strings.TrimSpace(input.Name),
		Description:          strings.TrimSpace(input.Description),
		IncludedFeatures:     input.IncludedFeatures,
		DefaultPOICategories: input.DefaultPOICategories,
	}
	if template.IncludedFeatures == nil {
		template.IncludedFeatures = []string{}
	}
	if template.DefaultPOICategories == nil {
		template.DefaultPOICategories = []string{}
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, template)
}

// Update cập nhật một venue template (partial update)
func (s *VenueTemplateService) Update(ctx context.Context, id primitive.ObjectID, input *tenantdto.VenueTemplateUpdateInput) (models.VenueTemplate, error) {
	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.Name != "" {
		update.Set["name"] = strings.TrimSpace(input.Name)
	}
	if input.Description != "" {
		update.Set["description"] = strings.TrimSpace(input.Description)
	}
	if input.IncludedFeatures != nil {
		update.Set["includedFeatures"] = input.IncludedFeatures
	}
	if input.DefaultPOICategories != nil {
		update.Set["defaultPOICategories"] = input.DefaultPOICategories
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// List trả về danh sách venue template có phân trang
func (s *VenueTemplateService) List(ctx context.Context, search string, page, limit int64) (*basemodels.PaginateResult[models.VenueTemplate], error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = utility.SearchRegex(search)
	}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
}

// Delete xóa một venue template.
// Relationship tag trên model chặn xóa khi còn Organization tham chiếu.
func (s *VenueTemplateService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
