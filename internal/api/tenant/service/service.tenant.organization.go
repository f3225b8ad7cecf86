// Package tenantsvc - service cho domain tenant (Organization, VenueTemplate).
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

// OrganizationListQuery các điều kiện lọc cho danh sách tổ chức
type OrganizationListQuery struct {
	Type     string // Lọc theo loại tổ chức
	Search   string // Tìm kiếm không phân biệt hoa thường trên name/email
	IsActive *bool  // nil = không lọc
}

// OrganizationService là cấu trúc chứa các phương thức liên quan đến tổ chức
type OrganizationService struct {
	*basesvc.BaseServiceMongoImpl[models.Organization]
	venueTemplateCollectionName string
}

// NewOrganizationService tạo mới OrganizationService
func NewOrganizationService() (*OrganizationService, error) {
	organizationCollection, exist := global.RegistryCollections.Get(global.ColNames.Organizations)
	if !exist {
		return nil, fmt.Errorf("failed to get organizations collection: %v", common.ErrNotFound)
	}

	return &OrganizationService{
		BaseServiceMongoImpl:        basesvc.NewBaseServiceMongo[models.Organization](organizationCollection),
		venueTemplateCollectionName: global.ColNames.VenueTemplates,
	}, nil
}

// validateReferences là điểm kiểm tra tham chiếu duy nhất của Organization.
// Mọi thao tác ghi (create/update) đều đi qua đây trước khi persist.
func (s *OrganizationService) validateReferences(ctx context.Context, venueTemplateID *primitive.ObjectID) error {
	if venueTemplateID == nil || venueTemplateID.IsZero() {
		return nil
	}
	templateCollection, exist := global.RegistryCollections.Get(s.venueTemplateCollectionName)
	if !exist {
		return common.NewError(common.ErrCodeInternalServer, "Không tìm thấy collection venue template", common.StatusInternalServerError, nil)
	}
	count, err := templateCollection.CountDocuments(ctx, bson.M{"_id": *venueTemplateID})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if count == 0 {
		return common.NewNotFoundError("Venue template")
	}
	return nil
}

// Create tạo mới một tổ chức
func (s *OrganizationService) Create(ctx context.Context, input *tenantdto.OrganizationCreateInput) (models.Organization, error) {
	var zero models.Organization

	org := models.Organization{
		Type:     input.Type,
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(strings.ToLower(input.Email)),
		IsActive: true,
	}
	if input.VenueTemplate != "" {
		templateID, err := primitive.ObjectIDFromHex(input.VenueTemplate)
		if err != nil {
			return zero, common.ErrInvalidFormat
		}
		org.VenueTemplate = &templateID
	}

	if err := s.validateReferences(ctx, org.VenueTemplate); err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, org)
}

// Update cập nhật một tổ chức (partial update, chỉ các field có trong input)
func (s *OrganizationService) Update(ctx context.Context, id primitive.ObjectID, input *tenantdto.OrganizationUpdateInput) (models.Organization, error) {
	var zero models.Organization

	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.Type != "" {
		update.Set["type"] = input.Type
	}
	if input.Name != "" {
		update.Set["name"] = strings.TrimSpace(input.Name)
	}
	if input.Email != "" {
		update.Set["email"] = strings.TrimSpace(strings.ToLower(input.Email))
	}
	if input.VenueTemplate != "" {
		templateID, err := primitive.ObjectIDFromHex(input.VenueTemplate)
		if err != nil {
			return zero, common.ErrInvalidFormat
		}
		if err := s.validateReferences(ctx, &templateID); err != nil {
			return zero, err
		}
		update.Set["venueTemplate"] = templateID
	}
	if input.IsActive != nil {
		update.Set["isActive"] = *input.IsActive
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// Deactivate soft delete một tổ chức: isActive=false, không bao giờ xóa vật lý
func (s *OrganizationService) Deactivate(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	update := &basesvc.UpdateData{Set: map[string]interface{}{"isActive": false}}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// List trả về danh sách tổ chức có phân trang
func (s *OrganizationService) List(ctx context.Context, query OrganizationListQuery, page, limit int64) (*basemodels.PaginateResult[models.Organization], error) {
	filter := bson.M{}
	if query.Type != "" {
		filter["type"] = query.Type
	}
	if query.IsActive != nil {
		filter["isActive"] = *query.IsActive
	}
	if query.Search != "" {
		rx := utility.SearchRegex(query.Search)
		filter["$or"] = []bson.M{
			{"name": rx},
			{"email": rx},
		}
	}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
}
