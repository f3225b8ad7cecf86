// Package router đăng ký các route thuộc domain tenant: Organization, VenueTemplate.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/middleware"
	apirouter "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/router"
	tenanthdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/tenant/handler"
)

// Register đăng ký tất cả route tenant lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerOrganizationRoutes(v1); err != nil {
		return err
	}
	if err := registerVenueTemplateRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerOrganizationRoutes(router fiber.Router) error {
	organizationHandler, err := tenanthdl.NewOrganizationHandler()
	if err != nil {
		return fmt.Errorf("failed to create organization handler: %w", err)
	}

	actorContext := middleware.ActorContextMiddleware()
	requireActor := middleware.RequireActorMiddleware()

	apirouter.RegisterRouteWithMiddleware(router, "/admin/organizations", "GET", "/", []fiber.Handler{actorContext}, organizationHandler.List)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/organizations", "GET", "/:id", []fiber.Handler{actorContext}, organizationHandler.GetById)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/organizations", "POST", "/", []fiber.Handler{requireActor}, organizationHandler.Create)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/organizations", "PUT", "/:id", []fiber.Handler{requireActor}, organizationHandler.Update)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/organizations", "DELETE", "/:id", []fiber.Handler{requireActor}, organizationHandler.Delete)
	return nil
}

func registerVenueTemplateRoutes(router fiber.Router) error {
	templateHandler, err := tenanthdl.NewVenueTemplateHandler()
	if err != nil {
		return fmt.Errorf("failed to create venue template handler: %w", err)
	}

	actorContext := middleware.ActorContextMiddleware()
	requireActor := middleware.RequireActorMiddleware()

	apirouter.RegisterRouteWithMiddleware(router, "/admin/venue-templates", "GET", "/", []fiber.Handler{actorContext}, templateHandler.List)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/venue-templates", "GET", "/:id", []fiber.Handler{actorContext}, templateHandler.GetById)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/venue-templates", "POST", "/", []fiber.Handler{requireActor}, templateHandler.Create)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/venue-templates", "PUT", "/:id", []fiber.Handler{requireActor}, templateHandler.Update)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/venue-templates", "DELETE", "/:id", []fiber.Handler{requireActor}, templateHandler.Delete)
	return nil
}
