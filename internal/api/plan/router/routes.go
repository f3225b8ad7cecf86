// Package router đăng ký các route thuộc domain plan: FloorPlan, FloorPlanVersion, MapLayer, Settings.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/middleware"
	planhdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/plan/handler"
	apirouter "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/router"
)

// Register đăng ký tất cả route plan lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerFloorPlanRoutes(v1); err != nil {
		return err
	}
	if err := registerLayerRoutes(v1); err != nil {
		return err
	}
	if err := registerSettingsRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerFloorPlanRoutes(router fiber.Router) error {
	floorPlanHandler, err := planhdl.NewFloorPlanHandler()
	if err != nil {
		return fmt.Errorf("failed to create floor plan handler: %w", err)
	}

	actorContext := middleware.ActorContextMiddleware()
	requireActor := middleware.RequireActorMiddleware()

	prefix := "/admin/map-manager/floor-plans"
	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/", []fiber.Handler{actorContext}, floorPlanHandler.List)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", []fiber.Handler{actorContext}, floorPlanHandler.GetById)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "POST", "/", []fiber.Handler{requireActor}, floorPlanHandler.Create)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id", []fiber.Handler{requireActor}, floorPlanHandler.Update)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", []fiber.Handler{requireActor}, floorPlanHandler.Archive)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "POST", "/:id/publish", []fiber.Handler{requireActor}, floorPlanHandler.Publish)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/:id/versions", []fiber.Handler{actorContext}, floorPlanHandler.ListVersions)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "POST", "/:id/versions", []fiber.Handler{requireActor}, floorPlanHandler.CreateVersion)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id/versions/:versionId", []fiber.Handler{requireActor}, floorPlanHandler.UpdateVersion)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id/versions/:versionId/status", []fiber.Handler{requireActor}, floorPlanHandler.UpdateVersionStatus)
	return nil
}

func registerLayerRoutes(router fiber.Router) error {
	layerHandler, err := planhdl.NewLayerHandler()
	if err != nil {
		return fmt.Errorf("failed to create layer handler: %w", err)
	}

	actorContext := middleware.ActorContextMiddleware()
	requireActor := middleware.RequireActorMiddleware()

	prefix := "/admin/map-manager/layers"
	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/", []fiber.Handler{actorContext}, layerHandler.List)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", []fiber.Handler{actorContext}, layerHandler.GetById)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "POST", "/", []fiber.Handler{requireActor}, layerHandler.Create)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id", []fiber.Handler{requireActor}, layerHandler.Update)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", []fiber.Handler{requireActor}, layerHandler.Delete)
	return nil
}

func registerSettingsRoutes(router fiber.Router) error {
	settingsHandler, err := planhdl.NewSettingsHandler()
	if err != nil {
		return fmt.Errorf("failed to create settings handler: %w", err)
	}

	actorContext := middleware.ActorContextMiddleware()
	requireActor := middleware.RequireActorMiddleware()

	prefix := "/admin/map-manager/settings"
	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/", []fiber.Handler{actorContext}, settingsHandler.Get)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "PUT", "/", []fiber.Handler{requireActor}, settingsHandler.Update)
	return nil
}
