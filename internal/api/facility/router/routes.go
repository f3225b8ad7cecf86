// Package router đăng ký các route thuộc domain facility: MapBuilding, MapFloor.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	facilityhdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/facility/handler"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/middleware"
	apirouter "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/router"
)

// Register đăng ký tất cả route facility lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerBuildingRoutes(v1); err != nil {
		return err
	}
	if err := registerFloorRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerBuildingRoutes(router fiber.Router) error {
	buildingHandler, err := facilityhdl.NewBuildingHandler()
	if err != nil {
		return fmt.Errorf("failed to create building handler: %w", err)
	}

	actorContext := middleware.ActorContextMiddleware()
	requireActor := middleware.RequireActorMiddleware()

	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/buildings", "GET", "/", []fiber.Handler{actorContext}, buildingHandler.List)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/buildings", "GET", "/:id", []fiber.Handler{actorContext}, buildingHandler.GetById)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/buildings", "POST", "/", []fiber.Handler{requireActor}, buildingHandler.Create)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/buildings", "PUT", "/:id", []fiber.Handler{requireActor}, buildingHandler.Update)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/buildings", "DELETE", "/:id", []fiber.Handler{requireActor}, buildingHandler.Delete)
	return nil
}

func registerFloorRoutes(router fiber.Router) error {
	floorHandler, err := facilityhdl.NewFloorHandler()
	if err != nil {
		return fmt.Errorf("failed to create floor handler: %w", err)
	}

	actorContext := middleware.ActorContextMiddleware()
	requireActor := middleware.RequireActorMiddleware()

	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/floors", "GET", "/", []fiber.Handler{actorContext}, floorHandler.List)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/floors", "GET", "/:id", []fiber.Handler{actorContext}, floorHandler.GetById)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/floors", "POST", "/", []fiber.Handler{requireActor}, floorHandler.Create)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/floors", "PUT", "/:id", []fiber.Handler{requireActor}, floorHandler.Update)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/map-manager/floors", "DELETE", "/:id", []fiber.Handler{requireActor}, floorHandler.Delete)
	return nil
}
