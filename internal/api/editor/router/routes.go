// Package router đăng ký các route thuộc domain editor: map element, các thực thể
// map-editor theo loại và tuỳ chọn người dùng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	editorhdl "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/editor/handler"
	"github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/middleware"
	apirouter "github.com/cybercircusofficail/Karepilot-Backend-sub000/internal/api/router"
)

// crudHandler tập các handler CRUD chuẩn của một thực thể editor
type crudHandler interface {
	Create(c fiber.Ctx) error
	List(c fiber.Ctx) error
	GetById(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// entityHandler bổ sung xóa hàng loạt theo sơ đồ tầng cho các thực thể map-editor
type entityHandler interface {
	crudHandler
	DeleteByFloorPlan(c fiber.Ctx) error
}

// Register đăng ký tất cả route editor lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerElementRoutes(v1); err != nil {
		return err
	}
	if err := registerEditorEntityRoutes(v1); err != nil {
		return err
	}
	if err := registerPreferencesRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerCrudRoutes(router fiber.Router, prefix string, handler crudHandler) {
	actorContext := middleware.ActorContextMiddleware()
	requireActor := middleware.RequireActorMiddleware()

	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/", []fiber.Handler{actorContext}, handler.List)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", []fiber.Handler{actorContext}, handler.GetById)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "POST", "/", []fiber.Handler{requireActor}, handler.Create)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id", []fiber.Handler{requireActor}, handler.Update)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", []fiber.Handler{requireActor}, handler.Delete)
}

// registerEntityRoutes đăng ký CRUD chuẩn kèm route xóa hàng loạt DELETE /?floorPlan=...
func registerEntityRoutes(router fiber.Router, prefix string, handler entityHandler) {
	registerCrudRoutes(router, prefix, handler)

	requireActor := middleware.RequireActorMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, prefix, "DELETE", "/", []fiber.Handler{requireActor}, handler.DeleteByFloorPlan)
}

func registerElementRoutes(router fiber.Router) error {
	elementHandler, err := editorhdl.NewElementHandler()
	if err != nil {
		return fmt.Errorf("failed to create element handler: %w", err)
	}
	registerCrudRoutes(router, "/admin/map-manager/elements", elementHandler)
	return nil
}

func registerEditorEntityRoutes(router fiber.Router) error {
	poiHandler, err := editorhdl.NewPOIHandler()
	if err != nil {
		return fmt.Errorf("failed to create poi handler: %w", err)
	}
	entranceHandler, err := editorhdl.NewEntranceHandler()
	if err != nil {
		return fmt.Errorf("failed to create entrance handler: %w", err)
	}
	elevatorHandler, err := editorhdl.NewElevatorHandler()
	if err != nil {
		return fmt.Errorf("failed to create elevator handler: %w", err)
	}
	measurementHandler, err := editorhdl.NewMeasurementHandler()
	if err != nil {
		return fmt.Errorf("failed to create measurement handler: %w", err)
	}
	zoneHandler, err := editorhdl.NewRestrictedZoneHandler()
	if err != nil {
		return fmt.Errorf("failed to create restricted zone handler: %w", err)
	}

	base := "/admin/map-management/map-editor"
	registerEntityRoutes(router, base+"/pois", poiHandler)
	registerEntityRoutes(router, base+"/entrances", entranceHandler)
	registerEntityRoutes(router, base+"/elevators", elevatorHandler)
	registerEntityRoutes(router, base+"/measurements", measurementHandler)
	registerEntityRoutes(router, base+"/restricted-zones", zoneHandler)
	return nil
}

func registerPreferencesRoutes(router fiber.Router) error {
	preferencesHandler, err := editorhdl.NewPreferencesHandler()
	if err != nil {
		return fmt.Errorf("failed to create preferences handler: %w", err)
	}

	requireActor := middleware.RequireActorMiddleware()

	prefix := "/admin/map-management/map-editor/preferences"
	apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/", []fiber.Handler{requireActor}, preferencesHandler.Get)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "PUT", "/", []fiber.Handler{requireActor}, preferencesHandler.Update)
	apirouter.RegisterRouteWithMiddleware(router, prefix, "POST", "/reset", []fiber.Handler{requireActor}, preferencesHandler.Reset)
	return nil
}
