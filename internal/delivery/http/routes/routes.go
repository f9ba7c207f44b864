package routes

import (
	"log"

	"hireflow/internal/config"
	"hireflow/internal/database"
	"hireflow/internal/delivery/http/handler"
	v1 "hireflow/internal/delivery/http/routes/v1"
	"hireflow/internal/infrastructure/cache"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps v1.Dependencies
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{deps: v1.Dependencies{
		Config: cfg,
		DB:     db,
		Cache:  c,
		Hub:    hub,
		Logger: logger,
	}}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.deps.DB, r.deps.Cache).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)

	jwtSvc := jwt.NewHMACService(
		r.deps.Config.JWT.AccessSecret,
		r.deps.Config.JWT.RefreshSecret,
		r.deps.Config.JWT.AccessExpiresIn,
		r.deps.Config.JWT.RefreshExpiresIn,
	)
	wsHandler := ws.NewHandler(r.deps.Hub, jwtSvc, r.deps.Logger)
	app.Get("/ws", wsHandler.Handle)
}
