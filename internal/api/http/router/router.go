package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/drvaldez/consultorio_backend/config"
	"github.com/drvaldez/consultorio_backend/internal/api/http/handler"
	"github.com/drvaldez/consultorio_backend/internal/api/http/middleware"
	"github.com/drvaldez/consultorio_backend/internal/service/agenda"
	"github.com/drvaldez/consultorio_backend/internal/service/auth"
	"github.com/drvaldez/consultorio_backend/internal/service/history"
	"github.com/drvaldez/consultorio_backend/internal/service/patient"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	AuthSvc    auth.Service
	PatientSvc patient.Service
	AgendaSvc  agenda.Service
	HistorySvc history.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Middlewares
	sessionRequired := middleware.SessionRequired(r.p.AuthSvc)

	// 3. Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	agendaH := handler.NewAgendaHandler(r.p.AgendaSvc)
	historyH := handler.NewHistoryHandler(r.p.HistorySvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, sessionRequired)
	r.registerPatientRoutes(api, patientH, historyH, sessionRequired)
	r.registerAgendaRoutes(api, agendaH, sessionRequired)
	r.registerHistoryRoutes(api, historyH, sessionRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
