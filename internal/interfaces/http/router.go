package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/policy-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PolicyUC  *usecase.PolicyUseCase
	StaticDir string // directorio del dashboard; vacío = no servir frontend
}

// Router registra las rutas de la API. Las rutas de pólizas se montan dos
// veces, en la raíz y bajo /api/v1, igual que el contrato original.
func Router(app *fiber.App, deps RouterDeps) {
	handler := NewPolicyHandler(deps.PolicyUC)

	registerPolicyRoutes(app.Group("/"), handler)
	registerPolicyRoutes(app.Group("/api/v1"), handler)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Dashboard server-rendered + assets estáticos
	if deps.StaticDir != "" {
		app.Static("/static", deps.StaticDir)
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendFile(deps.StaticDir + "/index.html")
		})
	}
}

func registerPolicyRoutes(r fiber.Router, handler *PolicyHandler) {
	policies := r.Group("/policies")
	policies.Post("/", handler.Create)
	policies.Get("/", handler.List)
	policies.Get("/:policy_number", handler.GetByNumber)
	policies.Post("/:policy_number/activate", handler.Activate)
	policies.Post("/:policy_number/cancel", handler.Cancel)
}
