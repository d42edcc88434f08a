package stubapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// Config parámetros del stub.
type Config struct {
	JWTSecret     string
	JWTExpMinutes int
	JWTIssuer     string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Server el stub completo: app de fiber más su estado sembrado.
type Server struct {
	App *fiber.App

	cfg   Config
	state *state
	log   *logger.Logger
}

// New construye el stub con su estado sembrado y todas las rutas del contrato
// del backend registradas.
func New(cfg Config, log *logger.Logger) (*Server, error) {
	st, err := seed(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "maxhelp-stubapi",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	s := &Server{App: app, cfg: cfg, state: st, log: log}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	app := s.App

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to MaxHelp Backend"})
	})

	// Auth (público)
	authGroup := app.Group("/auth")
	authGroup.Post("/admin/login", s.adminLogin)
	authGroup.Post("/login", s.employeeLogin)

	protected := authMiddleware(s.cfg.JWTSecret)
	admin := authGroup.Group("/admin", protected, requireAdmin())

	// Empleados y unidades (solo admin)
	admin.Get("/list-details", s.listEmployees)
	admin.Get("/list-stats", s.listStats)
	admin.Post("/create-employee", s.createEmployee)
	admin.Put("/update-employee/:id", s.updateEmployee)
	admin.Delete("/delete-employee/:id", s.deleteEmployee)
	admin.Post("/create-business-unit", s.createBusinessUnit)
	admin.Post("/create-inventory", s.createInventory)
	admin.Post("/report-low-inventory", s.reportLowInventory)

	// Inventario (cualquier sesión; el rol filtra por unidad)
	inv := app.Group("/inventory", protected)
	inv.Get("/", s.listInventory)
	inv.Get("/inventory-stats", s.inventoryStats)
	inv.Put("/:id", s.updateInventory)
	inv.Delete("/:id", s.deleteInventory)

	// Solo lectura
	app.Get("/feedback/list-feedbacks", protected, s.listFeedbacks)
	app.Get("/notifications/low-inventory", protected, s.lowInventoryNotifications)
}
