package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/config"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/http/handlers"
	applog "github.com/WebFlexrr/vendorsphere-sub000/internal/log"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/services"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/tasks"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()
	applog.Init(os.Getenv("APP_ENV") == "development", cfg.LogFile)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{
		Users:  userRepo,
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
	}

	// Simulated-latency runner for integration handshakes
	runner := &tasks.Runner{Delay: cfg.TaskDelay}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 1 << 20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, authSvc, runner)

	// Login throttled separately
	app.Post("/api/v1/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)

	// Authenticated surface (any operator role)
	api := app.Group("/api/v1", handlers.RequireRole(authSvc))
	api.Get("/me", deps.AuthHandler.Me)
	api.Put("/me", deps.AuthHandler.UpdateProfile)
	api.Get("/dashboard", deps.DashboardHandler.Summary)

	api.Get("/inventory", deps.InventoryHandler.List)
	api.Get("/inventory/low-stock", deps.InventoryHandler.LowStock)
	api.Get("/inventory/movements", deps.InventoryHandler.Ledger)
	api.Get("/inventory/:productId/movements", deps.InventoryHandler.Movements)
	api.Post("/inventory/:id/adjust", deps.InventoryHandler.Adjust)

	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Create)
	api.Put("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Delete)

	api.Get("/vendors", deps.VendorHandler.List)
	api.Post("/vendors", deps.VendorHandler.Create)
	api.Put("/vendors/:id", deps.VendorHandler.Update)

	api.Get("/orders", deps.OrderHandler.List)
	api.Post("/orders/:id/status", deps.OrderHandler.UpdateStatus)

	api.Get("/posts", deps.ContentHandler.ListPosts)
	api.Post("/posts", deps.ContentHandler.CreatePost)
	api.Put("/posts/:id", deps.ContentHandler.UpdatePost)
	api.Delete("/posts/:id", deps.ContentHandler.DeletePost)
	api.Get("/pages", deps.ContentHandler.ListPages)
	api.Post("/pages", deps.ContentHandler.CreatePage)
	api.Put("/pages/:id", deps.ContentHandler.UpdatePage)
	api.Post("/seo/score", deps.ContentHandler.ScoreSEO)

	api.Get("/export/:entity", deps.ExportHandler.Download)
	api.Get("/reports/marketing", deps.ReportHandler.Preview)
	api.Get("/reports/marketing.pdf", deps.ReportHandler.DownloadPDF)
	api.Post("/assistant", deps.AssistantHandler.Message)

	// Admin-only surface
	admin := api.Group("/admin", handlers.RequireRole(authSvc, domain.RoleAdmin))
	admin.Get("/employees", deps.EmployeeHandler.List)
	admin.Post("/employees", deps.EmployeeHandler.Create)
	admin.Put("/employees/:id", deps.EmployeeHandler.Update)
	admin.Delete("/employees/:id", deps.EmployeeHandler.Delete)
	admin.Get("/integrations", deps.IntegrationHandler.List)
	admin.Post("/integrations/:id/connect", deps.IntegrationHandler.Connect)
	admin.Post("/integrations/:id/disconnect", deps.IntegrationHandler.Disconnect)
	admin.Get("/settings", deps.SettingsHandler.Get)
	admin.Put("/settings", deps.SettingsHandler.Update)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	// ---------- Serve ----------
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	applog.Info(nil, "server.shutdown", nil)
	_ = app.Shutdown()
}
