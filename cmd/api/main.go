package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"salon-inventory/internal/config"
	"salon-inventory/internal/handler"
	"salon-inventory/internal/middleware"
	"salon-inventory/internal/model"
	"salon-inventory/internal/repository"
	"salon-inventory/internal/service"
	"salon-inventory/internal/ws"
	"salon-inventory/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load env + config
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// 2. Setup database
	db, err := database.Connect(cfg.Database.Path, cfg.Database.LogSQL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	db.AutoMigrate(&model.User{}, &model.Category{}, &model.Product{}, &model.OrderRecord{}, &model.UsageRecord{})

	// 3. Setup WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency injection (wiring layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	usageRepo := repository.NewUsageRepo(db)
	userRepo := repository.NewUserRepo(db)
	reportRepo := repository.NewReportRepo(db)

	ownerResolver := service.NewOwnerResolver(userRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, wsHub)
	ledgerService := service.NewLedgerService(orderRepo, usageRepo, productRepo, db, wsHub)
	reportService := service.NewReportService(reportRepo)

	tokenSecret := []byte(cfg.Token.Secret)
	tokenTTL := time.Duration(cfg.Token.ExpireHours) * time.Hour

	catalogHandler := handler.NewCatalogHandler(catalogService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	reportHandler := handler.NewReportHandler(reportService)
	sessionHandler := handler.NewSessionHandler(ownerResolver, tokenSecret, tokenTTL)

	// Materialize the owner row up front so the first transaction does not
	// race the lazy creation.
	owner := ownerResolver.Resolve()
	log.Printf("Owner identity ready: %s (%s)", owner.Name, owner.ID)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.Server.AppName,
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes. Every request passes through the owner resolver; there is
	// no auth gate in this single-tenant system.
	api := app.Group("/api/v1", middleware.ResolveOwner(ownerResolver, tokenSecret))

	api.Get("/auth/session", sessionHandler.GetSession)

	api.Get("/categories", catalogHandler.GetCategories)
	api.Post("/categories", catalogHandler.CreateCategory)

	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/low-stock", catalogHandler.GetLowStockProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Post("/products", catalogHandler.CreateProduct)
	api.Put("/products/:id", catalogHandler.UpdateProduct)
	api.Delete("/products/:id", catalogHandler.DeleteProduct)

	api.Get("/orders", ledgerHandler.GetOrders)
	api.Post("/orders", ledgerHandler.CreateOrder)

	api.Get("/usage", ledgerHandler.GetUsage)
	api.Post("/usage", ledgerHandler.CreateUsage)

	api.Get("/reports/overview", reportHandler.GetOverview)
	api.Get("/reports/stock-movement", reportHandler.GetStockMovement)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful shutdown
	go func() {
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
