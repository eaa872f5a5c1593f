package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pasar/internal/handlers"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
	"pasar/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "pasar.db")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Database ---
	var dialector gorm.Dialector
	dsn := viper.GetString("DATABASE_DSN")
	switch driver := viper.GetString("DB_DRIVER"); driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		log.Fatalf("Unsupported DB_DRIVER %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Shop{}, &models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		go func() {
			if consumerErr := mqClient.ConsumeCatalogEvents(func(msg amqp.Delivery) error {
				log.Printf("Catalog event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}); consumerErr != nil {
				log.Printf("Failed to start catalog event consumer: %v", consumerErr)
			}
		}()
	} else {
		log.Println("RABBITMQ_URL not set, catalog event publishing disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	shopRepo := repositories.NewGORMShopRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	shopService := services.NewShopService(shopRepo, userRepo, productRepo, publisher)
	categoryService := services.NewCategoryService(categoryRepo, publisher)
	productService := services.NewProductService(productRepo, shopRepo, categoryRepo, publisher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	shopHandler := handlers.NewShopHandler(shopService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	gate := middleware.NewCapabilityGate(authService)
	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	shopHandler.RegisterRoutes(apiV1, gate)
	categoryHandler.RegisterRoutes(apiV1, gate)
	productHandler.RegisterRoutes(apiV1, gate)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
