package config

import (
	"StockPilot-Backend/internal/api/handlers"
	"StockPilot-Backend/internal/api/routes"
	"StockPilot-Backend/internal/middleware"
	"StockPilot-Backend/internal/utils"
	"StockPilot-Backend/internal/utils/storage"
	"StockPilot-Backend/pkg/barcode"
	"StockPilot-Backend/pkg/billing"
	"StockPilot-Backend/pkg/chat"
	"StockPilot-Backend/pkg/forecast"
	"StockPilot-Backend/pkg/inventory"
	"StockPilot-Backend/pkg/jwt"
	"StockPilot-Backend/pkg/product"
	"StockPilot-Backend/pkg/sales"
	"StockPilot-Backend/pkg/store"
	"StockPilot-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	storeRepository := store.NewStoreRepository(db)
	productRepository := product.NewProductRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	saleRepository := sales.NewSaleRepository(db)
	scanRepository := barcode.NewScanRepository(db)
	billingRepository := billing.NewBillingRepository(db)
	contextRepository := chat.NewContextRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	storeService := store.NewStoreService(storeRepository)
	barcodeService := barcode.NewBarcodeService(
		scanRepository,
		utils.GetConfig("OPENPRODUCTFACTS_BASE_URL"),
		utils.GetConfig("UPCITEMDB_BASE_URL"),
		utils.GetConfig("UPCITEMDB_API_KEY"),
	)
	productService := product.NewProductService(productRepository, storeService, barcodeService, s3)
	inventoryService := inventory.NewInventoryService(inventoryRepository, storeService, userRepository)
	saleService := sales.NewSaleService(saleRepository, productRepository, inventoryService, storeService)
	forecastService := forecast.NewForecastService(saleRepository, inventoryRepository, storeService)
	billingService := billing.NewBillingService(billingRepository, userRepository)
	sessionStore := chat.NewSessionStore(chat.NewGormKVStore(db))
	assistantService := chat.NewAssistantService(contextRepository)
	chatService := chat.NewChatService(sessionStore, assistantService, storeService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	storeHandler := handlers.NewStoreHandler(storeService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	salesHandler := handlers.NewSalesHandler(saleService, validator)
	barcodeHandler := handlers.NewBarcodeHandler(barcodeService)
	forecastHandler := handlers.NewForecastHandler(forecastService)
	chatHandler := handlers.NewChatHandler(chatService, validator)
	billingHandler := handlers.NewBillingHandler(billingService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		StoreHandler:     storeHandler,
		ProductHandler:   productHandler,
		InventoryHandler: inventoryHandler,
		SalesHandler:     salesHandler,
		BarcodeHandler:   barcodeHandler,
		ForecastHandler:  forecastHandler,
		ChatHandler:      chatHandler,
		BillingHandler:   billingHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
