package routes

import (
	"StockPilot-Backend/internal/api/handlers"
	"StockPilot-Backend/internal/middleware"
	"StockPilot-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	StoreHandler     handlers.StoreHandler
	ProductHandler   handlers.ProductHandler
	InventoryHandler handlers.InventoryHandler
	SalesHandler     handlers.SalesHandler
	BarcodeHandler   handlers.BarcodeHandler
	ForecastHandler  handlers.ForecastHandler
	ChatHandler      handlers.ChatHandler
	BillingHandler   handlers.BillingHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Stores()
	c.Barcode()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.BillingHandler.CreateTransaction)
	}
}

func (c *Config) Stores() {
	stores := c.App.Group("/api/v1/stores", c.Middleware.AuthMiddleware(c.JWTService))

	stores.Post("", c.StoreHandler.CreateStore)
	stores.Get("", c.StoreHandler.GetStores)
	stores.Get("/:id", c.StoreHandler.GetStoreDetails)
	stores.Put("/:id", c.StoreHandler.UpdateStore)
	stores.Delete("/:id", c.StoreHandler.DeleteStore)

	// Everything below is scoped to one store the caller owns.
	products := stores.Group("/:storeId/products")
	products.Post("", c.ProductHandler.CreateProduct)
	products.Get("", c.ProductHandler.GetProducts)
	products.Post("/import-barcode", c.ProductHandler.ImportFromBarcode)
	products.Post("/image", c.ProductHandler.UploadProductImage)
	products.Get("/:id", c.ProductHandler.GetProductDetails)
	products.Put("/:id", c.ProductHandler.UpdateProduct)
	products.Delete("/:id", c.ProductHandler.DeleteProduct)

	inventory := stores.Group("/:storeId/inventory")
	inventory.Get("", c.InventoryHandler.GetInventory)
	inventory.Post("/adjust", c.InventoryHandler.AdjustInventory)
	inventory.Post("/reorder-point", c.InventoryHandler.SetReorderPoint)
	inventory.Get("/low-stock", c.InventoryHandler.LowStockReport)

	sales := stores.Group("/:storeId/sales")
	sales.Post("", c.SalesHandler.RecordSale)
	sales.Get("", c.SalesHandler.GetSales)

	stores.Get("/:storeId/forecast", c.ForecastHandler.GetForecast)

	chat := stores.Group("/:storeId/chat")
	chat.Post("", c.ChatHandler.Chat)
	chat.Get("/sessions", c.ChatHandler.GetSessions)
	chat.Post("/sessions", c.ChatHandler.SaveSession)
	chat.Get("/sessions/:sessionId", c.ChatHandler.ResumeSession)
	chat.Delete("/sessions/:sessionId", c.ChatHandler.DeleteSession)
}

func (c *Config) Barcode() {
	barcode := c.App.Group("/api/v1/barcodes", c.Middleware.AuthMiddleware(c.JWTService))
	barcode.Get("/history", c.BarcodeHandler.GetScanHistory)
	barcode.Get("/:code", c.BarcodeHandler.LookupBarcode)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.BillingHandler.MidtransWebhookHandler)
}
