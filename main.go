package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stockcraft/config"
	"stockcraft/database"
	"stockcraft/handlers"
	"stockcraft/ledger"
	"stockcraft/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	config.InitDB()
	config.InitRedis()

	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	defer sqlDB.Close()

	if err := database.AutoMigrate(config.DB); err != nil {
		log.Fatal("Failed to migrate models:", err)
	}

	store := ledger.NewStore(config.DB)
	engine := ledger.NewEngine(store)
	queries := ledger.NewQueries(store)
	h := handlers.NewHandler(engine, queries)

	router := gin.Default()

	// Public routes
	router.POST("/signup", handlers.Signup)
	router.POST("/login", handlers.Login)
	router.GET("/stocks", handlers.ListStocks)

	// Protected routes
	auth := router.Group("/")
	auth.Use(middleware.JWTAuth())
	{
		auth.GET("/wallet", h.GetWallet)
		auth.POST("/wallet/deposit", h.Deposit)
		auth.POST("/wallet/withdraw", h.Withdraw)
		auth.GET("/portfolio", h.GetPortfolio)
		auth.POST("/orders", h.PlaceOrder)
		auth.GET("/orders", h.GetOrders)
		auth.DELETE("/orders/:id", h.CancelOrder)
		auth.GET("/stocks/:id/quote", handlers.GetQuote)
	}

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.AdminRequired())
	{
		admin.GET("/users", handlers.ListUsers)
		admin.POST("/stocks", handlers.AddStock)
		admin.POST("/positions", h.AdjustPosition)
		admin.DELETE("/positions/:id", h.DeletePosition)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}
