package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yiryeong/wanted-pre-onboarding/internal/config"
	"github.com/yiryeong/wanted-pre-onboarding/internal/handler"
	"github.com/yiryeong/wanted-pre-onboarding/internal/logic"
	"github.com/yiryeong/wanted-pre-onboarding/internal/middleware"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "funding-service",
		})
	})

	userLogic := logic.NewUserLogic(db, cfg.Auth)
	authenticated := middleware.Authenticated(userLogic)

	v1 := r.Group("/api/v1")
	{
		userHandler := handler.NewUserHandler(userLogic)
		users := v1.Group("/users")
		{
			users.POST("/signup", userHandler.Signup)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authenticated, userHandler.Logout)
		}

		productHandler := handler.NewProductHandler(logic.NewProductLogic(db))
		products := v1.Group("/products", authenticated)
		{
			products.POST("", productHandler.CreateProduct)
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		fundingHandler := handler.NewFundingHandler(logic.NewFundingLogic(db))
		fundings := v1.Group("/fundings", authenticated)
		{
			fundings.POST("", fundingHandler.CreateFunding)
			fundings.DELETE("/:id", fundingHandler.DeleteFunding)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
