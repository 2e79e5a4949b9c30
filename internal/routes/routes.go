package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ElkinVA/MyBiz-Project/internal/handlers"
	"github.com/ElkinVA/MyBiz-Project/internal/middleware"
)

// SetupRouter wires every route onto a fresh engine. The back-office group
// sits behind JWT auth; everything else is the public storefront.
func SetupRouter(h *handlers.Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Storefront ---
	router.GET("/", h.Home)

	products := router.Group("/products")
	{
		products.GET("/", h.ProductList)
		products.GET("/load-more/", h.LoadMoreProducts)
		products.GET("/category/:slug/", h.ProductList)
		products.GET("/:slug/", h.ProductDetail)
	}

	router.GET("/pages/:slug/", h.PageDetail)

	// --- Back office ---
	admin := router.Group("/admin")
	{
		admin.POST("/login", h.AdminLogin)

		authed := admin.Group("/")
		authed.Use(middleware.AdminAuth(h.DB, h.JWTKey))
		{
			authed.GET("/categories", h.AdminListCategories)
			authed.POST("/categories", h.AdminCreateCategory)
			authed.PUT("/categories/:id", h.AdminUpdateCategory)
			authed.DELETE("/categories/:id", h.AdminDeleteCategory)

			authed.GET("/products", h.AdminListProducts)
			authed.POST("/products", h.AdminCreateProduct)
			authed.PUT("/products/:id", h.AdminUpdateProduct)
			authed.DELETE("/products/:id", h.AdminDeleteProduct)

			authed.GET("/pages", h.AdminListPages)
			authed.POST("/pages", h.AdminCreatePage)
			authed.PUT("/pages/:id", h.AdminUpdatePage)
			authed.DELETE("/pages/:id", h.AdminDeletePage)

			authed.GET("/promotions", h.AdminListPromotions)
			authed.POST("/promotions", h.AdminCreatePromotion)
			authed.PUT("/promotions/:id", h.AdminUpdatePromotion)
			authed.DELETE("/promotions/:id", h.AdminDeletePromotion)

			authed.GET("/settings", h.AdminGetSettings)
			authed.PUT("/settings", h.AdminUpdateSettings)
		}
	}

	return router
}
