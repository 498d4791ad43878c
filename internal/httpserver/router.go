package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"zepto-clone/internal/coordinator"
)

// Deps carries the coordinators backing the HTTP surface.
type Deps struct {
	Home     *coordinator.Home
	Category *coordinator.Category
	Cart     *coordinator.Cart
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")
	{
		api.GET("/cart", getCartHandler(deps.Cart))
		api.GET("/cart/watch", watchCartHandler(deps.Cart))
		api.POST("/cart/add", addToCartHandler(deps.Cart))
		api.POST("/cart/remove", removeFromCartHandler(deps.Cart))
		api.POST("/cart/quantity", setQuantityHandler(deps.Cart))
		api.DELETE("/cart", clearCartHandler(deps.Cart))

		api.GET("/home", homeStateHandler(deps.Home))
		api.POST("/home/refresh", refreshHomeHandler(deps.Home))
		api.POST("/home/select", selectCategoryHandler(deps.Home))
		api.POST("/home/select/:idOrName", selectCategoryByKeyHandler(deps.Home))

		api.GET("/categories/:idOrName", categoryHandler(deps.Category))
	}

	return router
}
