package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopswift/product-service/controllers"
)

// RegisterProductRoutes mounts the product CRUD routes on the router.
func RegisterProductRoutes(r *gin.Engine, pc *controllers.ProductController) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("", pc.GetProducts)
		productRoutes.GET("/:id", pc.GetProductByID)
		productRoutes.POST("", pc.CreateProduct)
		productRoutes.PUT("/:id", pc.UpdateProduct)
		productRoutes.DELETE("/:id", pc.DeleteProduct)
	}
}
