package server

import (
	handler "collection-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.LedgerServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(service)

	collections := router.Group("/collections")
	{
		collections.GET("", marketHandler.ListCollectionsHandler)
		collections.POST("", marketHandler.CreateCollectionHandler)
		collections.GET("/:id", marketHandler.GetCollectionHandler)
		collections.PUT("/:id", marketHandler.UpdateCollectionHandler)
		collections.DELETE("/:id", marketHandler.DeleteCollectionHandler)
	}

	bids := router.Group("/bids")
	{
		bids.GET("", marketHandler.ListBidsHandler)
		bids.POST("", marketHandler.CreateBidHandler)
		bids.GET("/:id", marketHandler.GetBidHandler)
		bids.PUT("/:id", marketHandler.UpdateBidHandler)
		bids.DELETE("/:id", marketHandler.DeleteBidHandler)
		bids.POST("/:id/accept", marketHandler.AcceptBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("", marketHandler.ListUsersHandler)
	}

	return router
}
