package router

import (
	"github.com/gin-gonic/gin"

	"reex.app/server/internal/http/handler"
	"reex.app/server/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		explainHandler := handler.NewExplainHandler(services.Explain())
		ExplainRouter(api, explainHandler)

		conversationHandler := handler.NewConversationHandler(services.Conversations())
		ConversationRouter(api.Group("/conversations"), conversationHandler)
	}
}
