package router

import (
	"github.com/gin-gonic/gin"

	"reex.app/server/internal/http/handler"
)

func ExplainRouter(rg *gin.RouterGroup, h *handler.ExplainHandler) {
	rg.POST("/explain", h.Explain)
	rg.POST("/chat", h.Chat)
}
