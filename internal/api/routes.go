package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"d23_web/internal/api/handlers"
	"d23_web/internal/middleware"
	"d23_web/internal/service"
	"d23_web/internal/utils"
)

func SetupRoutes(r *gin.Engine, services *service.Services, issuer *utils.TokenIssuer, log *slog.Logger) {
	// 初始化 handlers
	sessionHandler := handlers.NewSessionHandler(services.Sessions, issuer)
	pageHandler := handlers.NewPageHandler(log)
	eventsHandler := handlers.NewEventsHandler(services.Hub)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		api.POST("/sessions", sessionHandler.Create)
		api.GET("/routes", handlers.Routes)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":   "ok",
				"sessions": services.Sessions.Len(),
			})
		})
	}

	// 需要工作階段 token 的路由
	authorized := api.Group("/")
	authorized.Use(middleware.SessionAuth(issuer, services.Sessions))
	{
		authorized.GET("/session", sessionHandler.Show)
		authorized.DELETE("/session", sessionHandler.Delete)
		authorized.POST("/navigate", sessionHandler.Navigate)

		pages := authorized.Group("/pages/:page")
		{
			pages.GET("", pageHandler.GetView)
			pages.DELETE("", pageHandler.Unmount)

			// 對話框
			pages.POST("/overlays/:key", pageHandler.OpenOverlay)
			pages.DELETE("/overlays", pageHandler.CloseOverlay)
			pages.PATCH("/overlays/:key/form", pageHandler.SetForm)

			// 選擇器與搜尋
			pages.PUT("/selectors/:name", pageHandler.Select)
			pages.PUT("/query", pageHandler.SetQuery)

			pages.POST("/actions/:action", pageHandler.Do)
		}

		// 事件推送
		authorized.GET("/events", eventsHandler.Stream)
		authorized.GET("/ws", eventsHandler.WebSocket)
	}
}
