package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undefined7887/ai2024-applied-python-hw2/internal/service"
)

// SetupRoutes - служебные HTTP-маршруты поверх состояния в памяти.
// Поднимаются внутри процесса бота: отдельному процессу показывать нечего,
// всё состояние живёт только здесь.
func SetupRoutes(r *gin.Engine, userService *service.UserService, adminKey string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	adminGroup := r.Group("/admin", AuthMiddleware(adminKey))

	adminGroup.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"users": userService.UsersCount(),
			"day":   userService.CurrentDay(),
		})
	})
}
