package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка админ-доступа по общему ключу из окружения.
// Пустой ключ закрывает админ-маршруты совсем.
func AuthMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" || c.GetHeader("X-Admin-Key") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
