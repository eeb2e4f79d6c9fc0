package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spicetable/pos/internal/config"
)

// StationAuth verifies the shared station key sent by POS terminals.
// An empty configured hash disables the check (development).
func StationAuth(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.API.StationKeyHash == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing station key"})
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.API.StationKeyHash), []byte(key)); err != nil {
			logger.Warn("Rejected station key", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid station key"})
			return
		}

		c.Next()
	}
}
