package middleware

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ElkinVA/MyBiz-Project/internal/auth"
)

// AdminAuth guards the /admin API. It expects a Bearer token issued by
// /admin/login and confirms the account still exists before letting the
// request through.
func AdminAuth(db *sql.DB, jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format, must be 'Bearer <token>'"})
			return
		}

		adminID, err := auth.ValidateToken(jwtKey, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var exists int
		err = db.QueryRowContext(c.Request.Context(),
			"SELECT 1 FROM admins WHERE id = ?", adminID).Scan(&exists)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account associated with token not found"})
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
