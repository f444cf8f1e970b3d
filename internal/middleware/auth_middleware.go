package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			code, msg := "UNAUTHORIZED", "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				msg = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, code, msg, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token claims", nil)
			c.Abort()
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set("user_id_validated", sub)
		}
		if emp, ok := claims["employee_id"].(string); ok {
			c.Set("employee_id", emp)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}

		c.Next()
	}
}

// RequireRole guards admin-only operations like release and settings CRUD.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
