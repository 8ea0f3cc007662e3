package middleware

import (
	"net/http"
	"strings"

	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/infrastructure/config"
	"boardinghouse-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
)

// InitAuthMiddleware initializes the auth middleware dependencies
func InitAuthMiddleware(cfg *config.Config, redis services.InterfaceRedisService) {
	jwtService = services.NewJWTService(cfg)
	redisService = redis
}

// extractToken strips the Bearer prefix from the authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// resolveClaims validates the token and checks the logout denylist.
// Responses are written on failure; the returned claims are nil then.
func resolveClaims(c *gin.Context) *services.JWTClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Authorization header is required",
			"data":    nil,
		})
		c.Abort()
		return nil
	}

	tokenString := extractToken(authHeader)
	claims, err := jwtService.ExtractClaims(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid token: " + err.Error(),
			"data":    nil,
		})
		c.Abort()
		return nil
	}

	// A token revoked by logout stays invalid until its natural expiry
	if redisService != nil && claims.ID != "" {
		revoked, err := redisService.IsTokenRevoked(claims.ID)
		if err != nil {
			logger.Warning("Token revocation check failed: %v", err)
		} else if revoked {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token has been revoked",
				"data":    nil,
			})
			c.Abort()
			return nil
		}
	}

	return claims
}

// AuthenticateAdmin gates the admin surface
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := resolveClaims(c)
		if claims == nil {
			return
		}

		if claims.Role != services.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AuthenticateTenant gates the tenant portal surface
func AuthenticateTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := resolveClaims(c)
		if claims == nil {
			return
		}

		if claims.Role != services.RoleTenant {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires tenant role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}
