package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"boardinghouse-http-service/internal/domain/services"
	"boardinghouse-http-service/internal/domain/services/container"
	"boardinghouse-http-service/internal/error/code"
	"boardinghouse-http-service/internal/error/response"
	"boardinghouse-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController defines the auth controller interface
type InterfaceJWTController interface {
	Login()
	Refresh()
	Logout()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new auth controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginData is the payload returned on successful login
type LoginData struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID   uint   `json:"user_id" example:"1"`
	Role     string `json:"role" example:"admin"`
	Username string `json:"username" example:"admin"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"Invalid username or password"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a gin handler dispatching auth requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "refresh":
			controller.Refresh()
		case "logout":
			controller.Logout()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}

// Login authenticates a username/password pair
// @Summary      User Login
// @Description  Resolve credentials to a principal (admin accounts probed first, then tenants) and issue a session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response{data=LoginData}  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	principal, err := authService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// One uniform message for unknown user and wrong password
			response.Fail(c.Ctx, code.ErrInvalidCredentials, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	token, err := jwtService.GenerateToken(principal.ID, principal.Username, principal.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	if principal.Role == services.RoleAdmin {
		if err := authService.RecordAdminLogin(principal.ID, c.Ctx.ClientIP()); err != nil {
			logger.Warning("Failed to record admin login for %s: %v", principal.Username, err)
		}
	}

	response.Success(c.Ctx, LoginData{
		Token:    token,
		UserID:   principal.ID,
		Role:     principal.Role,
		Username: principal.Username,
	})
}

// Refresh issues a fresh session token for a valid, un-revoked one
// @Summary      Refresh session token
// @Description  Sliding session refresh: exchange a valid token for a fresh one with a full session lifetime
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=LoginData}
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/refresh [post]
func (c *JWTController) Refresh() {
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)

	tokenString := bearerToken(c.Ctx)
	if tokenString == "" {
		response.Unauthorized(c.Ctx)
		return
	}

	claims, err := jwtService.ExtractClaims(tokenString)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	if claims.ID != "" {
		if revoked, err := redisService.IsTokenRevoked(claims.ID); err == nil && revoked {
			response.Unauthorized(c.Ctx)
			return
		}
	}

	token, err := jwtService.GenerateToken(claims.UserID, claims.Username, claims.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, LoginData{
		Token:    token,
		UserID:   claims.UserID,
		Role:     claims.Role,
		Username: claims.Username,
	})
}

// Logout revokes the presented token
// @Summary      Logout
// @Description  Invalidate the session unconditionally; repeating the call is harmless
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (c *JWTController) Logout() {
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)

	tokenString := bearerToken(c.Ctx)
	if tokenString != "" {
		// An invalid or expired token still logs out successfully
		if claims, err := jwtService.ExtractClaims(tokenString); err == nil && claims.ID != "" {
			ttl := time.Until(claims.ExpiresAt.Time)
			if err := redisService.RevokeToken(claims.ID, ttl); err != nil {
				logger.Warning("Failed to revoke token %s: %v", claims.ID, err)
			}
		}
	}

	response.Success(c.Ctx, gin.H{"message": "Logged out"})
}

// bearerToken pulls the raw token out of the authorization header
func bearerToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}
