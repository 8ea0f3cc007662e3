package services

import (
	"errors"
	"fmt"
	"time"

	"boardinghouse-http-service/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Session tokens carry a fixed absolute expiry; sliding refresh is done
// through the refresh endpoint.
const SessionDuration = 6 * time.Hour

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(userID uint, username, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService provides JWT token operations
type JWTService struct {
	secretKey string
	issuer    string
}

// JWTClaims defines the token claim structure
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "boardinghouse-http-service",
	}
}

// GenerateToken generates a signed session token
func (s *JWTService) GenerateToken(userID uint, username, role string) (string, error) {
	expirationTime := time.Now().Add(SessionDuration)

	claims := &JWTClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			// The token ID is what the logout denylist keys on
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken validates a session token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims extracts typed claims from a token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
