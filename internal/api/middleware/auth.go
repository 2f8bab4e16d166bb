package middleware

import (
	"errors"
	"fmt"
	"strings"

	"recipe-transformer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// UserIDKey is the context key holding the authenticated subject.
const UserIDKey = "user_id"

var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the caller identity extracted from a bearer token.
type TokenClaims struct {
	UserID string
}

// TokenValidator verifies a bearer token.
type TokenValidator interface {
	ValidateToken(token string) (*TokenClaims, error)
}

// JWTValidator accepts HS256 tokens signed with a shared secret.
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a validator. An empty issuer accepts any issuer.
func NewJWTValidator(secret, issuer string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret), issuer: issuer}
}

// ValidateToken checks signature, expiry and issuer and requires a subject.
func (v *JWTValidator) ValidateToken(tokenString string) (*TokenClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{UserID: claims.Subject}, nil
}

// Auth rejects requests without a valid bearer token before any handler
// runs, and stores the caller's id under UserIDKey.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			AbortWithError(c, common.ErrUnauthenticated)
			return
		}

		claims, err := validator.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			common.LogDebug("Token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			AbortWithError(c, common.NewError(common.ErrUnauthenticated.Code, common.ErrUnauthenticated.Message, common.ErrUnauthenticated.Status, err))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
