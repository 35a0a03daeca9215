package middleware

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/services"
)

type AuthMiddleware struct {
	publicKey   *rsa.PublicKey
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewAuthMiddleware(publicKey *rsa.PublicKey, redisClient *redis.Client, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		publicKey:   publicKey,
		redisClient: redisClient,
		logger:      logger,
	}
}

type contextKey string

const (
	UserIDKey contextKey = "userID"
	RoleKey   contextKey = "role"
	TokenKey  contextKey = "token"
)

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth admits any authenticated, non-revoked session.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return m.require(nil, next)
}

// RequireRole admits only sessions whose role is in the allowed set.
// Authenticated-but-underprivileged requests get 403 so clients can
// distinguish "go login" (401) from "go back to your dashboard" (403).
func (m *AuthMiddleware) RequireRole(roles []string, next http.HandlerFunc) http.HandlerFunc {
	return m.require(roles, next)
}

func (m *AuthMiddleware) require(roles []string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := BearerToken(r)
		if !ok {
			http.Error(w, "missing or invalid authorization header", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.publicKey, nil
		})
		if err != nil || !token.Valid {
			m.logger.Debug("token rejected", zap.Error(err))
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "invalid token claims", http.StatusUnauthorized)
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			http.Error(w, "invalid token: missing user ID", http.StatusUnauthorized)
			return
		}

		userRole, ok := claims["role"].(string)
		if !ok || userRole == "" {
			http.Error(w, "invalid token: missing role", http.StatusUnauthorized)
			return
		}

		if m.isRevoked(r.Context(), tokenString) {
			http.Error(w, "token has been revoked", http.StatusUnauthorized)
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if userRole == role {
					allowed = true
					break
				}
			}
			if !allowed {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, RoleKey, userRole)
		ctx = context.WithValue(ctx, TokenKey, tokenString)

		next(w, r.WithContext(ctx))
	}
}

// isRevoked checks the logout denylist. A Redis outage fails open with a
// warning: tokens are short-lived and read paths should not 500 because
// the denylist is briefly unreachable.
func (m *AuthMiddleware) isRevoked(ctx context.Context, tokenString string) bool {
	if m.redisClient == nil {
		return false
	}
	n, err := m.redisClient.Exists(ctx, services.RevokedTokenKey(tokenString)).Result()
	if err != nil {
		m.logger.Warn("revocation check failed", zap.Error(err))
		return false
	}
	return n > 0
}

// RequireAdmin is shorthand for the single-role admin guard.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireRole([]string{string(domain.RoleAdmin)}, next)
}
