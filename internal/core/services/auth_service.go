package services

import (
	"context"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

const (
	sessionTokenTTL  = 24 * time.Hour
	revokedKeyPrefix = "revoked-token:"
)

// HashToken is the key under which a revoked token is stored in Redis.
// Hashing keeps raw tokens out of the store.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RevokedTokenKey builds the Redis key for a revoked session token.
func RevokedTokenKey(token string) string {
	return revokedKeyPrefix + HashToken(token)
}

type AuthService struct {
	userRepo    ports.UserRepository
	privateKey  *rsa.PrivateKey
	redisClient *redis.Client
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepo ports.UserRepository, privateKey *rsa.PrivateKey, redisClient *redis.Client) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		privateKey:  privateKey,
		redisClient: redisClient,
	}
}

// Login accepts a single identifier field: values containing '@' are
// treated as emails (role=user accounts), anything else as admin
// usernames. Lookup failures and bad passwords collapse into one error
// so the response does not leak which identifiers exist.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}

// Logout revokes the token by storing its hash in Redis until the token
// would have expired anyway. The middleware consults the same key.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ttl := sessionTokenTTL

	// Shrink the revocation window to the token's remaining lifetime
	// when the exp claim is readable. The token was already verified by
	// the middleware, so an unverified parse is enough here.
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err == nil {
		if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
			remaining := time.Until(exp.Time)
			if remaining <= 0 {
				return nil
			}
			ttl = remaining
		}
	}

	return s.redisClient.Set(ctx, RevokedTokenKey(token), "1", ttl).Err()
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
