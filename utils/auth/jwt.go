package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrInvalidClaims  = errors.New("invalid token claims")
	ErrRefreshExpired = errors.New("refresh window has expired")
)

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	Expiry        time.Duration
	RefreshExpiry time.Duration // window from first issuance during which a token may be refreshed
	Issuer        string
}

// Claims represents JWT claims
type Claims struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	TokenVersion int    `json:"token_version"` // For invalidating all tokens
	OrigIat      int64  `json:"orig_iat"`      // Issuance time of the first token in a refresh chain
	jwt.RegisteredClaims
}

// JWTManager handles JWT token operations
type JWTManager struct {
	config JWTConfig
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(config JWTConfig) *JWTManager {
	return &JWTManager{
		config: config,
	}
}

// GenerateToken generates a signed token for the given user
func (j *JWTManager) GenerateToken(userID uint, username string, tokenVersion int) (string, error) {
	return j.generate(userID, username, tokenVersion, time.Now().Unix())
}

func (j *JWTManager) generate(userID uint, username string, tokenVersion int, origIat int64) (string, error) {
	now := time.Now()
	expiresAt := now.Add(j.config.Expiry)

	claims := Claims{
		UserID:       userID,
		Username:     username,
		TokenVersion: tokenVersion,
		OrigIat:      origIat,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.config.Issuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.Secret))
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.config.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// RefreshToken issues a new token from a valid one, preserving the original
// issuance time. Refreshing stops once the refresh window measured from that
// original issuance has passed.
func (j *JWTManager) RefreshToken(tokenString string, tokenVersion int) (string, *Claims, error) {
	claims, err := j.ValidateToken(tokenString)
	if err != nil {
		return "", nil, err
	}

	if time.Now().After(time.Unix(claims.OrigIat, 0).Add(j.config.RefreshExpiry)) {
		return "", nil, ErrRefreshExpired
	}

	token, err := j.generate(claims.UserID, claims.Username, tokenVersion, claims.OrigIat)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}
