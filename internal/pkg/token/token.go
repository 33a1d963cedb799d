package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pingr-im/pingr-go/internal/model"
)

const accessTokenTTL = 30 * 24 * time.Hour

type Manager struct {
	secret []byte
}

func New(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
	}
}

// Generate issues an access token for the user. Returns the signed token
// and its expiry as a unix timestamp.
func (m *Manager) Generate(user model.User) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(accessTokenTTL)

	claims := model.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Name:  user.Name,
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

// Validate checks the signature and expiry of a token. Server side only.
func (m *Manager) Validate(tokenString string) (*model.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}

	if claims, ok := token.Claims.(*model.AccessClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid access token")
}

// Identity extracts the user identity from a token without verifying the
// signature. The client holds no secret; it trusts the token it was
// handed and only needs to know who it is acting as.
func Identity(tokenString string) (*model.User, error) {
	claims := &model.AccessClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("access token carries no subject")
	}

	return &model.User{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}
