package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventapi/config"
)

// JWTManager signs and verifies the bearer tokens used by the admin routes.
// The key, issuer, audience and lifetime all come from config so nothing in
// the token path reads ambient state.
type JWTManager struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewJWTManager(cfg config.JWT) *JWTManager {
	return &JWTManager{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL,
	}
}

// Generate issues an HS256 token carrying the username and user id, expiring
// ttl from now.
func (m *JWTManager) Generate(username string, userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"userId":   userID,
		"iss":      m.issuer,
		"aud":      m.audience,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	})

	return token.SignedString(m.key)
}

// Verify checks signature, algorithm, issuer, audience and lifetime, and
// returns the embedded user id and username.
func (m *JWTManager) Verify(tokenStr string) (int64, string, error) {
	parsed, err := jwt.Parse(tokenStr,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.key, nil
		},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, "", errors.New("could not parse token")
	}
	if !parsed.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}
	uid, ok := claims["userId"].(float64)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}
	username, _ := claims["username"].(string)

	return int64(uid), username, nil
}
