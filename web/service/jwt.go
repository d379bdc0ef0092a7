package service

import (
	"time"

	"hamlog/config"
	"hamlog/util/common"

	"github.com/golang-jwt/jwt/v5"
)

// API clients get a bearer token at login as an alternative to the cookie.
const tokenLifetime = 24 * time.Hour

var ErrInvalidToken = common.NewError("invalid or expired token")

type userClaims struct {
	UserId int `json:"user_id"`
	jwt.RegisteredClaims
}

type JWTService struct{}

func (s *JWTService) GenerateToken(userId int) (string, error) {
	now := time.Now()
	claims := userClaims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.GetName(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetJWTSecret()))
}

// ValidateToken returns the user id carried by a well-formed, unexpired token.
func (s *JWTService) ValidateToken(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &userClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.GetJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*userClaims)
	if !ok || claims.UserId <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserId, nil
}
