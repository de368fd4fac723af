package services

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mdayat/prayer-surah-service/configs"
)

// AuthServicer verifies access tokens issued by the upstream auth service.
// CreateAccessToken exists for seeding and tests.
type AuthServicer interface {
	CreateAccessToken(claims AccessTokenClaims) (string, error)
	ValidateAccessToken(tokenString string) (*AccessTokenClaims, error)
}

type auth struct {
	configs configs.Configs
}

func NewAuthService(configs configs.Configs) AuthServicer {
	return &auth{
		configs: configs,
	}
}

type TokenType int

const (
	Refresh TokenType = iota
	Access
)

type AccessTokenClaims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

func (a auth) CreateAccessToken(claims AccessTokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.configs.Env.SecretKey))
}

func (a auth) ValidateAccessToken(tokenString string) (*AccessTokenClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&AccessTokenClaims{},
		func(_ *jwt.Token) (interface{}, error) {
			return []byte(a.configs.Env.SecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(a.configs.Env.OriginURL),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	claims, ok := token.Claims.(*AccessTokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid access token claims")
	}

	if claims.Type != Access {
		return nil, errors.New("invalid access token type")
	}

	return claims, nil
}
