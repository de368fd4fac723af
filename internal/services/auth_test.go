package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mdayat/prayer-surah-service/configs"
)

func TestValidateAccessToken(t *testing.T) {
	env := configs.Env{SecretKey: "secret", OriginURL: "http://localhost:8080"}
	service := NewAuthService(configs.Configs{Env: env})
	otherService := NewAuthService(configs.Configs{Env: configs.Env{SecretKey: "other", OriginURL: env.OriginURL}})

	now := time.Now()
	userId := uuid.NewString()

	newClaims := func(tokenType TokenType, expiresAt time.Time) AccessTokenClaims {
		return AccessTokenClaims{
			Type: tokenType,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    env.OriginURL,
				Subject:   userId,
			},
		}
	}

	table := []struct {
		name        string
		issuer      AuthServicer
		claims      AccessTokenClaims
		expectedErr bool
	}{
		{name: "Valid", issuer: service, claims: newClaims(Access, now.Add(5*time.Minute))},
		{name: "Expired", issuer: service, claims: newClaims(Access, now.Add(-time.Minute)), expectedErr: true},
		{name: "Refresh token", issuer: service, claims: newClaims(Refresh, now.Add(5*time.Minute)), expectedErr: true},
		{name: "Wrong secret", issuer: otherService, claims: newClaims(Access, now.Add(5*time.Minute)), expectedErr: true},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			token, err := v.issuer.CreateAccessToken(v.claims)
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			claims, err := service.ValidateAccessToken(token)
			if v.expectedErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if claims.Subject != userId {
				t.Fatalf("expected subject %s, got %s", userId, claims.Subject)
			}
		})
	}
}
