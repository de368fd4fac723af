package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mdayat/prayer-surah-service/internal/services"
)

// Authenticator resolves the user a request acts on behalf of.
type Authenticator interface {
	Authenticate(req *http.Request) (uuid.UUID, error)
}

var errInvalidAuthorizationHeader = errors.New("invalid authorization header")

func bearerToken(req *http.Request) (string, error) {
	token, found := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return "", errInvalidAuthorizationHeader
	}

	return token, nil
}

type prodAuthenticator struct {
	authService services.AuthServicer
}

func NewProdAuthenticator(authService services.AuthServicer) Authenticator {
	return &prodAuthenticator{
		authService: authService,
	}
}

func (p prodAuthenticator) Authenticate(req *http.Request) (uuid.UUID, error) {
	accessToken, err := bearerToken(req)
	if err != nil {
		return uuid.Nil, err
	}

	claims, err := p.authService.ValidateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, err
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse subject to UUID: %w", err)
	}

	return userId, nil
}
