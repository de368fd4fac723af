package handlers

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/prayer-surah-service/configs"
	"github.com/mdayat/prayer-surah-service/internal/dbtest"
	"github.com/mdayat/prayer-surah-service/internal/metrics"
	"github.com/rs/zerolog"
)

var testServer *httptest.Server
var testClient *http.Client
var testQuerier *dbtest.Querier
var testUserId uuid.UUID

// testAuthenticator trusts the bearer token to be the user id.
type testAuthenticator struct{}

func NewTestAuthenticator() Authenticator {
	return &testAuthenticator{}
}

func (t testAuthenticator) Authenticate(req *http.Request) (uuid.UUID, error) {
	token, err := bearerToken(req)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(token)
}

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	testQuerier = dbtest.NewQuerier()
	testUserId = uuid.New()
	if _, err := testQuerier.InsertUser(context.TODO(), pgtype.UUID{Bytes: testUserId, Valid: true}); err != nil {
		log.Fatal(err)
	}

	env := configs.Env{AllowedOrigins: "http://localhost:3000"}
	configs := configs.NewConfigs(env, configs.Db{Queries: testQuerier})
	authenticator := NewTestAuthenticator()

	customMiddleware := NewMiddlewareHandler(configs, authenticator)
	router := NewRestHandler(configs, customMiddleware, metrics.NewHTTPMetrics())

	testServer = httptest.NewServer(router)
	testClient = testServer.Client()

	exitCode := m.Run()
	testServer.Close()
	os.Exit(exitCode)
}

func newAuthenticatedRequest(method, url string, userId uuid.UUID) (*http.Request, error) {
	req, err := http.NewRequestWithContext(context.TODO(), method, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+userId.String())
	return req, nil
}
