package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestPublicRoutes(t *testing.T) {
	table := []struct {
		name               string
		path               string
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "Heartbeat",
			path:               "/ping",
			expectedStatusCode: http.StatusOK,
			expectedBody:       ".",
		},
		{
			name:               "Metrics",
			path:               "/metrics",
			expectedStatusCode: http.StatusOK,
			expectedBody:       "http_requests_total",
		},
	}

	// Makes sure at least one request has been counted before /metrics is read.
	if _, err := testClient.Get(testServer.URL + "/ping"); err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(context.TODO(), http.MethodGet, testServer.URL+v.path, nil)
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			res, err := testClient.Do(req)
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}
			defer res.Body.Close()

			if res.StatusCode != v.expectedStatusCode {
				t.Fatalf("expected status code %d, got %d", v.expectedStatusCode, res.StatusCode)
			}

			body, err := io.ReadAll(res.Body)
			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if !strings.Contains(string(body), v.expectedBody) {
				t.Fatalf("expected body to contain %q, got %q", v.expectedBody, body)
			}
		})
	}

	req, err := http.NewRequestWithContext(context.TODO(), http.MethodGet, testServer.URL+"/prayerSurahAyat", nil)
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	res, err := testClient.Do(req)
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status code %d, got %d", http.StatusUnauthorized, res.StatusCode)
	}
}
