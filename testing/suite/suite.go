package suite

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

const (
	maxWaitDuration = 30 * time.Second

	secretKey = "suite-secret"

	Username = "alice"
	Password = "pw"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Server *Server
	Host   string
	Port   string
}

// New starts a fake Minesweeper API with one account (Username/Password) for the duration of the test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	server := NewServer(logger, secretKey)
	server.AddAccount(Username, Password)

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	u, err := url.Parse(httpServer.URL)
	if err != nil {
		t.Fatalf("could not parse server url: %v", err)
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Server: server,
		Host:   u.Hostname(),
		Port:   u.Port(),
	}
}
