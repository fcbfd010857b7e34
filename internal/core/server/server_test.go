package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"site-announcements/internal/core/cache"
	"site-announcements/internal/core/config"
	"site-announcements/internal/core/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(port int) *config.AppConfig {
	return &config.AppConfig{
		ServerPort: port,
		Session: config.SessionConfig{
			CookieName: "announcements_session",
			Expiration: time.Hour,
		},
	}
}

// TestNew verifies that New creates a Server with the correct configuration.
func TestNew(t *testing.T) {
	cfg := testConfig(8080)

	logger.Init("development", "debug")
	srv := New(cfg, nil)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.App)
	assert.NotNil(t, srv.Sessions)
	assert.Equal(t, cfg, srv.cfg)
}

// TestServer_ErrorHandler verifies that errors are rendered as JSON with the ray id.
func TestServer_ErrorHandler(t *testing.T) {
	srv := New(testConfig(8080), nil)
	srv.App.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	srv.App.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database exploded")
	})

	tests := []struct {
		path        string
		wantStatus  int
		wantMessage string
	}{
		{path: "/teapot", wantStatus: fiber.StatusTeapot, wantMessage: "short and stout"},
		{path: "/boom", wantStatus: fiber.StatusInternalServerError, wantMessage: "Internal server error"},
		{path: "/missing", wantStatus: fiber.StatusNotFound, wantMessage: "Cannot GET /missing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := srv.App.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body errorResponse
			data, _ := io.ReadAll(resp.Body)
			require.NoError(t, json.Unmarshal(data, &body))
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, resp.Header.Get("X-Ray-ID"), body.RayID)
			assert.NotEmpty(t, body.RayID)
		})
	}
}

// TestServer_SessionsUseStorage verifies that sessions are persisted through the cache.
func TestServer_SessionsUseStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	srv := New(testConfig(8080), cache.NewSessionStorage(adapter, "session:"))
	srv.App.Post("/visit", func(c *fiber.Ctx) error {
		sess, err := srv.Sessions.Get(c)
		if err != nil {
			return err
		}
		sess.Set("visited", true)
		return sess.Save()
	})

	resp, err := srv.App.Test(httptest.NewRequest("POST", "/visit", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "announcements_session" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	_, err = uuid.Parse(cookie.Value)
	assert.NoError(t, err)
	assert.True(t, mr.Exists("session:"+cookie.Value))
}

// TestServer_Run_Error verifies that Run returns an error when binding fails (e.g., privileged port).
func TestServer_Run_Error(t *testing.T) {
	// Privileged port 1 should fail
	cfg := testConfig(1)
	logger.Init("development", "error")

	srv := New(cfg, nil)

	errCh := make(chan error)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(1 * time.Second):
		srv.App.Shutdown()
		t.Log("Server unexpectedly started or timed out on Error test")
	}
}
