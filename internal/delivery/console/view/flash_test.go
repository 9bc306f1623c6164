package view

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adminpanel/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlasher(t *testing.T) *Flasher {
	t.Helper()

	cfg := &config.Config{}
	cfg.Console.SessionKey = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))
	flasher, err := NewFlasher(FlasherParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	return flasher
}

func TestFlasher_SurvivesRedirect(t *testing.T) {
	flasher := newTestFlasher(t)
	e := echo.New()

	// the POST that queues the flash
	rec := httptest.NewRecorder()
	flasher.Add(e.NewContext(httptest.NewRequest(http.MethodPost, "/products", nil), rec), FlashSuccess, "Product created")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	// the page it redirects to
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	flashes := flasher.Pop(e.NewContext(req, rec))
	assert.Equal(t, []Flash{{Kind: FlashSuccess, Message: "Product created"}}, flashes)

	// popping rewrote the cookie without the flash
	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	assert.Empty(t, flasher.Pop(e.NewContext(req, httptest.NewRecorder())))
}

func TestFlasher_IgnoresForeignCookie(t *testing.T) {
	flasher := newTestFlasher(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashSessionName, Value: "tampered"})

	assert.Empty(t, flasher.Pop(echo.New().NewContext(req, httptest.NewRecorder())))
}

func TestDecodeKey(t *testing.T) {
	t.Run("empty generates a random key", func(t *testing.T) {
		a, err := DecodeKey("")
		require.NoError(t, err)
		b, err := DecodeKey("")
		require.NoError(t, err)

		assert.Len(t, a, 32)
		assert.NotEqual(t, a, b)
	})

	t.Run("accepts 32 bytes", func(t *testing.T) {
		raw := []byte(strings.Repeat("x", 32))
		key, err := DecodeKey(base64.StdEncoding.EncodeToString(raw))
		require.NoError(t, err)
		assert.Equal(t, raw, key)
	})

	t.Run("rejects short keys", func(t *testing.T) {
		_, err := DecodeKey(base64.StdEncoding.EncodeToString([]byte("short")))
		assert.ErrorContains(t, err, "at least 32 bytes")
	})

	t.Run("rejects bad base64", func(t *testing.T) {
		_, err := DecodeKey("not base64!")
		assert.Error(t, err)
	})
}
