package view

import (
	"encoding/base64"
	"encoding/gob"
	"log/slog"
	"net/http"

	"adminpanel/config"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const flashSessionName = "adminpanel-flash"

// FlashKind selects how a flash is styled.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Kind    FlashKind
	Message string
}

func init() {
	gob.Register(Flash{})
}

type FlasherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Flasher stores flashes in a signed cookie between a POST and the page it
// redirects to.
type Flasher struct {
	store  *sessions.CookieStore
	logger *slog.Logger
}

// NewFlasher builds the cookie store from console.sessionKey, or a random
// key when none is configured.
func NewFlasher(params FlasherParams) (*Flasher, error) {
	key, err := DecodeKey(params.Config.Console.SessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "console.sessionKey")
	}

	store := sessions.NewCookieStore(key)
	store.Options.HttpOnly = true
	store.Options.Secure = params.Config.Console.CookieSecure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = "/"

	return &Flasher{store: store, logger: params.Logger}, nil
}

// Add queues a flash for the next page.
func (f *Flasher) Add(c echo.Context, kind FlashKind, message string) {
	session, _ := f.store.Get(c.Request(), flashSessionName)
	session.AddFlash(Flash{Kind: kind, Message: message})
	if err := session.Save(c.Request(), c.Response()); err != nil {
		f.logger.Warn("Failed to save flash", slog.Any("error", err))
	}
}

// Pop returns and clears the pending flashes.
func (f *Flasher) Pop(c echo.Context) []Flash {
	session, _ := f.store.Get(c.Request(), flashSessionName)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if flash, ok := v.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	if err := session.Save(c.Request(), c.Response()); err != nil {
		f.logger.Warn("Failed to clear flashes", slog.Any("error", err))
	}

	return flashes
}

// DecodeKey decodes a base64 secret of at least 32 bytes. An empty value
// yields a random key, valid until the process exits.
func DecodeKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return securecookie.GenerateRandomKey(32), nil
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "decode base64 key")
	}
	if len(key) < 32 {
		return nil, errors.Errorf("key must be at least 32 bytes, got %d", len(key))
	}

	return key, nil
}
