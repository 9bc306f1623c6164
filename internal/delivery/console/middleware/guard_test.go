package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"adminpanel/config"
	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/infra/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOperator = &entity.Profile{FullName: "Aziza Karimova", PhoneNumber: "+998901234567"}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGuard(holder *session.Holder, wait time.Duration) *GuardMiddleware {
	cfg := &config.Config{}
	cfg.Session.RestoreWait = wait

	return NewGuardMiddleware(GuardMiddlewareParams{Session: holder, Config: cfg, Logger: newDiscardLogger()})
}

// serve runs one request through mw and reports whether the page handler ran.
func serve(t *testing.T, mw echo.MiddlewareFunc, method, target string) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)

	reached := false
	err := mw(func(c echo.Context) error {
		reached = true
		snap, ok := deliverycontext.GetSession(c)
		assert.True(t, ok)
		assert.True(t, snap.IsAuthenticated())

		return c.NoContent(http.StatusOK)
	})(c)

	return rec, reached, err
}

func TestGuardMiddleware_RequireSession(t *testing.T) {
	t.Run("authenticated operator passes", func(t *testing.T) {
		holder := session.NewHolder()
		holder.Authenticate("token", testOperator, time.Time{})

		rec, reached, err := serve(t, newTestGuard(holder, time.Second).RequireSession, http.MethodGet, "/orders")
		require.NoError(t, err)
		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("signed out GET keeps its location", func(t *testing.T) {
		holder := session.NewHolder()
		holder.Clear()

		rec, reached, err := serve(t, newTestGuard(holder, time.Second).RequireSession, http.MethodGet, "/orders?status=delivered")
		require.NoError(t, err)
		assert.False(t, reached)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?next=%2Forders%3Fstatus%3Ddelivered", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("signed out POST returns to the dashboard", func(t *testing.T) {
		holder := session.NewHolder()
		holder.Clear()

		rec, reached, err := serve(t, newTestGuard(holder, time.Second).RequireSession, http.MethodPost, "/products/1/delete")
		require.NoError(t, err)
		assert.False(t, reached)
		assert.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("bare credential is not a session", func(t *testing.T) {
		holder := session.NewHolder()
		holder.Begin("token", time.Time{})
		holder.Clear()

		_, reached, err := serve(t, newTestGuard(holder, time.Second).RequireSession, http.MethodGet, "/dashboard")
		require.NoError(t, err)
		assert.False(t, reached)
	})

	t.Run("waits for a restore in flight", func(t *testing.T) {
		holder := session.NewHolder()
		go func() {
			time.Sleep(20 * time.Millisecond)
			holder.Authenticate("token", testOperator, time.Time{})
		}()

		_, reached, err := serve(t, newTestGuard(holder, time.Second).RequireSession, http.MethodGet, "/dashboard")
		require.NoError(t, err)
		assert.True(t, reached)
	})

	t.Run("gives up on a restore that does not settle", func(t *testing.T) {
		holder := session.NewHolder()

		_, reached, err := serve(t, newTestGuard(holder, 20*time.Millisecond).RequireSession, http.MethodGet, "/dashboard")
		assert.ErrorIs(t, err, domainerrors.ErrSessionLoading)
		assert.False(t, reached)
	})
}

func TestGuardMiddleware_RedirectAuthenticated(t *testing.T) {
	e := echo.New()
	page := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	holder := session.NewHolder()
	holder.Authenticate("token", testOperator, time.Time{})
	rec := httptest.NewRecorder()
	require.NoError(t, newTestGuard(holder, time.Second).RedirectAuthenticated(page)(e.NewContext(httptest.NewRequest(http.MethodGet, LoginPath, nil), rec)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DashboardPath, rec.Header().Get(echo.HeaderLocation))

	holder.Clear()
	rec = httptest.NewRecorder()
	require.NoError(t, newTestGuard(holder, time.Second).RedirectAuthenticated(page)(e.NewContext(httptest.NewRequest(http.MethodGet, LoginPath, nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{next: "/orders", want: "/orders"},
		{next: "/orders?status=delivered", want: "/orders?status=delivered"},
		{next: "/products/64b7f0c2a1b2c3d4e5f60718/edit", want: "/products/64b7f0c2a1b2c3d4e5f60718/edit"},
		{next: "", want: DashboardPath},
		{next: "/", want: DashboardPath},
		{next: "/login", want: DashboardPath},
		{next: "//evil.example", want: DashboardPath},
		{next: "/\\evil.example", want: DashboardPath},
		{next: "https://evil.example/orders", want: DashboardPath},
		{next: "orders", want: DashboardPath},
	}

	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeNext(tt.next))
		})
	}
}

func TestLoginURL(t *testing.T) {
	assert.Equal(t, LoginPath, LoginURL(DashboardPath))
	assert.Equal(t, LoginPath, LoginURL("https://evil.example"))
	assert.Equal(t, "/login?next=%2Fadmins", LoginURL("/admins"))
}
