package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"adminpanel/config"
	domainerrors "adminpanel/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken     = "tok-1"
	testAdminID   = "65f1c2a9e4b0a1b2c3d4e5f0"
	testProductID = "65f1c2a9e4b0a1b2c3d4e5f6"
	testOrderID   = "65f1c2a9e4b0a1b2c3d4e5f7"
)

type stubPrompter string

func (p stubPrompter) Secret(string) (string, error) { return string(p), nil }

// fakeAPI serves just enough of the REST API for the CLI round trips.
type fakeAPI struct {
	writes atomic.Int32
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user := `{"_id":"` + testAdminID + `","fullName":"Aziza Karimova","phoneNumber":"+998901234567","role":"superadmin"}`

	if r.Method == http.MethodPost && r.URL.Path == "/api/auth/login" {
		writeJSON(w, http.StatusOK, `{"success":true,"token":"`+testToken+`","user":`+user+`}`)

		return
	}
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"message":"Not authorized"}`)

		return
	}
	if r.Method != http.MethodGet {
		f.writes.Add(1)
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/auth/profile":
		writeJSON(w, http.StatusOK, `{"success":true,"user":`+user+`}`)
	case r.Method == http.MethodGet && r.URL.Path == "/api/products":
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"products":[{"_id":"`+testProductID+`","title_uz":"Xalat","price":"120000","stockQuantity":0}]}}`)
	case r.Method == http.MethodGet && r.URL.Path == "/api/orders":
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"orders":[{"_id":"`+testOrderID+`","orderNumber":"ORD-7","status":"in_process","customer":{"fullName":"Dilnoza","phoneNumber":"+998911112233"}}]}}`)
	case r.Method == http.MethodGet && r.URL.Path == "/api/orders/"+testOrderID:
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"order":{"_id":"`+testOrderID+`","orderNumber":"ORD-7","status":"in_process"}}}`)
	default:
		writeJSON(w, http.StatusNotFound, `{"success":false,"message":"Not found"}`)
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

type fixture struct {
	api *fakeAPI
	cfg *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	api := &fakeAPI{}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL + "/api"
	cfg.API.Timeout = 5 * time.Second
	cfg.Session.Store = config.SessionStoreFile
	cfg.Session.TokenKey = "authToken"
	cfg.Session.FilePath = filepath.Join(t.TempDir(), "session.json")
	cfg.Upload.MaxImageSize = 1 << 20
	cfg.Console.QRCode.Size = 128

	return &fixture{api: api, cfg: cfg}
}

// run executes one command in a fresh app, the way each adminctl invocation does.
func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, closeFn, err := newApp(context.Background(), f.cfg, logger, &out, stubPrompter("secret-pass"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	err = a.run(context.Background(), args)

	return out.String(), err
}

func TestRun_RequiresLogin(t *testing.T) {
	f := newFixture(t)

	for _, args := range [][]string{
		{"products", "list"},
		{"orders", "list"},
		{"admins", "list"},
		{"dashboard"},
		{"whoami"},
	} {
		_, err := f.run(t, args...)
		assert.ErrorIs(t, err, errNotLoggedIn, "%v", args)
	}
}

func TestRun_LoginPersistsAcrossInvocations(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "login", "-phone", "+998901234567")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Aziza Karimova (superadmin)")

	out, err = f.run(t, "products", "list")
	require.NoError(t, err)
	assert.Contains(t, out, testProductID)
	assert.Contains(t, out, "Xalat")

	out, err = f.run(t, "orders", "list", "-search", "ord-7")
	require.NoError(t, err)
	assert.Contains(t, out, "ORD-7")
	assert.Contains(t, out, "In process")

	_, err = f.run(t, "logout")
	require.NoError(t, err)

	_, err = f.run(t, "whoami")
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestRun_OrderStatusValidatedLocally(t *testing.T) {
	f := newFixture(t)
	_, err := f.run(t, "login", "-phone", "+998901234567", "-password", "secret-pass")
	require.NoError(t, err)

	_, err = f.run(t, "orders", "status", testOrderID, "-status", "shipped")

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "status")
	assert.Contains(t, describe(err), "status:")
	assert.Zero(t, f.api.writes.Load())
}

func TestRun_OrderQRWritesPNG(t *testing.T) {
	f := newFixture(t)
	_, err := f.run(t, "login", "-phone", "+998901234567", "-password", "secret-pass")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "slip.png")
	out, err := f.run(t, "orders", "qr", testOrderID, "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestRun_CommandErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown command", args: []string{"reboot"}, want: `unknown command "reboot"`},
		{name: "missing command", args: nil, want: "missing command"},
		{name: "login without phone", args: []string{"login"}, want: "-phone is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	f := newFixture(t)

	out, err := f.run(t, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: adminctl")
}

func TestParseWithID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantID  string
		wantErr bool
	}{
		{name: "id first", args: []string{"abc", "-status", "delivered"}, wantID: "abc"},
		{name: "id last", args: []string{"-status", "delivered", "abc"}, wantID: "abc"},
		{name: "no id", args: []string{"-status", "delivered"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newStatusFlags()
			id, err := parseWithID(fs, tt.args)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.True(t, setFlags(fs)["status"])
		})
	}
}

func newStatusFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("orders status", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("status", "", "")

	return fs
}
