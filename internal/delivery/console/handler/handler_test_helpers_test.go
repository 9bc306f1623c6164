package handler

import (
	"bytes"
	"encoding/base64"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"adminpanel/config"
	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/delivery/console/middleware"
	"adminpanel/internal/delivery/console/view"
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/infra/qrcode"
	"adminpanel/internal/infra/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var operatorID = primitive.NewObjectID()

func newTestOperator() *entity.Profile {
	return &entity.Profile{ID: operatorID, FullName: "Aziza Karimova", PhoneNumber: "+998901234567", Role: entity.RoleAdmin}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type placeholderResolver struct{}

func (placeholderResolver) ResolveImageURL(ref string) string {
	if ref == "" {
		return "/static/placeholder.svg"
	}

	return "https://cdn.test/" + ref
}

func newTestQRCode() service.QRCodeService {
	cfg := &config.Config{}
	cfg.Console.QRCode.Size = 128

	return qrcode.NewQRCodeService(cfg)
}

func newTestFlasher(t *testing.T) *view.Flasher {
	t.Helper()

	cfg := &config.Config{}
	cfg.Console.SessionKey = base64.StdEncoding.EncodeToString([]byte(strings.Repeat("f", 32)))
	flasher, err := view.NewFlasher(view.FlasherParams{Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)

	return flasher
}

// newTestEcho builds an echo instance with the console renderer and error
// handler. A non-nil operator is placed on every request the way the route
// guard does.
func newTestEcho(t *testing.T, flasher *view.Flasher, operator *entity.Profile) *echo.Echo {
	t.Helper()

	renderer, err := view.NewRenderer(placeholderResolver{})
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(middleware.ErrorMiddlewareParams{
		Flasher: flasher,
		Logger:  newDiscardLogger(),
	}).HandleHTTPError

	if operator != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetSession(c, entity.SessionSnapshot{
					State:   entity.SessionAuthenticated,
					Token:   "token",
					Profile: operator,
				})

				return next(c)
			}
		})
	}

	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func doPostForm(e *echo.Echo, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type testFile struct {
	field string
	name  string
	data  []byte
}

func doPostMultipart(t *testing.T, e *echo.Echo, target string, values url.Values, files ...testFile) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, vals := range values {
		for _, v := range vals {
			require.NoError(t, writer.WriteField(key, v))
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// followFlashes replays the cookies of rec on a new request and pops what
// the flasher queued.
func followFlashes(flasher *view.Flasher, rec *httptest.ResponseRecorder) []view.Flash {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	return flasher.Pop(echo.New().NewContext(req, httptest.NewRecorder()))
}
