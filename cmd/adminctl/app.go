package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"adminpanel/config"
	deliverycontext "adminpanel/internal/delivery/context"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/infra/apiclient"
	"adminpanel/internal/infra/auth"
	"adminpanel/internal/infra/media"
	"adminpanel/internal/infra/persistence"
	"adminpanel/internal/infra/qrcode"
	"adminpanel/internal/infra/session"
	"adminpanel/internal/infra/validator"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/impl"

	"github.com/pkg/errors"
)

var errNotLoggedIn = errors.New("not logged in, run `adminctl login`")

// app is the hand-assembled CLI: the same use cases the console runs, over
// the configured credential store.
type app struct {
	logger    *slog.Logger
	session   usecase.SessionUsecase
	products  usecase.ProductUsecase
	orders    usecase.OrderUsecase
	admins    usecase.AdminUsecase
	dashboard usecase.DashboardUsecase
	images    service.ImageSource
	qrcode    service.QRCodeService
	prompt    prompter
	out       io.Writer
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer, prompt prompter) (*app, func() error, error) {
	credentials, closeFn, err := persistence.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	holder := session.NewHolder()
	client, err := apiclient.NewClient(cfg.API, holder, logger)
	if err != nil {
		_ = closeFn()

		return nil, nil, err
	}
	v := validator.New()

	sessionUC := impl.NewSessionService(impl.SessionServiceParams{
		API:         client,
		Holder:      holder,
		Credentials: credentials,
		Tokens:      auth.NewJWTInspector(),
		Validator:   v,
		Logger:      logger,
	})
	client.OnUnauthorized(sessionUC.HandleUnauthorized)

	return &app{
		logger:  logger,
		session: sessionUC,
		products: impl.NewProductService(impl.ProductServiceParams{
			API:       client,
			Images:    client,
			Inspector: media.NewInspector(cfg.Upload.MaxImageSize),
			Validator: v,
			Logger:    logger,
		}),
		orders: impl.NewOrderService(impl.OrderServiceParams{API: client, Validator: v, Logger: logger}),
		admins: impl.NewAdminService(impl.AdminServiceParams{API: client, Validator: v, Logger: logger}),
		dashboard: impl.NewDashboardService(impl.DashboardServiceParams{
			Products: client,
			Orders:   client,
			Session:  holder,
			Logger:   logger,
		}),
		images: media.NewBlobSource(cfg.Upload.MaxImageSize),
		qrcode: qrcode.NewQRCodeService(cfg),
		prompt: prompt,
		out:    out,
	}, closeFn, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage(a.out)

		return errors.New("missing command")
	}

	ctx = deliverycontext.NewCommandContext(ctx, a.logger)
	a.logger.Debug("Running command", slog.String("command", args[0]))

	switch args[0] {
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "passwd":
		return a.passwd(ctx)
	case "dashboard":
		return a.showDashboard(ctx)
	case "products":
		return a.runProducts(ctx, args[1:])
	case "orders":
		return a.runOrders(ctx, args[1:])
	case "admins":
		return a.runAdmins(ctx, args[1:])
	case "help", "-h", "--help":
		printUsage(a.out)

		return nil
	default:
		printUsage(a.out)

		return errors.Errorf("unknown command %q", args[0])
	}
}

// requireSession restores the stored credential; commands other than login
// refuse to run without a confirmed session.
func (a *app) requireSession(ctx context.Context) error {
	a.session.Restore(ctx)
	if !a.session.Current().IsAuthenticated() {
		return errNotLoggedIn
	}

	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// failureList spells out field failures one per line, in field order.
func failureList(validationErr *domainerrors.ValidationError) string {
	fields := make([]string, 0, len(validationErr.Fields))
	for field := range validationErr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(validationErr.Message())
	for _, field := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", field, validationErr.Fields[field])
	}

	return b.String()
}
