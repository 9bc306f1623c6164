package impl

import (
	"context"
	"log/slog"

	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"
	"adminpanel/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// AdminServiceParams defines the dependencies of the admin service.
type AdminServiceParams struct {
	fx.In

	API       service.AdminAPI
	Validator service.Validator
	Logger    *slog.Logger
}

// adminService implements the AdminUsecase interface.
type adminService struct {
	api       service.AdminAPI
	validator service.Validator
	logger    *slog.Logger
	submits   singleflight.Group
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		api:       params.API,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) List(ctx context.Context) ([]entity.Admin, error) {
	admins, err := srv.api.ListAdmins(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	return admins, nil
}

func (srv *adminService) Get(ctx context.Context, id string) (*entity.Admin, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	admin, err := srv.api.GetAdmin(ctx, oid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get admin")
	}

	return admin, nil
}

func (srv *adminService) Submit(ctx context.Context, id string, input form.Admin) (*entity.Admin, error) {
	input.Normalize()

	var extra *domainerrors.ValidationError
	if id == "" && input.Password == "" {
		extra = domainerrors.NewValidationError("password", "Password is required for a new admin")
	}
	if err := mergeValidation(srv.validator.Validate(&input), extra); err != nil {
		return nil, err
	}

	req := input.ToRequest()
	fingerprint, err := util.Fingerprint(req)
	if err != nil {
		return nil, err
	}

	var result any
	if id == "" {
		result, err, _ = srv.submits.Do("create:"+fingerprint, func() (any, error) {
			return srv.api.CreateAdmin(ctx, req)
		})
	} else {
		oid, perr := parseID(id)
		if perr != nil {
			return nil, perr
		}
		result, err, _ = srv.submits.Do(id+":"+fingerprint, func() (any, error) {
			return srv.api.UpdateAdmin(ctx, oid, req)
		})
	}
	if err != nil {
		srv.log(ctx).Info("Admin submission rejected", slog.String("admin_id", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Admin saved",
		slog.String("admin_id", id),
		slog.Bool("password_changed", req.Password != nil),
	)

	return result.(*entity.Admin), nil
}

func (srv *adminService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err, _ = srv.submits.Do("delete:"+id, func() (any, error) {
		return nil, srv.api.DeleteAdmin(ctx, oid)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Admin deleted", slog.String("admin_id", id))

	return nil
}
