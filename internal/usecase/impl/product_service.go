package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"
	"adminpanel/internal/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// ProductServiceParams defines the dependencies of the product service.
type ProductServiceParams struct {
	fx.In

	API       service.ProductAPI
	Images    service.ImageURLResolver
	Inspector service.ImageInspector
	Validator service.Validator
	Logger    *slog.Logger
}

// productService implements the ProductUsecase interface.
type productService struct {
	api       service.ProductAPI
	images    service.ImageURLResolver
	inspector service.ImageInspector
	validator service.Validator
	logger    *slog.Logger
	submits   singleflight.Group
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		api:       params.API,
		images:    params.Images,
		inspector: params.Inspector,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List asks the API for products; unknown categories are dropped from the
// filter rather than sent.
func (srv *productService) List(ctx context.Context, filter usecase.ProductFilter) ([]entity.Product, error) {
	query := service.ProductQuery{Search: strings.TrimSpace(filter.Search)}
	if category := entity.Category(strings.TrimSpace(filter.Category)); category.IsValid() {
		query.Category = category
	}

	products, err := srv.api.ListProducts(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	product, err := srv.api.GetProduct(ctx, oid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (srv *productService) Submit(ctx context.Context, id string, input form.Product) (*entity.Product, error) {
	input.Normalize()

	var images []service.Attachment
	imageErrs := &domainerrors.ValidationError{}
	for _, upload := range input.Images {
		att, err := srv.inspector.Inspect(upload.Name, upload.Data)
		if err != nil {
			var validationErr *domainerrors.ValidationError
			if !errors.As(err, &validationErr) {
				return nil, err
			}
			for field, msg := range validationErr.Fields {
				imageErrs.Add(field, msg)
			}

			continue
		}
		images = append(images, *att)
	}

	if err := mergeValidation(srv.validator.Validate(&input), imageErrs); err != nil {
		return nil, err
	}

	req, err := input.ToRequest(images)
	if err != nil {
		return nil, errors.Wrap(err, "invalid product form")
	}

	var oid primitive.ObjectID
	if id != "" {
		if oid, err = parseID(id); err != nil {
			return nil, err
		}
	}

	fingerprint, err := util.Fingerprint(req)
	if err != nil {
		return nil, err
	}

	result, err, shared := srv.submits.Do(id+":"+fingerprint, func() (any, error) {
		if oid.IsZero() {
			return srv.api.CreateProduct(ctx, req)
		}

		return srv.api.UpdateProduct(ctx, oid, req)
	})
	if shared {
		srv.log(ctx).Debug("Duplicate product submission collapsed", slog.String("product_id", id))
	}
	if err != nil {
		srv.log(ctx).Info("Product submission rejected", slog.String("product_id", id), slog.Any("error", err))

		return nil, err
	}

	product := result.(*entity.Product)
	srv.log(ctx).Info("Product saved",
		slog.String("product_id", id),
		slog.Int("images", len(images)),
	)

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	_, err, _ = srv.submits.Do("delete:"+id, func() (any, error) {
		return nil, srv.api.DeleteProduct(ctx, oid)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id))

	return nil
}

func (srv *productService) UpdateInventory(ctx context.Context, id string, input form.Inventory) (*entity.Product, error) {
	input.Normalize()
	if err := srv.validator.Validate(&input); err != nil {
		return nil, err
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	quantity, err := input.Quantity()
	if err != nil {
		return nil, err
	}

	product, err := srv.api.UpdateInventory(ctx, oid, quantity)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Inventory updated", slog.String("product_id", id), slog.Int("stock_quantity", quantity))

	return product, nil
}

func (srv *productService) Categories(ctx context.Context) ([]entity.CategoryOption, error) {
	options, err := srv.api.ProductCategories(ctx)
	if errors.Is(err, domainerrors.ErrUnauthorized) {
		return nil, err
	}
	if err != nil {
		srv.log(ctx).Debug("Falling back to built-in categories", slog.Any("error", err))

		options = make([]entity.CategoryOption, 0, len(entity.Categories()))
		for _, category := range entity.Categories() {
			options = append(options, entity.CategoryOption{Value: category, Label: category.Label()})
		}
	}

	return options, nil
}

func (srv *productService) ImageURL(ref string) string {
	return srv.images.ResolveImageURL(ref)
}
