package apiclient

import (
	"context"
	"net/http"

	"adminpanel/internal/domain/entity"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pathID renders id for use in a URL path, refusing the zero id.
func pathID(id primitive.ObjectID) (string, error) {
	if id.IsZero() {
		return "", domainerrors.ErrInvalidID
	}

	return id.Hex(), nil
}

func (c *Client) ListAdmins(ctx context.Context) ([]entity.Admin, error) {
	var admins []entity.Admin
	err := c.do(ctx, request{method: http.MethodGet, path: "/admin"}, func(env envelope) error {
		var err error
		admins, err = decodeList[entity.Admin](env, "admins", "users")

		return err
	})
	if err != nil {
		return nil, err
	}

	return admins, nil
}

func (c *Client) GetAdmin(ctx context.Context, id primitive.ObjectID) (*entity.Admin, error) {
	hex, err := pathID(id)
	if err != nil {
		return nil, err
	}

	admin, err := c.adminCall(ctx, request{method: http.MethodGet, path: "/admin/" + hex})
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domainerrors.ErrNotFound
	}

	return admin, nil
}

func (c *Client) CreateAdmin(ctx context.Context, req service.AdminRequest) (*entity.Admin, error) {
	return c.adminCall(ctx, request{method: http.MethodPost, path: "/admin", body: req})
}

func (c *Client) UpdateAdmin(ctx context.Context, id primitive.ObjectID, req service.AdminRequest) (*entity.Admin, error) {
	hex, err := pathID(id)
	if err != nil {
		return nil, err
	}

	return c.adminCall(ctx, request{method: http.MethodPut, path: "/admin/" + hex, body: req})
}

func (c *Client) DeleteAdmin(ctx context.Context, id primitive.ObjectID) error {
	hex, err := pathID(id)
	if err != nil {
		return err
	}

	return c.do(ctx, request{method: http.MethodDelete, path: "/admin/" + hex}, nil)
}

func (c *Client) adminCall(ctx context.Context, req request) (*entity.Admin, error) {
	var admin *entity.Admin
	err := c.do(ctx, req, func(env envelope) error {
		var err error
		admin, err = decodeOne[entity.Admin](env, "admin", "user")

		return err
	})
	if err != nil {
		return nil, err
	}

	return admin, nil
}
