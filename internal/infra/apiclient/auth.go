package apiclient

import (
	"context"
	"net/http"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"

	"github.com/pkg/errors"
)

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login exchanges credentials for a bearer token and the operator profile.
func (c *Client) Login(ctx context.Context, phoneNumber, password string) (*service.LoginResult, error) {
	var result *service.LoginResult
	err := c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      loginRequest{PhoneNumber: phoneNumber, Password: password},
		anonymous: true,
	}, func(env envelope) error {
		token, err := decodeOne[string](env, "token", "accessToken")
		if err != nil {
			return err
		}
		if token == nil || *token == "" {
			return errors.New("login response carries no token")
		}

		profile, err := decodeOne[entity.Profile](env, "user", "admin")
		if err != nil {
			return err
		}

		result = &service.LoginResult{Token: *token, Profile: profile}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Profile fetches the operator the current credential belongs to.
func (c *Client) Profile(ctx context.Context) (*entity.Profile, error) {
	var profile *entity.Profile
	err := c.do(ctx, request{method: http.MethodGet, path: "/auth/profile"}, func(env envelope) error {
		var err error
		profile, err = decodeOne[entity.Profile](env, "user", "admin", "profile")
		if err == nil && profile == nil {
			err = errors.New("profile response carries no user")
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ChangePassword changes the signed-in operator's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/change-password",
		body:   changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword},
	}, nil)
}
