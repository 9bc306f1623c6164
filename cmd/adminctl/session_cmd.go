package main

import (
	"context"
	"flag"
	"time"

	"adminpanel/internal/usecase/form"
	"adminpanel/internal/util"

	"github.com/pkg/errors"
)

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	phone := fs.String("phone", "", "Phone number, any common format")
	password := fs.String("password", "", "Password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	if *phone == "" {
		return errors.New("-phone is required")
	}
	if *password == "" {
		secret, err := a.prompt.Secret("Password")
		if err != nil {
			return err
		}
		*password = secret
	}

	profile, err := a.session.Login(ctx, form.Login{PhoneNumber: *phone, Password: *password})
	if err != nil {
		return err
	}

	a.printf("Signed in as %s (%s)\n", profile.FullName, profile.Role)

	return nil
}

func (a *app) logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.printf("Signed out\n")

	return nil
}

func (a *app) whoami(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	snap := a.session.Current()
	a.printf("%s\n%s\nrole: %s\n", snap.Profile.FullName, util.FormatPhone(snap.Profile.PhoneNumber), snap.Profile.Role)
	if !snap.ExpiresAt.IsZero() {
		a.printf("session expires: %s (in %s)\n",
			snap.ExpiresAt.Local().Format(time.DateTime), util.FormatDuration(time.Until(snap.ExpiresAt)))
	}

	return nil
}

func (a *app) passwd(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	var input form.ChangePassword
	for _, field := range []struct {
		label string
		dest  *string
	}{
		{"Current password", &input.CurrentPassword},
		{"New password", &input.NewPassword},
		{"Repeat new password", &input.ConfirmPassword},
	} {
		secret, err := a.prompt.Secret(field.label)
		if err != nil {
			return err
		}
		*field.dest = secret
	}

	if err := a.session.ChangePassword(ctx, input); err != nil {
		return err
	}

	a.printf("Password changed\n")

	return nil
}
