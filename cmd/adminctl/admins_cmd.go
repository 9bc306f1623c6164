package main

import (
	"context"
	"flag"
	"text/tabwriter"
	"time"

	"adminpanel/internal/usecase/form"
	"adminpanel/internal/util"

	"github.com/pkg/errors"
)

func (a *app) runAdmins(ctx context.Context, args []string) error {
	name, rest := subcommand(args)
	if name == "" {
		return errors.New("admins needs a subcommand: list, get, create, update, delete")
	}

	if err := a.requireSession(ctx); err != nil {
		return err
	}

	switch name {
	case "list":
		return a.listAdmins(ctx)
	case "get":
		return a.getAdmin(ctx, rest)
	case "create":
		return a.createAdmin(ctx, rest)
	case "update":
		return a.updateAdmin(ctx, rest)
	case "delete":
		return a.deleteAdmin(ctx, rest)
	default:
		return errors.Errorf("unknown admins subcommand %q", name)
	}
}

func (a *app) listAdmins(ctx context.Context) error {
	admins, err := a.admins.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fprintRow(tw, "ID", "NAME", "PHONE", "ROLE", "CREATED")
	for _, admin := range admins {
		fprintRow(tw, admin.ID.Hex(), admin.FullName, util.FormatPhone(admin.PhoneNumber), string(admin.Role),
			admin.CreatedAt.Local().Format(time.DateOnly))
	}

	return errors.WithStack(tw.Flush())
}

func (a *app) getAdmin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("admins get needs an ID")
	}

	admin, err := a.admins.Get(ctx, args[0])
	if err != nil {
		return err
	}

	a.printf("%s\n%s\nrole: %s\n", admin.FullName, util.FormatPhone(admin.PhoneNumber), admin.Role)

	return nil
}

func (a *app) createAdmin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admins create", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var input form.Admin
	fs.StringVar(&input.FullName, "name", "", "Full name")
	fs.StringVar(&input.PhoneNumber, "phone", "", "Phone number")
	fs.StringVar(&input.Password, "password", "", "Password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse admins create flags")
	}

	if input.Password == "" {
		secret, err := a.prompt.Secret("Password for the new admin")
		if err != nil {
			return err
		}
		input.Password = secret
	}

	admin, err := a.admins.Submit(ctx, "", input)
	if err != nil {
		return err
	}
	if admin != nil && !admin.ID.IsZero() {
		a.printf("Created admin %s (%s)\n", input.FullName, admin.ID.Hex())
	} else {
		a.printf("Created admin %s\n", input.FullName)
	}

	return nil
}

// updateAdmin starts from the stored account so only the given flags change;
// the password is kept unless -password is passed.
func (a *app) updateAdmin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admins update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "Full name")
	phone := fs.String("phone", "", "Phone number")
	password := fs.String("password", "", "New password")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	given := setFlags(fs)
	if len(given) == 0 {
		return errors.New("nothing to update, pass at least one flag")
	}

	current, err := a.admins.Get(ctx, id)
	if err != nil {
		return err
	}
	input := form.AdminFrom(current)
	if given["name"] {
		input.FullName = *name
	}
	if given["phone"] {
		input.PhoneNumber = *phone
	}
	if given["password"] {
		input.Password = *password
	}

	if _, err := a.admins.Submit(ctx, id, input); err != nil {
		return err
	}
	a.printf("Updated admin %s\n", id)

	return nil
}

func (a *app) deleteAdmin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("admins delete needs an ID")
	}

	if snap := a.session.Current(); snap.Profile != nil && snap.Profile.ID.Hex() == args[0] {
		return errors.New("you cannot delete your own account")
	}

	if err := a.admins.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Deleted admin %s\n", args[0])

	return nil
}
