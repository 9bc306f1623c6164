package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"adminpanel/config"
	domainerrors "adminpanel/internal/domain/errors"
	logs "adminpanel/internal/infra/log"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login / logout / whoami / passwd: operator session
// - dashboard:                       counts and recent orders
// - products:                        list, get, create, update, delete, stock, categories
// - orders:                          list, get, status, cancel, qr
// - admins:                          list, get, create, update, delete

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := runMain(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describe(err))
		os.Exit(1)
	}
}

func runMain(ctx context.Context, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	a, closeFn, err := newApp(ctx, cfg, logger, os.Stdout, newTerminalPrompter(os.Stdin, os.Stderr))
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFn(); err != nil {
			logger.Warn("Failed to close credential store", slog.Any("error", err))
		}
	}()

	return a.run(ctx, args)
}

// describe turns err into what the operator should read.
func describe(err error) string {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return failureList(validationErr)
	}

	return domainerrors.UserMessage(err, err.Error())
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: adminctl <command> [flags]

Session:
  login [-phone N] [-password P]     sign in (prompts for missing values)
  logout                             sign out and forget the stored credential
  whoami                             show the signed-in operator
  passwd                             change the operator password

Catalog:
  dashboard                          order counts, stock alerts, recent orders
  products list [-search S] [-category C]
  products get ID
  products create -title-uz .. -title-ru .. -desc-uz .. -desc-ru .. -category C -price P
                  [-stock N] [-sizes "S, M"] [-colors "white, blue"] [-image REF ...]
  products update ID [same flags as create, only given ones change]
  products stock ID N
  products delete ID
  products categories

Orders:
  orders list [-search S] [-status STATUS]
  orders get ID
  orders status ID -status STATUS [-notes TEXT]
  orders cancel ID -reason TEXT
  orders qr ID [-o FILE]              write the order slip QR code as PNG

Admins:
  admins list
  admins get ID
  admins create -name N -phone P [-password P]
  admins update ID [-name N] [-phone P] [-password P]
  admins delete ID

Image references are local paths or bucket URLs (file://, s3://, gs://).
`)
}
