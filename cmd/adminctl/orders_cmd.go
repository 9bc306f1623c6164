package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"text/tabwriter"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"
	"adminpanel/internal/util"

	"github.com/pkg/errors"
)

func (a *app) runOrders(ctx context.Context, args []string) error {
	name, rest := subcommand(args)
	if name == "" {
		return errors.New("orders needs a subcommand: list, get, status, cancel, qr")
	}

	if err := a.requireSession(ctx); err != nil {
		return err
	}

	switch name {
	case "list":
		return a.listOrders(ctx, rest)
	case "get":
		return a.getOrder(ctx, rest)
	case "status":
		return a.updateOrderStatus(ctx, rest)
	case "cancel":
		return a.cancelOrder(ctx, rest)
	case "qr":
		return a.orderQR(ctx, rest)
	default:
		return errors.Errorf("unknown orders subcommand %q", name)
	}
}

func (a *app) listOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	search := fs.String("search", "", "Order number, customer name or phone")
	status := fs.String("status", "", "not_contacted, in_process, delivered or cancelled")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse orders list flags")
	}

	orders, err := a.orders.List(ctx, usecase.OrderFilter{Search: *search, Status: entity.OrderStatus(*status)})
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		a.printf("No orders match.\n")

		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fprintRow(tw, "ID", "ORDER", "CUSTOMER", "PHONE", "ITEMS", "TOTAL", "STATUS")
	for _, o := range orders {
		fprintRow(tw, o.ID.Hex(), o.OrderNumber, o.Customer.FullName, util.FormatPhone(o.Customer.PhoneNumber),
			strconv.Itoa(o.ItemCount()), o.Total().StringFixed(2), o.Status.Label())
	}

	return errors.WithStack(tw.Flush())
}

func (a *app) getOrder(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("orders get needs an ID")
	}

	o, err := a.orders.Get(ctx, args[0])
	if err != nil {
		return err
	}

	a.printf("Order %s (%s)\n", o.OrderNumber, o.Status.Label())
	a.printf("Customer: %s, %s\n", o.Customer.FullName, util.FormatPhone(o.Customer.PhoneNumber))
	a.printf("Address:  %s\n", o.Customer.Address)
	if o.InternalNotes != "" {
		a.printf("Notes:    %s\n", o.InternalNotes)
	}
	a.printf("\n")

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fprintRow(tw, "PRODUCT", "SIZE", "COLOR", "QTY", "PRICE", "TOTAL")
	for _, item := range o.Items {
		fprintRow(tw, item.Title, item.Size, item.Color, strconv.Itoa(item.Quantity),
			item.Price.StringFixed(2), item.TotalPrice.StringFixed(2))
	}
	fprintRow(tw, "", "", "", "", "", o.Total().StringFixed(2))

	return errors.WithStack(tw.Flush())
}

func (a *app) updateOrderStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders status", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var input form.OrderStatus
	fs.StringVar(&input.Status, "status", "", "not_contacted, in_process, delivered or cancelled")
	fs.StringVar(&input.InternalNotes, "notes", "", "Internal notes")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	order, err := a.orders.UpdateStatus(ctx, id, input)
	if err != nil {
		return err
	}
	a.printf("Order %s is now %s\n", orderRef(order, id), entity.OrderStatus(input.Status).Label())

	return nil
}

func (a *app) cancelOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders cancel", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var input form.CancelOrder
	fs.StringVar(&input.Reason, "reason", "", "Why the order is cancelled")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	order, err := a.orders.Cancel(ctx, id, input)
	if err != nil {
		return err
	}
	a.printf("Cancelled order %s\n", orderRef(order, id))

	return nil
}

// orderQR writes the slip code of an order to a PNG file.
func (a *app) orderQR(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders qr", flag.ContinueOnError)
	fs.SetOutput(a.out)
	output := fs.String("o", "", "Output file (default ORDER_NUMBER.png)")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	order, err := a.orders.Get(ctx, id)
	if err != nil {
		return err
	}

	png, err := a.qrcode.GenerateOrderQR(order)
	if err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = orderRef(order, id) + ".png"
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return errors.Wrap(err, "failed to write QR code")
	}
	a.printf("Wrote %s\n", path)

	return nil
}

func orderRef(o *entity.Order, fallback string) string {
	if o == nil || o.OrderNumber == "" {
		return fallback
	}

	return o.OrderNumber
}
