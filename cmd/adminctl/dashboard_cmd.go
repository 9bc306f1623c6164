package main

import (
	"context"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
)

func (a *app) showDashboard(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	summary, err := a.dashboard.Summary(ctx)
	if err != nil {
		return err
	}

	if summary.Profile != nil {
		a.printf("Signed in as %s\n\n", summary.Profile.FullName)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fprintRow(tw, "Products", strconv.Itoa(summary.ProductCount))
	fprintRow(tw, "Orders", strconv.Itoa(summary.TotalOrders))
	for _, count := range summary.OrderCounts {
		fprintRow(tw, "  "+count.Status.Label(), strconv.Itoa(count.Count))
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	if len(summary.OutOfStock) > 0 {
		a.printf("\nOut of stock:\n")
		for _, p := range summary.OutOfStock {
			a.printf("  %s  %s\n", p.ID.Hex(), p.TitleUz)
		}
	}

	if len(summary.RecentOrders) > 0 {
		a.printf("\nRecent orders:\n")
		tw = tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		for _, o := range summary.RecentOrders {
			fprintRow(tw, "  "+o.OrderNumber, o.Customer.FullName, o.Total().StringFixed(2), o.Status.Label(),
				o.CreatedAt.Local().Format(time.DateTime))
		}

		return errors.WithStack(tw.Flush())
	}

	return nil
}
