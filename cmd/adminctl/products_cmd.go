package main

import (
	"context"
	"flag"
	"strconv"
	"strings"
	"text/tabwriter"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"

	"github.com/pkg/errors"
)

func (a *app) runProducts(ctx context.Context, args []string) error {
	name, rest := subcommand(args)
	if name == "" {
		return errors.New("products needs a subcommand: list, get, create, update, delete, stock, categories")
	}

	if err := a.requireSession(ctx); err != nil {
		return err
	}

	switch name {
	case "list":
		return a.listProducts(ctx, rest)
	case "get":
		return a.getProduct(ctx, rest)
	case "create":
		return a.submitProduct(ctx, "", rest)
	case "update":
		if len(rest) == 0 || strings.HasPrefix(rest[0], "-") {
			return errors.New("products update needs an ID")
		}

		return a.submitProduct(ctx, rest[0], rest[1:])
	case "delete":
		return a.deleteProduct(ctx, rest)
	case "stock":
		return a.updateStock(ctx, rest)
	case "categories":
		return a.listCategories(ctx)
	default:
		return errors.Errorf("unknown products subcommand %q", name)
	}
}

func (a *app) listProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var filter usecase.ProductFilter
	fs.StringVar(&filter.Search, "search", "", "Search text")
	fs.StringVar(&filter.Category, "category", "", "Category: bathrobe, towel, set or accessories")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse products list flags")
	}

	products, err := a.products.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		a.printf("No products found.\n")

		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fprintRow(tw, "ID", "TITLE (UZ)", "CATEGORY", "PRICE", "STOCK")
	for _, p := range products {
		fprintRow(tw, p.ID.Hex(), p.TitleUz, p.Category.Label(), p.Price.StringFixed(2), stockLabel(&p))
	}

	return errors.WithStack(tw.Flush())
}

func (a *app) getProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("products get needs an ID")
	}

	p, err := a.products.Get(ctx, args[0])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fprintRow(tw, "ID", p.ID.Hex())
	fprintRow(tw, "Title (uz)", p.TitleUz)
	fprintRow(tw, "Title (ru)", p.TitleRu)
	fprintRow(tw, "Description (uz)", p.DescriptionUz)
	fprintRow(tw, "Description (ru)", p.DescriptionRu)
	fprintRow(tw, "Category", p.Category.Label())
	fprintRow(tw, "Price", p.Price.StringFixed(2))
	fprintRow(tw, "Stock", stockLabel(p))
	fprintRow(tw, "Sizes", strings.Join(p.Sizes, ", "))
	fprintRow(tw, "Colors", strings.Join(p.Colors, ", "))
	for i, ref := range p.Images {
		fprintRow(tw, "Image "+strconv.Itoa(i+1), a.products.ImageURL(ref))
	}

	return errors.WithStack(tw.Flush())
}

// submitProduct creates a product, or updates id starting from its current
// values so only the given flags change.
func (a *app) submitProduct(ctx context.Context, id string, args []string) error {
	var input form.Product
	if id != "" {
		current, err := a.products.Get(ctx, id)
		if err != nil {
			return err
		}
		input = form.ProductFrom(current)
		// stock has its own command; leave it untouched unless given
		input.StockQuantity = ""
	}

	name := "products create"
	if id != "" {
		name = "products update"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&input.TitleUz, "title-uz", input.TitleUz, "Title in Uzbek")
	fs.StringVar(&input.TitleRu, "title-ru", input.TitleRu, "Title in Russian")
	fs.StringVar(&input.DescriptionUz, "desc-uz", input.DescriptionUz, "Description in Uzbek")
	fs.StringVar(&input.DescriptionRu, "desc-ru", input.DescriptionRu, "Description in Russian")
	fs.StringVar(&input.Category, "category", input.Category, "Category: bathrobe, towel, set or accessories")
	fs.StringVar(&input.Price, "price", input.Price, "Price, a non-negative decimal")
	fs.StringVar(&input.StockQuantity, "stock", input.StockQuantity, "Stock quantity")
	fs.StringVar(&input.Sizes, "sizes", input.Sizes, "Comma separated sizes")
	fs.StringVar(&input.Colors, "colors", input.Colors, "Comma separated colors")
	var images stringList
	fs.Var(&images, "image", "Image path or bucket URL, repeatable")
	if err := fs.Parse(args); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", fs.Name())
	}
	if id != "" && len(setFlags(fs)) == 0 {
		return errors.New("nothing to update, pass at least one flag")
	}

	for _, ref := range images {
		attachment, err := a.images.Load(ctx, ref)
		if err != nil {
			return err
		}
		input.Images = append(input.Images, form.Upload{Name: attachment.Name, Data: attachment.Data})
	}

	product, err := a.products.Submit(ctx, id, input)
	if err != nil {
		return err
	}

	verb := "Created"
	if id != "" {
		verb = "Updated"
	}
	a.printf("%s product %s\n", verb, productRef(product, id))

	return nil
}

func (a *app) deleteProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("products delete needs an ID")
	}

	if err := a.products.Delete(ctx, args[0]); err != nil {
		return err
	}
	a.printf("Deleted product %s\n", args[0])

	return nil
}

func (a *app) updateStock(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("products stock needs an ID and a quantity")
	}

	product, err := a.products.UpdateInventory(ctx, args[0], form.Inventory{StockQuantity: args[1]})
	if err != nil {
		return err
	}
	if product != nil {
		a.printf("Stock of %s is now %s\n", args[0], stockLabel(product))
	} else {
		a.printf("Stock of %s updated\n", args[0])
	}

	return nil
}

func (a *app) listCategories(ctx context.Context) error {
	categories, err := a.products.Categories(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fprintRow(tw, "VALUE", "LABEL")
	for _, c := range categories {
		fprintRow(tw, string(c.Value), c.Label)
	}

	return errors.WithStack(tw.Flush())
}

func stockLabel(p *entity.Product) string {
	if !p.InStock() {
		return "out of stock"
	}

	return strconv.Itoa(p.StockQuantity)
}

// productRef names the saved product; mutation responses may omit it.
func productRef(p *entity.Product, fallback string) string {
	if p == nil || p.ID.IsZero() {
		if fallback == "" {
			return "(no ID returned)"
		}

		return fallback
	}

	return p.ID.Hex()
}
