// Package view renders the console pages from embedded templates and
// carries flash notifications between redirects.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer implements echo.Renderer. Every page is parsed together with the
// shared layout and executed through it.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page. Image references are resolved
// through images.
func NewRenderer(images service.ImageURLResolver) (*Renderer, error) {
	funcs := template.FuncMap{
		"price":         formatPrice,
		"date":          formatDate,
		"phone":         util.FormatPhone,
		"join":          strings.Join,
		"imageURL":      images.ResolveImageURL,
		"statusLabel":   func(s entity.OrderStatus) string { return s.Label() },
		"categoryLabel": func(c entity.Category) string { return c.Label() },
		"statuses":      entity.OrderStatuses,
		"categories":    entity.Categories,
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "glob templates")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutFile {
			continue
		}

		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", file)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the named page through the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %s not found", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}

// Has reports whether a page with that name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]

	return ok
}

// StaticFS holds the stylesheet and placeholder image served under /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format("2006-01-02 15:04")
}
