package view

import (
	"html/template"

	"adminpanel/internal/domain/entity"
)

// Page is the data every template receives.
type Page struct {
	Title     string
	Nav       string
	Operator  *entity.Profile
	Flashes   []Flash
	CSRFField template.HTML

	// Alert is an inline error above a form that failed remotely.
	Alert string
	// Errors maps form field names to their messages.
	Errors map[string]string

	Data any
}

// FieldError returns the message for one form field, or "".
func (p *Page) FieldError(field string) string {
	return p.Errors[field]
}
