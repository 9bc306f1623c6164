// Package form holds the console's input forms. Fields are kept as the raw
// strings the operator typed; validate tags describe the local checks and
// the To* methods build the API requests once a form has passed them.
package form

import "strings"

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
