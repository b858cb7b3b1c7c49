package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/rcgen/rcg/internal/errors"
)

// templates is the internal registry of available template assets.
var templates = map[Kind]Template{
	KindStylesheet: {
		Kind:        KindStylesheet,
		Asset:       "stylesheet.scss",
		Description: "Module-scoped stylesheet, copied verbatim",
		Substituted: false,
	},
	KindFunctionComponent: {
		Kind:        KindFunctionComponent,
		Asset:       "ts_fc.txt",
		Description: "TypeScript function component",
		Substituted: true,
	},
	KindFunctionComponentWithInterface: {
		Kind:        KindFunctionComponentWithInterface,
		Asset:       "ts_fc_interface.txt",
		Description: "TypeScript function component with a props interface",
		Substituted: true,
	},
}

// Get returns a template by kind.
// Returns a not found error if the kind is unknown.
func Get(kind Kind) (Template, error) {
	t, ok := templates[kind]
	if !ok {
		return Template{}, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown template %q", kind),
			"",
			fmt.Sprintf("Valid templates: %s", strings.Join(Names(), ", ")),
		)
	}
	return t, nil
}

// List returns all templates in display order.
func List() []Template {
	return []Template{
		templates[KindStylesheet],
		templates[KindFunctionComponent],
		templates[KindFunctionComponentWithInterface],
	}
}

// Names returns all template kind names.
func Names() []string {
	return []string{
		string(KindStylesheet),
		string(KindFunctionComponent),
		string(KindFunctionComponentWithInterface),
	}
}

// IsValid checks if a template kind name is valid.
func IsValid(name string) bool {
	_, ok := templates[Kind(name)]
	return ok
}
