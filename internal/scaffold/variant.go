package scaffold

import (
	"fmt"

	"github.com/rcgen/rcg/internal/templates"
)

// Variant selects which component template is stamped.
type Variant int

const (
	// FunctionComponent is a plain function component.
	FunctionComponent Variant = iota
	// FunctionComponentWithInterface is a function component with a props interface.
	FunctionComponentWithInterface
)

// componentTemplates is the single place a variant is mapped to its template.
var componentTemplates = map[Variant]templates.Kind{
	FunctionComponent:              templates.KindFunctionComponent,
	FunctionComponentWithInterface: templates.KindFunctionComponentWithInterface,
}

// Template returns the template kind for v.
func (v Variant) Template() (templates.Kind, bool) {
	kind, ok := componentTemplates[v]
	return kind, ok
}

// String returns the template kind name of the variant.
func (v Variant) String() string {
	if kind, ok := componentTemplates[v]; ok {
		return kind.String()
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}
