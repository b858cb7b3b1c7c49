// Package templates provides the component template assets used by rcg.
package templates

// Kind identifies a template asset.
type Kind string

const (
	// KindStylesheet is the module-scoped stylesheet copied verbatim.
	KindStylesheet Kind = "stylesheet"

	// KindFunctionComponent is a plain function component.
	KindFunctionComponent Kind = "fc"

	// KindFunctionComponentWithInterface is a function component with a props interface.
	KindFunctionComponentWithInterface Kind = "fc-interface"
)

// DefaultPlaceholder is the literal token replaced by the component name.
const DefaultPlaceholder = "ClassName"

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Template describes a template asset.
type Template struct {
	// Kind is the template identifier (stylesheet, fc, fc-interface).
	Kind Kind `json:"kind" yaml:"kind"`

	// Asset is the file name of the asset, both embedded and in a custom templates directory.
	Asset string `json:"asset" yaml:"asset"`

	// Description explains what the template produces.
	Description string `json:"description" yaml:"description"`

	// Substituted reports whether the placeholder token is replaced in this asset.
	// Stylesheets are copied byte-for-byte.
	Substituted bool `json:"substituted" yaml:"substituted"`
}

// Provider loads template content by kind.
// Implementations must read from storage on every call.
type Provider interface {
	Load(kind Kind) ([]byte, error)
}
