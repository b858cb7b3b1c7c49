// Package commands is the dispatch table between user-facing triggers and
// the scaffolder: each command ID maps to a handler that takes a directory
// and a raw name and returns a message for display.
package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/naming"
	"github.com/rcgen/rcg/internal/output"
	"github.com/rcgen/rcg/internal/scaffold"
)

// Command identifiers.
const (
	CreateComponent              = "createComponent"
	CreateComponentWithInterface = "createComponentWithInterface"
)

// Texts shown to the user.
const (
	SuccessText       = "component created successfully!"
	alreadyExistsText = "%s already exists, please choose another name."
)

// Command describes one entry in the dispatch table.
type Command struct {
	// ID is the stable command identifier.
	ID string
	// Use is the CLI verb that triggers the command.
	Use string
	// Short is a one-line description.
	Short string
	// Variant is the component variant the command scaffolds.
	Variant scaffold.Variant
}

var table = []Command{
	{
		ID:      CreateComponent,
		Use:     "fc",
		Short:   "Create a function component",
		Variant: scaffold.FunctionComponent,
	},
	{
		ID:      CreateComponentWithInterface,
		Use:     "fc-interface",
		Short:   "Create a function component with a props interface",
		Variant: scaffold.FunctionComponentWithInterface,
	},
}

// Commands returns the dispatch table entries in registration order.
func Commands() []Command {
	out := make([]Command, len(table))
	copy(out, table)
	return out
}

// Message is the outcome of a handler, ready for display.
type Message struct {
	// Level is one of output.LevelSuccess, output.LevelNotice or output.LevelFailure.
	Level string
	// Text is the one-line message shown to the user.
	Text string
	// Err is the underlying error; nil on success.
	Err error
	// Result is set when a component was created.
	Result *scaffold.Result
}

// Failed reports whether the message represents a hard failure.
// An existing component is a notice, not a failure.
func (m Message) Failed() bool {
	return m.Err != nil && m.Level == output.LevelFailure
}

// Handler runs a command. A nil rawName means no name was supplied.
type Handler func(dir string, rawName *string) Message

// Registry maps command IDs to handlers.
type Registry struct {
	scaffolder *scaffold.Scaffolder
	handlers   map[string]Handler
}

// NewRegistry builds the dispatch table around s.
func NewRegistry(s *scaffold.Scaffolder) *Registry {
	r := &Registry{
		scaffolder: s,
		handlers:   make(map[string]Handler, len(table)),
	}
	for _, c := range table {
		r.handlers[c.ID] = r.createHandler(c.Variant)
	}
	return r
}

// Handler returns the handler registered for id.
func (r *Registry) Handler(id string) (Handler, bool) {
	h, ok := r.handlers[id]
	return h, ok
}

// Dispatch runs the handler registered for id.
func (r *Registry) Dispatch(id, dir string, rawName *string) Message {
	h, ok := r.Handler(id)
	if !ok {
		err := oerrors.NewNotFoundError(fmt.Sprintf("unknown command %q", id), "", "")
		return failure(err)
	}
	return h(dir, rawName)
}

// ComponentName normalizes raw and rejects input that normalizes to nothing,
// such as "_-_".
func ComponentName(raw string) (string, error) {
	name, err := naming.Normalize(raw)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", oerrors.NewInvalidInputError(
			fmt.Sprintf("%q does not contain a usable name", raw),
			"Use letters or digits between the _ and - separators.",
		)
	}
	return name, nil
}

func (r *Registry) createHandler(variant scaffold.Variant) Handler {
	return func(dir string, rawName *string) Message {
		raw := ""
		if rawName != nil {
			raw = *rawName
		}

		name, err := ComponentName(raw)
		if err != nil {
			return failure(err)
		}

		targetDir := filepath.Join(dir, name)
		output.Debug("normalized component name", "raw", raw, "name", name, "dir", targetDir, "variant", variant)

		result, err := r.scaffolder.Scaffold(name, targetDir, variant)
		switch {
		case err == nil:
			return Message{Level: output.LevelSuccess, Text: SuccessText, Result: result}
		case errors.Is(err, oerrors.ErrAlreadyExists):
			return Message{Level: output.LevelNotice, Text: fmt.Sprintf(alreadyExistsText, name), Err: err}
		default:
			return failure(err)
		}
	}
}

func failure(err error) Message {
	return Message{Level: output.LevelFailure, Text: summary(err), Err: err}
}

// summary returns the one-line description of err.
func summary(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
