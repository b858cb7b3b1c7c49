// Package prompt asks the user for a component name.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompt texts.
const (
	Title       = "Please input the component name: "
	Placeholder = "Component Name"
)

// Prompter collects a raw component name. A nil name means the user
// cancelled or entered nothing.
type Prompter interface {
	PromptName() (*string, error)
}

// New returns a terminal prompt when interactive is set and a line reader
// over in otherwise.
func New(in io.Reader, out io.Writer, interactive bool) Prompter {
	if interactive {
		return &FormPrompter{}
	}
	return NewLinePrompter(in, out)
}

// FormPrompter asks for the name with an interactive huh input.
type FormPrompter struct{}

// PromptName implements Prompter.
func (p *FormPrompter) PromptName() (*string, error) {
	var name string
	err := huh.NewInput().
		Title(Title).
		Placeholder(Placeholder).
		Value(&name).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading component name: %w", err)
	}
	return present(name), nil
}

// LinePrompter reads a single line from a reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter that writes the title to out and reads
// one line from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// PromptName implements Prompter.
func (p *LinePrompter) PromptName() (*string, error) {
	if p.out != nil {
		fmt.Fprint(p.out, Title)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading component name: %w", err)
	}
	return present(strings.TrimRight(line, "\r\n")), nil
}

// present maps an empty answer to an absent name.
func present(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
