package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcgen/rcg/internal/commands"
	"github.com/rcgen/rcg/internal/config"
	"github.com/rcgen/rcg/internal/output"
	"github.com/rcgen/rcg/internal/prompt"
	"github.com/rcgen/rcg/internal/scaffold"
	"github.com/rcgen/rcg/internal/templates"
)

// componentCommands builds one cobra command per dispatch table entry.
func componentCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(commands.Commands()))
	for _, c := range commands.Commands() {
		cmds = append(cmds, newComponentCmd(c))
	}
	return cmds
}

func newComponentCmd(c commands.Command) *cobra.Command {
	return &cobra.Command{
		Use:   c.Use + " <dir> [name]",
		Short: c.Short,
		Long: fmt.Sprintf(`%s inside <dir>.

The name is converted to PascalCase: underscore and hyphen separated
segments are capitalized and joined. A directory of that name is created
in <dir> holding the component and its module stylesheet.

When [name] is omitted you are prompted for it.

Examples:
  # Create src/components/UserProfile/
  rcg %s src/components user_profile

  # Prompt for the name
  rcg %s src/components`, c.Short, c.Use, c.Use),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponent(cmd, c, args)
		},
	}
}

func runComponent(cmd *cobra.Command, c commands.Command, args []string) error {
	dir := args[0]

	var rawName *string
	if len(args) == 2 {
		rawName = &args[1]
	} else {
		name, err := namePrompter(cmd).PromptName()
		if err != nil {
			return reportError(cmd, err)
		}
		rawName = name
	}

	s, err := newScaffolder()
	if err != nil {
		return reportError(cmd, err)
	}

	msg := commands.NewRegistry(s).Dispatch(c.ID, dir, rawName)
	return displayMessage(cmd, msg, s.Options())
}

// namePrompter uses an interactive form only when reading from a terminal.
func namePrompter(cmd *cobra.Command) prompt.Prompter {
	in := cmd.InOrStdin()
	interactive := in == os.Stdin && output.IsInteractive()
	return prompt.New(in, cmd.ErrOrStderr(), interactive)
}

// newScaffolder builds a scaffolder from the resolved configuration.
func newScaffolder() (*scaffold.Scaffolder, error) {
	rc := GetResolvedConfig()

	templatesDir, err := config.ExpandPath(rc.TemplatesDir.Value)
	if err != nil {
		return nil, fmt.Errorf("expanding templates directory: %w", err)
	}

	provider := templates.NewProvider(appFs, templatesDir)
	return scaffold.New(appFs, provider, scaffold.Options{
		Placeholder:  rc.Placeholder.Value,
		ComponentExt: rc.ComponentExt.Value,
		StyleExt:     rc.StyleExt.Value,
	}), nil
}

func displayMessage(cmd *cobra.Command, msg commands.Message, opts scaffold.Options) error {
	out := cmd.OutOrStdout()

	switch msg.Level {
	case output.LevelSuccess:
		fmt.Fprintln(out, output.FormatCheckmark(msg.Text))
		if msg.Result != nil {
			fmt.Fprint(out, output.RenderFileTree(msg.Result.Dir, describeFiles(msg.Result, opts)))
		}
		return nil
	case output.LevelNotice:
		fmt.Fprintln(out, output.FormatNotice(msg.Text))
		return nil
	default:
		return reportError(cmd, msg.Err)
	}
}

func describeFiles(result *scaffold.Result, opts scaffold.Options) map[string]string {
	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		base := filepath.Base(f)
		if strings.HasSuffix(base, ".module"+opts.StyleExt) {
			files[base] = "Stylesheet"
		} else {
			files[base] = "Component (" + result.Variant.String() + ")"
		}
	}
	return files
}
