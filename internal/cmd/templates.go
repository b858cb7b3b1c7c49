package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcgen/rcg/internal/commands"
	"github.com/rcgen/rcg/internal/config"
	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/output"
	"github.com/rcgen/rcg/internal/templates"
)

var (
	templatesListFlags   OutputFlags
	templatesShowName    string
	templatesExportFlags ForceFlags
)

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect and export component templates",
		Long: `Inspect and export the templates rcg stamps components from.

Templates are read from the directory set by --templates-dir,
RCG_TEMPLATES_DIR or templatesDir in the config file. Without one the
templates built into rcg are used.`,
	}

	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesShowCmd())
	cmd.AddCommand(newTemplatesExportCmd())

	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE:  runTemplatesList,
	}
	templatesListFlags.AddTo(cmd)
	return cmd
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	format, err := templatesListFlags.Parse()
	if err != nil {
		return reportError(cmd, err)
	}

	list := templates.List()
	out := cmd.OutOrStdout()

	switch format {
	case output.FormatYAML:
		return output.WriteYAML(out, list)
	case output.FormatJSON:
		return output.WriteJSON(out, list)
	default:
		tbl := output.NewTable("KIND", "ASSET", "SUBSTITUTED", "DESCRIPTION").Dim(3)
		for _, t := range list {
			tbl.Row(t.Kind.String(), t.Asset, strconv.FormatBool(t.Substituted), t.Description)
		}
		fmt.Fprintln(out, tbl.String())
		return nil
	}
}

func newTemplatesShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <kind>",
		Short: "Print a template",
		Long: `Print a template as rcg would read it.

With --name the placeholder is replaced, showing the file rcg would write
for that component name.

Examples:
  rcg templates show fc
  rcg templates show fc-interface --name user_card`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: templates.Names(),
		RunE:      runTemplatesShow,
	}
	cmd.Flags().StringVar(&templatesShowName, "name", "", "Preview the template for this component name")
	return cmd
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	kind := templates.Kind(args[0])
	t, err := templates.Get(kind)
	if err != nil {
		return reportError(cmd, err)
	}

	rc := GetResolvedConfig()
	dir, err := config.ExpandPath(rc.TemplatesDir.Value)
	if err != nil {
		return reportError(cmd, err)
	}

	content, err := templates.NewProvider(appFs, dir).Load(kind)
	if err != nil {
		return reportError(cmd, oerrors.NewStorageError("read template", t.Asset, err))
	}

	if templatesShowName != "" && t.Substituted {
		name, err := commands.ComponentName(templatesShowName)
		if err != nil {
			return reportError(cmd, err)
		}
		content = bytes.ReplaceAll(content, []byte(rc.Placeholder.Value), []byte(name))
	}

	_, err = cmd.OutOrStdout().Write(content)
	return err
}

func newTemplatesExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write the built-in templates to a directory",
		Long: `Write the built-in templates to a directory for customisation.

Point templatesDir (or --templates-dir) at the directory afterwards to
use the edited templates.

Examples:
  rcg templates export ~/.rcg/templates
  rcg templates export ./templates --force`,
		Args: cobra.ExactArgs(1),
		RunE: runTemplatesExport,
	}
	templatesExportFlags.AddTo(cmd, "Overwrite existing template files")
	return cmd
}

func runTemplatesExport(cmd *cobra.Command, args []string) error {
	dir, err := config.ExpandPath(args[0])
	if err != nil {
		return reportError(cmd, err)
	}

	written, err := templates.Export(appFs, dir, templatesExportFlags.Force)
	if err != nil {
		if errors.Is(err, oerrors.ErrAlreadyExists) {
			return reportErrorWithCode(cmd, err, oerrors.ExitValidationError)
		}
		return reportError(cmd, err)
	}

	files := make(map[string]string, len(written))
	for _, asset := range written {
		for _, t := range templates.List() {
			if t.Asset == asset {
				files[asset] = t.Description
			}
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("templates exported to "+output.StyleNoun.Render(dir)))
	fmt.Fprint(out, output.RenderFileTree(dir, files))
	return nil
}
