package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/promptpack/promptpack/internal/codec/registry"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/logging"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/template"
	"github.com/promptpack/promptpack/internal/ui"
	"github.com/promptpack/promptpack/internal/util"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Scaffold a new package file",
		UsageText: `promptpack new [options] <name>
   promptpack new code-review
   promptpack new reviewer --kind agent
   promptpack new release-process --kind guide --format agents-md`,
		Description: `Create a starter package file at the target format's repository path.

   Built-in kinds:
     rule   Conventions applied to every change (default)
     agent  Subagent definition with persona and tools
     guide  Free-form instructions document

   The file lands where the target tool expects it, relative to the
   repository root. Edit the generated sections, then use 'promptpack
   install' to place it for other tools.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "claude-agent",
				Usage:   "Target format for the scaffolded file",
			},
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   "rule",
				Usage:   "Template kind (rule, agent, guide)",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Short description of the package",
			},
			&cli.StringFlag{
				Name:  "template-file",
				Usage: "Path to a custom template file",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Print the generated content without writing it",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: newAction,
	}
}

func newAction(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 1 {
		return errors.New("new requires exactly 1 argument: <name>")
	}
	name := args.Get(0)
	if err := validatePackName(name); err != nil {
		return fmt.Errorf("invalid package name: %w", err)
	}

	target, err := model.ParseFormatID(cmd.String("format"))
	if err != nil {
		return fmt.Errorf("invalid target format: %w", err)
	}
	spec := format.MustLookup(target)

	gen, err := template.New()
	if err != nil {
		return err
	}

	var kind template.Kind
	if path := cmd.String("template-file"); path != "" {
		if err := gen.LoadCustom(name, path); err != nil {
			return err
		}
		kind = template.Kind(name)
	} else {
		kind, err = template.ParseKind(cmd.String("kind"))
		if err != nil {
			return fmt.Errorf("invalid template kind: %w", err)
		}
	}

	logging.Debug("scaffolding package",
		slog.String("name", name),
		slog.String("kind", string(kind)),
		slog.String("format", string(target)))

	pkg, err := gen.Package(kind, template.Data{
		Name:        name,
		Description: cmd.String("description"),
	})
	if err != nil {
		return err
	}

	res, err := registry.Serialize(target, pkg)
	if err != nil {
		return err
	}

	if cmd.Bool("dry-run") {
		fmt.Print(res.Content)
		fmt.Fprintln(os.Stderr, ui.ResultLine(res))
		return nil
	}

	root, err := util.InstallRoot("repo")
	if err != nil {
		return err
	}
	dest := filepath.Join(root, filepath.FromSlash(spec.RenderPath(pkg.Name)))

	if !cmd.Bool("force") {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s exists (use --force to overwrite)", dest)
		}
	}

	if err := writeContent(dest, res.Content); err != nil {
		return err
	}

	fmt.Println(ui.StatusSuccess(fmt.Sprintf("created %s", dest)))
	for _, line := range ui.WarningLines(res) {
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Println(ui.Bold("Next steps:"))
	fmt.Println("  1. Replace the starter sections with real guidance")
	fmt.Printf("  2. Check fidelity across tools: promptpack score %s\n", dest)
	fmt.Printf("  3. Place it for other tools: promptpack install --all %s\n", dest)
	return nil
}

// validatePackName rejects names that would not survive as file stems
// or frontmatter identifiers.
func validatePackName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	for _, r := range name {
		if !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '-' || r == '_') {
			return fmt.Errorf("name contains %q (allowed: lowercase letters, digits, -, _)", r)
		}
	}
	if name[0] == '-' || name[0] == '_' {
		return errors.New("name must start with a letter or digit")
	}
	return nil
}
