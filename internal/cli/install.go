package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/promptpack/promptpack/internal/config"
	"github.com/promptpack/promptpack/internal/convert"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/progress"
	"github.com/promptpack/promptpack/internal/secrets"
	"github.com/promptpack/promptpack/internal/store"
	"github.com/promptpack/promptpack/internal/ui"
	"github.com/promptpack/promptpack/internal/ui/tui"
	"github.com/promptpack/promptpack/internal/util"
)

func installCommand() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Convert a package file and write it to each target tool's path",
		UsageText: "promptpack install [options] <file>",
		Description: `Convert a package and place the output where the target tool
   expects it, relative to the repository root or the home directory.

   With no --to and an interactive terminal, a picker lists the targets
   with their fidelity notes.

   Content is scanned for credential-shaped strings before anything is
   written; critical findings block the install unless --force is given.

   Examples:
     promptpack install --to claude-agent team-rules.md
     promptpack install --all --scope user team-rules.md
     promptpack install --to cursor --to windsurf --dry-run AGENTS.md`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "to",
				Aliases: []string{"t"},
				Usage:   "Target format, repeatable for multiple targets",
			},
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Usage:   "Source format, skipping auto-detection",
			},
			&cli.StringFlag{
				Name:    "scope",
				Aliases: []string{"s"},
				Usage:   "Install root: repo or user",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "Install to every configured default target",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite existing files and bypass credential findings",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Preview destinations without writing files",
			},
		},
		Action: installAction,
	}
}

func installAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 1 {
		return errors.New("install requires exactly 1 argument: <file>")
	}
	file := args.Get(0)

	from := cmd.String("from")
	if from != "" {
		if _, err := model.ParseFormatID(from); err != nil {
			return fmt.Errorf("invalid source format: %w", err)
		}
	}

	// #nosec G304 - path is provided by the user on the command line
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", file, err)
	}

	findings := secrets.NewScanner().Scan(string(raw))
	for _, f := range findings {
		fmt.Println(ui.StatusWarning(fmt.Sprintf("possible %s on line %d (%s)", f.Name, f.Line, f.Match)))
	}
	if secrets.HasCritical(findings) && !cmd.Bool("force") {
		return errors.New("content appears to contain credentials (use --force to install anyway)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	targets, err := resolveTargets(cmd, cfg)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Println(ui.StatusSkipped("no target selected"))
		return nil
	}

	scope := cmd.String("scope")
	if scope == "" {
		scope = cfg.GetScope()
	}
	root, err := util.InstallRoot(scope)
	if err != nil {
		return err
	}

	orch := convert.New(store.NewFile(file, from), cfg.ConvertOptions())
	dryRun := cmd.Bool("dry-run")
	force := cmd.Bool("force")

	var bar *progress.Bar
	if len(targets) > 1 {
		bar = progress.Simple(int64(len(targets)), "Installing")
	}

	var failed int
	for _, target := range targets {
		if err := installOne(ctx, orch, file, root, target, dryRun, force); err != nil {
			fmt.Println(ui.StatusError(fmt.Sprintf("%s: %v", target, err)))
			failed++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d install(s) failed", failed, len(targets))
	}
	return nil
}

// installOne converts the file for a single target and writes it under
// root. Existing destinations are skipped unless force is set.
func installOne(ctx context.Context, orch *convert.Orchestrator, file, root string, target model.FormatID, dryRun, force bool) error {
	res, err := orch.Convert(ctx, file, fileVersion, target)
	if err != nil {
		return err
	}

	dest := filepath.Join(root, filepath.FromSlash(res.Path))
	if dryRun {
		fmt.Printf("would install %s -> %s\n", target, dest)
		return nil
	}

	if !force {
		if _, err := os.Stat(dest); err == nil {
			fmt.Println(ui.StatusSkipped(fmt.Sprintf("%s exists, use --force to overwrite", dest)))
			return nil
		}
	}

	if err := writeContent(dest, res.Content); err != nil {
		return err
	}

	fmt.Println(ui.ResultLine(res))
	for _, line := range ui.WarningLines(res) {
		fmt.Println(line)
	}
	fmt.Printf("  %s\n", dest)
	return nil
}

// resolveTargets decides which formats to install: the configured
// defaults for --all, explicit --to values, or an interactive picker
// when the terminal allows one. An empty result with no error means
// the user declined to pick.
func resolveTargets(cmd *cli.Command, cfg *config.Config) ([]model.FormatID, error) {
	if cmd.Bool("all") {
		return cfg.TargetFormats()
	}

	if names := cmd.StringSlice("to"); len(names) > 0 {
		targets := make([]model.FormatID, 0, len(names))
		for _, name := range names {
			id, err := model.ParseFormatID(name)
			if err != nil {
				return nil, fmt.Errorf("invalid target format: %w", err)
			}
			targets = append(targets, id)
		}
		return targets, nil
	}

	if !ui.IsInteractive(os.Stdin) || !ui.IsInteractive(os.Stdout) {
		return nil, errors.New("install requires a target format (use --to, --all, or run interactively)")
	}

	picked, err := tui.RunFormatPicker()
	if err != nil {
		return nil, fmt.Errorf("format picker failed: %w", err)
	}
	if picked.Action != tui.FormatPickerActionSelect {
		return nil, nil
	}
	return []model.FormatID{picked.Target}, nil
}
