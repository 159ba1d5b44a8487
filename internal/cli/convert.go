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
	"github.com/promptpack/promptpack/internal/store"
	"github.com/promptpack/promptpack/internal/ui"
)

// fileVersion keys single-file conversions in the orchestrator cache.
const fileVersion = "local"

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a package file to a target format",
		UsageText: "promptpack convert [options] --to <format> <file>",
		Description: `Convert a prompt package file into another tool's dialect.

   The source format is auto-detected from the file path and content
   unless --from is given. Converted content goes to stdout; the
   conversion summary goes to stderr so output stays pipeable.

   Examples:
     promptpack convert --to claude-agent .cursor/rules/review.mdc
     promptpack convert --to windsurf --output .windsurf/rules AGENTS.md`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "to",
				Aliases: []string{"t"},
				Usage:   "Target format (see 'promptpack formats')",
			},
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Usage:   "Source format, skipping auto-detection",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write converted content to this file instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 1 {
				return errors.New("convert requires exactly 1 argument: <file>")
			}
			file := args.Get(0)

			if cmd.String("to") == "" {
				return errors.New("convert requires a target format (use --to)")
			}
			target, err := model.ParseFormatID(cmd.String("to"))
			if err != nil {
				return fmt.Errorf("invalid target format: %w", err)
			}

			from := cmd.String("from")
			if from != "" {
				if _, err := model.ParseFormatID(from); err != nil {
					return fmt.Errorf("invalid source format: %w", err)
				}
			}

			if _, err := os.Stat(file); err != nil {
				return fmt.Errorf("cannot read %s: %w", file, err)
			}

			res, err := convertFile(ctx, file, from, target)
			if err != nil {
				return err
			}

			if output := cmd.String("output"); output != "" {
				if err := writeContent(output, res.Content); err != nil {
					return err
				}
				fmt.Println(ui.ResultLine(res))
				for _, line := range ui.WarningLines(res) {
					fmt.Println(line)
				}
				fmt.Printf("Wrote %s\n", output)
				return nil
			}

			fmt.Print(res.Content)
			fmt.Fprintln(os.Stderr, ui.ResultLine(res))
			for _, line := range ui.WarningLines(res) {
				fmt.Fprintln(os.Stderr, line)
			}
			return nil
		},
	}
}

// convertFile runs one file through the orchestrator with the configured
// cache options.
func convertFile(ctx context.Context, file, hint string, target model.FormatID) (*model.ConversionResult, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	orch := convert.New(store.NewFile(file, hint), cfg.ConvertOptions())
	return orch.Convert(ctx, file, fileVersion, target)
}

// writeContent writes converted content to path, creating parent
// directories as needed.
func writeContent(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	// #nosec G306 - converted content is meant to be readable
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
