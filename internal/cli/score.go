package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/promptpack/promptpack/internal/codec/registry"
	"github.com/promptpack/promptpack/internal/detector"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/ui"
)

func scoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Usage:     "Preview conversion quality without writing anything",
		UsageText: "promptpack score [options] <file>",
		Description: `Parse a package file and report how well it would convert.

   With --to, the full caveat list for that one target is shown. Without
   it, every supported format is scored so the lossiest targets stand
   out before you commit to one.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "to",
				Aliases: []string{"t"},
				Usage:   "Score against a single target format",
			},
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Usage:   "Source format, skipping auto-detection",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 1 {
				return errors.New("score requires exactly 1 argument: <file>")
			}
			file := args.Get(0)

			pkg, source, err := loadCanonical(file, cmd.String("from"))
			if err != nil {
				return err
			}

			if to := cmd.String("to"); to != "" {
				target, err := model.ParseFormatID(to)
				if err != nil {
					return fmt.Errorf("invalid target format: %w", err)
				}
				res, err := registry.Serialize(target, pkg)
				if err != nil {
					return err
				}
				res.SourceFormat = source
				fmt.Print(res.Summary())
				return nil
			}

			fmt.Printf("Source: %s\n\n", formatLabel(source))
			for _, spec := range format.All() {
				res, err := registry.Serialize(spec.ID, pkg)
				if err != nil {
					return err
				}
				fmt.Printf("  %-18s %s", spec.ID, ui.ScoreText(res.Score))
				if n := len(res.Warnings); n > 0 {
					fmt.Printf("  (%d caveat(s))", n)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

// loadCanonical reads a package file and parses it into canonical form,
// detecting the source format unless a hint names it.
func loadCanonical(file, hint string) (*model.CanonicalPackage, model.FormatID, error) {
	// #nosec G304 - path is provided by the user on the command line
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, "", fmt.Errorf("cannot read %s: %w", file, err)
	}

	source, err := detector.Detect(file, raw, hint)
	if err != nil {
		return nil, "", err
	}

	pkg, err := registry.Parse(source, raw)
	if err != nil {
		return nil, "", err
	}
	return pkg, source, nil
}
