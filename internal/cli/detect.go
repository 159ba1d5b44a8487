package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/promptpack/promptpack/internal/detector"
	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/ui"
)

func detectCommand() *cli.Command {
	return &cli.Command{
		Name:      "detect",
		Usage:     "Identify the format of a package file",
		UsageText: "promptpack detect <file>",
		Description: `Classify a file by path convention and content heuristics.

   When the evidence narrows to a single format it is printed and the
   command succeeds. Ambiguous input lists every candidate and exits
   non-zero; pick one with 'convert --from'.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 1 {
				return errors.New("detect requires exactly 1 argument: <file>")
			}
			file := args.Get(0)

			// #nosec G304 - path is provided by the user on the command line
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", file, err)
			}

			id, err := detector.Detect(file, raw, "")
			if err != nil {
				var ambiguous *detector.AmbiguousFormatError
				if errors.As(err, &ambiguous) {
					fmt.Println(ui.StatusWarning("ambiguous format, candidates:"))
					for _, c := range ambiguous.Candidates {
						fmt.Printf("  - %s\n", formatLabel(c))
					}
				}
				return err
			}

			fmt.Println(ui.StatusSuccess(formatLabel(id)))
			return nil
		},
	}
}

// formatLabel renders a format id with its display name when known.
func formatLabel(id model.FormatID) string {
	if spec, ok := format.Lookup(id); ok {
		return fmt.Sprintf("%s (%s)", id, spec.Name)
	}
	return string(id)
}
