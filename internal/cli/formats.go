package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/promptpack/promptpack/internal/format"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/ui"
)

// formatInfo is the JSON shape for one supported format.
type formatInfo struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Path     string            `json:"path"`
	Limit    int               `json:"limit,omitempty"`
	Sections map[string]string `json:"sections"`
}

func formatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "formats",
		Usage: "List supported formats with their fidelity profiles",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output in JSON format for scripting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("json") {
				return outputFormatsJSON(format.All())
			}
			outputFormatsTable(format.All())
			return nil
		},
	}
}

// outputFormatsJSON outputs the format profiles in JSON format.
func outputFormatsJSON(specs []format.Spec) error {
	infos := make([]formatInfo, 0, len(specs))
	for _, spec := range specs {
		sections := make(map[string]string, len(model.AllSectionKinds()))
		for _, kind := range model.AllSectionKinds() {
			sections[string(kind)] = string(spec.Capability(kind).Level)
		}
		infos = append(infos, formatInfo{
			ID:       string(spec.ID),
			Name:     spec.Name,
			Path:     spec.PathTemplate,
			Limit:    spec.Limit,
			Sections: sections,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(infos); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// outputFormatsTable outputs the format profiles in human-readable form.
func outputFormatsTable(specs []format.Spec) {
	fmt.Println(ui.Bold("Supported formats:"))
	fmt.Println()

	for _, spec := range specs {
		fmt.Printf("  %s (%s)\n", ui.Info(string(spec.ID)), spec.Name)
		fmt.Printf("    Path:     %s\n", spec.PathTemplate)
		if spec.HasFrontmatter() {
			fmt.Printf("    Fields:   %s\n", frontmatterSummary(spec.Frontmatter))
		}
		if spec.Limit > 0 {
			fmt.Printf("    Limit:    %d chars\n", spec.Limit)
		}
		fmt.Printf("    Fidelity: %s\n", ui.FidelityNote(spec))
	}
}

// frontmatterSummary renders a format's frontmatter schema on one line.
func frontmatterSummary(fm format.Frontmatter) string {
	var parts []string
	if len(fm.Required) > 0 {
		parts = append(parts, strings.Join(fm.Required, ", ")+" (required)")
	}
	if len(fm.Optional) > 0 {
		parts = append(parts, strings.Join(fm.Optional, ", "))
	}
	return strings.Join(parts, "; ")
}
