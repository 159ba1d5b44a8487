package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/promptpack/promptpack/internal/config"
	"github.com/promptpack/promptpack/internal/ui"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Display current configuration",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fmt.Println(ui.Bold("Configuration:"))
			if config.Exists() {
				fmt.Printf("  File: %s\n", config.FilePath())
			} else {
				fmt.Printf("  File: %s (not present, defaults in effect)\n", config.FilePath())
			}
			fmt.Println()

			fmt.Println(ui.Bold("Cache:"))
			if cfg.Cache.Enabled {
				fmt.Printf("  Status: %s\n", ui.Success("Enabled"))
				fmt.Printf("  TTL:    %s\n", cfg.Cache.TTL)
				fmt.Printf("  Size:   %d entries\n", cfg.Cache.Size)
			} else {
				fmt.Printf("  Status: %s\n", ui.Warning("Disabled"))
			}
			fmt.Println()

			fmt.Println(ui.Bold("Install:"))
			fmt.Printf("  Scope:   %s\n", cfg.GetScope())
			fmt.Printf("  Targets: %s\n", strings.Join(cfg.Install.Targets, ", "))
			fmt.Println()

			fmt.Println(ui.Bold("Output:"))
			fmt.Printf("  Format:  %s\n", cfg.Output.Format)
			fmt.Printf("  Color:   %s\n", cfg.Output.Color)
			fmt.Printf("  Verbose: %v\n", cfg.Output.Verbose)
			return nil
		},
	}
}
