package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/config"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/pack"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/ui"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Display version and build information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			fmt.Printf("sfkit version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built: %s\n", BuildDate)
			fmt.Printf("  go: %s\n", runtime.Version())

			// The pack line is informational only; version must succeed
			// even with a broken config or a missing pack.
			if cfg, err := config.Load(); err == nil {
				if root, err := resolveSourceRoot(cmd, cfg); err == nil {
					if manifest, err := pack.ReadManifest(root); err == nil {
						fmt.Printf("  pack: %s %s (%s)\n", manifest.Name, manifest.Version, root)
					}
				}
			}
			return nil
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Display configuration and resolved paths",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return showConfig(cmd)
				},
			},
			{
				Name:  "path",
				Usage: "Print the configuration file location",
				Action: func(_ context.Context, _ *cli.Command) error {
					fmt.Println(config.FilePath())
					return nil
				},
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return showConfig(cmd)
		},
	}
}

func showConfig(cmd *cli.Command) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(env.cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	fmt.Println(ui.Header("Configuration"))
	fmt.Print(string(data))
	fmt.Println()
	fmt.Println(ui.Header("Resolved paths"))
	fmt.Printf("  config file:  %s\n", config.FilePath())
	fmt.Printf("  project file: %s\n", config.ProjectFileName)
	fmt.Printf("  pack source:  %s\n", env.source)
	fmt.Printf("  project dir:  %s\n", env.target)
	return nil
}
