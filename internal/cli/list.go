package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/catalog"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/model"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/ui"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List pack items and their install status",
		Description: `Show the content pack grouped by kind, marking items that are
   installed in the project's agent directory.

   Examples:
     sfkit list
     sfkit list --installed
     sfkit list --verbose`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "installed",
				Usage: "Only show items installed in the project",
			},
			&cli.BoolFlag{
				Name:  "available",
				Usage: "Only show items not yet installed",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show descriptions and modification times",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Bool("installed") && cmd.Bool("available") {
				return errors.New("--installed and --available are mutually exclusive")
			}

			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			items, err := collectItems(catalog.New(env.source), catalog.New(env.target))
			if err != nil {
				return err
			}

			items = filterItems(items, cmd.Bool("installed"), cmd.Bool("available"))
			renderItems(items, cmd.Bool("verbose"))
			return nil
		},
	}
}

func filterItems(items []model.Item, installedOnly, availableOnly bool) []model.Item {
	if !installedOnly && !availableOnly {
		return items
	}

	var out []model.Item
	for _, item := range items {
		if installedOnly && !item.Installed {
			continue
		}
		if availableOnly && item.Installed {
			continue
		}
		out = append(out, item)
	}
	return out
}

func renderItems(items []model.Item, verbose bool) {
	if len(items) == 0 {
		fmt.Println("No items to show.")
		return
	}

	titleCaser := cases.Title(language.English)
	var lastKind model.Kind
	installed := 0
	for _, item := range items {
		if item.Kind != lastKind {
			if lastKind != "" {
				fmt.Println()
			}
			fmt.Println(ui.Header(titleCaser.String(item.Kind.Dir())))
			lastKind = item.Kind
		}

		marker := " "
		if item.Installed {
			marker = ui.Success(ui.SymbolSuccess)
			installed++
		}
		fmt.Printf("  %s %s\n", marker, item.Name)

		if !verbose {
			continue
		}
		if item.Description != "" {
			fmt.Printf("      %s\n", ui.Dim(item.Description))
		}
		if !item.ModifiedAt.IsZero() {
			fmt.Printf("      %s\n", ui.Dim("updated "+humanize.Time(item.ModifiedAt)))
		}
	}

	fmt.Printf("\n%d items, %d installed\n", len(items), installed)
}
