// Package cli provides command definitions for sfkit.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/catalog"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/model"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/progress"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/sync"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/ui"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/ui/tui"
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Install the full content pack into the project",
		Description: `Copy every skill category, agent, and workflow of the content pack
   into the project's agent directory. Items that are already installed
   are left alone unless --force is given.

   Examples:
     sfkit init
     sfkit init --force
     sfkit init --dry-run`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite items that are already installed",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Preview changes without modifying files",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			engine := sync.New(env.source, env.target)

			total, err := engine.CountAll()
			if err != nil {
				return err
			}

			fmt.Printf("Installing the content pack into %s\n", env.target)

			bar := progress.Simple(int64(total), "Installing")
			opts := sync.Options{
				Force:  cmd.Bool("force"),
				DryRun: cmd.Bool("dry-run"),
				OnItem: func(name string, _ sync.Outcome) {
					bar.Describe("Installing " + name)
					_ = bar.Add(1)
				},
			}

			result, installErr := engine.InstallAll(opts)
			_ = bar.Finish()

			fmt.Print(result.Summary())
			if installErr != nil {
				return installErr
			}

			if !opts.DryRun {
				fmt.Println(ui.StatusSuccess(fmt.Sprintf("Agent directory ready at %s", env.target)))
			}
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Install skill categories, agents, or workflows from the pack",
		UsageText: "sfkit add [options] [name...]",
		Description: `Install named items from the content pack. Names are skill
   categories by default; pass --kind to install agents or workflows.
   Running add with no names on a terminal opens an interactive picker.

   Examples:
     sfkit add apex triggers
     sfkit add --kind agent apex-reviewer
     sfkit add --force apex`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   "skill",
				Usage:   "Kind of the named items: skill, agent, or workflow",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite items that are already installed",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Preview changes without modifying files",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			engine := sync.New(env.source, env.target)
			opts := sync.Options{
				Force:  cmd.Bool("force"),
				DryRun: cmd.Bool("dry-run"),
			}

			if cmd.Args().Len() == 0 {
				return addInteractive(env, engine, opts)
			}

			kind, err := model.ParseKind(cmd.String("kind"))
			if err != nil {
				return err
			}
			for _, name := range cmd.Args().Slice() {
				if err := installOne(engine, kind, name, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Refresh installed items from the pack",
		UsageText: "sfkit update [options] [name...]",
		Description: `Re-copy pack content over the project's agent directory. Without
   names the whole pack is refreshed; with names only those items are.
   Update always overwrites.

   Examples:
     sfkit update
     sfkit update apex
     sfkit update --kind workflow code-review`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   "skill",
				Usage:   "Kind of the named items: skill, agent, or workflow",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Preview changes without modifying files",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			engine := sync.New(env.source, env.target)
			opts := sync.Options{
				Force:  true,
				DryRun: cmd.Bool("dry-run"),
			}

			if cmd.Args().Len() > 0 {
				kind, err := model.ParseKind(cmd.String("kind"))
				if err != nil {
					return err
				}
				for _, name := range cmd.Args().Slice() {
					if err := refreshOne(engine, kind, name, opts); err != nil {
						return err
					}
				}
				return nil
			}

			total, err := engine.CountAll()
			if err != nil {
				return err
			}

			fmt.Printf("Refreshing the content pack in %s\n", env.target)

			bar := progress.Simple(int64(total), "Refreshing")
			opts.OnItem = func(name string, _ sync.Outcome) {
				bar.Describe("Refreshing " + name)
				_ = bar.Add(1)
			}

			result, installErr := engine.InstallAll(opts)
			_ = bar.Finish()

			fmt.Print(result.Summary())
			if installErr != nil {
				return installErr
			}

			if !opts.DryRun {
				fmt.Println(ui.StatusSuccess(fmt.Sprintf("Refreshed %d items", result.Total())))
			}
			return nil
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Remove installed items from the project",
		UsageText: "sfkit remove [options] [name...]",
		Description: `Delete installed items from the project's agent directory. The
   content pack itself is never touched. Running remove with no names on
   a terminal opens an interactive picker over what is installed.

   Examples:
     sfkit remove apex
     sfkit remove --kind agent apex-reviewer`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   "skill",
				Usage:   "Kind of the named items: skill, agent, or workflow",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Preview changes without modifying files",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			engine := sync.New(env.source, env.target)
			opts := sync.Options{DryRun: cmd.Bool("dry-run")}

			if cmd.Args().Len() == 0 {
				return removeInteractive(env, engine, opts)
			}

			kind, err := model.ParseKind(cmd.String("kind"))
			if err != nil {
				return err
			}
			for _, name := range cmd.Args().Slice() {
				if err := removeOne(engine, kind, name, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// installOne installs a single named item and renders its outcome. A
// name that is not in the pack is an error: the user asked for it
// explicitly.
func installOne(engine *sync.Engine, kind model.Kind, name string, opts sync.Options) error {
	var outcome sync.Outcome
	var err error
	if kind.Categorized() {
		outcome, err = engine.InstallCategory(name, opts)
	} else {
		outcome, err = engine.InstallItem(kind, name, opts)
	}
	if err != nil {
		return err
	}

	spec := kind.Dir() + "/" + name
	switch outcome {
	case sync.OutcomeCopied:
		if opts.DryRun {
			fmt.Println(ui.StatusSuccess("Would install " + spec))
		} else {
			fmt.Println(ui.StatusSuccess("Installed " + spec))
		}
	case sync.OutcomeSkippedExists:
		fmt.Println(ui.StatusWarning(spec + " is already installed (use --force to overwrite)"))
	case sync.OutcomeSkippedNoSource:
		return fmt.Errorf("%s %q not found in the pack", kind, name)
	}
	return nil
}

// refreshOne force-installs a single named item and renders its outcome.
func refreshOne(engine *sync.Engine, kind model.Kind, name string, opts sync.Options) error {
	var outcome sync.Outcome
	var err error
	if kind.Categorized() {
		outcome, err = engine.InstallCategory(name, opts)
	} else {
		outcome, err = engine.InstallItem(kind, name, opts)
	}
	if err != nil {
		return err
	}

	spec := kind.Dir() + "/" + name
	if outcome == sync.OutcomeSkippedNoSource {
		return fmt.Errorf("%s %q not found in the pack", kind, name)
	}
	if opts.DryRun {
		fmt.Println(ui.StatusSuccess("Would refresh " + spec))
	} else {
		fmt.Println(ui.StatusSuccess("Refreshed " + spec))
	}
	return nil
}

// removeOne deletes a single named item and renders the result. A name
// that is not installed is an error.
func removeOne(engine *sync.Engine, kind model.Kind, name string, opts sync.Options) error {
	var found bool
	var err error
	if kind.Categorized() {
		found, err = engine.RemoveCategory(name, opts)
	} else {
		found, err = engine.RemoveItem(kind, name, opts)
	}
	if err != nil {
		return err
	}

	spec := kind.Dir() + "/" + name
	if !found {
		return fmt.Errorf("%s %q is not installed", kind, name)
	}
	if opts.DryRun {
		fmt.Println(ui.StatusSuccess("Would remove " + spec))
	} else {
		fmt.Println(ui.StatusSuccess("Removed " + spec))
	}
	return nil
}

// addInteractive opens the picker over the pack and installs the chosen
// items.
func addInteractive(env *environment, engine *sync.Engine, opts sync.Options) error {
	if !ui.IsInteractive() {
		return errors.New("no item names given; pass names or run on a terminal to use the interactive picker")
	}

	items, err := collectItems(catalog.New(env.source), catalog.New(env.target))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("The content pack is empty.")
		return nil
	}

	result, err := tui.RunInstallPicker(items)
	if err != nil {
		return fmt.Errorf("failed to run item picker: %w", err)
	}
	if result.Action != tui.PickerActionInstall {
		fmt.Println("No items selected.")
		return nil
	}

	for _, item := range result.Selected {
		if err := installOne(engine, item.Kind, item.Name, opts); err != nil {
			return err
		}
	}
	return nil
}

// removeInteractive opens the picker over what is installed in the
// project and removes the chosen items.
func removeInteractive(env *environment, engine *sync.Engine, opts sync.Options) error {
	if !ui.IsInteractive() {
		return errors.New("no item names given; pass names or run on a terminal to use the interactive picker")
	}

	// The project tree is the catalog of installed items.
	project := catalog.New(env.target)
	items, err := collectItems(project, project)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Nothing is installed.")
		return nil
	}

	result, err := tui.RunRemovePicker(items)
	if err != nil {
		return fmt.Errorf("failed to run item picker: %w", err)
	}
	if result.Action != tui.PickerActionRemove {
		fmt.Println("No items selected.")
		return nil
	}

	for _, item := range result.Selected {
		if err := removeOne(engine, item.Kind, item.Name, opts); err != nil {
			return err
		}
	}
	return nil
}
