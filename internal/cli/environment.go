package cli

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/Lastonedown86/salesforce-agent-kit/content"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/config"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/logging"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/pack"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/util"
)

// environment carries the resolved paths a command invocation works with.
type environment struct {
	cfg    *config.Config
	source string // content pack root
	target string // project agent directory
}

func loadEnvironment(cmd *cli.Command) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	source, err := resolveSourceRoot(cmd, cfg)
	if err != nil {
		return nil, err
	}

	logging.Debug("environment resolved",
		slog.String("source", source),
		slog.String("target", cfg.Project.Dir),
	)

	return &environment{cfg: cfg, source: source, target: cfg.Project.Dir}, nil
}

// resolveSourceRoot picks the content pack root for this invocation.
// An explicit --source must pass the content root probe. A configured
// source is used when it passes; when it does not, resolution continues
// so a stale config entry cannot brick every command. After that comes
// the executable-relative search, and finally the pack embedded in the
// binary, materialized into the user cache.
func resolveSourceRoot(cmd *cli.Command, cfg *config.Config) (string, error) {
	if flagged := cmd.String("source"); flagged != "" {
		root := util.ExpandPath(flagged)
		if !pack.IsContentRoot(root) {
			return "", fmt.Errorf("source %q is not a content root (expected %s and a skills directory)", flagged, pack.ManifestName)
		}
		return root, nil
	}

	if cfg.Pack.Source != "" {
		if pack.IsContentRoot(cfg.Pack.Source) {
			return cfg.Pack.Source, nil
		}
		logging.Warn("configured pack source failed the content root probe, ignoring",
			logging.Path(cfg.Pack.Source),
		)
	}

	located, err := pack.Locate()
	if err != nil {
		return "", err
	}
	if pack.IsContentRoot(located) {
		return located, nil
	}

	embedded, err := pack.EnsureEmbedded(content.Files)
	if err != nil {
		logging.Warn("embedded content pack unavailable", logging.Err(err))
		return located, nil
	}
	return embedded, nil
}
