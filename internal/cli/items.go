package cli

import (
	"os"
	"strings"

	"github.com/Lastonedown86/salesforce-agent-kit/internal/catalog"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/logging"
	"github.com/Lastonedown86/salesforce-agent-kit/internal/model"
)

// collectItems enumerates a catalog as displayable items, marking each
// one installed when the project catalog already has it. Skill
// categories come first, then agents and workflows. Pass the project
// catalog as both arguments to enumerate what is installed.
func collectItems(source, project *catalog.Catalog) ([]model.Item, error) {
	var items []model.Item

	categories, err := source.Categories()
	if err != nil {
		return nil, err
	}
	for _, cat := range categories {
		item := model.Item{
			Name:      cat.Name,
			Kind:      model.KindSkill,
			Path:      cat.Path,
			Installed: project.HasCategory(cat.Name),
		}
		names := make([]string, 0, len(cat.Items))
		for _, entry := range cat.Items {
			names = append(names, entry.Name)
		}
		item.Description = strings.Join(names, ", ")
		if info, err := os.Stat(cat.Path); err == nil {
			item.ModifiedAt = info.ModTime()
		}
		items = append(items, item)
	}

	for _, kind := range []model.Kind{model.KindAgent, model.KindWorkflow} {
		entries, err := source.Entries(kind)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			item := model.Item{
				Name:      entry.Name,
				Kind:      kind,
				Path:      entry.Path,
				Installed: project.HasEntry(kind, entry.Name),
			}
			// Metadata is decoration here; a document with broken
			// frontmatter still lists under its file name.
			meta, err := catalog.ReadMeta(entry.Path)
			if err != nil {
				logging.Debug("unreadable document metadata",
					logging.Path(entry.Path),
					logging.Err(err),
				)
			} else {
				item.Description = meta.Description
				item.ModifiedAt = meta.ModifiedAt
			}
			items = append(items, item)
		}
	}

	return items, nil
}
