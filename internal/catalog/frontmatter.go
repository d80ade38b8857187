package catalog

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// splitFrontmatter extracts the YAML frontmatter block from a markdown
// document. It reports false when the document has no leading ---
// block or the block is never closed.
func splitFrontmatter(content []byte) ([]byte, bool) {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, false
	}

	rest := content[len("---"):]
	if bytes.HasPrefix(rest, []byte("\r\n")) {
		rest = rest[2:]
	} else {
		rest = rest[1:]
	}

	// Empty frontmatter: the closing delimiter follows immediately.
	if bytes.HasPrefix(rest, []byte("---")) {
		return []byte{}, true
	}

	for _, closing := range [][]byte{[]byte("\r\n---"), []byte("\n---")} {
		if idx := bytes.Index(rest, closing); idx != -1 {
			block := bytes.ReplaceAll(rest[:idx], []byte("\r\n"), []byte("\n"))
			return bytes.TrimRight(block, "\r"), true
		}
	}
	return nil, false
}

// parseFrontmatter decodes a frontmatter block into a generic map.
func parseFrontmatter(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// stringField reads a string value from decoded frontmatter.
func stringField(fields map[string]any, key string) string {
	if val, ok := fields[key].(string); ok {
		return val
	}
	return ""
}
