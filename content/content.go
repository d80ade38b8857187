// Package content embeds the sfkit content pack so the binary can
// materialize it when no pack directory ships alongside the executable
// (for example after go install).
package content

import "embed"

// Files holds the full content pack: the manifest plus every skill,
// agent, and workflow document.
//
//go:embed all:skills all:agents all:workflows pack.yaml
var Files embed.FS
