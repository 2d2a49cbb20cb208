// Package gamedata provides embedded generator presets and the fog-of-war
// palette, plus utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
