// Package theme provides embedded display themes and utilities for
// loading them.
package theme

import "embed"

// themeFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var themeFS embed.FS
