// Package web embeds the static dashboard assets served by the workbench
// HTTP server.
package web

import "embed"

// Assets contains the static dashboard files.
//
//go:embed static
var Assets embed.FS
