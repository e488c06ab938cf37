// Package schemas embeds the JSON Schemas shipped with the workbench.
package schemas

import _ "embed"

// OverlaySchemaJSON is the schema for the persisted catalog overlay
// (user_models.json).
//
//go:embed overlay.schema.json
var OverlaySchemaJSON string
