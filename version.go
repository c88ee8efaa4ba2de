/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package webuigo

// Version is the semantic version of the SDK.
// For development builds, this will be "dev".
// For release builds, run: just version-update
// This will update the version based on the latest git tag.
const Version = "0.1.0"

// WebUIVersion is the native WebUI release these bindings target.
const WebUIVersion = "2.4.2"
