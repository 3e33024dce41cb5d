// Package data ships the coefficient tables embedded in the binary.
package data

import "embed"

// Series holds series/<body>.toml coefficient tables.
//
//go:embed series/*.toml
var Series embed.FS
