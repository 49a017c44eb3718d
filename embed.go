// embed.go - embedded asset declaration.
// It must live in the module root next to assets/ because //go:embed only
// reaches files in the package directory and below.
package main

import "embed"

//go:embed all:assets
var assetsFS embed.FS
