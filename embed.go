package folio

import (
	"embed"
	"io/fs"
)

// EmbeddedAssets contains the static assets shipped with the site:
// site.css (the theme) and favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

//go:embed content/*.yaml
var defaultContent embed.FS

// DefaultContentFS returns the content bundle compiled into the binary.
func DefaultContentFS() fs.FS {
	sub, err := fs.Sub(defaultContent, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
