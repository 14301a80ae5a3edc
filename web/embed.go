// Package web provides embedded static assets (CSS) for the public site
// and admin interface, served at /public/.
package web

import "embed"

// StaticFS embeds the web/public/ directory tree.
//
//go:embed all:public
var StaticFS embed.FS
