// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from article titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	// whitespace matches runs of whitespace to be replaced by a hyphen.
	whitespace = regexp.MustCompile(`\s+`)
	// nonWord matches anything that isn't a word character or hyphen.
	// Underscores count as word characters and survive.
	nonWord = regexp.MustCompile(`[^a-z0-9_-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// The transformation is deterministic and idempotent:
// Generate(Generate(s)) == Generate(s).
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = whitespace.ReplaceAllString(result, "-")
	result = nonWord.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
