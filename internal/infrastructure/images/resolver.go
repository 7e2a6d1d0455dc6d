// Package images resolves recipe thumbnail references to display
// URLs, with a fixed generic fallback for failed loads.
package images

import (
	"net/url"
	"strings"
)

const featuredBase = "https://images.unsplash.com/featured/"

// Resolver maps thumbnail references to image URLs
type Resolver struct {
	fallbackURL string
}

// NewResolver creates a resolver with the configured fallback URL
func NewResolver(fallbackURL string) *Resolver {
	return &Resolver{fallbackURL: fallbackURL}
}

// DisplayURL resolves a thumbnail reference. Absolute URLs pass
// through; anything else is treated as a keyword prompt and becomes a
// featured-search URL, so every recipe always has an image without
// hitting an image-generation API.
func (r *Resolver) DisplayURL(thumbnail string) string {
	if strings.HasPrefix(thumbnail, "http://") || strings.HasPrefix(thumbnail, "https://") {
		return thumbnail
	}
	return KeywordURL(thumbnail)
}

// FallbackURL returns the generic food image substituted when an
// image fails to load. The template applies it at most once per image
// element so a failing fallback cannot loop.
func (r *Resolver) FallbackURL() string {
	return r.fallbackURL
}

// KeywordURL builds a featured-search URL from a free-text prompt:
// lowercase, with every non-alphanumeric character mapped to a comma.
func KeywordURL(prompt string) string {
	lower := strings.ToLower(prompt)
	keyword := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ','
	}, lower)
	return featuredBase + "?food," + url.QueryEscape(keyword) + "&auto=format&fit=crop&w=1200&q=80"
}
