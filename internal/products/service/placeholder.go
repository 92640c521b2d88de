package service

import "net/url"

const placeholderBase = "https://placehold.co/800x800.png"

// PlaceholderImageURL returns the deterministic placeholder image URL for a
// product title. Pure function: same title, same URL.
func PlaceholderImageURL(title string) string {
	if title == "" {
		title = "Product"
	}
	return placeholderBase + "?text=" + url.QueryEscape(title)
}
