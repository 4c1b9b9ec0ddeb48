package utils

import (
	"fmt"
	"math/rand"
	"net/url"
)

const hexDigits = "0123456789ABCDEF"

// RandomHexColor returns a 6-digit uppercase hex color drawn from r.
func RandomHexColor(r *rand.Rand) string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = hexDigits[r.Intn(len(hexDigits))]
	}

	return string(b)
}

// PlaceholderImageURL builds a placehold.co image URL with random colors
// and a text label, matching what the portal cards expect.
func PlaceholderImageURL(r *rand.Rand, label string) string {
	bg := RandomHexColor(r)
	fg := RandomHexColor(r)

	return fmt.Sprintf("https://placehold.co/600x400/%s/%s?text=%s", bg, fg, url.QueryEscape(label))
}
