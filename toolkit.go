package thrifthunter

import (
	"fmt"
	"strings"
)

// Listing toolkit: small pure helpers behind the Toolkit view. Title and
// size conversion are free; the description generator and bulk calculator
// (calc.go) are Pro-gated by the command layer.

// BuildTitle assembles a marketplace listing title from its parts, e.g.
// "Nike Hoodie Men's Vintage 90s Size L".
func BuildTitle(brandItem, gender, size string, keywords []string) string {
	parts := []string{strings.TrimSpace(brandItem), gender}
	parts = append(parts, keywords...)
	if size = strings.TrimSpace(size); size != "" {
		parts = append(parts, "Size "+size)
	}
	fields := parts[:0]
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.Join(fields, " ")
}

// Describe generates a listing description from an item and its condition.
// This is the offline template; the agent package offers an AI-written
// alternative when a Gemini client is available.
func Describe(item, condition string) string {
	return fmt.Sprintf("**ITEM:** %s\n**CONDITION:** %s\n\nFast shipping!", item, condition)
}

// ShoeSizes converts a US shoe size to its UK and EU equivalents.
func ShoeSizes(us float64) (uk, eu float64) {
	return us - 1, 38 + (us-6)*1.3
}
