package utils

import "strings"

// GenerateSlug lowercases name and turns spaces and underscores into hyphens.
// Characters outside [a-z0-9-] are dropped so the slug is safe as a file name.
func GenerateSlug(name string) string {
	var b strings.Builder
	for _, ch := range strings.TrimSpace(name) {
		switch {
		case ch >= 'A' && ch <= 'Z':
			b.WriteRune(ch + 32) // Convert to lowercase
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9', ch == '-':
			b.WriteRune(ch)
		case ch == ' ' || ch == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}
