package service

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// uniqueSlug appends a short random suffix until the slug is free.
func uniqueSlug(name string, exists func(string) (bool, error)) (string, error) {
	slug := slugify(name)
	for {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = slugify(name) + "-" + uuid.NewString()[:4]
	}
}
