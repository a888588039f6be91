package domain

import (
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]{3,30}$`)

// reservedUsernames collide with top-level routes.
var reservedUsernames = map[string]struct{}{
	"admin":     {},
	"api":       {},
	"auth":      {},
	"dashboard": {},
	"health":    {},
	"live":      {},
	"login":     {},
	"logout":    {},
	"metrics":   {},
	"ready":     {},
	"settings":  {},
	"signup":    {},
	"static":    {},
}

// NormalizeText trims leading/trailing whitespace and compresses runs of
// spaces into one. Case is preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeUsername trims and lowercases a username. Public lookups and
// signup both go through it, which makes usernames case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckUsername returns a message describing why a normalized username is
// unusable, or "" when it is fine.
func CheckUsername(username string) string {
	if username == "" {
		return "required"
	}
	if !usernamePattern.MatchString(username) {
		return "must be 3-30 characters of a-z, 0-9, '_' or '.'"
	}
	if _, ok := reservedUsernames[username]; ok {
		return "is reserved"
	}
	return ""
}
