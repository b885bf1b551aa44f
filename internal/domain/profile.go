package domain

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// UserProfile identifies the signed-in user shown in the header.
type UserProfile struct {
	Name  string `yaml:"name"  json:"name"`
	Email string `yaml:"email" json:"email"`
}

// DefaultUserProfile returns the placeholder user of the dashboard.
func DefaultUserProfile() UserProfile {
	return UserProfile{Name: "John Doe", Email: "john.doe@example.com"}
}

// Initials returns up to two upper-case initials for the avatar.
// Words are split on spaces, punctuation and case changes, so "John Doe",
// "john.doe" and "JohnDoe" all yield "JD".
func (p UserProfile) Initials() string {
	var b strings.Builder
	count := 0
	for _, word := range camelcase.Split(strings.TrimSpace(p.Name)) {
		r := []rune(word)
		if len(r) == 0 || !unicode.IsLetter(r[0]) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r[0]))
		count++
		if count == 2 {
			break
		}
	}
	return b.String()
}
