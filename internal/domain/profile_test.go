package domain_test

import (
	"testing"

	"github.com/moneywise/moneywise/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserProfile_Initials(t *testing.T) {
	cases := map[string]string{
		"John Doe":          "JD",
		"john doe":          "JD",
		"JohnDoe":           "JD",
		"john.doe":          "JD",
		"Ada":               "A",
		"Mary Ann Williams": "MA",
		"  ":                "",
		"":                  "",
	}
	for name, want := range cases {
		got := domain.UserProfile{Name: name}.Initials()
		assert.Equal(t, want, got, "name %q", name)
	}
}

func TestDefaultUserProfile(t *testing.T) {
	p := domain.DefaultUserProfile()
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, "john.doe@example.com", p.Email)
}
