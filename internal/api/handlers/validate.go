package handlers

import (
	"net/mail"
	"unicode/utf8"
)

// validateOrgName bounds organization names to 2-100 characters. The upper
// bound keeps the derived partition name inside Mongo's namespace limit, so
// a partition create cannot fail after the registry writes succeeded.
// Returns an error message, or "" when the value is acceptable.
func validateOrgName(name string) string {
	if name == "" {
		return "organization_name is required"
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return "organization_name must be between 2 and 100 characters"
	}
	return ""
}

func validateEmail(email string) string {
	if email == "" {
		return "email is required"
	}
	// ParseAddress also accepts display-name forms like "Admin <a@b.com>";
	// the exact-match check limits input to a bare address.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "email must be a valid email address"
	}
	return ""
}

func validatePassword(password string) string {
	if password == "" {
		return "password is required"
	}
	if utf8.RuneCountInString(password) < 6 {
		return "password must be at least 6 characters"
	}
	return ""
}
