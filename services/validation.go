package services

import (
	"fmt"
	"net/mail"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ValidationError carries one message per offending field. It maps to a 400
// response with the field map as the error body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

var namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)

const passwordSpecials = `!@#$%^&*()_+-=[]{}|;:',.<>?/`

const dateLayout = "2006-01-02"

// checkName enforces the letters-and-spaces rule shared by user names, team
// names, sport names and league names.
func checkName(errs *ValidationError, field, value string) {
	if value == "" {
		errs.add(field, "must not be empty")
		return
	}
	if !namePattern.MatchString(value) {
		errs.add(field, "must contain letters and spaces only")
	}
}

func checkTeamName(errs *ValidationError, value string) {
	checkName(errs, "team_name", value)
	if n := utf8.RuneCountInString(value); n < 3 || n > 20 {
		errs.add("team_name", "must be between 3 and 20 characters")
	}
}

// checkPassword applies the registration password policy: 6-12 characters
// with at least one uppercase, one lowercase and one special character.
// Length counts runes, not bytes, so multibyte letters are not penalized.
func checkPassword(errs *ValidationError, value string) {
	if n := utf8.RuneCountInString(value); n < 6 || n > 12 {
		errs.add("password", "must be between 6 and 12 characters")
		return
	}
	var upper, lower, special bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			special = true
		}
	}
	if !upper {
		errs.add("password", "must contain at least one uppercase letter")
	}
	if !lower {
		errs.add("password", "must contain at least one lowercase letter")
	}
	if !special {
		errs.add("password", "must contain at least one special character")
	}
}

func checkEmail(errs *ValidationError, value string) {
	if value == "" {
		errs.add("email", "must not be empty")
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		errs.add("email", "must be a valid email address")
	}
}

// parseDate accepts YYYY-MM-DD. A nil input passes through untouched so
// optional date fields stay optional.
func parseDate(errs *ValidationError, field string, value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		errs.add(field, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &t
}
