package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

var CountryCode = "IN"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonKeyChars   = regexp.MustCompile(`[^a-z0-9_\s]`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// NormalizeKey turns free text (spreadsheet headers, field labels) into a
// stable lookup key: lower-cased, everything outside [a-z0-9_] and
// whitespace stripped, then whitespace runs collapsed to a single
// underscore. Punctuation goes first so a compound header like
// "Full Name - First Name" collapses to full_name_first_name rather than
// leaving a doubled separator.
func NormalizeKey(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	key = nonKeyChars.ReplaceAllString(key, "")
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(key), "_")
}

// NormalizeEmail canonicalizes an email for equality comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips all whitespace so differently formatted numbers compare equal.
func NormalizePhone(phone string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(phone), "")
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePhoneNumber(phoneNumber, countryCode string) error {
	p, err := libphonenumber.Parse(phoneNumber, countryCode)
	if err != nil {
		return err // Phone number is invalid
	}

	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number is not valid")
	}

	return nil
}

func ProcessValidationErrors(err error) map[string]string {

	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

// DereferencePtr returns the pointed-to value or the given fallback when nil.
func DereferencePtr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
