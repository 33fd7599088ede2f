package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Valid Egyptian mobile numbers: 11 digits starting with 010, 011,
	// 012, or 015.
	egyptianPhoneRegex = regexp.MustCompile(`^01[0125][0-9]{8}$`)

	phoneFormattingChars = regexp.MustCompile(`[\s\-\(\)]`)
)

// NormalizePhone strips spaces, dashes, and parentheses from a phone number.
func NormalizePhone(phone string) string {
	return phoneFormattingChars.ReplaceAllString(phone, "")
}

// ValidateEgyptianPhone checks if the phone number is a valid Egyptian
// mobile number after stripping formatting characters.
func ValidateEgyptianPhone(phone string) (bool, string) {
	cleaned := NormalizePhone(phone)
	if !egyptianPhoneRegex.MatchString(cleaned) {
		return false, "Please enter a valid Egyptian mobile number (11 digits starting with 01)"
	}
	return true, ""
}

// ValidateName checks the customer name field.
func ValidateName(name string) (bool, string) {
	if len(strings.TrimSpace(name)) < 2 {
		return false, "Name must be at least 2 characters long"
	}
	return true, ""
}

// ValidateNotes checks the optional order notes field.
func ValidateNotes(notes string) (bool, string) {
	if len(notes) > MaxNotesLength {
		return false, fmt.Sprintf("Notes must not exceed %d characters", MaxNotesLength)
	}
	return true, ""
}

// ValidateQuantity checks a requested cart quantity.
func ValidateQuantity(qty int) (bool, string) {
	if qty < 0 {
		return false, "Quantity cannot be negative"
	}
	return true, ""
}
