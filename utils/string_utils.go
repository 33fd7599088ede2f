package utils

import (
	"regexp"
	"strings"
)

// Arabic Unicode range plus the Arabic Supplement block.
var arabicRegex = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}]`)

// HasArabic reports whether the text contains Arabic characters.
func HasArabic(text string) bool {
	return text != "" && arabicRegex.MatchString(text)
}

// TextDirection returns "rtl" for Arabic text and "ltr" otherwise.
func TextDirection(text string) string {
	if HasArabic(text) {
		return "rtl"
	}
	return "ltr"
}

// LanguageCode returns "ar" for Arabic text and "en" otherwise.
func LanguageCode(text string) string {
	if HasArabic(text) {
		return "ar"
	}
	return "en"
}

// Truncate shortens text to maxLength and appends an ellipsis when needed.
func Truncate(text string, maxLength int) string {
	if text == "" || len([]rune(text)) <= maxLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}
