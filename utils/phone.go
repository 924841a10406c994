package utils

import (
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips formatting from a guest phone number so the
// same guest matches across submissions. A leading + is preserved.
func NormalizePhoneNumber(phoneNumber string) string {
	phoneNumber = strings.TrimSpace(phoneNumber)
	hasPlus := strings.HasPrefix(phoneNumber, "+")
	digits := nonDigitRe.ReplaceAllString(phoneNumber, "")
	if digits == "" {
		return ""
	}
	if hasPlus {
		return "+" + digits
	}
	return digits
}

// ValidatePhoneNumber accepts 7 to 15 digits (E.164 upper bound), with or
// without a leading +.
func ValidatePhoneNumber(phoneNumber string) bool {
	digits := nonDigitRe.ReplaceAllString(phoneNumber, "")
	return len(digits) >= 7 && len(digits) <= 15
}
