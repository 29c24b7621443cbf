package service

import (
	"fmt"
	"strings"
)

// NormalizePhone strips a US phone number down to its 10 digits. An
// 11-digit number with a leading country-code "1" is accepted; anything
// that does not leave exactly 10 digits is rejected.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()

	if len(normalized) == 11 && normalized[0] == '1' {
		normalized = normalized[1:]
	}

	if len(normalized) != 10 {
		return "", ErrInvalidPhone
	}

	return normalized, nil
}

// FormatPhone renders a normalized 10-digit number as (XXX) XXX-XXXX.
func FormatPhone(normalized string) string {
	if len(normalized) != 10 {
		return normalized
	}
	return fmt.Sprintf("(%s) %s-%s", normalized[0:3], normalized[3:6], normalized[6:])
}
