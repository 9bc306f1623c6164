package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
)

// Fingerprint returns the SHA256 of v's JSON encoding. Equal values give
// equal fingerprints.
func Fingerprint(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode value for fingerprint")
	}

	sum := sha256.Sum256(raw)

	return hex.EncodeToString(sum[:]), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// listDelimiters are the comma-class separators accepted in list fields:
// ASCII comma, Arabic comma, ideographic comma and fullwidth comma.
const listDelimiters = ",،、，"

// SplitDelimited splits a free-text list on comma-class delimiters, trims
// every entry and drops empty ones. Order and duplicates are kept.
func SplitDelimited(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(listDelimiters, r)
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

const (
	uzCountryCode  = "998"
	uzNationalSize = 9
)

// NormalizePhone reduces an Uzbek phone number in any common notation to
// "+998XXXXXXXXX". A bare 9-digit national number gets the country code.
// ok is false when the input does not hold exactly such a number.
func NormalizePhone(input string) (phone string, ok bool) {
	var digits strings.Builder
	for _, r := range input {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) == uzNationalSize {
		d = uzCountryCode + d
	}
	if len(d) != len(uzCountryCode)+uzNationalSize || !strings.HasPrefix(d, uzCountryCode) {
		return "", false
	}

	return "+" + d, true
}

// FormatPhone renders a phone number as "+998 (90) 123-45-67". Input that
// does not normalize is returned unchanged.
func FormatPhone(input string) string {
	phone, ok := NormalizePhone(input)
	if !ok {
		return input
	}

	d := phone[1+len(uzCountryCode):]

	return fmt.Sprintf("+%s (%s) %s-%s-%s", uzCountryCode, d[0:2], d[2:5], d[5:7], d[7:9])
}
