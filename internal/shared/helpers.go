// Package shared provides common utility functions used across multiple
// packages in the modtagger codebase.
package shared

import (
	"fmt"
	"path"
	"strings"
	"unicode"
)

// NormalizeModName lowercases a mod name and collapses every run of
// non-alphanumeric characters into a single space, so "Better_Grass (HD)"
// and "better grass hd" compare equal.
func NormalizeModName(value string) string {
	fields := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}

// NormalizeFilename strips any directory part from a mod archive name and
// lowercases it. Both separators are handled since mod archives are often
// recorded with Windows paths.
func NormalizeFilename(value string) string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(value, "\\", "/"))
	if trimmed == "" {
		return ""
	}
	return strings.ToLower(path.Base(trimmed))
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// HTTPStatusErrorWithBody creates a formatted error that includes the
// response body for non-2xx HTTP responses.
func HTTPStatusErrorWithBody(status int, url string, body string) error {
	return fmt.Errorf("status=%d url=%s response=%s", status, url, body)
}
