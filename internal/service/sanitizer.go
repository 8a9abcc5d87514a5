package service

import (
	"regexp"
	"strings"
)

var (
	boldMarkup = regexp.MustCompile(`\*\*(.+?)\*\*`)
	codeMarkup = regexp.MustCompile("`([^`]+)`")
)

// Sanitize quita **negrita** y `código` dejando el texto interno, en una sola pasada.
func Sanitize(text string) string {
	s := boldMarkup.ReplaceAllString(text, "$1")
	s = codeMarkup.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
