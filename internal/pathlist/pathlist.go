// Package pathlist assembles directory path lists: it splits raw
// separator-delimited arguments into tokens, expands leading tildes,
// filters out nonexistent directories, and removes duplicates.
package pathlist

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultSeparator separates directory paths unless -s overrides it.
const DefaultSeparator = ":"

// Config controls how a Builder assembles its path list.
type Config struct {
	Separator       string // Single character between paths (default ":")
	AllowDuplicates bool   // Keep repeated paths instead of dropping them
	Force           bool   // Keep absolute paths even if the directory doesn't exist
	ExpandTilde     bool   // Replace a leading "~/" with the home directory
}

// ParseSeparator validates a separator given on the command line. A
// separator must be exactly one character; anything else is an error.
func ParseSeparator(s string) (string, error) {
	if s == "" {
		return "", errors.New("separator is an empty string")
	}
	if utf8.RuneCountInString(s) > 1 {
		return "", fmt.Errorf("separator %q consists of multiple characters", s)
	}
	return s, nil
}

// Split breaks a raw path-list argument into individual directory paths.
// Runs of the separator collapse, and leading or trailing separators are
// ignored, so an argument consisting only of separators yields no tokens.
func Split(list, sep string) []string {
	var tokens []string
	for _, tok := range strings.Split(list, sep) {
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
