package model

import "fmt"

// Language tags a snippet's source language.
type Language string

const (
	Python     Language = "python"
	SQL        Language = "sql"
	JavaScript Language = "javascript"
	R          Language = "r"
)

// Languages lists every language in catalog order.
var Languages = []Language{Python, SQL, JavaScript, R}

// ParseLanguage maps a tag to a known Language.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Snippet is one literal code example and its language.
// Templates are immutable; the highlighter is selected by Language.
type Snippet struct {
	Language Language
	Code     string
}

// Len returns the number of characters revealed while typing.
func (s Snippet) Len() int {
	return len([]rune(s.Code))
}

// Prefix returns the first n characters of the snippet.
func (s Snippet) Prefix(n int) string {
	r := []rune(s.Code)
	if n >= len(r) {
		return s.Code
	}
	if n <= 0 {
		return ""
	}
	return string(r[:n])
}

// Position is the top-left corner of a snippet in container pixels.
type Position struct {
	X float64
	Y float64
}
