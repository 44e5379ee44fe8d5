package highlight

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText strips highlight markup and returns the visible text.
func PlainText(markup string) string {
	return html.UnescapeString(strict.Sanitize(markup))
}
