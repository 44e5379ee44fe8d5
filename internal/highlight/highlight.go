// Package highlight turns code snippets into cosmetic span markup.
//
// Highlighting is regex based and token unaware. Passes run in a fixed order
// per language and every pass sees the output of the previous one, so text
// that already sits inside a span (a keyword inside a string, a number inside
// a comment) can be wrapped again. Markup inserted by earlier passes is masked
// before matching, so no pass ever rewrites a tag itself.
package highlight

import (
	"regexp"
	"strings"

	"github.com/heyojules/folio/internal/model"
)

// Span classes emitted by the highlighter.
const (
	ClassKeyword  = "keyword"
	ClassFunction = "function"
	ClassString   = "string"
	ClassComment  = "comment"
	ClassNumber   = "number"
)

// pass wraps capture group 1 of every match of re in a span of class.
// When literal is set it replaces the matched text (SQL keywords).
type pass struct {
	re      *regexp.Regexp
	class   string
	literal string
}

var (
	singleQuoted = regexp.MustCompile(`('[^']*')`)
	doubleQuoted = regexp.MustCompile(`("[^"]*")`)
	backtick     = regexp.MustCompile("(`[^`]*`)")
	hashComment  = regexp.MustCompile(`(#[^\n]*)`)
	slashComment = regexp.MustCompile(`(//[^\n]*)`)
	number       = regexp.MustCompile(`\b(\d+\.?\d*)\b`)
)

var (
	pythonKeywords  = []string{"def", "import", "from", "return", "class", "if", "else", "for", "in", "as"}
	pythonFunctions = []string{"fit", "predict", "read_csv", "groupby", "mean", "array"}

	sqlKeywords = []string{"SELECT", "FROM", "WHERE", "GROUP BY", "ORDER BY", "AS", "WITH", "OVER", "PARTITION BY"}

	jsKeywords = []string{"const", "let", "var", "function", "async", "await", "return", "if", "else", "for", "of"}

	rKeywords  = []string{"library", "function", "return", "if", "else", "for", "in"}
	rFunctions = []string{"group_by", "summarise", "mean", "lm", "summary", "predict", "ggplot", "aes", "geom_point", "geom_smooth"}
)

var passes = map[model.Language][]pass{
	model.Python: concat(
		words(pythonKeywords, ClassKeyword, `\b(%s)\b`, false),
		words(pythonFunctions, ClassFunction, `\b(%s)\(`, false),
		[]pass{{re: singleQuoted, class: ClassString}, {re: doubleQuoted, class: ClassString}},
		[]pass{{re: hashComment, class: ClassComment}},
		[]pass{{re: number, class: ClassNumber}},
	),
	model.SQL: concat(
		words(sqlKeywords, ClassKeyword, `(?i)\b(%s)\b`, true),
		[]pass{{re: singleQuoted, class: ClassString}},
		[]pass{{re: number, class: ClassNumber}},
	),
	model.JavaScript: concat(
		words(jsKeywords, ClassKeyword, `\b(%s)\b`, false),
		[]pass{{re: singleQuoted, class: ClassString}, {re: doubleQuoted, class: ClassString}},
		[]pass{{re: backtick, class: ClassString}},
		[]pass{{re: slashComment, class: ClassComment}},
		[]pass{{re: number, class: ClassNumber}},
	),
	model.R: concat(
		words(rKeywords, ClassKeyword, `\b(%s)\b`, false),
		words(rFunctions, ClassFunction, `\b(%s)\b`, false),
		[]pass{{re: singleQuoted, class: ClassString}, {re: doubleQuoted, class: ClassString}},
		[]pass{{re: hashComment, class: ClassComment}},
		[]pass{{re: number, class: ClassNumber}},
	),
}

func words(list []string, class, pattern string, canonical bool) []pass {
	out := make([]pass, 0, len(list))
	for _, w := range list {
		p := pass{
			re:    regexp.MustCompile(strings.Replace(pattern, "%s", regexp.QuoteMeta(w), 1)),
			class: class,
		}
		if canonical {
			p.literal = w
		}
		out = append(out, p)
	}
	return out
}

func concat(groups ...[]pass) []pass {
	var out []pass
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Highlight returns text with keyword, function, string, comment and number
// tokens wrapped in <span class="..."> elements for lang. Unknown languages
// return text unchanged.
func Highlight(lang model.Language, text string) string {
	ps, ok := passes[lang]
	if !ok {
		return text
	}
	d := newDoc(text)
	for _, p := range ps {
		d = d.apply(p)
	}
	return d.String()
}

// Func returns a highlighter bound to lang.
func Func(lang model.Language) func(string) string {
	return func(text string) string { return Highlight(lang, text) }
}

// doc is markup plus a per-byte flag telling inserted tags apart from text.
type doc struct {
	buf  []byte
	tags []bool
}

func newDoc(text string) doc {
	return doc{buf: []byte(text), tags: make([]bool, len(text))}
}

func (d doc) String() string { return string(d.buf) }

// masked returns the markup with every tag byte replaced by NUL, which no
// pattern can match and which counts as a non-word character for \b.
func (d doc) masked() string {
	m := make([]byte, len(d.buf))
	for i, b := range d.buf {
		if d.tags[i] {
			m[i] = 0
		} else {
			m[i] = b
		}
	}
	return string(m)
}

func (d doc) apply(p pass) doc {
	matches := p.re.FindAllStringSubmatchIndex(d.masked(), -1)
	if len(matches) == 0 {
		return d
	}

	open := `<span class="` + p.class + `">`
	const closeTag = `</span>`

	out := doc{
		buf:  make([]byte, 0, len(d.buf)+len(matches)*(len(open)+len(closeTag))),
		tags: make([]bool, 0, len(d.buf)+len(matches)*(len(open)+len(closeTag))),
	}
	prev := 0
	for _, m := range matches {
		start, end := m[2], m[3]
		out.copyFrom(d, prev, start)
		out.push(open, true)
		if p.literal != "" {
			out.push(p.literal, false)
		} else {
			out.copyFrom(d, start, end)
		}
		out.push(closeTag, true)
		prev = end
	}
	out.copyFrom(d, prev, len(d.buf))
	return out
}

func (d *doc) copyFrom(src doc, from, to int) {
	d.buf = append(d.buf, src.buf[from:to]...)
	d.tags = append(d.tags, src.tags[from:to]...)
}

func (d *doc) push(s string, tag bool) {
	d.buf = append(d.buf, s...)
	for range len(s) {
		d.tags = append(d.tags, tag)
	}
}
