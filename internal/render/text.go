package render

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const Ellipsis = "..."

var voidTags = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// Truncate cuts s after n characters of text and appends Ellipsis, never
// cutting inside a tag. Markup counts for nothing.
// Tags still open at the end are closed and end tags with no matching start
// tag are dropped, so the result cannot leak into surrounding markup.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}

	var (
		b    strings.Builder
		open []string
	)

	closeOpen := func() string {
		for i := len(open) - 1; i >= 0; i-- {
			b.WriteString("</" + open[i] + ">")
		}
		return b.String()
	}

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return closeOpen()
		case html.TextToken:
			text := []rune(string(z.Text()))
			if len(text) > n {
				b.WriteString(html.EscapeString(string(text[:n])))
				b.WriteString(Ellipsis)
				return closeOpen()
			}
			n -= len(text)
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidTags[atom.Lookup(name)] {
				open = append(open, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			i := len(open) - 1
			for i >= 0 && open[i] != string(name) {
				i--
			}
			if i < 0 {
				continue
			}
			open = open[:i]
		}
		b.Write(z.Raw())
	}
}

// FormatText turns line breaks into <br> tags.
func FormatText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}

var blockTags = map[atom.Atom]bool{
	atom.Div:        true,
	atom.P:          true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Li:         true,
	atom.Blockquote: true,
	atom.Section:    true,
	atom.Article:    true,
	atom.Header:     true,
	atom.Footer:     true,
	atom.Br:         true,
}

var spaceRun = regexp.MustCompile(`\s\s+`)

// InlineHTML flattens block level tags to single spaces so markup fits on
// one line. Inline tags and text are kept byte for byte.
func InlineHTML(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockTags[atom.Lookup(name)] {
				b.WriteByte(' ')
				continue
			}
		}
		b.Write(z.Raw())
	}

	return strings.TrimSpace(spaceRun.ReplaceAllString(b.String(), " "))
}

// PlainText drops all markup and returns the text content of s.
func PlainText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
