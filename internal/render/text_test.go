package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-playground/assert/v2"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 150)

	got := Truncate(long, 100)

	assert.Equal(t, strings.Repeat("a", 100)+Ellipsis, got)
	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, strings.Repeat("b", 100), Truncate(strings.Repeat("b", 100), 100))
}

func TestTruncateCountsCharacters(t *testing.T) {
	long := strings.Repeat("নোটিশ", 30)

	got := Truncate(long, 100)

	assert.Equal(t, true, utf8.ValidString(got))
	assert.Equal(t, 100+len(Ellipsis), utf8.RuneCountInString(got))
}

func TestFormatText(t *testing.T) {
	assert.Equal(t, "one<br>two<br>three", FormatText("one\ntwo\r\nthree"))
}

func TestInlineHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "inline markup kept",
			input: `<span style='color:red;'>Urgent</span> <strong>exam</strong> <a href="/x">link</a>`,
			want:  `<span style='color:red;'>Urgent</span> <strong>exam</strong> <a href="/x">link</a>`,
		},
		{
			name:  "block tags flattened",
			input: "<p>First</p><p>Second</p>",
			want:  "First Second",
		},
		{
			name:  "line breaks flattened",
			input: "one<br>two<br/>three",
			want:  "one two three",
		},
		{
			name:  "lists and headings",
			input: "<h2>Title</h2><ul><li>a</li><li><em>b</em></li></ul>",
			want:  "Title a <em>b</em>",
		},
		{
			name:  "whitespace runs collapsed",
			input: "  <div>  spaced   out </div>  ",
			want:  "spaced out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InlineHTML(tt.input))
		})
	}
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Urgent exam & more", PlainText(`<span style="color:red">Urgent</span> <b>exam</b> &amp; more`))
	assert.Equal(t, "", PlainText(""))
}

func TestTruncateSkipsMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{
			name:  "tags do not count",
			input: "<b>bold</b> text",
			n:     9,
			want:  "<b>bold</b> text",
		},
		{
			name:  "cut inside an element closes it",
			input: `xx<a href="/form.pdf">download form</a> now`,
			n:     6,
			want:  `xx<a href="/form.pdf">down...</a>`,
		},
		{
			name:  "cut right before an element",
			input: `xxxx<a href="/form.pdf">form</a>`,
			n:     4,
			want:  `xxxx<a href="/form.pdf">...</a>`,
		},
		{
			name:  "stray end tag is dropped",
			input: "one</div></p> two",
			n:     100,
			want:  "one two",
		},
		{
			name:  "unclosed tag in short text is closed",
			input: "<span style='color:red'>urgent",
			n:     100,
			want:  "<span style='color:red'>urgent</span>",
		},
		{
			name:  "entities count once and are escaped at the cut",
			input: "a &amp; b &lt; c",
			n:     5,
			want:  "a &amp; b...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.n))
		})
	}
}
