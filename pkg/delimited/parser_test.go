package delimited

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "quoted delimiter and escaped quote",
			input: "a,\"b,c\",\"d\"\"e\"\n",
			want:  [][]string{{"a", "b,c", `d"e`}},
		},
		{
			name:  "no trailing newline",
			input: "a,b\nc,d",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "crlf is one terminator",
			input: "a,b\r\nc,d\r\n",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "lone carriage return ends row",
			input: "a\rb\n",
			want:  [][]string{{"a"}, {"b"}},
		},
		{
			name:  "newline inside quotes is literal",
			input: "\"line one\nline two\",show\n",
			want:  [][]string{{"line one\nline two", "show"}},
		},
		{
			name:  "fields are not trimmed",
			input: " a , \" b \" \n",
			want:  [][]string{{" a ", "  b  "}},
		},
		{
			name:  "varying widths are kept",
			input: "a\nb,c,d\n",
			want:  [][]string{{"a"}, {"b", "c", "d"}},
		},
		{
			name:  "blank line yields single empty field",
			input: "a\n\nb\n",
			want:  [][]string{{"a"}, {""}, {"b"}},
		},
		{
			name:  "trailing delimiter adds empty field",
			input: "a,",
			want:  [][]string{{"a", ""}},
		},
		{
			name:  "empty quoted field at end of input",
			input: "a\n\"\"",
			want:  [][]string{{"a"}, {""}},
		},
		{
			name:  "bengali text",
			input: "তারিখ,শিরোনাম\n\"০৩ আগষ্ট, ২০২৫\",ঘোষণা\n",
			want:  [][]string{{"তারিখ", "শিরোনাম"}, {"০৩ আগষ্ট, ২০২৫", "ঘোষণা"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	rows, err := Parse("date,title\n\"03 Aug,notice\nmore,text\n")

	assert.Equal(t, true, errors.Is(err, ErrUnterminatedQuote))
	assert.Equal(t, "line 2: unterminated quoted field", err.Error())
	assert.Equal(t, 0, len(rows))
}

func TestParseRoundTrip(t *testing.T) {
	inputs := [][][]string{
		{},
		{{"a"}},
		{{"date", "title", "description", "status"}, {"01 Jan", "Exam", "Starts Monday", "show"}},
		{{"", "x", ""}, {"only"}},
		{{" padded ", "tab\tinside"}},
	}

	for _, rows := range inputs {
		got, err := Parse(Format(rows))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) == 0 {
			assert.Equal(t, 0, len(got))
			continue
		}
		if diff := cmp.Diff(rows, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestFormatQuotesSpecialFields(t *testing.T) {
	rows := [][]string{{"a", "b,c", `d"e`, "f\ng"}}

	out := Format(rows)
	assert.Equal(t, "a,\"b,c\",\"d\"\"e\",\"f\ng\"\n", out)

	got, err := Parse(out)
	assert.Equal(t, nil, err)
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := "d,t,desc,status\n1,A,x,show\n2,B,\"y,z\",hide\n"

	first, err := Parse(input)
	assert.Equal(t, nil, err)
	for i := 0; i < 5; i++ {
		again, err := Parse(input)
		assert.Equal(t, nil, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs:\n%s", i, diff)
		}
	}
}
