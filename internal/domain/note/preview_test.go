package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "tags stripped",
			html: "<p>Hello <b>world</b></p>",
			want: "Hello world",
		},
		{
			name: "plain text unchanged",
			html: "просто текст",
			want: "просто текст",
		},
		{
			name: "whitespace collapsed",
			html: "<div>a</div>\n\n<div>b</div>",
			want: "a b",
		},
		{
			name: "empty",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.html))
		})
	}
}

func TestPreview(t *testing.T) {
	short := "<p>Короткая заметка</p>"
	assert.Equal(t, "Короткая заметка", Preview(short))

	long := "<p>" + strings.Repeat("а", 200) + "</p>"
	got := Preview(long)
	assert.Equal(t, 81, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 2, WordCount("<p>Hello world</p>"))
	assert.Equal(t, 3, WordCount("один <b>два</b> три"))
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 0, CharCount(""))
	assert.Equal(t, 10, CharCount("<p>Hello world</p>"))
}
