package note

import (
	"strings"
	"unicode"
)

const previewLength = 80

// PlainText срезает HTML-разметку, оставляя текстовое содержимое.
func PlainText(html string) string {
	var b strings.Builder
	b.Grow(len(html))

	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Preview возвращает первые символы текста заметки для списков.
func Preview(html string) string {
	text := PlainText(html)
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "…"
}

// WordCount считает слова в текстовом содержимом.
func WordCount(html string) int {
	return len(strings.Fields(PlainText(html)))
}

// CharCount считает символы без служебной разметки.
func CharCount(html string) int {
	count := 0
	for _, r := range PlainText(html) {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
