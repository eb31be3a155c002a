// Package inflect converts identifiers between the casing conventions used in
// generated code. Words are delimited by underscores unless a delimiter is
// supplied. Leading letters are upper-cased with Unicode special casing rules
// (golang.org/x/text/cases), the remainder of each word is left untouched.
package inflect

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDelimiter separates words in underscored identifiers.
const DefaultDelimiter = "_"

// Humanize replaces delimiters with spaces and upper-cases the first letter of
// every word, leaving the rest of each word untouched: "html_cleaner" becomes
// "Html Cleaner".
func Humanize(s string, delimiter ...string) string {
	delim := pickDelimiter(delimiter)
	words := strings.Split(strings.ReplaceAll(s, delim, " "), " ")
	for idx, word := range words {
		words[idx] = upperFirst(word)
	}
	return strings.Join(words, " ")
}

// Camelize returns the UpperCamelCase form of s: "html_cleaner" becomes
// "HtmlCleaner" and "Form" stays "Form".
func Camelize(s string, delimiter ...string) string {
	return strings.ReplaceAll(Humanize(s, delimiter...), " ", "")
}

// Variable returns the lowerCamelCase form of s, as used for variable names in
// generated code.
func Variable(s string) string {
	camel := Camelize(Underscore(s))
	r, size := utf8.DecodeRuneInString(camel)
	if size == 0 {
		return camel
	}
	return cases.Lower(language.Und).String(string(r)) + camel[size:]
}

// Underscore converts CamelCase to lower_snake_case.
func Underscore(s string) string {
	return Delimit(strings.ReplaceAll(s, "-", "_"), DefaultDelimiter)
}

// Delimit inserts delimiter before every upper-case letter that follows a word
// character and lower-cases the result.
func Delimit(s, delimiter string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	var prev rune
	for idx, r := range s {
		if idx > 0 && unicode.IsUpper(r) && isWordRune(prev) {
			b.WriteString(delimiter)
		}
		b.WriteRune(r)
		prev = r
	}
	return cases.Lower(language.Und).String(b.String())
}

func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return cases.Upper(language.Und).String(string(r)) + word[size:]
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func pickDelimiter(delimiter []string) string {
	if len(delimiter) > 0 && delimiter[0] != "" {
		return delimiter[0]
	}
	return DefaultDelimiter
}
