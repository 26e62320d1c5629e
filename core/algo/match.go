// Package algo has the small text and ranking primitives shared by every analyzer.
package algo

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// shortKeywordLen is the length below which a keyword must match a whole word.
const shortKeywordLen = 4

// MatchKeyword reports whether keyword occurs in text. Keywords shorter than
// four characters must sit on word boundaries so that "ai" never matches
// inside "again"; longer keywords match as plain substrings.
// Both arguments are expected to be lowercased already.
func MatchKeyword(keyword, text string) bool {
	if keyword == "" {
		return false
	}
	if len(keyword) < shortKeywordLen {
		return ContainsWord(text, keyword)
	}
	return strings.Contains(text, keyword)
}

// ContainsWord reports whether word occurs in text delimited by word
// boundaries, with the same semantics as the regular expression \bword\b.
func ContainsWord(text, word string) bool {
	if word == "" {
		return false
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(word)
		if isBoundary(text, start) && isBoundary(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

// isBoundary reports whether a word boundary sits at byte offset pos of s.
func isBoundary(s string, pos int) bool {
	before, after := false, false
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:pos])
		before = isWordRune(r)
	}
	if pos < len(s) {
		r, _ := utf8.DecodeRuneInString(s[pos:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Title upper-cases the first letter of every word and lower-cases the rest.
// A word starts after any character that is not a letter, so "next.js"
// becomes "Next.Js" and "react-native" becomes "React-Native".
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return strings.ToLower(s)
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Round1 rounds to one decimal place, halves to even.
func Round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// Head returns at most the first n elements of s.
func Head[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

// ContainsAny reports whether text contains any of the substrings.
func ContainsAny(text string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
