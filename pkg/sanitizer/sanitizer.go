package sanitizer

import (
	"regexp"
	"strings"
)

// Strategy is a single text-cleaning step.
type Strategy func(string) string

// Pipeline applies strategies in order.
type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var reInnerSpace = regexp.MustCompile(`\s+`)

func trim(s string) string {
	return strings.TrimSpace(s)
}

func collapseSpaces(s string) string {
	return reInnerSpace.ReplaceAllString(s, " ")
}

// CleanText trims and collapses whitespace in free-form text such as
// names, notes and search terms.
func CleanText(input string) string {
	p := Pipeline{trim, collapseSpaces}
	return p.Apply(input)
}

// CleanEmail trims and lowercases an email address.
func CleanEmail(input string) string {
	p := Pipeline{trim, strings.ToLower}
	return p.Apply(input)
}

// CleanPhone trims surrounding whitespace only. The digits are kept
// verbatim because the stored phone string is the client dedup key.
func CleanPhone(input string) string {
	return trim(input)
}
