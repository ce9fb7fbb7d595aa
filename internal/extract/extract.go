// Package extract reduces scraped product descriptions to plain text.
// Descriptions copied from web shops often carry HTML fragments; when markup
// stripping is enabled those are parsed and replaced by their text content
// before documents are measured.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupPattern detects something that looks like an HTML tag, comment, or entity.
var markupPattern = regexp.MustCompile(`<[a-zA-Z/!][^>]*>|&[a-zA-Z]+;|&#[0-9]+;`)

// skippedElements never contribute text.
const skippedElements = "script, style, noscript, template"

// HasMarkup reports whether text appears to contain HTML.
func HasMarkup(text string) bool {
	return markupPattern.MatchString(text)
}

// StripMarkup returns the text content of an HTML fragment. Text of adjacent
// elements is separated by a single space and whitespace runs are collapsed.
// Text without markup is returned unchanged.
func StripMarkup(text string) (string, error) {
	if !HasMarkup(text) {
		return text, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(skippedElements).Remove()

	var parts []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, child *goquery.Selection) {
			if goquery.NodeName(child) == "#text" {
				parts = append(parts, child.Text())
				return
			}
			walk(child)
		})
	}
	walk(doc.Find("body"))

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}
