// Package htmlscan detects Creative Commons license declarations in HTML
// documents.
//
// Well-marked pages declare their license with rel="license" links:
//
//	<a rel="license" href="https://creativecommons.org/licenses/by/4.0/">CC BY 4.0</a>
//	<link rel="license" href="https://creativecommons.org/licenses/by-sa/3.0/">
//
// Scan finds every anchor or link element whose href parses as a
// Creative Commons license URL, whether or not it carries rel="license".
// The caller supplies the document; this package performs no network I/O.
//
//	matches, err := htmlscan.Scan(file)
//	if err != nil {
//	    return err
//	}
//	for _, m := range matches {
//	    fmt.Println(m.Href, "→", m.License.ShortForm())
//	}
package htmlscan

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	cclicense "github.com/albertocavalcante/go-cclicense"
)

// Match is one Creative Commons license reference found in a document.
type Match struct {
	// License is the parsed license the href resolves to.
	License cclicense.License

	// Href is the href attribute value, verbatim.
	Href string

	// Rel is the element's rel attribute ("license" on well-marked
	// documents); empty if absent.
	Rel string

	// Text is the element's trimmed text content. Empty for <link>
	// elements.
	Text string
}

// IsDeclared reports whether the reference was explicitly marked as the
// document's license via rel="license".
func (m Match) IsDeclared() bool {
	for _, rel := range strings.Fields(m.Rel) {
		if rel == "license" {
			return true
		}
	}
	return false
}

// Scan reads an HTML document and returns every <a> or <link> element
// whose href is a valid Creative Commons license URL, in document order.
// Duplicates are kept. Hrefs that are not CC license URLs are skipped
// silently, since scanning is detection rather than validation, so Scan
// fails only when the reader or the HTML tokenizer does.
func Scan(r io.Reader) ([]Match, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var matches []Match
	doc.Find("a[href], link[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		license, err := cclicense.Parse(href)
		if err != nil {
			return
		}
		rel, _ := sel.Attr("rel")
		matches = append(matches, Match{
			License: license,
			Href:    href,
			Rel:     rel,
			Text:    strings.TrimSpace(sel.Text()),
		})
	})
	return matches, nil
}

// Detect returns the document's license: the first rel="license" match
// if one exists, otherwise the first match of any kind. The boolean is
// false when the document declares no Creative Commons license at all.
func Detect(r io.Reader) (cclicense.License, bool, error) {
	matches, err := Scan(r)
	if err != nil {
		return cclicense.License{}, false, err
	}
	for _, m := range matches {
		if m.IsDeclared() {
			return m.License, true, nil
		}
	}
	if len(matches) > 0 {
		return matches[0].License, true, nil
	}
	return cclicense.License{}, false, nil
}
