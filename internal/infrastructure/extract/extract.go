// Package extract converts article HTML into reading-focused plain text.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoContent is returned when a page holds no readable text.
var ErrNoContent = errors.New("no readable content")

const (
	noiseSelector = "script, style, noscript, template, iframe, svg, canvas, form, button, input, select, " +
		"nav, header, footer, aside, [role=navigation], [role=banner], [role=contentinfo], [aria-hidden=true]"
	blockSelector     = "h1, h2, h3, h4, h5, h6, p, li, blockquote, pre, figcaption"
	candidateSelector = "div, section, td"
)

// Extractor picks the main content of a page and flattens it to text.
type Extractor struct{}

// New returns an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the readable text of page. Noise such as navigation, scripts
// and footers is dropped; base only identifies the page and may be nil.
func (e *Extractor) Extract(page []byte, _ *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find(noiseSelector).Remove()
	text := strings.Join(blocks(contentRoot(doc)), "\n\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrNoContent
	}
	return text, nil
}

func contentRoot(doc *goquery.Document) *goquery.Selection {
	if best := longest(doc.Find("article")); best != nil {
		return best
	}
	if best := longest(doc.Find("main, [role=main]")); best != nil {
		return best
	}

	var best *goquery.Selection
	bestScore := 0
	doc.Find(candidateSelector).Each(func(_ int, s *goquery.Selection) {
		score := 0
		s.ChildrenFiltered("p").Each(func(_ int, p *goquery.Selection) {
			score += len(strings.TrimSpace(p.Text()))
		})
		if score > bestScore {
			best, bestScore = s, score
		}
	})
	if best != nil {
		return best
	}
	return doc.Find("body").First()
}

func longest(sel *goquery.Selection) *goquery.Selection {
	var best *goquery.Selection
	bestLen := 0
	sel.Each(func(_ int, s *goquery.Selection) {
		if n := len(strings.TrimSpace(s.Text())); n > bestLen {
			best, bestLen = s, n
		}
	})
	return best
}

func blocks(root *goquery.Selection) []string {
	var out []string
	root.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Nested blocks are emitted by their outermost block.
		if s.ParentsUntilSelection(root).Filter(blockSelector).Length() > 0 {
			return
		}
		text := nodeText(s.Nodes[0])
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			text = "• " + text
		}
		out = append(out, text)
	})
	if len(out) == 0 && root.Length() > 0 {
		if text := nodeText(root.Nodes[0]); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// nodeText flattens n to text, collapsing whitespace and keeping line breaks
// between block elements and at <br>.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(collapseSpace(n.Data))
			return
		case html.ElementNode:
			if n.DataAtom == atom.Br {
				b.WriteByte('\n')
				return
			}
		}
		block := n.Type == html.ElementNode && blockAtoms[n.DataAtom]
		if block {
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteByte('\n')
		}
	}
	walk(n)

	lines := strings.Split(b.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Section: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true, atom.Tr: true, atom.Table: true, atom.Figure: true,
}

func collapseSpace(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}
