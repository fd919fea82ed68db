// Package pages fetches HTML pages and turns listing sites into raw
// records.
package pages

import (
	"bytes"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	selMu    sync.Mutex
	selCache = map[string]cascadia.Selector{}
)

// compile caches compiled selectors. Invalid ones yield nil and match
// nothing.
func compile(raw string) cascadia.Selector {
	selMu.Lock()
	defer selMu.Unlock()
	if sel, ok := selCache[raw]; ok {
		return sel
	}
	sel, err := cascadia.Compile(raw)
	if err != nil {
		sel = nil
	}
	selCache[raw] = sel
	return sel
}

// Document is a parsed page.
type Document struct {
	root *html.Node
}

func Parse(b []byte) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Text is the visible text of the whole page.
func (d *Document) Text() string { return TextOf(d.root) }

// FindAll returns the matches of the first CSS selector that matches
// anything below the document root.
func (d *Document) FindAll(selectors ...string) []*html.Node {
	return findAll(d.root, selectors)
}

func findAll(root *html.Node, selectors []string) []*html.Node {
	for _, raw := range selectors {
		sel := compile(raw)
		if sel == nil {
			continue
		}
		if out := cascadia.QueryAll(root, sel); len(out) > 0 {
			return out
		}
	}
	return nil
}

// FirstText returns the text of the first element under n matched by any
// selector, trying them in order.
func FirstText(n *html.Node, selectors ...string) string {
	for _, raw := range selectors {
		if m := findAll(n, []string{raw}); len(m) > 0 {
			if t := strings.TrimSpace(TextOf(m[0])); t != "" {
				return t
			}
		}
	}
	return ""
}

var skipped = map[atom.Atom]bool{atom.Script: true, atom.Style: true, atom.Noscript: true, atom.Head: true}

var blocks = map[atom.Atom]bool{
	atom.Div: true, atom.P: true, atom.Li: true, atom.Br: true, atom.Tr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.Section: true,
}

// TextOf renders the visible text under n, one line per block element.
func TextOf(n *html.Node) string {
	var b strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteByte(' ')
				}
				b.WriteString(t)
			}
			return
		case html.ElementNode:
			if skipped[n.DataAtom] {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
		if n.Type == html.ElementNode && blocks[n.DataAtom] && b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	}
	rec(n)
	return strings.TrimSpace(b.String())
}
