package page

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dylan/commitlabels/labels"
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	labelClass = "commit-label"
	keyAttr    = "data-commit-label-id"
)

var errNoLabel = errors.New("entry has no label")

// Entry is one commit title anchor.
type Entry struct {
	sel   *goquery.Selection
	key   string
	label *html.Node
}

// newEntry stamps the anchor with a key, reusing one from an earlier run so
// re-annotating a saved page is a no-op.
func newEntry(s *goquery.Selection) *Entry {
	key, ok := s.Attr(keyAttr)
	if !ok || key == "" {
		key = uuid.NewString()
		s.SetAttr(keyAttr, key)
	}
	return &Entry{sel: s, key: key}
}

func (e *Entry) Key() string { return e.key }

func (e *Entry) Title() string {
	return strings.TrimSpace(e.sel.Text())
}

func (e *Entry) SetTitle(s string) {
	e.sel.SetText(s)
}

// HasLabel looks for a label anywhere under the anchor's parent.
func (e *Entry) HasLabel() bool {
	return e.sel.Parent().Find("."+labelClass).Length() > 0
}

// InsertLabel places the label span right before the anchor.
func (e *Entry) InsertLabel(l *labels.Label) error {
	node := labelNode(l)
	e.sel.BeforeNodes(node)
	e.label = node
	return nil
}

// UpdateLabel rewrites the label's inline style.
func (e *Entry) UpdateLabel(l *labels.Label) error {
	if e.label == nil {
		found := e.sel.Parent().Find("." + labelClass).First()
		if found.Length() == 0 {
			return errNoLabel
		}
		e.label = found.Get(0)
	}
	setAttr(e.label, "style", labelStyle(l))
	return nil
}

// Label returns the inserted label span.
func (e *Entry) Label() *goquery.Selection {
	if e.label == nil {
		return e.sel.Parent().Find("." + labelClass).First()
	}
	return goquery.NewDocumentFromNode(e.label).Selection
}

func labelNode(l *labels.Label) *html.Node {
	span := element(atom.Span,
		html.Attribute{Key: "class", Val: labelClass},
		html.Attribute{Key: "data-commit-type", Val: l.Type},
		html.Attribute{Key: "style", Val: labelStyle(l)},
	)
	if l.Scope != "" {
		span.Attr = append(span.Attr, html.Attribute{Key: "data-commit-scope", Val: l.Scope})
	}
	if l.Description != "" {
		span.Attr = append(span.Attr, html.Attribute{Key: "title", Val: l.Description})
	}

	if l.Emoji != "" {
		icon := element(atom.Span, html.Attribute{Key: "style", Val: "margin-right: 4px; font-size: 14px; line-height: 1"})
		icon.AppendChild(text(l.Emoji))
		span.AppendChild(icon)
	}

	name := element(atom.Span)
	name.AppendChild(text(l.Text))
	span.AppendChild(name)

	if suffix := l.ScopeSuffix(); suffix != "" {
		scope := element(atom.Span,
			html.Attribute{Key: "class", Val: labelClass + "-scope"},
			html.Attribute{Key: "style", Val: "margin-left: 4px; opacity: 0.7"},
		)
		scope.AppendChild(text(suffix))
		span.AppendChild(scope)
	}
	return span
}

// labelStyle turns the configured style properties into CSS, followed by the
// resolved colors.
func labelStyle(l *labels.Label) string {
	var b strings.Builder
	for _, key := range slices.Sorted(maps.Keys(l.Style)) {
		if key == "display" && !l.Visible {
			continue
		}
		writeDecl(&b, kebab(key), l.Style[key])
	}
	writeDecl(&b, "background-color", l.Colors.Background)
	writeDecl(&b, "color", l.Colors.Foreground)
	if l.Colors.Border != "" {
		writeDecl(&b, "border-color", l.Colors.Border)
	}
	if !l.Visible {
		writeDecl(&b, "display", "none")
	}
	return b.String()
}

func writeDecl(b *strings.Builder, prop, value string) {
	if b.Len() > 0 {
		b.WriteString("; ")
	}
	b.WriteString(prop)
	b.WriteString(": ")
	b.WriteString(value)
}

// kebab converts camelCase style keys to CSS property names.
func kebab(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
