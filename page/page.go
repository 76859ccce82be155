// Package page is the HTML host: it labels commit titles in a parsed commits
// page, such as one saved from GitHub.
package page

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/logging"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// Selector is one way of finding commit title anchors.
type Selector struct {
	Name  string
	Query string
}

// DefaultSelectors are tried in order; the first that matches anything wins.
var DefaultSelectors = []Selector{
	{Name: "markdown-title", Query: `.markdown-title a[data-pjax="true"]`},
	{Name: "commit-row", Query: `[data-testid="commit-row-item"] h4 a`},
	{Name: "commit-group", Query: `.js-commits-list-item p.mb-1 a.Link--primary`},
	{Name: "commit-link", Query: `a.Link--primary[href*="/commit/"]`},
}

// Page is a parsed HTML commits page.
type Page struct {
	doc       *goquery.Document
	selectors []Selector
	entries   map[*html.Node]*Entry
	log       zerolog.Logger
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Page{
		doc:       doc,
		selectors: DefaultSelectors,
		entries:   make(map[*html.Node]*Entry),
		log:       logging.Component("page"),
	}, nil
}

// SetSelectors replaces the discovery selectors.
func (p *Page) SetSelectors(selectors ...Selector) {
	p.selectors = selectors
}

// Strategies turns the selectors into scanner strategies.
func (p *Page) Strategies() []labels.Strategy {
	out := make([]labels.Strategy, 0, len(p.selectors))
	for _, sel := range p.selectors {
		out = append(out, labels.Strategy{
			Name: sel.Name,
			Find: func() ([]labels.Entry, error) { return p.find(sel.Query), nil },
		})
	}
	return out
}

// find returns one entry per matching anchor. Entries are cached per node so
// repeated scans see the same keys.
func (p *Page) find(query string) []labels.Entry {
	var out []labels.Entry
	p.doc.Find(query).Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		e, ok := p.entries[node]
		if !ok {
			e = newEntry(s)
			p.entries[node] = e
		}
		out = append(out, e)
	})
	return out
}

// Attributes reads the theme attributes from the root element.
func (p *Page) Attributes() labels.Attributes {
	root := p.doc.Find("html").First()
	return labels.Attributes{
		ColorMode:  root.AttrOr("data-color-mode", ""),
		LightTheme: root.AttrOr("data-light-theme", ""),
		DarkTheme:  root.AttrOr("data-dark-theme", ""),
	}
}

// URL returns the page's canonical address, or "" when it declares none.
func (p *Page) URL() string {
	if href, ok := p.doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		return href
	}
	if content, ok := p.doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok {
		return content
	}
	return ""
}

// IsCommitPage reports whether the page lists commits. A page without a
// canonical address is assumed to.
func (p *Page) IsCommitPage() bool {
	raw := p.URL()
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return IsCommitPath(u.Path)
}

// IsCommitPath reports whether a URL path is a commit list or single commit.
func IsCommitPath(path string) bool {
	return strings.Contains(path, "/commits") || strings.Contains(path, "/commit/")
}

// Render writes the document.
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.doc.Get(0))
}

// Annotate labels every commit title on p and syncs the floating toggle. The
// returned theme is the one labels were colored for.
func Annotate(ctx context.Context, p *Page, cfg *labels.Configuration, systemDark bool) (labels.ScanStats, labels.Theme, error) {
	resolver := labels.NewThemeResolver(p.Attributes(), systemDark)
	theme := resolver.Current()

	renderer := labels.NewRenderer(cfg, nil)
	scanner := labels.NewScanner(renderer, resolver.Current, p.Strategies()...)

	stats, err := scanner.Run(ctx, nil)
	if err != nil {
		return stats, theme, err
	}
	p.EnsureToggle(cfg)

	p.log.Info().
		Str("strategy", stats.Strategy).
		Str("theme", string(theme)).
		Int("labeled", stats.Labeled).
		Int("failed", stats.Failed).
		Msg("page annotated")
	return stats, theme, nil
}
