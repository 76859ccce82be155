package page

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/dylan/commitlabels/labels"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToggleID is the id of the floating visibility toggle.
const ToggleID = "commit-labels-toggle"

const toggleStyle = "position: fixed; bottom: 20px; right: 20px; z-index: 9999; padding: 8px 12px; " +
	"border-radius: 20px; border: 1px solid rgba(240, 246, 252, 0.1); cursor: pointer"

// EnsureToggle keeps at most one floating toggle on the page, present only
// when the configuration asks for it. Its caption follows label visibility.
func (p *Page) EnsureToggle(cfg *labels.Configuration) {
	existing := p.doc.Find("#" + ToggleID)
	if !cfg.ShowFloatingButton {
		existing.Remove()
		return
	}
	if existing.Length() > 1 {
		existing.Slice(1, goquery.ToEnd).Remove()
		existing = existing.First()
	}

	if existing.Length() == 0 {
		body := p.doc.Find("body").First()
		if body.Length() == 0 {
			p.log.Debug().Msg("no body, skipping toggle")
			return
		}
		body.AppendNodes(element(atom.Button,
			html.Attribute{Key: "id", Val: ToggleID},
			html.Attribute{Key: "type", Val: "button"},
			html.Attribute{Key: "style", Val: toggleStyle},
		))
		existing = p.doc.Find("#" + ToggleID)
	}

	existing.SetAttr("data-labels-visible", strconv.FormatBool(cfg.LabelsVisible))
	existing.SetText(toggleCaption(cfg.LabelsVisible))
}

func toggleCaption(visible bool) string {
	if visible {
		return "🏷️ Hide labels"
	}
	return "🏷️ Show labels"
}
