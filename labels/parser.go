package labels

import (
	"regexp"
	"strings"
)

var titlePattern = regexp.MustCompile(`^(\w+)(?:\(([\w-]+)\))?:\s*(.*)`)

// Parsed is the structure extracted from a conventional commit title.
type Parsed struct {
	Type    string
	Scope   string
	Message string
}

// Match applies the title pattern without consulting a registry. Type is
// lowercased; Scope and Message keep their case.
func Match(title string) (Parsed, bool) {
	title = strings.TrimSpace(title)
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}

	m := titlePattern.FindStringSubmatch(title)
	if m == nil {
		return Parsed{}, false
	}
	return Parsed{
		Type:    strings.ToLower(m[1]),
		Scope:   m[2],
		Message: m[3],
	}, true
}

// Parse matches title and accepts it only when its type is registered.
func Parse(title string, reg *Registry) (Parsed, bool) {
	p, ok := Match(title)
	if !ok {
		return Parsed{}, false
	}
	if _, ok := reg.Resolve(p.Type); !ok {
		return Parsed{}, false
	}
	return p, true
}
