package commitlist

import (
	"errors"

	"github.com/dylan/commitlabels/git"
	"github.com/dylan/commitlabels/labels"
	"github.com/google/uuid"
)

var errNoLabel = errors.New("row has no label")

// Row is one line of the commit graph. Commit rows are label entries; a row
// keeps its key for as long as it stays in the list.
type Row struct {
	key   string
	line  git.GraphLine
	title string
	label *labels.Label

	rendered string
	dirty    bool
}

func newRow(line git.GraphLine) *Row {
	return &Row{
		key:   uuid.NewString(),
		line:  line,
		title: line.Message,
		dirty: true,
	}
}

func (r *Row) Key() string { return r.key }

func (r *Row) Title() string { return r.title }

func (r *Row) SetTitle(s string) {
	r.title = s
	r.dirty = true
}

func (r *Row) HasLabel() bool { return r.label != nil }

func (r *Row) InsertLabel(l *labels.Label) error {
	r.label = l
	r.dirty = true
	return nil
}

func (r *Row) UpdateLabel(l *labels.Label) error {
	if r.label == nil {
		return errNoLabel
	}
	r.label = l
	r.dirty = true
	return nil
}

// Hash returns the abbreviated commit hash.
func (r *Row) Hash() string { return r.line.Hash }

// IsCommit reports whether the row is a commit rather than graph filler.
func (r *Row) IsCommit() bool { return r.line.IsCommit }

// Label returns the row's label, or nil.
func (r *Row) Label() *labels.Label { return r.label }

// setLine replaces the graph layout of a row that survived a refresh.
func (r *Row) setLine(line git.GraphLine) {
	if r.line.GraphChars != line.GraphChars || r.line.Refs != line.Refs {
		r.line.GraphChars = line.GraphChars
		r.line.Refs = line.Refs
		r.dirty = true
	}
}
