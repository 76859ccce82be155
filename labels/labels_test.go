package labels

import (
	"errors"

	"github.com/google/uuid"
)

// fakeEntry is an in-memory host entry.
type fakeEntry struct {
	key       string
	title     string
	label     *Label
	marker    bool
	inserts   int
	updates   int
	insertErr error
	panics    bool
}

func newEntry(title string) *fakeEntry {
	return &fakeEntry{key: uuid.NewString(), title: title}
}

func (e *fakeEntry) Key() string { return e.key }

func (e *fakeEntry) Title() string {
	if e.panics {
		panic("malformed entry")
	}
	return e.title
}

func (e *fakeEntry) SetTitle(s string) { e.title = s }

func (e *fakeEntry) HasLabel() bool { return e.marker || e.label != nil }

func (e *fakeEntry) InsertLabel(l *Label) error {
	if e.insertErr != nil {
		return e.insertErr
	}
	e.inserts++
	e.label = l
	return nil
}

func (e *fakeEntry) UpdateLabel(l *Label) error {
	if e.label != l {
		return errors.New("label not attached")
	}
	e.updates++
	return nil
}

func entries(titles ...string) []*fakeEntry {
	out := make([]*fakeEntry, len(titles))
	for i, t := range titles {
		out[i] = newEntry(t)
	}
	return out
}

func asEntries(in []*fakeEntry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}

func staticStrategy(name string, in []*fakeEntry) Strategy {
	return Strategy{Name: name, Find: func() ([]Entry, error) { return asEntries(in), nil }}
}
