package labels

import (
	"errors"
	"fmt"
)

// Engine errors.
var (
	ErrNoCommitTypes = errors.New("configuration has no commit types")
	ErrInvalidImport = errors.New("invalid configuration import")
	ErrAliasExists   = errors.New("alias already exists in another group")
	ErrGroupNotFound = errors.New("type group not found")
	ErrNoAliases     = errors.New("at least one alias is required")
)

// InvalidTokenError reports a type token the title pattern could never match.
type InvalidTokenError struct {
	Token  string
	Reason string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid type token %q: %s", e.Token, e.Reason)
}

// UnknownColorError reports a color key missing from the palette.
type UnknownColorError struct {
	Token string
	Color string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("type %q uses unknown color %q", e.Token, e.Color)
}

// EntryError wraps a per-entry processing fault. Scans log and count these
// without stopping.
type EntryError struct {
	Key string
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %s: %v", e.Key, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
