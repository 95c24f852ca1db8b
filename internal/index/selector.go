package index

import (
	"strings"
)

// SelectorKind discriminates the Selector union.
type SelectorKind int

const (
	SelectorPath SelectorKind = iota
	SelectorRange
	SelectorTitle
)

// Selector is one parsed user selector: a dot path, an inclusive range
// between two paths, or a title query.
type Selector struct {
	Kind  SelectorKind
	Path  []DisplayIndex
	Start []DisplayIndex
	End   []DisplayIndex
	Term  string
}

// PathSelector builds a path selector.
func PathSelector(path ...DisplayIndex) Selector {
	return Selector{Kind: SelectorPath, Path: path}
}

// RangeSelector builds a range selector.
func RangeSelector(start, end []DisplayIndex) Selector {
	return Selector{Kind: SelectorRange, Start: start, End: end}
}

// TitleSelector builds a title-query selector.
func TitleSelector(term string) Selector {
	return Selector{Kind: SelectorTitle, Term: term}
}

func (s Selector) String() string {
	switch s.Kind {
	case SelectorRange:
		return FormatPath(s.Start) + "-" + FormatPath(s.End)
	case SelectorTitle:
		return "\"" + s.Term + "\""
	default:
		return FormatPath(s.Path)
	}
}

// ParsePath parses a dot-separated path: "1.2" -> [Regular(1), Regular(2)].
func ParsePath(s string) ([]DisplayIndex, error) {
	parts := strings.Split(s, ".")
	path := make([]DisplayIndex, 0, len(parts))
	for _, part := range parts {
		idx, err := ParseDisplayIndex(part)
		if err != nil {
			return nil, err
		}
		path = append(path, idx)
	}
	return path, nil
}

// ParseSelector parses a single input that may be a path or a range.
// A '-' at offset zero is not a range separator, so negative-looking input
// falls through to a parse error (and ultimately a title query upstream).
func ParseSelector(s string) (Selector, error) {
	if dash := strings.Index(s, "-"); dash > 0 {
		start, err := ParsePath(s[:dash])
		if err != nil {
			return Selector{}, err
		}
		end, err := ParsePath(s[dash+1:])
		if err != nil {
			return Selector{}, err
		}
		return RangeSelector(start, end), nil
	}
	path, err := ParsePath(s)
	if err != nil {
		return Selector{}, err
	}
	return PathSelector(path...), nil
}
