package types

// FilterOp is a comparison operator for attribute filters.
type FilterOp int

const (
	OpEq FilterOp = iota
	OpNe
	OpContains
	OpContainsAll
)

// AttrFilter matches pads on a single attribute. Eq/Ne compare whole
// values; Contains/ContainsAll test list membership.
type AttrFilter struct {
	Name  string
	Op    FilterOp
	Value AttrValue
}

// Matches evaluates the filter against a metadata record. Unknown
// attribute names and operator/value mismatches never match.
func (f AttrFilter) Matches(m *Metadata) bool {
	current, ok := m.GetAttr(f.Name)
	if !ok {
		return false
	}

	switch f.Op {
	case OpEq:
		return attrEqual(current, f.Value)
	case OpNe:
		return !attrEqual(current, f.Value)
	case OpContains:
		list, ok := current.AsList()
		if !ok {
			return false
		}
		want, ok := f.Value.AsEnum()
		if !ok {
			return false
		}
		for _, item := range list {
			if item == want {
				return true
			}
		}
		return false
	case OpContainsAll:
		list, ok := current.AsList()
		if !ok {
			return false
		}
		want, ok := f.Value.AsList()
		if !ok {
			return false
		}
		have := make(map[string]bool, len(list))
		for _, item := range list {
			have[item] = true
		}
		for _, w := range want {
			if !have[w] {
				return false
			}
		}
		return true
	}
	return false
}

func attrEqual(a, b AttrValue) bool {
	switch b.Kind {
	case AttrBool, AttrBoolWithTimestamp:
		av, ok := a.AsBool()
		if !ok {
			return false
		}
		bv, _ := b.AsBool()
		return av == bv
	case AttrEnum:
		av, ok := a.AsEnum()
		if !ok {
			return false
		}
		return av == b.Str
	case AttrRef:
		av, ok := a.AsRef()
		if !ok {
			return false
		}
		if av == nil || b.Ref == nil {
			return av == nil && b.Ref == nil
		}
		return *av == *b.Ref
	case AttrList:
		av, ok := a.AsList()
		if !ok || len(av) != len(b.List) {
			return false
		}
		for i := range av {
			if av[i] != b.List[i] {
				return false
			}
		}
		return true
	}
	return false
}
