package types

import (
	"time"

	"github.com/google/uuid"
)

// AttrKind discriminates the AttrValue union.
type AttrKind int

const (
	AttrBool AttrKind = iota
	AttrBoolWithTimestamp
	AttrEnum
	AttrList
	AttrRef
)

// AttrValue is the tagged union carried by the uniform attribute API.
type AttrValue struct {
	Kind      AttrKind
	Bool      bool
	Timestamp *time.Time
	Str       string
	List      []string
	Ref       *uuid.UUID
}

// BoolValue wraps a plain boolean.
func BoolValue(v bool) AttrValue {
	return AttrValue{Kind: AttrBool, Bool: v}
}

// BoolWithTimestampValue wraps a boolean paired with the time it was set.
func BoolWithTimestampValue(v bool, ts *time.Time) AttrValue {
	return AttrValue{Kind: AttrBoolWithTimestamp, Bool: v, Timestamp: ts}
}

// EnumValue wraps an enum variant name.
func EnumValue(s string) AttrValue {
	return AttrValue{Kind: AttrEnum, Str: s}
}

// ListValue wraps a list of strings.
func ListValue(l []string) AttrValue {
	return AttrValue{Kind: AttrList, List: l}
}

// RefValue wraps an optional pad reference.
func RefValue(id *uuid.UUID) AttrValue {
	return AttrValue{Kind: AttrRef, Ref: id}
}

// AsBool returns the boolean payload for Bool and BoolWithTimestamp values.
func (v AttrValue) AsBool() (bool, bool) {
	if v.Kind == AttrBool || v.Kind == AttrBoolWithTimestamp {
		return v.Bool, true
	}
	return false, false
}

// AsEnum returns the enum variant name.
func (v AttrValue) AsEnum() (string, bool) {
	if v.Kind == AttrEnum {
		return v.Str, true
	}
	return "", false
}

// AsList returns the list payload.
func (v AttrValue) AsList() ([]string, bool) {
	if v.Kind == AttrList {
		return v.List, true
	}
	return nil, false
}

// AsRef returns the reference payload (which may itself be nil).
func (v AttrValue) AsRef() (*uuid.UUID, bool) {
	if v.Kind == AttrRef {
		return v.Ref, true
	}
	return nil, false
}

// SideEffectKind enumerates what the caller must do after SetAttr.
type SideEffectKind int

const (
	EffectNone SideEffectKind = iota
	EffectPropagateStatusUp
	EffectValidateTags
)

// SideEffect is the outcome of a SetAttr call. ValidateTags carries the tag
// list the caller must check against the registry.
type SideEffect struct {
	Kind SideEffectKind
	Tags []string
}

// GetAttr returns the value of a named attribute, or ok=false for an
// unknown name. Supported names: pinned, deleted, protected, status, tags,
// parent.
func (m *Metadata) GetAttr(name string) (AttrValue, bool) {
	switch name {
	case "pinned":
		return BoolWithTimestampValue(m.IsPinned, m.PinnedAt), true
	case "deleted":
		return BoolWithTimestampValue(m.IsDeleted, m.DeletedAt), true
	case "protected":
		return BoolValue(m.DeleteProtected), true
	case "status":
		return EnumValue(string(m.Status)), true
	case "tags":
		return ListValue(append([]string(nil), m.Tags...)), true
	case "parent":
		return RefValue(m.ParentID), true
	}
	return AttrValue{}, false
}

// SetAttr sets a named attribute and reports the side effect the caller
// must honor. Returns ok=false for an unknown name, a value of the wrong
// kind, or an invalid enum variant; the metadata is left unchanged in that
// case.
//
// Pinned is coupled: setting it also sets delete_protected to the same
// boolean and stamps pinned_at. Setting deleted stamps deleted_at.
func (m *Metadata) SetAttr(name string, value AttrValue) (SideEffect, bool) {
	switch name {
	case "pinned":
		flag, ok := value.AsBool()
		if !ok {
			return SideEffect{}, false
		}
		m.IsPinned = flag
		if flag {
			now := NowUTC()
			m.PinnedAt = &now
		} else {
			m.PinnedAt = nil
		}
		m.DeleteProtected = flag
		return SideEffect{Kind: EffectNone}, true
	case "deleted":
		flag, ok := value.AsBool()
		if !ok {
			return SideEffect{}, false
		}
		m.IsDeleted = flag
		if flag {
			now := NowUTC()
			m.DeletedAt = &now
		} else {
			m.DeletedAt = nil
		}
		return SideEffect{Kind: EffectPropagateStatusUp}, true
	case "protected":
		flag, ok := value.AsBool()
		if !ok {
			return SideEffect{}, false
		}
		m.DeleteProtected = flag
		return SideEffect{Kind: EffectNone}, true
	case "status":
		s, ok := value.AsEnum()
		if !ok {
			return SideEffect{}, false
		}
		status, ok := ParseTodoStatus(s)
		if !ok {
			return SideEffect{}, false
		}
		m.Status = status
		return SideEffect{Kind: EffectPropagateStatusUp}, true
	case "tags":
		list, ok := value.AsList()
		if !ok {
			return SideEffect{}, false
		}
		m.Tags = append([]string(nil), list...)
		return SideEffect{Kind: EffectValidateTags, Tags: append([]string(nil), list...)}, true
	case "parent":
		ref, ok := value.AsRef()
		if !ok {
			return SideEffect{}, false
		}
		m.ParentID = ref
		return SideEffect{Kind: EffectPropagateStatusUp}, true
	}
	return SideEffect{}, false
}
