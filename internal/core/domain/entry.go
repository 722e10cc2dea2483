// Package domain contains the core types of the cache configuration model.
package domain

import "strings"

// Kind classifies a cache entry by the type of value it carries.
type Kind string

const (
	// KindBool is a two-state flag, canonically ON or OFF.
	KindBool Kind = "Bool"
	// KindString is free-form text.
	KindString Kind = "String"
	// KindPath is a directory location.
	KindPath Kind = "Path"
	// KindFilePath is a file location.
	KindFilePath Kind = "FilePath"
	// KindEnum is a string restricted to a fixed ordered choice list.
	KindEnum Kind = "Enum"
	// KindInternal is tool-internal state, excluded from editing and diffing.
	KindInternal Kind = "Internal"
	// KindUninitialized is a placeholder pending the next configure pass.
	KindUninitialized Kind = "Uninitialized"
)

// Origin tracks where the current value of an entry came from.
// It is in-memory provenance only, never persisted.
type Origin string

const (
	// OriginPersisted marks an entry read from the cache file.
	OriginPersisted Origin = "Persisted"
	// OriginStagedEdit marks an entry whose value was committed by the operator
	// but not yet validated by a configure pass.
	OriginStagedEdit Origin = "StagedEdit"
	// OriginNewThisPass marks an entry that appeared during the last configure
	// pass and has not been acknowledged by the operator yet.
	OriginNewThisPass Origin = "NewThisPass"
)

// Persisted type tags understood by the codec. Unknown tags map to
// KindInternal so the codec never rejects a cache merely because a newer
// external tool introduced a tag it does not know.
const (
	TagBool          = "BOOL"
	TagString        = "STRING"
	TagPath          = "PATH"
	TagFilePath      = "FILEPATH"
	TagStatic        = "STATIC"
	TagInternal      = "INTERNAL"
	TagUninitialized = "UNINITIALIZED"
)

// KindFromTag maps a persisted TYPE tag to a Kind.
func KindFromTag(tag string) Kind {
	switch tag {
	case TagBool:
		return KindBool
	case TagString:
		return KindString
	case TagPath:
		return KindPath
	case TagFilePath:
		return KindFilePath
	case TagStatic, TagInternal:
		return KindInternal
	case TagUninitialized:
		return KindUninitialized
	default:
		return KindInternal
	}
}

// Tag returns the persisted TYPE tag for a kind. Enum entries keep their
// original tag on disk (the choice list is a separate INTERNAL property), so
// KindEnum maps back to STRING.
func (k Kind) Tag() string {
	switch k {
	case KindBool:
		return TagBool
	case KindString, KindEnum:
		return TagString
	case KindPath:
		return TagPath
	case KindFilePath:
		return TagFilePath
	case KindUninitialized:
		return TagUninitialized
	default:
		return TagInternal
	}
}

// CacheEntry is one named, typed configuration variable.
type CacheEntry struct {
	Name     string
	Kind     Kind
	TypeTag  string // raw TYPE token as persisted, retained for round-trip output
	Value    string
	Help     string
	Choices  []string // Enum only, ordered
	Advanced bool
	Origin   Origin

	// Prefix holds the verbatim comment and blank lines that preceded the
	// entry in the persisted file. Serialization replays them unchanged so an
	// untouched cache round-trips byte for byte.
	Prefix []string
}

// Editable reports whether the operator may open an edit session on the entry.
// Internal entries belong to the external tool; uninitialized entries are
// placeholders until the next configure pass resolves them.
func (e *CacheEntry) Editable() bool {
	return e.Kind != KindInternal && e.Kind != KindUninitialized
}

// Validate checks a candidate value against the entry's kind. Path-like
// values are normalized (whitespace-trimmed) before validation; the returned
// string is the value that should actually be committed.
func (e *CacheEntry) Validate(value string) (string, error) {
	switch e.Kind {
	case KindBool:
		if value != BoolOn && value != BoolOff {
			return "", zerrWithValue(ErrInvalidBool, e.Name, value)
		}
		return value, nil
	case KindEnum:
		for _, c := range e.Choices {
			if c == value {
				return value, nil
			}
		}
		return "", zerrWithValue(ErrInvalidChoice, e.Name, value)
	case KindPath, KindFilePath:
		return strings.TrimSpace(value), nil
	case KindString:
		return value, nil
	default:
		return "", zerrWithValue(ErrNotEditable, e.Name, value)
	}
}

// Clone returns a deep copy of the entry.
func (e *CacheEntry) Clone() *CacheEntry {
	c := *e
	if e.Choices != nil {
		c.Choices = append([]string(nil), e.Choices...)
	}
	if e.Prefix != nil {
		c.Prefix = append([]string(nil), e.Prefix...)
	}
	return &c
}

// Canonical bool states written to the cache.
const (
	BoolOn  = "ON"
	BoolOff = "OFF"
)

// falseWords is the set of values cmake treats as false. Anything else
// non-empty is true. NOTFOUND-suffixed values are also false.
var falseWords = map[string]struct{}{
	"OFF": {}, "NO": {}, "FALSE": {}, "N": {}, "0": {}, "IGNORE": {}, "NOTFOUND": {}, "": {},
}

// IsTrue reports whether a persisted bool value is truthy under cmake rules.
func IsTrue(value string) bool {
	upper := strings.ToUpper(strings.TrimSpace(value))
	if _, ok := falseWords[upper]; ok {
		return false
	}
	return !strings.HasSuffix(upper, "-NOTFOUND")
}

// NextBoolValue returns the canonical opposite of a bool value.
func NextBoolValue(value string) string {
	if IsTrue(value) {
		return BoolOff
	}
	return BoolOn
}

// NextChoice returns the choice following the current value in the entry's
// choice list, wrapping around. A value not present in the list yields the
// first choice.
func (e *CacheEntry) NextChoice() string {
	if len(e.Choices) == 0 {
		return e.Value
	}
	for i, c := range e.Choices {
		if c == e.Value {
			return e.Choices[(i+1)%len(e.Choices)]
		}
	}
	return e.Choices[0]
}
