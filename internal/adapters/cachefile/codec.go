// Package cachefile reads and writes the persisted CMakeCache.txt format.
package cachefile

import (
	"regexp"
	"strings"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

// entryLineRegex matches one logical cache entry: NAME:TYPE=VALUE.
// Names may contain dots, dashes, pluses and slashes, as real caches do.
var entryLineRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_./+-]*):([A-Z]+)=(.*)$`)

const (
	helpPrefix     = "//"
	advancedMarker = "ADVANCED:property=1"

	// Structured property entries the external tool emits in the internal
	// section to annotate a base entry.
	stringsSuffix  = "-STRINGS"
	advancedSuffix = "-ADVANCED"
)

// Codec implements ports.Codec for the line-oriented cache format.
type Codec struct{}

var _ ports.Codec = (*Codec)(nil)

// NewCodec creates a new cache codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse hydrates a model from raw cache text.
//
// Comment and blank lines are retained verbatim as the prefix of the entry
// that follows them, so Serialize reproduces the input byte for byte. A
// contiguous run of "//" lines immediately before an entry is its help text;
// a "// ADVANCED:property=1" line in that run marks the entry advanced.
// Unknown type tags are preserved as internal entries rather than rejected.
func (c *Codec) Parse(raw []byte) (*domain.Model, error) {
	model := domain.NewModel()
	lines := strings.Split(string(raw), "\n")

	var pending []string
	for i, line := range lines {
		caps := entryLineRegex.FindStringSubmatch(line)
		if caps == nil {
			if line == "" || strings.HasPrefix(line, helpPrefix) || strings.HasPrefix(line, "#") {
				pending = append(pending, line)
				continue
			}
			return nil, zerr.With(domain.ErrCacheParse, "line", i+1)
		}

		name, tag, value := caps[1], caps[2], caps[3]
		help, advanced := extractHelp(pending)

		model.Upsert(&domain.CacheEntry{
			Name:     name,
			Kind:     domain.KindFromTag(tag),
			TypeTag:  tag,
			Value:    value,
			Help:     help,
			Advanced: advanced,
			Origin:   domain.OriginPersisted,
			Prefix:   pending,
		})
		pending = nil
	}

	if pending == nil {
		pending = []string{}
	}
	model.SetTrailing(pending)

	applyProperties(model)
	return model, nil
}

// Serialize emits entries in stored insertion order. Entries that carry a
// parsed prefix replay it verbatim; entries without one get their help and
// advanced marker synthesized.
func (c *Codec) Serialize(model *domain.Model) []byte {
	var out []string
	for _, e := range model.Entries() {
		out = append(out, prefixLines(e)...)
		out = append(out, e.Name+":"+typeTag(e)+"="+e.Value)
	}

	trailing := model.Trailing()
	if trailing == nil {
		// Model was never parsed from disk; terminate with a newline.
		trailing = []string{""}
	}
	out = append(out, trailing...)

	return []byte(strings.Join(out, "\n"))
}

// extractHelp collects help text and the advanced marker from the contiguous
// run of comment lines at the end of the pending block.
func extractHelp(pending []string) (string, bool) {
	start := len(pending)
	for start > 0 && strings.HasPrefix(pending[start-1], helpPrefix) {
		start--
	}

	var help strings.Builder
	advanced := false
	for _, line := range pending[start:] {
		text := strings.TrimPrefix(line, helpPrefix)
		if strings.TrimSpace(text) == advancedMarker {
			advanced = true
			continue
		}
		help.WriteString(text)
	}
	return help.String(), advanced
}

// applyProperties resolves NAME-STRINGS and NAME-ADVANCED internal property
// entries onto their base entries. The property entries themselves stay in
// the model for round-trip output.
func applyProperties(model *domain.Model) {
	for _, e := range model.Entries() {
		if e.TypeTag != domain.TagInternal {
			continue
		}

		switch {
		case strings.HasSuffix(e.Name, stringsSuffix):
			base, ok := model.Get(strings.TrimSuffix(e.Name, stringsSuffix))
			if !ok {
				continue
			}
			base.Choices = strings.Split(e.Value, ";")
			if base.Kind == domain.KindString {
				base.Kind = domain.KindEnum
			}
		case strings.HasSuffix(e.Name, advancedSuffix):
			base, ok := model.Get(strings.TrimSuffix(e.Name, advancedSuffix))
			if !ok {
				continue
			}
			if domain.IsTrue(e.Value) {
				base.Advanced = true
			}
		}
	}
}

func prefixLines(e *domain.CacheEntry) []string {
	if len(e.Prefix) > 0 {
		return e.Prefix
	}

	var out []string
	if e.Help != "" {
		for _, line := range strings.Split(e.Help, "\n") {
			out = append(out, helpPrefix+line)
		}
	}
	if e.Advanced {
		out = append(out, helpPrefix+" "+advancedMarker)
	}
	return out
}

func typeTag(e *domain.CacheEntry) string {
	if e.TypeTag != "" {
		return e.TypeTag
	}
	return e.Kind.Tag()
}
