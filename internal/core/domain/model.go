package domain

// Model is the authoritative in-memory representation of the cache.
// Entries are unique by name and keep the insertion order of the persisted
// file, because that order is meaningful to the operator.
type Model struct {
	entries  map[string]*CacheEntry
	order    []string
	trailing []string
}

// NewModel creates an empty cache model.
func NewModel() *Model {
	return &Model{
		entries: make(map[string]*CacheEntry),
	}
}

// Len returns the number of entries in the model.
func (m *Model) Len() int {
	return len(m.order)
}

// Get returns the entry with the given name.
func (m *Model) Get(name string) (*CacheEntry, bool) {
	e, ok := m.entries[name]
	return e, ok
}

// Upsert inserts or replaces an entry. New names are appended to the order.
//
// For an existing name, help text, the advanced flag, and enum choices are
// preserved when the incoming entry omits them: the external tool sometimes
// re-emits an entry without full metadata on later passes, and that metadata
// must not be silently dropped.
func (m *Model) Upsert(entry *CacheEntry) {
	existing, ok := m.entries[entry.Name]
	if !ok {
		m.entries[entry.Name] = entry
		m.order = append(m.order, entry.Name)
		return
	}

	if entry.Help == "" {
		entry.Help = existing.Help
	}
	if !entry.Advanced {
		entry.Advanced = existing.Advanced
	}
	if len(entry.Choices) == 0 && len(existing.Choices) > 0 {
		entry.Choices = existing.Choices
		if entry.Kind == KindString {
			entry.Kind = KindEnum
		}
	}
	m.entries[entry.Name] = entry
}

// Remove deletes an entry by name. Removing an unknown name is a no-op.
func (m *Model) Remove(name string) {
	if _, ok := m.entries[name]; !ok {
		return
	}
	delete(m.entries, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Entries returns all entries in insertion order.
func (m *Model) Entries() []*CacheEntry {
	out := make([]*CacheEntry, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.entries[name])
	}
	return out
}

// VisibleEntries returns the operator-facing entries in insertion order.
// Internal entries are always filtered; advanced entries are filtered unless
// requested.
func (m *Model) VisibleEntries(showAdvanced bool) []*CacheEntry {
	var out []*CacheEntry
	for _, name := range m.order {
		e := m.entries[name]
		if e.Kind == KindInternal {
			continue
		}
		if e.Advanced && !showAdvanced {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Trailing returns the verbatim lines that followed the last entry in the
// persisted file.
func (m *Model) Trailing() []string {
	return m.trailing
}

// SetTrailing records the verbatim lines following the last entry.
func (m *Model) SetTrailing(lines []string) {
	m.trailing = lines
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	c := NewModel()
	for _, name := range m.order {
		c.entries[name] = m.entries[name].Clone()
		c.order = append(c.order, name)
	}
	c.trailing = append([]string(nil), m.trailing...)
	return c
}

// Snapshot takes an immutable copy of the entry set, tagged with a pass number.
func (m *Model) Snapshot(pass int) Snapshot {
	entries := make(map[string]CacheEntry, len(m.entries))
	for name, e := range m.entries {
		c := e.Clone()
		entries[name] = *c
	}
	return Snapshot{
		Pass:    pass,
		entries: entries,
	}
}

// Snapshot is an immutable copy of a model's entry set at a given pass.
type Snapshot struct {
	Pass    int
	entries map[string]CacheEntry
}

// Get returns the snapshotted entry with the given name.
func (s Snapshot) Get(name string) (CacheEntry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Names returns the names of all snapshotted entries, in no particular order.
func (s Snapshot) Names() []string {
	out := make([]string, 0, len(s.entries))
	for name := range s.entries {
		out = append(out, name)
	}
	return out
}

// Len returns the number of snapshotted entries.
func (s Snapshot) Len() int {
	return len(s.entries)
}
