package configure

import (
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/zerr"
)

// EditSession is an exclusive mutation lease on one cache entry. At most one
// session exists per orchestrator; it is released by Commit or Discard and a
// configure pass refuses to start while one is open.
type EditSession struct {
	orch  *Orchestrator
	name  string
	entry *domain.CacheEntry
}

// OpenEdit acquires the edit lease for the named entry. It fails while a
// pass runs, while another session holds the lease, or when the entry is
// internal or uninitialized.
func (o *Orchestrator) OpenEdit(name string) (*EditSession, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.running {
		return nil, domain.ErrPassRunning
	}
	if o.session != nil {
		return nil, zerr.With(domain.ErrAlreadyEditing, "entry", o.session.name)
	}

	e, ok := o.model.Get(name)
	if !ok {
		return nil, zerr.With(domain.ErrEntryNotFound, "entry", name)
	}
	if !e.Editable() {
		return nil, zerr.With(domain.ErrNotEditable, "entry", name)
	}

	s := &EditSession{orch: o, name: name, entry: e.Clone()}
	o.session = s
	return s, nil
}

// Editing returns the name of the entry whose lease is held, or "" when no
// session is open.
func (o *Orchestrator) Editing() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return ""
	}
	return o.session.name
}

// Entry returns a copy of the entry as it was when the session opened.
func (s *EditSession) Entry() *domain.CacheEntry {
	return s.entry.Clone()
}

// Commit validates the candidate value against the entry's kind, writes it
// through to the model and releases the lease. A validation failure leaves
// the model untouched and the lease held so the operator can correct the
// value.
func (s *EditSession) Commit(value string) error {
	o := s.orch
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session != s {
		return domain.ErrNotEditing
	}

	canonical, err := s.entry.Validate(value)
	if err != nil {
		return err
	}

	live, ok := o.model.Get(s.name)
	if !ok {
		o.session = nil
		return zerr.With(domain.ErrEntryNotFound, "entry", s.name)
	}

	live.Value = canonical
	live.Origin = domain.OriginStagedEdit
	o.dirty = true
	o.session = nil
	return nil
}

// Discard releases the lease without mutating the model.
func (s *EditSession) Discard() error {
	o := s.orch
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session != s {
		return domain.ErrNotEditing
	}
	o.session = nil
	return nil
}
