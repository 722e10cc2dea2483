// Package configure owns the configure-pass convergence loop. One
// orchestrator owns the in-memory cache model and all writes to the persisted
// cache file; passes, edits and generation are serialized through it.
package configure

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator drives the external configure process against one build
// directory. A pass persists staged edits, spawns the process, re-reads the
// cache it may have rewritten and classifies the result by diffing snapshots.
type Orchestrator struct {
	codec    ports.Codec
	store    ports.CacheStore
	runner   ports.Runner
	renderer ports.Renderer
	logger   ports.Logger

	mu       sync.Mutex
	model    *domain.Model
	state    domain.ConfigureState
	pass     int
	dirty    bool
	running  bool
	lastDiff domain.DiffResult
	session  *EditSession
	cancel   context.CancelFunc
}

// NewOrchestrator creates an Orchestrator with an empty model in the Idle
// state. Call Load to hydrate the model from disk.
func NewOrchestrator(
	codec ports.Codec,
	store ports.CacheStore,
	runner ports.Runner,
	renderer ports.Renderer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		codec:    codec,
		store:    store,
		runner:   runner,
		renderer: renderer,
		logger:   logger,
		model:    domain.NewModel(),
		state:    domain.StateIdle,
	}
}

// Load hydrates the model from the persisted cache file. A missing cache is
// not an error: the first configure pass creates it.
func (o *Orchestrator) Load() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	raw, err := o.store.Read()
	if err != nil {
		if errors.Is(err, domain.ErrCacheNotFound) {
			o.logger.Warn("no cache file yet, run a configure pass to create it")
			return nil
		}
		return zerr.Wrap(err, "failed to load cache")
	}

	model, err := o.codec.Parse(raw)
	if err != nil {
		return zerr.Wrap(err, "failed to load cache")
	}

	o.model = model
	o.renderer.OnCacheReload()
	return nil
}

// RunPass executes one configure pass. It refuses to start while another
// pass or a generate invocation is in flight, or while an edit session holds
// its lease. The returned error reflects the pass outcome; on failure the
// pre-pass model is retained.
func (o *Orchestrator) RunPass(ctx context.Context) error {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return domain.ErrPassRunning
	}
	if o.session != nil {
		o.mu.Unlock()
		return zerr.With(domain.ErrEditPending, "entry", o.session.name)
	}

	o.pass++
	pass := o.pass
	o.running = true
	o.state = domain.StateRunning

	// Persist staged edits first. The external process reads the cache file,
	// not memory, and this is the only point the orchestrator writes it.
	if o.dirty {
		if err := o.store.Write(o.codec.Serialize(o.model)); err != nil {
			o.running = false
			o.state = domain.StateFailed
			o.mu.Unlock()
			return err
		}
		o.dirty = false
	}

	before := o.model.Snapshot(pass)
	digestBefore, digestErr := o.store.Digest()

	passCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.mu.Unlock()
	defer cancel()

	o.renderer.OnPassStart(pass, time.Now())

	out := &rendererWriter{renderer: o.renderer}
	runErr := o.runner.Configure(passCtx, out, out)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancel = nil
	o.running = false

	if runErr != nil {
		return o.failPass(pass, digestBefore, digestErr, runErr)
	}

	if digestErr == nil {
		if digestAfter, err := o.store.Digest(); err == nil && digestAfter == digestBefore {
			// The process left the cache untouched, so the pass cannot have
			// surfaced anything new.
			o.state = domain.StateConverged
			o.lastDiff = domain.DiffResult{}
			o.renderer.OnPassComplete(pass, o.state, o.lastDiff, nil)
			return nil
		}
	}

	raw, err := o.store.Read()
	if err != nil {
		return o.failPass(pass, digestBefore, digestErr, zerr.Wrap(err, "failed to re-read cache after pass"))
	}
	next, err := o.codec.Parse(raw)
	if err != nil {
		return o.failPass(pass, digestBefore, digestErr, zerr.Wrap(err, "process produced an unreadable cache"))
	}

	diff := domain.Diff(before, next.Snapshot(pass))
	o.tagOrigins(next, diff)
	o.model = next
	o.lastDiff = diff

	if len(diff.Added) > 0 {
		o.state = domain.StateNeedsAnotherPass
	} else {
		o.state = domain.StateConverged
	}

	o.renderer.OnCacheReload()
	o.renderer.OnPassComplete(pass, o.state, diff, nil)
	return nil
}

// failPass records a failed pass outcome. The in-memory model is left
// unchanged so a corrupt or partial cache never replaces the last-good state.
func (o *Orchestrator) failPass(pass int, digestBefore uint64, digestErr error, cause error) error {
	o.state = domain.StateFailed
	o.lastDiff = domain.DiffResult{}

	if digestErr == nil {
		if digestAfter, err := o.store.Digest(); err == nil && digestAfter != digestBefore {
			o.logger.Warn("the process rewrote the cache file before failing, keeping the last-good model")
		}
	}

	o.renderer.OnPassComplete(pass, o.state, o.lastDiff, cause)
	return cause
}

// tagOrigins marks entries that first appeared in this pass and carries the
// needs-attention tag forward for entries the operator has not acknowledged.
func (o *Orchestrator) tagOrigins(next *domain.Model, diff domain.DiffResult) {
	for _, name := range diff.Added {
		if e, ok := next.Get(name); ok {
			e.Origin = domain.OriginNewThisPass
		}
	}
	for _, e := range o.model.Entries() {
		if e.Origin != domain.OriginNewThisPass || diff.IsAdded(e.Name) {
			continue
		}
		if kept, ok := next.Get(e.Name); ok {
			kept.Origin = domain.OriginNewThisPass
		}
	}
}

// Cancel terminates an in-flight pass. It is a no-op when nothing runs.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
	}
}

// Acknowledge clears the needs-attention tag of one entry after the operator
// has seen it.
func (o *Orchestrator) Acknowledge(name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	e, ok := o.model.Get(name)
	if !ok {
		return zerr.With(domain.ErrEntryNotFound, "entry", name)
	}
	if e.Origin == domain.OriginNewThisPass {
		e.Origin = domain.OriginPersisted
	}
	return nil
}

// AcknowledgeAll clears the needs-attention tag of every entry.
func (o *Orchestrator) AcknowledgeAll() {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, e := range o.model.Entries() {
		if e.Origin == domain.OriginNewThisPass {
			e.Origin = domain.OriginPersisted
		}
	}
}

// Reload replaces the model from the cache file on disk. It is used when the
// file changed out of band, e.g. the external tool ran in another shell. The
// reload is refused while a pass runs or an edit session is open, and staged
// edits that have not been persisted are never silently overwritten.
func (o *Orchestrator) Reload() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.running {
		return domain.ErrPassRunning
	}
	if o.session != nil {
		return zerr.With(domain.ErrEditPending, "entry", o.session.name)
	}
	if o.dirty {
		o.logger.Warn("cache file changed on disk but staged edits exist, keeping the in-memory model")
		return nil
	}

	raw, err := o.store.Read()
	if err != nil {
		return zerr.Wrap(err, "failed to reload cache")
	}
	model, err := o.codec.Parse(raw)
	if err != nil {
		return zerr.Wrap(err, "failed to reload cache")
	}

	o.model = model
	o.renderer.OnCacheReload()
	return nil
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() domain.ConfigureState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// PassCount returns the number of passes started so far.
func (o *Orchestrator) PassCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pass
}

// Dirty reports whether staged edits have not yet been persisted by a pass.
func (o *Orchestrator) Dirty() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dirty
}

// LastDiff returns the diff produced by the most recent successful pass.
func (o *Orchestrator) LastDiff() domain.DiffResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastDiff
}

// Entry returns a copy of the named entry.
func (o *Orchestrator) Entry(name string) (*domain.CacheEntry, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	e, ok := o.model.Get(name)
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// VisibleEntries returns copies of the operator-facing entries in insertion
// order. Internal entries are always filtered, advanced ones on request.
func (o *Orchestrator) VisibleEntries(showAdvanced bool) []*domain.CacheEntry {
	o.mu.Lock()
	defer o.mu.Unlock()

	visible := o.model.VisibleEntries(showAdvanced)
	out := make([]*domain.CacheEntry, len(visible))
	for i, e := range visible {
		out[i] = e.Clone()
	}
	return out
}

// EntryCount returns the total number of entries including internal ones.
func (o *Orchestrator) EntryCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.model.Len()
}

// CachePath returns the absolute path of the cache file.
func (o *Orchestrator) CachePath() string {
	return o.store.Path()
}

// rendererWriter forwards process output to the renderer. The buffer is
// reused by the copier, so each chunk is copied before handing it off.
type rendererWriter struct {
	renderer ports.Renderer
}

func (w *rendererWriter) Write(p []byte) (int, error) {
	w.renderer.OnProcessOutput(append([]byte(nil), p...))
	return len(p), nil
}
