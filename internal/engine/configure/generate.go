package configure

import (
	"context"
	"time"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/zerr"
)

// Generate runs the one-shot build-file generation. It is rejected unless
// the configuration has converged: generating against an unconverged or
// failed cache produces build files the next pass would invalidate. Only the
// exit status is consumed; a failure leaves the converged state intact so
// the operator can retry.
func (o *Orchestrator) Generate(ctx context.Context) error {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return domain.ErrPassRunning
	}
	if o.session != nil {
		o.mu.Unlock()
		return zerr.With(domain.ErrEditPending, "entry", o.session.name)
	}
	if o.state != domain.StateConverged {
		o.mu.Unlock()
		return zerr.With(domain.ErrNotConverged, "state", string(o.state))
	}

	pass := o.pass
	o.running = true

	genCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.mu.Unlock()
	defer cancel()

	o.renderer.OnPassStart(pass, time.Now())

	out := &rendererWriter{renderer: o.renderer}
	err := o.runner.Generate(genCtx, out, out)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancel = nil
	o.running = false

	o.renderer.OnPassComplete(pass, o.state, domain.DiffResult{}, err)
	return err
}
