package app

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
)

// rendererHub is a late-bound ports.Renderer. The orchestrator is constructed
// before the renderer that observes it, so it receives the hub and the real
// renderer is bound once it exists. Events before Bind are dropped.
type rendererHub struct {
	mu sync.RWMutex
	r  ports.Renderer
}

var _ ports.Renderer = (*rendererHub)(nil)

// Bind sets the renderer that receives all subsequent events.
func (h *rendererHub) Bind(r ports.Renderer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.r = r
}

func (h *rendererHub) bound() ports.Renderer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.r
}

func (h *rendererHub) Start(ctx context.Context) error {
	if r := h.bound(); r != nil {
		return r.Start(ctx)
	}
	return nil
}

func (h *rendererHub) Stop() error {
	if r := h.bound(); r != nil {
		return r.Stop()
	}
	return nil
}

func (h *rendererHub) Wait() error {
	if r := h.bound(); r != nil {
		return r.Wait()
	}
	return nil
}

func (h *rendererHub) OnPassStart(pass int, startTime time.Time) {
	if r := h.bound(); r != nil {
		r.OnPassStart(pass, startTime)
	}
}

func (h *rendererHub) OnProcessOutput(data []byte) {
	if r := h.bound(); r != nil {
		r.OnProcessOutput(data)
	}
}

func (h *rendererHub) OnPassComplete(pass int, state domain.ConfigureState, diff domain.DiffResult, err error) {
	if r := h.bound(); r != nil {
		r.OnPassComplete(pass, state, diff, err)
	}
}

func (h *rendererHub) OnCacheReload() {
	if r := h.bound(); r != nil {
		r.OnCacheReload()
	}
}
