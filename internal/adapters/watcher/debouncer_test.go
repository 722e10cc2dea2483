package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/watcher"
	"go.trai.ch/cachet/internal/core/ports"
)

type opRecorder struct {
	mu  sync.Mutex
	ops []ports.WatchOp
}

func (r *opRecorder) record(op ports.WatchOp) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *opRecorder) recorded() []ports.WatchOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.WatchOp(nil), r.ops...)
}

func TestDebouncer_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &opRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(ports.OpWrite)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, []ports.WatchOp{ports.OpWrite}, rec.recorded())
	})
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &opRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		// A configure run touches the file repeatedly; one callback fires
		// after the burst goes quiet, carrying the last operation.
		for range 5 {
			d.Add(ports.OpWrite)
			time.Sleep(20 * time.Millisecond)
		}
		d.Add(ports.OpRemove)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, []ports.WatchOp{ports.OpRemove}, rec.recorded())
	})
}

func TestDebouncer_WindowRestartsPerEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &opRecorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add(ports.OpWrite)
		time.Sleep(60 * time.Millisecond)
		assert.Empty(t, rec.recorded())

		d.Add(ports.OpWrite)
		time.Sleep(60 * time.Millisecond)
		assert.Empty(t, rec.recorded())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, rec.recorded(), 1)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &opRecorder{}
		d := watcher.NewDebouncer(time.Hour, rec.record)

		d.Add(ports.OpWrite)
		d.Flush()

		require.Equal(t, []ports.WatchOp{ports.OpWrite}, rec.recorded())

		// Nothing pending: flushing again is a no-op.
		d.Flush()
		require.Len(t, rec.recorded(), 1)
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	rec := &opRecorder{}
	d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

	d.Flush()
	assert.Empty(t, rec.recorded())
}
