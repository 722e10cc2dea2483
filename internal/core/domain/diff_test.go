package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/core/domain"
)

func snapshotOf(t *testing.T, pass int, entries ...*domain.CacheEntry) domain.Snapshot {
	t.Helper()
	m := domain.NewModel()
	for _, e := range entries {
		m.Upsert(e)
	}
	return m.Snapshot(pass)
}

func TestDiff_IdenticalSnapshotsAreEmpty(t *testing.T) {
	s := snapshotOf(t, 1,
		entry("FOO", domain.KindBool, "ON"),
		entry("BAR", domain.KindString, "baz"),
	)

	d := domain.Diff(s, s)
	assert.True(t, d.Empty())
}

func TestDiff_AddedRemovedChanged(t *testing.T) {
	oldSnap := snapshotOf(t, 1,
		entry("KEPT", domain.KindString, "same"),
		entry("GONE", domain.KindString, "x"),
		entry("FLIPPED", domain.KindBool, "OFF"),
	)
	newSnap := snapshotOf(t, 2,
		entry("KEPT", domain.KindString, "same"),
		entry("FLIPPED", domain.KindBool, "ON"),
		entry("FRESH", domain.KindPath, "/tmp"),
	)

	d := domain.Diff(oldSnap, newSnap)
	assert.Equal(t, []string{"FRESH"}, d.Added)
	assert.Equal(t, []string{"GONE"}, d.Removed)
	assert.Equal(t, []string{"FLIPPED"}, d.Changed)
}

func TestDiff_KindChangeWithEqualValueIsChanged(t *testing.T) {
	oldSnap := snapshotOf(t, 1, entry("X", domain.KindString, "/usr/lib"))
	newSnap := snapshotOf(t, 2, entry("X", domain.KindPath, "/usr/lib"))

	d := domain.Diff(oldSnap, newSnap)
	assert.Equal(t, []string{"X"}, d.Changed)
	assert.Empty(t, d.Added)
	assert.Empty(t, d.Removed)
}

func TestDiff_InternalEntriesExcluded(t *testing.T) {
	oldSnap := snapshotOf(t, 1,
		entry("VISIBLE", domain.KindString, "a"),
		entry("GUTS", domain.KindInternal, "1"),
	)
	newSnap := snapshotOf(t, 2,
		entry("VISIBLE", domain.KindString, "a"),
		entry("GUTS", domain.KindInternal, "2"),
		entry("MORE_GUTS", domain.KindInternal, "3"),
	)

	d := domain.Diff(oldSnap, newSnap)
	assert.True(t, d.Empty(), "internal churn must be invisible to the operator")
}

func TestDiff_PartitionInvariant(t *testing.T) {
	oldSnap := snapshotOf(t, 1,
		entry("A", domain.KindString, "1"),
		entry("B", domain.KindString, "2"),
		entry("C", domain.KindBool, "ON"),
		entry("I", domain.KindInternal, "x"),
	)
	newSnap := snapshotOf(t, 2,
		entry("B", domain.KindString, "2"),
		entry("C", domain.KindBool, "OFF"),
		entry("D", domain.KindString, "4"),
		entry("J", domain.KindInternal, "y"),
	)

	d := domain.Diff(oldSnap, newSnap)

	seen := map[string]int{}
	for _, n := range d.Added {
		seen[n]++
	}
	for _, n := range d.Removed {
		seen[n]++
	}
	for _, n := range d.Changed {
		seen[n]++
	}

	union := map[string]bool{}
	for _, n := range oldSnap.Names() {
		e, _ := oldSnap.Get(n)
		if e.Kind != domain.KindInternal {
			union[n] = true
		}
	}
	for _, n := range newSnap.Names() {
		e, _ := newSnap.Get(n)
		if e.Kind != domain.KindInternal {
			union[n] = true
		}
	}

	for name, count := range seen {
		require.Equal(t, 1, count, "name %q appears in more than one set", name)
		require.True(t, union[name], "name %q outside snapshot union", name)
	}
}

func TestDiffResult_Lookups(t *testing.T) {
	d := domain.DiffResult{
		Added:   []string{"A", "B"},
		Changed: []string{"C"},
	}
	assert.True(t, d.IsAdded("A"))
	assert.False(t, d.IsAdded("C"))
	assert.True(t, d.IsChanged("C"))
	assert.False(t, d.IsChanged("Z"))
	assert.False(t, d.Empty())
}
