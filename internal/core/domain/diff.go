package domain

import "sort"

// DiffResult holds the structural difference between two snapshots as three
// disjoint, sorted sets of entry names.
type DiffResult struct {
	Added   []string
	Removed []string
	Changed []string
}

// Empty reports whether the diff contains no entries at all.
func (d DiffResult) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// IsAdded reports whether the named entry is in the added set.
func (d DiffResult) IsAdded(name string) bool {
	return contains(d.Added, name)
}

// IsChanged reports whether the named entry is in the changed set.
func (d DiffResult) IsChanged(name string) bool {
	return contains(d.Changed, name)
}

// Diff computes the structural difference between two snapshots.
//
// Internal entries are excluded from all three sets: they are implementation
// details of the external tool, not operator-relevant state. An entry whose
// kind changed is reported as changed even when the value text is identical,
// because type changes are semantically significant.
func Diff(oldSnap, newSnap Snapshot) DiffResult {
	var d DiffResult

	for _, name := range newSnap.Names() {
		newEntry, _ := newSnap.Get(name)
		oldEntry, inOld := oldSnap.Get(name)

		switch {
		case newEntry.Kind == KindInternal:
			// Skip, unless the entry left the internal set this pass.
			if inOld && oldEntry.Kind != KindInternal {
				d.Removed = append(d.Removed, name)
			}
		case !inOld || oldEntry.Kind == KindInternal:
			d.Added = append(d.Added, name)
		case oldEntry.Kind != newEntry.Kind || oldEntry.Value != newEntry.Value:
			d.Changed = append(d.Changed, name)
		}
	}

	for _, name := range oldSnap.Names() {
		oldEntry, _ := oldSnap.Get(name)
		if oldEntry.Kind == KindInternal {
			continue
		}
		if _, inNew := newSnap.Get(name); !inNew {
			d.Removed = append(d.Removed, name)
		}
	}

	sort.Strings(d.Added)
	sort.Strings(d.Removed)
	sort.Strings(d.Changed)
	return d
}

func contains(names []string, name string) bool {
	i := sort.SearchStrings(names, name)
	return i < len(names) && names[i] == name
}
