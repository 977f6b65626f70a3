// Package resolver answers action-based discovery queries against the
// component directory, mirroring the platform's intent-resolution surface.
package resolver

import (
	"github.com/MocaRafee/android-packages-services-Telecomm/directory"
	"github.com/MocaRafee/android-packages-services-Telecomm/types"
)

// Resolver produces discovery results for an action, one per component the
// directory has indexed for it, in registration order.
type Resolver struct {
	dir *directory.Directory
}

// New creates a resolver reading from dir.
func New(dir *directory.Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve returns a fresh result slice for action. flags is accepted for
// signature compatibility with the real platform and does not filter;
// the simulator resolves on action alone.
//
// An empty result is valid and returned as an empty, non-nil slice.
func (r *Resolver) Resolve(action string, flags int) []types.ResolveEntry {
	_ = flags

	components := r.dir.ComponentsFor(action)
	entries := make([]types.ResolveEntry, 0, len(components))
	for _, name := range components {
		desc, _ := r.dir.Descriptor(name)
		entries = append(entries, types.ResolveEntry{
			Component:  name,
			Descriptor: desc,
		})
	}
	return entries
}
