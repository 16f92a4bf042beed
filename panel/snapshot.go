package panel

import (
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
)

// Snapshot maps a parameter path to its current display value.
type Snapshot map[string]Value

// Clone returns an independent copy of s.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	if len(s) == 0 {
		return out
	}
	// copier only fails on mismatched or nil destinations.
	if err := copier.CopyWithOption(&out, s, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("panel: clone snapshot: %v", err))
	}
	return out
}

// Paths returns the snapshot's paths in sorted order.
func (s Snapshot) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
