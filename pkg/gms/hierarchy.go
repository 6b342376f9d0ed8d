package gms

import "fmt"

// LinkHierarchy assigns parent links over a depth-ordered entity table:
// each entity's parent is the nearest earlier entity exactly one level
// shallower. Depth 0 entities keep the sentinel and become roots. A depth
// that jumps more than one level past the current ancestor chain has no
// possible parent and fails the load.
func LinkHierarchy(entities []GeomEntity) error {
	// chain[d] holds the index of the most recent entity at depth d.
	chain := make([]int, 0, 8)
	for i := range entities {
		depth := int(entities[i].DepthLevel)
		if depth > len(chain) {
			return fmt.Errorf("gms: entity %d (%s): depth %d jumps past level %d",
				i, entities[i].Name, depth, len(chain))
		}
		chain = chain[:depth]
		if depth > 0 {
			entities[i].ParentIndex = uint32(chain[depth-1])
		}
		chain = append(chain, i)
	}
	return nil
}
