package hierarchy

import "github.com/katalvlaran/packvar/ident"

// Node is one row of the node table. Parent is None for a root.
type Node struct {
	ID     int
	Name   string
	Parent ident.Optional
}

// locate table sentinels
const (
	locOutside    = -1
	locUnresolved = -2
)

// Index is an immutable view of the forest around the fitting node.
// It is safe for concurrent use.
type Index struct {
	parent   int   // fitting node id
	children []int // child index → node id, ascending node id
	locate   []int // node id → child index, ChildCount() for parent, locOutside otherwise
}
