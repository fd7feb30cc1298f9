package hierarchy

import "errors"

var (
	// ErrNodeID indicates node ids are not dense and ordered.
	ErrNodeID = errors.New("hierarchy: node ids must be 0..n-1 in table order")

	// ErrUnknownNode indicates a reference to a node id that does not exist.
	ErrUnknownNode = errors.New("hierarchy: unknown node id")

	// ErrNodeCycle indicates the parent references do not form a forest.
	ErrNodeCycle = errors.New("hierarchy: parent references form a cycle")

	// ErrNotChild indicates the node is not a direct child of the fitting node.
	ErrNotChild = errors.New("hierarchy: node is not a child of the fitting node")

	// ErrNotInSubtree indicates the node is not the fitting node or one of its descendants.
	ErrNotInSubtree = errors.New("hierarchy: node is outside the fitting node's subtree")

	// ErrChildIndex indicates a child index outside [0, ChildCount()).
	ErrChildIndex = errors.New("hierarchy: child index out of range")
)
