package hierarchy

import "fmt"

// NewIndex validates nodes and indexes the children of parentNode.
// Row k must carry ID == k; every present Parent must name an existing node.
// Returns ErrNodeID, ErrUnknownNode or ErrNodeCycle wrapped with context.
// Complexity: O(N) time and memory.
func NewIndex(nodes []Node, parentNode int) (*Index, error) {
	n := len(nodes)
	for k, nd := range nodes {
		if nd.ID != k {
			return nil, fmt.Errorf("row %d has node id %d: %w", k, nd.ID, ErrNodeID)
		}
		if p, ok := nd.Parent.Get(); ok && (p < 0 || p >= n) {
			return nil, fmt.Errorf("node %d has parent %d: %w", k, p, ErrUnknownNode)
		}
	}
	if parentNode < 0 || parentNode >= n {
		return nil, fmt.Errorf("fitting node %d: %w", parentNode, ErrUnknownNode)
	}
	if err := checkForest(nodes); err != nil {
		return nil, err
	}

	// children in node-id order
	children := make([]int, 0)
	for _, nd := range nodes {
		if p, ok := nd.Parent.Get(); ok && p == parentNode {
			children = append(children, nd.ID)
		}
	}

	locate := make([]int, n)
	for i := range locate {
		locate[i] = locUnresolved
	}
	locate[parentNode] = len(children)
	for c, id := range children {
		locate[id] = c
	}
	// Resolve every node by walking up to the first resolved ancestor and
	// memoizing the answer along the path; each node is walked once.
	path := make([]int, 0, 8)
	for id := range nodes {
		path = path[:0]
		cur, res := id, locUnresolved
		for locate[cur] == locUnresolved {
			path = append(path, cur)
			p, ok := nodes[cur].Parent.Get()
			if !ok {
				res = locOutside
				break
			}
			cur = p
		}
		if res == locUnresolved {
			res = locate[cur]
		}
		for _, v := range path {
			locate[v] = res
		}
	}

	return &Index{parent: parentNode, children: children, locate: locate}, nil
}

// checkForest reports ErrNodeCycle when following parents from some node
// revisits a node on the same walk.
func checkForest(nodes []Node) error {
	const (
		unseen = iota
		active
		done
	)
	state := make([]uint8, len(nodes))
	path := make([]int, 0, 8)
	for id := range nodes {
		path = path[:0]
		cur := id
		for state[cur] != done {
			if state[cur] == active {
				return fmt.Errorf("node %d: %w", cur, ErrNodeCycle)
			}
			state[cur] = active
			path = append(path, cur)
			p, ok := nodes[cur].Parent.Get()
			if !ok {
				break
			}
			cur = p
		}
		for _, v := range path {
			state[v] = done
		}
	}

	return nil
}

// ParentNodeID returns the fitting node id.
func (ix *Index) ParentNodeID() int {
	return ix.parent
}

// ChildCount returns the number of direct children of the fitting node.
// Complexity: O(1).
func (ix *Index) ChildCount() int {
	return len(ix.children)
}

// ChildIndex returns the stable index of a direct child of the fitting node.
// Complexity: O(1).
func (ix *Index) ChildIndex(nodeID int) (int, error) {
	if nodeID < 0 || nodeID >= len(ix.locate) {
		return 0, fmt.Errorf("node %d: %w", nodeID, ErrUnknownNode)
	}
	c := ix.locate[nodeID]
	if c < 0 || c == len(ix.children) || ix.children[c] != nodeID {
		return 0, fmt.Errorf("node %d: %w", nodeID, ErrNotChild)
	}

	return c, nil
}

// ChildNodeID returns the node id of the child at childIndex.
// Complexity: O(1).
func (ix *Index) ChildNodeID(childIndex int) (int, error) {
	if childIndex < 0 || childIndex >= len(ix.children) {
		return 0, fmt.Errorf("child index %d of %d: %w", childIndex, len(ix.children), ErrChildIndex)
	}

	return ix.children[childIndex], nil
}

// Locate returns the child index whose subtree contains nodeID, or
// ChildCount() when nodeID is the fitting node.
// Complexity: O(1).
func (ix *Index) Locate(nodeID int) (int, error) {
	if nodeID < 0 || nodeID >= len(ix.locate) {
		return 0, fmt.Errorf("node %d: %w", nodeID, ErrUnknownNode)
	}
	c := ix.locate[nodeID]
	if c == locOutside {
		return 0, fmt.Errorf("node %d: %w", nodeID, ErrNotInSubtree)
	}

	return c, nil
}
