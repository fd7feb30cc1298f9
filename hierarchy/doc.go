// Package hierarchy indexes the node forest around one fitting ("parent") node.
//
// What:
//
//   - Index lists the direct children of the fitting node in node-id order and
//     gives each a stable child index 0..ChildCount()-1.
//   - Locate maps any node of the fitting node's subtree to the child index
//     whose subtree contains it, or to ChildCount() for the fitting node itself.
//
// Why:
//
//   - Random effects are stored per child of the fitting node; data rows are
//     attached to arbitrary descendants and must be routed to the right child.
//
// Complexity:
//
//   - NewIndex: O(N) time, O(N) memory (N = nodes).
//   - ChildCount, ChildIndex, ChildNodeID, Locate: O(1).
//
// Errors:
//
//   - ErrNodeID: node ids are not 0..N-1 in table order.
//   - ErrUnknownNode: a parent reference or query names a node that does not exist.
//   - ErrNodeCycle: parent references form a cycle.
//   - ErrNotChild: ChildIndex called for a node that is not a direct child.
//   - ErrNotInSubtree: Locate called for a node outside the fitting node's subtree.
//   - ErrChildIndex: ChildNodeID called with an index outside [0, ChildCount()).
package hierarchy
