package spatial

import "fmt"

// Validate checks every invariant spec §3/§4.4 requires of a spatial index
// before it may be served: a strict tree (no shared children), in-bounds
// child/root indices, every leaf item referencing an in-range node id,
// non-overlapping in-bounds leaf spans, and every internal node having at
// least one valid child.
func Validate(idx *RawIndex, nodeCount uint32) error {
	n := len(idx.Nodes)
	if n == 0 {
		return ErrEmptyTree
	}
	if int(idx.RootIndex) >= n {
		return fmt.Errorf("%w: root=%d nodes=%d", ErrRootOutOfBounds, idx.RootIndex, n)
	}

	claimedBy := make(map[int32]int, n) // child index -> claiming parent index

	for i, node := range idx.Nodes {
		if node.IsLeaf {
			start, count := int(node.ItemStart), int(node.ItemCount)
			if start < 0 || count < 0 || start+count > len(idx.LeafItems) {
				return fmt.Errorf("%w: node=%d start=%d count=%d leaf_items=%d", ErrLeafSpanInvalid, i, start, count, len(idx.LeafItems))
			}
			for _, itemNode := range idx.LeafItems[start : start+count] {
				if itemNode >= nodeCount {
					return fmt.Errorf("%w: node=%d item=%d node_count=%d", ErrLeafItemOutOfBounds, i, itemNode, nodeCount)
				}
			}
			continue
		}
		if node.SplitAxis > 1 {
			return fmt.Errorf("%w: node=%d axis=%d", ErrBadSplitAxis, i, node.SplitAxis)
		}
		if node.Left == noChild && node.Right == noChild {
			return fmt.Errorf("%w: node=%d", ErrNoValidChild, i)
		}
		for _, child := range [2]int32{node.Left, node.Right} {
			if child == noChild {
				continue
			}
			if child < 0 || int(child) >= n {
				return fmt.Errorf("%w: node=%d child=%d nodes=%d", ErrChildOutOfBounds, i, child, n)
			}
			if prevParent, claimed := claimedBy[child]; claimed {
				return fmt.Errorf("%w: child=%d claimed by nodes %d and %d", ErrSharedChild, child, prevParent, i)
			}
			claimedBy[child] = i
		}
	}

	// Non-overlapping leaf spans: sort-free O(L) check via a coverage bitmap
	// over leaf_items, since spans are validated per-leaf above; overlap
	// would double-claim an index in that bitmap.
	covered := make([]bool, len(idx.LeafItems))
	for i, node := range idx.Nodes {
		if !node.IsLeaf {
			continue
		}
		start, count := int(node.ItemStart), int(node.ItemCount)
		for j := start; j < start+count; j++ {
			if covered[j] {
				return fmt.Errorf("%w: leaf item index %d covered by more than one leaf (node %d)", ErrLeafSpanInvalid, j, i)
			}
			covered[j] = true
		}
	}

	return nil
}
