package search

import (
	"fmt"
)

// Reconstruct walks predecessor links from goal back to start and returns
// the path start→goal truncated to maxLen nodes, plus its untruncated length.
//
// cameFrom[v] is the predecessor of v, or a negative value for "none".
// The walk is bounded by len(cameFrom) steps: a cycle, an out-of-range link,
// or a chain that stops before reaching start yields ErrReconstructionOverflow.
// maxLen < 0 disables truncation. start == goal yields the one-node path.
//
// Complexity: O(L) time and space, L = path length.
func Reconstruct(cameFrom []int, start, goal, maxLen int) ([]int, int, error) {
	n := len(cameFrom)
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return nil, 0, fmt.Errorf("%w: start=%d goal=%d outside %d nodes", ErrReconstructionOverflow, start, goal, n)
	}

	// 1) Walk backwards, counting at most n nodes.
	rev := make([]int, 0, 16)
	cur := goal
	for {
		rev = append(rev, cur)
		if cur == start {
			break
		}
		if len(rev) >= n {
			return nil, 0, fmt.Errorf("%w: walk from %d exceeded %d nodes", ErrReconstructionOverflow, goal, n)
		}
		prev := cameFrom[cur]
		if prev < 0 || prev >= n {
			return nil, 0, fmt.Errorf("%w: chain from %d stops at %d before start %d", ErrReconstructionOverflow, goal, cur, start)
		}
		cur = prev
	}

	// 2) Reverse into start→goal order, keeping only the first maxLen nodes.
	length := len(rev)
	keep := length
	if maxLen >= 0 && maxLen < keep {
		keep = maxLen
	}
	path := make([]int, keep)
	for i := 0; i < keep; i++ {
		path[i] = rev[length-1-i]
	}

	return path, length, nil
}
