package search

// entry is one global-queue record: priority f = g + h at push time.
type entry struct {
	f    float64
	node int
}

// entryPQ is a binary min-heap of entries ordered by (f, node) ascending.
//
// Entries are never updated in place. A cheaper route to a node pushes a
// new entry; the superseded one stays in the heap and is discarded on pop
// once the node is settled (lazy deletion).
type entryPQ []entry

// Len returns the number of entries, stale ones included.
func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	// equal priority: lower node ID first, for deterministic output
	return pq[i].node < pq[j].node
}

func (pq *entryPQ) push(e entry) {
	*pq = append(*pq, e)
	pq.up(len(*pq) - 1)
}

// pop removes and returns the minimum entry. The heap must be non-empty.
func (pq *entryPQ) pop() entry {
	old := *pq
	n := len(old) - 1
	top := old[0]
	old[0] = old[n]
	*pq = old[:n]
	if n > 0 {
		pq.down(0)
	}

	return top
}

func (pq entryPQ) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			break
		}
		pq[i], pq[parent] = pq[parent], pq[i]
		i = parent
	}
}

func (pq entryPQ) down(i int) {
	n := len(pq)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && pq.less(left, smallest) {
			smallest = left
		}
		if right < n && pq.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		pq[i], pq[smallest] = pq[smallest], pq[i]
		i = smallest
	}
}
