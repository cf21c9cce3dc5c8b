package graph

// queueEntry is an immutable snapshot of a tentative distance. A better
// distance for the same location is pushed as a new entry and the old one
// is skipped when popped, since by then the location is visited.
type queueEntry struct {
	dist float64
	seq  uint64
	name string
}

// distQueue is a min-heap of queueEntry for use with container/heap.
// Entries with equal dist pop in push order.
type distQueue []queueEntry

func (q distQueue) Len() int { return len(q) }

func (q distQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}

	return q[i].seq < q[j].seq
}

func (q distQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *distQueue) Push(x interface{}) { *q = append(*q, x.(queueEntry)) }

func (q *distQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
