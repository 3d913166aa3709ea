package search

import "container/heap"

// item is one entry in the priority queue: a node, its priority key
// (tentative cost + estimator value), and the insertion sequence used to
// break priority ties deterministically.
type item struct {
	node     int
	priority float64
	seq      int
}

// priorityQueue is a min-heap of *item ordered by priority ascending,
// ties broken by seq ascending (first-inserted wins).
type priorityQueue []*item

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(*item)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

var _ heap.Interface = (*priorityQueue)(nil)
