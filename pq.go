package gridastar

import "container/heap"

// searchNode is the per-cell working state of a query. Nodes live in one
// flat arena indexed by y*width+x; parent and heapIndex are indices too.
type searchNode struct {
	f, g, h   float64
	state     NodeState
	parent    int32
	heapIndex int32
}

const noNode int32 = -1

func (n *searchNode) reset() {
	*n = searchNode{parent: noNode, heapIndex: noNode}
}

// openList is a binary heap of arena indices ordered by F, then H, then
// arena index so that ordering is total and queries are repeatable.
type openList struct {
	nodes []searchNode
	items []int32
}

func newOpenList(nodes []searchNode) *openList {
	return &openList{nodes: nodes, items: make([]int32, 0, 64)}
}

func (queue *openList) Len() int { return len(queue.items) }

func (queue *openList) Less(i, j int) bool {
	a, b := &queue.nodes[queue.items[i]], &queue.nodes[queue.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return queue.items[i] < queue.items[j]
}

func (queue *openList) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.nodes[queue.items[i]].heapIndex = int32(i)
	queue.nodes[queue.items[j]].heapIndex = int32(j)
}

func (queue *openList) Push(x any) {
	id := x.(int32)
	queue.nodes[id].heapIndex = int32(len(queue.items))
	queue.items = append(queue.items, id)
}

func (queue *openList) Pop() any {
	n := len(queue.items)
	id := queue.items[n-1]
	queue.items = queue.items[:n-1]
	queue.nodes[id].heapIndex = noNode
	return id
}

// Enqueue adds a node whose scores are already set.
func (queue *openList) Enqueue(id int32) { heap.Push(queue, id) }

// Dequeue removes and returns the best node. The queue must not be empty.
func (queue *openList) Dequeue() int32 { return heap.Pop(queue).(int32) }

// Fix restores ordering after the scores of an enqueued node changed.
func (queue *openList) Fix(id int32) {
	if pos := queue.nodes[id].heapIndex; pos != noNode {
		heap.Fix(queue, int(pos))
	}
}

// Sort re-heapifies the whole queue. Fix is preferred when only one key moved.
func (queue *openList) Sort() { heap.Init(queue) }

func (queue *openList) IsEmpty() bool { return len(queue.items) == 0 }

func (queue *openList) Clear() {
	for _, id := range queue.items {
		queue.nodes[id].heapIndex = noNode
	}
	queue.items = queue.items[:0]
}
