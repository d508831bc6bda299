package gridplan

import "container/heap"

// openQueue is the heap.Interface backing an openList. Each cell keeps its
// own heap position in openIndex so removal and membership are O(log n) and
// O(1).
type openQueue struct {
	grid  *Grid
	items []*Cell
}

func (queue openQueue) Len() int { return len(queue.items) }

func (queue openQueue) Less(i, j int) bool {
	a, b := queue.items[i], queue.items[j]
	if cmp := a.key.Compare(b.key); cmp != 0 {
		return cmp < 0
	}
	return queue.grid.index(a) < queue.grid.index(b)
}

func (queue openQueue) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.items[i].openIndex = i
	queue.items[j].openIndex = j
}

func (queue *openQueue) Push(x any) {
	cell := x.(*Cell)
	cell.openIndex = len(queue.items)
	queue.items = append(queue.items, cell)
}

func (queue *openQueue) Pop() any {
	old := queue.items
	n := len(old)
	cell := old[n-1]
	old[n-1] = nil
	cell.openIndex = -1
	queue.items = old[:n-1]
	return cell
}

// openList holds at most one entry per cell, ordered by key and then by
// row-major cell index. A queued cell's key must not change in place: remove
// it, update the key, insert it again.
type openList struct {
	queue openQueue
}

func newOpenList(g *Grid) *openList {
	return &openList{queue: openQueue{grid: g}}
}

func (list *openList) Len() int { return list.queue.Len() }

func (list *openList) Contains(c *Cell) bool {
	i := c.openIndex
	return i >= 0 && i < len(list.queue.items) && list.queue.items[i] == c
}

// Insert queues c with its current key. A cell already present is left as is.
func (list *openList) Insert(c *Cell) {
	if list.Contains(c) {
		return
	}
	heap.Push(&list.queue, c)
}

func (list *openList) Remove(c *Cell) {
	if !list.Contains(c) {
		return
	}
	heap.Remove(&list.queue, c.openIndex)
}

// Peek returns the minimum-key cell without removing it.
func (list *openList) Peek() (*Cell, bool) {
	if list.queue.Len() == 0 {
		return nil, false
	}
	return list.queue.items[0], true
}

func (list *openList) PopMin() (*Cell, bool) {
	if list.queue.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&list.queue).(*Cell), true
}
