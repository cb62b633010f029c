package maze

import (
	"container/heap"
	"errors"
)

// ErrNoPath is returned when the goal cannot be reached from the start.
var ErrNoPath = errors.New("no path between start and goal")

// Manhattan returns the grid distance |r1-r2| + |c1-c2| between a and b.
func Manhattan(a, b CellPosition) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// ShortestPath finds a minimum-length path from start to goal with an A*
// search guided by the Manhattan distance. It returns ErrNoPath when either
// endpoint is not a node of graph or the two are not connected.
func ShortestPath(graph *Graph, start, goal CellPosition) (*Path, error) {
	if !graph.HasNode(start) || !graph.HasNode(goal) {
		return nil, ErrNoPath
	}
	if start == goal {
		return NewPath([]CellPosition{start}), nil
	}

	open := make(openSet, 0, graph.NodeCount())
	gScore := map[CellPosition]int{start: 0}
	cameFrom := make(map[CellPosition]CellPosition)
	closed := make(map[CellPosition]struct{})
	sequence := 0

	heap.Push(&open, &searchNode{
		pos: start,
		g:   0,
		f:   Manhattan(start, goal),
	})

	for open.Len() > 0 {
		current := heap.Pop(&open).(*searchNode)
		if current.pos == goal {
			return NewPath(reconstruct(cameFrom, start, goal)), nil
		}
		if _, done := closed[current.pos]; done {
			continue
		}
		// Stale entry left behind by a later improvement of the same node.
		if current.g > gScore[current.pos] {
			continue
		}
		closed[current.pos] = struct{}{}

		for _, next := range graph.adjacency[current.pos] {
			if _, done := closed[next]; done {
				continue
			}
			tentativeG := current.g + 1
			if oldG, seen := gScore[next]; seen && tentativeG >= oldG {
				continue
			}
			gScore[next] = tentativeG
			cameFrom[next] = current.pos
			sequence++
			heap.Push(&open, &searchNode{
				pos:      next,
				g:        tentativeG,
				f:        tentativeG + Manhattan(next, goal),
				sequence: sequence,
			})
		}
	}

	return nil, ErrNoPath
}

// reconstruct walks the cameFrom chain back from goal and returns the route
// in start-to-goal order.
func reconstruct(cameFrom map[CellPosition]CellPosition, start, goal CellPosition) []CellPosition {
	route := []CellPosition{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		route = append(route, current)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// --- Priority queue ---

type searchNode struct {
	pos      CellPosition
	g        int // steps from start
	f        int // g plus the heuristic estimate to goal
	sequence int // push order, the final tie-break
	index    int
}

// openSet is a min-heap on f. Ties prefer the deeper node, then the earlier push.
type openSet []*searchNode

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}
	return pq[i].sequence < pq[j].sequence
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openSet) Push(x any) {
	node := x.(*searchNode)
	node.index = len(*pq)
	*pq = append(*pq, node)
}

func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[:n-1]
	return node
}
