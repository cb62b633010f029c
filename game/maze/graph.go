package maze

import (
	"maps"
	"slices"
)

// Graph is the undirected adjacency graph of a grid's passage cells. Every
// edge joins two orthogonally adjacent passages and costs 1.
type Graph struct {
	adjacency map[CellPosition][]CellPosition
	edges     int
}

// BuildGraph derives the graph of grid. Walls are left out of the node set.
func BuildGraph(grid *Grid) *Graph {
	graph := &Graph{
		adjacency: make(map[CellPosition][]CellPosition),
	}

	for row := 0; row < grid.size; row++ {
		for col := 0; col < grid.size; col++ {
			if grid.cells[row][col] != Passage {
				continue
			}
			pos := CellPosition{Row: row, Col: col}
			graph.addNode(pos)

			// Scanning down and right discovers each adjacency exactly once.
			if row+1 < grid.size && grid.cells[row+1][col] == Passage {
				graph.addEdge(pos, CellPosition{Row: row + 1, Col: col})
			}
			if col+1 < grid.size && grid.cells[row][col+1] == Passage {
				graph.addEdge(pos, CellPosition{Row: row, Col: col + 1})
			}
		}
	}

	return graph
}

func (g *Graph) addNode(pos CellPosition) {
	if _, ok := g.adjacency[pos]; !ok {
		g.adjacency[pos] = nil
	}
}

func (g *Graph) addEdge(a, b CellPosition) {
	g.addNode(a)
	g.addNode(b)
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.edges++
}

// HasNode reports whether pos is a passage cell of the graph.
func (g *Graph) HasNode(pos CellPosition) bool {
	_, ok := g.adjacency[pos]
	return ok
}

// HasEdge reports whether a and b are joined by an edge.
func (g *Graph) HasEdge(a, b CellPosition) bool {
	return slices.Contains(g.adjacency[a], b)
}

// Neighbors returns the nodes joined to pos, or nil if pos is not a node.
func (g *Graph) Neighbors(pos CellPosition) []CellPosition {
	return slices.Clone(g.adjacency[pos])
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Nodes returns every node in row-major order.
func (g *Graph) Nodes() []CellPosition {
	return slices.SortedFunc(maps.Keys(g.adjacency), comparePositions)
}

// Equal reports whether g and other have the same nodes and edges.
func (g *Graph) Equal(other *Graph) bool {
	if g.edges != other.edges || len(g.adjacency) != len(other.adjacency) {
		return false
	}
	for pos, neighbors := range g.adjacency {
		otherNeighbors, ok := other.adjacency[pos]
		if !ok || len(neighbors) != len(otherNeighbors) {
			return false
		}
		a := slices.SortedFunc(slices.Values(neighbors), comparePositions)
		b := slices.SortedFunc(slices.Values(otherNeighbors), comparePositions)
		if !slices.Equal(a, b) {
			return false
		}
	}
	return true
}

func comparePositions(a, b CellPosition) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
