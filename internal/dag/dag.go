// Package dag provides directed acyclic graph operations over position keys.
// It supports cycle detection, topological ordering and level grouping, which
// the reduction engine uses to evaluate positions in dependency order.
package dag

import (
	"fmt"

	"github.com/leapstack-labs/arcana/pkg/core"
)

// Node represents a position in the graph.
type Node struct {
	// Key identifies the position
	Key core.PositionKey
	// Data holds the payload attached by the caller (a formula for the engine)
	Data interface{}
}

// Graph represents a directed acyclic graph of positions.
type Graph struct {
	nodes   map[core.PositionKey]*Node
	edges   map[core.PositionKey][]core.PositionKey // input -> derived positions
	parents map[core.PositionKey][]core.PositionKey // derived -> inputs
}

// NewGraph creates a new empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[core.PositionKey]*Node),
		edges:   make(map[core.PositionKey][]core.PositionKey),
		parents: make(map[core.PositionKey][]core.PositionKey),
	}
}

// AddNode adds a node to the graph, replacing the data of an existing one.
func (g *Graph) AddNode(key core.PositionKey, data interface{}) {
	if node, exists := g.nodes[key]; exists {
		node.Data = data
		return
	}
	g.nodes[key] = &Node{Key: key, Data: data}
	g.edges[key] = []core.PositionKey{}
	g.parents[key] = []core.PositionKey{}
}

// AddEdge records that child is computed from parent.
func (g *Graph) AddEdge(parent, child core.PositionKey) error {
	if _, exists := g.nodes[parent]; !exists {
		return fmt.Errorf("parent position %q does not exist", parent)
	}
	if _, exists := g.nodes[child]; !exists {
		return fmt.Errorf("child position %q does not exist", child)
	}
	if parent == child {
		return fmt.Errorf("self-loop detected: %s", parent)
	}

	// Formulas such as p1+p4+p6 name each input once, but guard anyway
	if !contains(g.edges[parent], child) {
		g.edges[parent] = append(g.edges[parent], child)
	}
	if !contains(g.parents[child], parent) {
		g.parents[child] = append(g.parents[child], parent)
	}

	return nil
}

// GetNode returns a node by key.
func (g *Graph) GetNode(key core.PositionKey) (*Node, bool) {
	node, exists := g.nodes[key]
	return node, exists
}

// GetParents returns the inputs of a position, in the order they were added.
func (g *Graph) GetParents(key core.PositionKey) []core.PositionKey {
	return g.parents[key]
}

// GetChildren returns the positions computed from key.
func (g *Graph) GetChildren(key core.PositionKey) []core.PositionKey {
	return sorted(g.edges[key])
}

// GetAllNodes returns all nodes in numeric key order.
func (g *Graph) GetAllNodes() []*Node {
	keys := make([]core.PositionKey, 0, len(g.nodes))
	for key := range g.nodes {
		keys = append(keys, key)
	}
	core.SortKeys(keys)

	nodes := make([]*Node, 0, len(keys))
	for _, key := range keys {
		nodes = append(nodes, g.nodes[key])
	}
	return nodes
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, children := range g.edges {
		count += len(children)
	}
	return count
}

// HasCycle returns true if the graph contains a cycle, along with the cycle path.
func (g *Graph) HasCycle() (bool, []core.PositionKey) {
	visited := make(map[core.PositionKey]bool)
	recStack := make(map[core.PositionKey]bool)
	path := make(map[core.PositionKey]core.PositionKey)

	var cyclePath []core.PositionKey

	var dfs func(key core.PositionKey) bool
	dfs = func(key core.PositionKey) bool {
		visited[key] = true
		recStack[key] = true

		for _, child := range g.edges[key] {
			if !visited[child] {
				path[child] = key
				if dfs(child) {
					return true
				}
			} else if recStack[child] {
				cyclePath = []core.PositionKey{child}
				for curr := key; curr != child; curr = path[curr] {
					cyclePath = append([]core.PositionKey{curr}, cyclePath...)
				}
				cyclePath = append([]core.PositionKey{child}, cyclePath...)
				return true
			}
		}

		recStack[key] = false
		return false
	}

	for _, node := range g.GetAllNodes() {
		if !visited[node.Key] {
			if dfs(node.Key) {
				return true, cyclePath
			}
		}
	}

	return false, nil
}

// TopologicalSort returns nodes with every input before the positions
// derived from it. Ties are broken by numeric key order.
func (g *Graph) TopologicalSort() ([]*Node, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("cycle detected: %v", cyclePath)
	}

	visited := make(map[core.PositionKey]bool)
	result := make([]*Node, 0, len(g.nodes))

	var visit func(key core.PositionKey)
	visit = func(key core.PositionKey) {
		if visited[key] {
			return
		}
		visited[key] = true

		for _, parent := range sorted(g.parents[key]) {
			visit(parent)
		}

		result = append(result, g.nodes[key])
	}

	for _, node := range g.GetAllNodes() {
		visit(node.Key)
	}

	return result, nil
}

// GetExecutionLevels returns positions grouped by depth.
// Level 0 holds positions read straight from the date; a position at level N
// only needs positions from levels below N.
func (g *Graph) GetExecutionLevels() ([][]core.PositionKey, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("cycle detected: %v", cyclePath)
	}

	assigned := make(map[core.PositionKey]int)

	var getLevel func(key core.PositionKey) int
	getLevel = func(key core.PositionKey) int {
		if level, ok := assigned[key]; ok {
			return level
		}

		level := 0
		for _, parent := range g.parents[key] {
			if l := getLevel(parent) + 1; l > level {
				level = l
			}
		}
		assigned[key] = level
		return level
	}

	maxLevel := -1
	for key := range g.nodes {
		if level := getLevel(key); level > maxLevel {
			maxLevel = level
		}
	}

	levels := make([][]core.PositionKey, maxLevel+1)
	for key, level := range assigned {
		levels[level] = append(levels[level], key)
	}
	for i := range levels {
		core.SortKeys(levels[i])
	}

	return levels, nil
}

// GetAffectedNodes returns the given positions plus everything derived from them.
func (g *Graph) GetAffectedNodes(changed []core.PositionKey) []core.PositionKey {
	affected := make(map[core.PositionKey]bool)

	var markAffected func(key core.PositionKey)
	markAffected = func(key core.PositionKey) {
		if affected[key] {
			return
		}
		affected[key] = true
		for _, child := range g.edges[key] {
			markAffected(child)
		}
	}

	for _, key := range changed {
		if _, exists := g.nodes[key]; exists {
			markAffected(key)
		}
	}

	return keysOf(affected)
}

// GetUpstreamNodes returns every position that key depends on, transitively.
func (g *Graph) GetUpstreamNodes(key core.PositionKey) []core.PositionKey {
	upstream := make(map[core.PositionKey]bool)

	var markUpstream func(k core.PositionKey)
	markUpstream = func(k core.PositionKey) {
		for _, parent := range g.parents[k] {
			if !upstream[parent] {
				upstream[parent] = true
				markUpstream(parent)
			}
		}
	}

	markUpstream(key)
	return keysOf(upstream)
}

// GetRoots returns positions with no inputs.
func (g *Graph) GetRoots() []core.PositionKey {
	var roots []core.PositionKey
	for key := range g.nodes {
		if len(g.parents[key]) == 0 {
			roots = append(roots, key)
		}
	}
	core.SortKeys(roots)
	return roots
}

// GetLeaves returns positions nothing else is derived from.
func (g *Graph) GetLeaves() []core.PositionKey {
	var leaves []core.PositionKey
	for key := range g.nodes {
		if len(g.edges[key]) == 0 {
			leaves = append(leaves, key)
		}
	}
	core.SortKeys(leaves)
	return leaves
}

func contains(slice []core.PositionKey, key core.PositionKey) bool {
	for _, k := range slice {
		if k == key {
			return true
		}
	}
	return false
}

func sorted(keys []core.PositionKey) []core.PositionKey {
	out := make([]core.PositionKey, len(keys))
	copy(out, keys)
	core.SortKeys(out)
	return out
}

func keysOf(set map[core.PositionKey]bool) []core.PositionKey {
	result := make([]core.PositionKey, 0, len(set))
	for key := range set {
		result = append(result, key)
	}
	core.SortKeys(result)
	return result
}
