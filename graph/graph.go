package graph

import (
	"fmt"
	"sync"

	"github.com/hupe1980/pilekit/core"
	"github.com/hupe1980/pilekit/pile"
)

// Type tags for graph elements. Node is open for subtyping so callers can
// register richer node kinds that still fit a node-typed pile.
const (
	NodeTag = "graph.node"
	EdgeTag = "graph.edge"
)

func init() {
	core.RegisterType(NodeTag, "")
	core.RegisterType(EdgeTag, "")
}

// Node is a graph vertex carrying an arbitrary payload.
type Node struct {
	core.Element
	Label   string
	Payload any
}

// TypeTag implements core.Tagged.
func (n *Node) TypeTag() string { return NodeTag }

// NewNode creates a node with the given label and payload.
func NewNode(label string, payload any) *Node {
	return &Node{Element: core.NewElement(), Label: label, Payload: payload}
}

// Edge is a directed connection between two nodes identified by id.
type Edge struct {
	core.Element
	Head  core.ID // source node
	Tail  core.ID // target node
	Label string
}

// TypeTag implements core.Tagged.
func (e *Edge) TypeTag() string { return EdgeTag }

// NewEdge creates a directed edge from head to tail.
func NewEdge(head, tail core.ID, label string) *Edge {
	return &Edge{Element: core.NewElement(), Head: head, Tail: tail, Label: label}
}

// Graph composes a node pile, an edge pile and an adjacency index. The piles
// keep individual operations atomic; mu serializes the multi-structure
// mutations (endpoint checks, cascade removal) so the adjacency index never
// diverges from the piles.
type Graph struct {
	mu    sync.RWMutex
	nodes *pile.Pile[*Node]
	edges *pile.Pile[*Edge]
	out   map[core.ID][]core.ID // node id -> outgoing edge ids
	in    map[core.ID][]core.ID // node id -> incoming edge ids
}

// New creates an empty graph.
func New() *Graph {
	nodes, err := pile.New([]*Node{}, func(o *pile.Options) {
		o.ItemTypes = []string{NodeTag}
	})
	if err != nil {
		panic(err)
	}
	edges, err := pile.New([]*Edge{}, func(o *pile.Options) {
		o.ItemTypes = []string{EdgeTag}
	})
	if err != nil {
		panic(err)
	}
	return &Graph{
		nodes: nodes,
		edges: edges,
		out:   map[core.ID][]core.ID{},
		in:    map[core.ID][]core.ID{},
	}
}

// AddNode inserts a node, rejecting an already-present id with ErrDuplicate.
func (g *Graph) AddNode(n *Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.nodes.Contains(n.Identity()) {
		return fmt.Errorf("%w: node %s", core.ErrDuplicate, n.Identity())
	}
	return g.nodes.Include(n)
}

// AddEdge inserts an edge. Both endpoints must already be present.
func (g *Graph) AddEdge(e *Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.nodes.Contains(e.Head) {
		return fmt.Errorf("%w: head node %s", core.ErrNotFound, e.Head)
	}
	if !g.nodes.Contains(e.Tail) {
		return fmt.Errorf("%w: tail node %s", core.ErrNotFound, e.Tail)
	}
	if g.edges.Contains(e.Identity()) {
		return fmt.Errorf("%w: edge %s", core.ErrDuplicate, e.Identity())
	}
	if err := g.edges.Include(e); err != nil {
		return err
	}
	g.out[e.Head] = append(g.out[e.Head], e.Identity())
	g.in[e.Tail] = append(g.in[e.Tail], e.Identity())
	return nil
}

// RemoveNode removes a node and all its incident edges.
func (g *Graph) RemoveNode(id core.ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := g.nodes.Pop(id); err != nil {
		return err
	}
	for _, edgeID := range append(append([]core.ID{}, g.out[id]...), g.in[id]...) {
		g.removeEdgeLocked(edgeID)
	}
	delete(g.out, id)
	delete(g.in, id)
	return nil
}

// RemoveEdge removes a single edge by id.
func (g *Graph) RemoveEdge(id core.ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.edges.Contains(id) {
		return fmt.Errorf("%w: edge %s", core.ErrNotFound, id)
	}
	g.removeEdgeLocked(id)
	return nil
}

func (g *Graph) removeEdgeLocked(id core.ID) {
	e, err := g.edges.Pop(id)
	if err != nil {
		return
	}
	g.out[e.Head] = without(g.out[e.Head], id)
	g.in[e.Tail] = without(g.in[e.Tail], id)
}

func without(ids []core.ID, id core.ID) []core.ID {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

// GetNode returns the node with the given id, or ErrNotFound.
func (g *Graph) GetNode(id core.ID) (*Node, error) {
	return g.nodes.Get(id)
}

// GetEdge returns the edge with the given id, or ErrNotFound.
func (g *Graph) GetEdge(id core.ID) (*Edge, error) {
	return g.edges.Get(id)
}

// Successors returns the nodes reachable from id over one outgoing edge, in
// edge insertion order.
func (g *Graph) Successors(id core.ID) ([]*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.nodes.Contains(id) {
		return nil, fmt.Errorf("%w: node %s", core.ErrNotFound, id)
	}
	var nodes []*Node
	for _, edgeID := range g.out[id] {
		e, err := g.edges.Get(edgeID)
		if err != nil {
			continue
		}
		if n, err := g.nodes.Get(e.Tail); err == nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// Predecessors returns the nodes with an edge into id, in edge insertion
// order.
func (g *Graph) Predecessors(id core.ID) ([]*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.nodes.Contains(id) {
		return nil, fmt.Errorf("%w: node %s", core.ErrNotFound, id)
	}
	var nodes []*Node
	for _, edgeID := range g.in[id] {
		e, err := g.edges.Get(edgeID)
		if err != nil {
			continue
		}
		if n, err := g.nodes.Get(e.Head); err == nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node { return g.nodes.Values() }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge { return g.edges.Values() }

// Order returns the number of nodes.
func (g *Graph) Order() int { return g.nodes.Len() }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.edges.Len() }
