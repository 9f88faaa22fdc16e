package view

// ID is a node handle. The zero ID never names a node.
type ID uint64

// Tree owns every node created through it and resolves ID handles.
//
// Parent links are stored as IDs and looked up here, so a detached or
// destroyed node is simply absent: a stale handle resolves to nil instead of
// a dangling pointer.
type Tree struct {
	nodes map[ID]*Node
	next  ID
}

// NewTree creates an empty registry.
func NewTree() *Tree {
	return &Tree{nodes: make(map[ID]*Node)}
}

// New creates and registers a node.
func (t *Tree) New(name string, opts ...Option) *Node {
	t.next++
	n := &Node{
		id:     t.next,
		tree:   t,
		Name:   name,
		alpha:  1,
		layout: leafLayout{},
	}
	for _, opt := range opts {
		opt(n)
	}
	t.nodes[n.id] = n
	return n
}

// Lookup resolves a handle, returning nil for the zero ID or a destroyed node.
func (t *Tree) Lookup(id ID) *Node {
	if id == 0 {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Destroy removes n and all of its descendants from the tree, detaching n from
// its parent. Destroy hooks run leaves first.
func (t *Tree) Destroy(n *Node) {
	if n == nil || t.nodes[n.id] != n {
		return
	}
	if p := n.Parent(); p != nil {
		p.removeChild(n.id)
	}
	t.destroy(n)
}

func (t *Tree) destroy(n *Node) {
	for _, id := range n.children {
		if c := t.nodes[id]; c != nil {
			t.destroy(c)
		}
	}
	if n.hooks.Destroy != nil {
		n.hooks.Destroy(n)
	}
	delete(t.nodes, n.id)
	n.children = nil
	n.parent = 0
}

// Contains reports whether n is live in this tree.
func (t *Tree) Contains(n *Node) bool {
	return n != nil && t.nodes[n.id] == n
}
