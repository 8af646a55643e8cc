// Package tree implements the BSP tree of managed windows.
//
// A tree is made of exactly two node kinds: *Leaf, which wraps one window,
// and *Branch, which owns an ordered list of two or more children. Every
// operation in this package switches over those two kinds and no others.
package tree

import (
	"github.com/yourusername/matrix/internal/types"
)

// Geometry is the last computed placement of a node
type Geometry struct {
	Orientation types.Orientation
	types.Rect
}

// Node is a Leaf or a Branch. The interface is sealed: only this package
// can implement it.
type Node interface {
	// Parent returns the owning branch, or nil for a detached node or the root
	Parent() *Branch
	// Geometry returns the placement stored by the last Configure
	Geometry() Geometry

	base() *node
}

// node holds the fields shared by both kinds
type node struct {
	parent *Branch
	geom   Geometry
}

func (n *node) Parent() *Branch    { return n.parent }
func (n *node) Geometry() Geometry { return n.geom }
func (n *node) base() *node        { return n }

// Leaf wraps a single managed window
type Leaf struct {
	node
	window types.Window
}

// NewLeaf creates a detached leaf for a window
func NewLeaf(w types.Window) *Leaf {
	return &Leaf{window: w}
}

// Window returns the wrapped window handle
func (l *Leaf) Window() types.Window {
	return l.window
}

// Branch owns an ordered list of children and remembers which of them
// last held focus.
type Branch struct {
	node
	children []Node
	active   Node
}

// Children returns a copy of the child list in layout order
func (b *Branch) Children() []Node {
	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

// Len returns the number of children
func (b *Branch) Len() int {
	return len(b.children)
}

// Active returns the child that last held focus
func (b *Branch) Active() Node {
	return b.active
}

// IndexOf returns the position of n among b's children, or -1
func (b *Branch) IndexOf(n Node) int {
	for i, c := range b.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (b *Branch) insertAt(i int, n Node) {
	b.children = append(b.children, nil)
	copy(b.children[i+1:], b.children[i:])
	b.children[i] = n
	n.base().parent = b
}

func (b *Branch) removeAt(i int) Node {
	n := b.children[i]
	b.children = append(b.children[:i], b.children[i+1:]...)
	n.base().parent = nil
	return n
}

// Depth returns the number of branches between n and the top of its tree
func Depth(n Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// Walk visits n and every descendant in layout order, depth first.
// Returning false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if b, ok := n.(*Branch); ok {
		for _, c := range b.children {
			Walk(c, fn)
		}
	}
}

// Leaves returns every leaf under n in layout order
func Leaves(n Node) []*Leaf {
	var out []*Leaf
	Walk(n, func(c Node) bool {
		if l, ok := c.(*Leaf); ok {
			out = append(out, l)
		}
		return true
	})
	return out
}
