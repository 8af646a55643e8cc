package tree

import (
	"errors"

	"github.com/yourusername/matrix/internal/types"
)

var (
	ErrNilNode     = errors.New("tree: nil node")
	ErrParented    = errors.New("tree: node is attached")
	ErrNotParented = errors.New("tree: node is not attached")
	ErrSameNode    = errors.New("tree: node and target are the same")
	ErrNotEmpty    = errors.New("tree: tree already has a root")
)

// Tree owns the root of a BSP tree. The zero value is an empty tree.
type Tree struct {
	root Node
}

// Root returns the top node, or nil for an empty tree
func (t *Tree) Root() Node {
	return t.root
}

// Empty reports whether the tree has no nodes
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Attached reports whether n is the root or has a parent
func (t *Tree) Attached(n Node) bool {
	return n != nil && (n == t.root || n.Parent() != nil)
}

// Plant makes a detached node the root of an empty tree
func (t *Tree) Plant(n Node) error {
	if n == nil {
		return ErrNilNode
	}
	if t.root != nil {
		return ErrNotEmpty
	}
	if t.Attached(n) {
		return ErrParented
	}
	t.root = n
	return nil
}

// Join attaches the detached node n next to target and returns the branch
// that now holds both, which is the node to reconfigure.
//
// When target is a Leaf, a new branch takes target's place and receives
// target and n as its two children. When target is a Branch, n becomes
// its first (Backward) or last (Forward) child.
func (t *Tree) Join(n, target Node, order types.Order) (*Branch, error) {
	if n == nil || target == nil {
		return nil, ErrNilNode
	}
	if n == target {
		return nil, ErrSameNode
	}
	if t.Attached(n) {
		return nil, ErrParented
	}
	if !t.Attached(target) {
		return nil, ErrNotParented
	}

	switch target := target.(type) {
	case *Leaf:
		return t.joinLeaf(n, target, order), nil
	case *Branch:
		return t.joinBranch(n, target, order), nil
	}
	panic("tree: unknown node kind")
}

func (t *Tree) joinLeaf(n Node, target *Leaf, order types.Order) *Branch {
	b := &Branch{}
	b.geom = target.geom
	t.replace(target, b)

	b.insertAt(0, target)
	b.active = target
	if order == types.Backward {
		b.insertAt(0, n)
	} else {
		b.insertAt(1, n)
	}
	return b
}

func (t *Tree) joinBranch(n Node, target *Branch, order types.Order) *Branch {
	if order == types.Backward {
		target.insertAt(0, n)
	} else {
		target.insertAt(len(target.children), n)
	}
	return target
}

// Move repositions n directly after (Forward) or before (Backward) its
// sibling position. It reports whether anything moved; nodes with
// different parents are left alone.
func (t *Tree) Move(n, position Node, order types.Order) bool {
	if n == nil || position == nil || n == position {
		return false
	}
	p := n.Parent()
	if p == nil || position.Parent() != p {
		return false
	}

	p.removeAt(p.IndexOf(n))
	i := p.IndexOf(position)
	if order == types.Forward {
		i++
	}
	p.insertAt(i, n)
	return true
}

// Quit detaches n from the tree and returns the node whose geometry must
// be recomputed, or nil when the tree is now empty.
//
// When n's parent is left with a single child, the parent is dissolved:
// the remaining child takes the parent's slot and stored geometry.
func (t *Tree) Quit(n Node) (Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if n == t.root {
		t.root = nil
		return nil, nil
	}
	p := n.Parent()
	if p == nil {
		return nil, ErrNotParented
	}

	i := p.IndexOf(n)
	p.removeAt(i)
	if p.active == n {
		p.active = p.children[min(i, len(p.children)-1)]
	}

	if len(p.children) > 1 {
		return p, nil
	}

	child := p.removeAt(0)
	p.active = nil
	t.replace(p, child)
	child.base().geom = p.geom
	return child, nil
}

// replace puts repl into old's slot, which is either the root or a
// position in old's parent. old ends up detached.
func (t *Tree) replace(old, repl Node) {
	p := old.Parent()
	if p == nil {
		t.root = repl
		repl.base().parent = nil
		return
	}
	i := p.IndexOf(old)
	p.children[i] = repl
	repl.base().parent = p
	old.base().parent = nil
	if p.active == old {
		p.active = repl
	}
}
