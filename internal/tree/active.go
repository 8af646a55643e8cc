package tree

import (
	"github.com/yourusername/matrix/internal/types"
)

// Activate points every ancestor of n at the child leading down to n.
// Branches off that path keep their current active child.
func Activate(n Node) {
	for child, p := n, n.Parent(); p != nil; child, p = p, p.Parent() {
		if p.active != child {
			p.active = child
		}
	}
}

// ActiveLeaf follows active children down from n until it reaches a leaf.
// It takes at most one step per level of the tree.
func ActiveLeaf(n Node) *Leaf {
	for n != nil {
		switch x := n.(type) {
		case *Leaf:
			return x
		case *Branch:
			n = x.active
		}
	}
	return nil
}

// Enclosing returns the nearest ancestor of n laid out along axis, together
// with the child of that ancestor that contains n. Both are nil when no
// ancestor has that orientation.
func Enclosing(n Node, axis types.Orientation) (*Branch, Node) {
	for child, p := n, n.Parent(); p != nil; child, p = p, p.Parent() {
		if p.geom.Orientation == axis {
			return p, child
		}
	}
	return nil, nil
}

// Neighbor returns the sibling next to n in the nearest ancestor laid out
// along axis, wrapping around at either end. It returns nil when no such
// ancestor exists.
func Neighbor(n Node, axis types.Orientation, order types.Order) Node {
	p, child := Enclosing(n, axis)
	if p == nil {
		return nil
	}
	i := p.IndexOf(child)
	k := len(p.children)
	if order == types.Forward {
		return p.children[(i+1)%k]
	}
	return p.children[(i-1+k)%k]
}

// Adjacent finds the same enclosing ancestor as Neighbor and returns the
// child containing n along with its sibling in the given order. It does not
// wrap: the sibling is nil at the edge.
func Adjacent(n Node, axis types.Orientation, order types.Order) (Node, Node) {
	p, child := Enclosing(n, axis)
	if p == nil {
		return nil, nil
	}
	i := p.IndexOf(child)
	if order == types.Forward {
		i++
	} else {
		i--
	}
	if i < 0 || i >= len(p.children) {
		return child, nil
	}
	return child, p.children[i]
}
