package tree

import (
	"fmt"
)

// Verify checks the structural invariants of t and returns the first
// violation found:
//   - every non-root node appears exactly once in its parent's children
//   - every branch has at least two children
//   - every branch's active child is one of its children
//   - the root has no parent
//
// When configured is true it also checks that orientation alternates by
// depth, which only holds once the tree has been configured.
func Verify(t *Tree, configured bool) error {
	if t.root == nil {
		return nil
	}
	if t.root.Parent() != nil {
		return fmt.Errorf("root has a parent")
	}

	seen := make(map[Node]bool)
	var check func(n Node) error
	check = func(n Node) error {
		if seen[n] {
			return fmt.Errorf("node %p reachable twice", n)
		}
		seen[n] = true

		b, ok := n.(*Branch)
		if !ok {
			return nil
		}
		if len(b.children) < 2 {
			return fmt.Errorf("branch %p has %d children", b, len(b.children))
		}
		if b.IndexOf(b.active) < 0 {
			return fmt.Errorf("branch %p active child is not a child", b)
		}
		for _, c := range b.children {
			if c.Parent() != b {
				return fmt.Errorf("child %p of branch %p has parent %p", c, b, c.Parent())
			}
			if configured && c.Geometry().Orientation != b.geom.Orientation.Orthogonal() {
				return fmt.Errorf("child %p has orientation %s under %s branch",
					c, c.Geometry().Orientation, b.geom.Orientation)
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}

	return check(t.root)
}
