package mouse

import (
	"github.com/yourusername/matrix/internal/types"
)

// Pointer reports the pointer position on the root window
type Pointer interface {
	QueryPointer() (types.Point, error)
}

// Gate tells pointer-caused events apart from ones caused by the window
// manager itself. After the program moves windows or focus it records the
// pointer; an enter event that arrives while the pointer still sits at the
// recorded spot was caused by that change, not by the user.
type Gate struct {
	ptr   Pointer
	at    types.Point
	valid bool
}

// NewGate creates a Gate with no snapshot
func NewGate(p Pointer) *Gate {
	return &Gate{ptr: p}
}

// Record stores the current pointer position
func (g *Gate) Record() error {
	p, err := g.ptr.QueryPointer()
	if err != nil {
		g.valid = false
		return err
	}
	g.at, g.valid = p, true
	return nil
}

// Check reports whether the pointer is still at the recorded position.
// A pointer that has moved clears the snapshot, so every later Check fails
// until the next Record.
func (g *Gate) Check() bool {
	if !g.valid {
		return false
	}
	p, err := g.ptr.QueryPointer()
	if err != nil || p != g.at {
		g.valid = false
		return false
	}
	return true
}

// Reset clears the snapshot
func (g *Gate) Reset() {
	g.valid = false
}
