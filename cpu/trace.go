package cpu

import "github.com/davecgh/go-spew/spew"

// snapshot is the register/flag view Trace dumps. It exists as its
// own type (rather than dumping *CPU directly) so the dump doesn't
// reach into the unexported mem field.
type snapshot struct {
	A, X, Y uint8
	PC      uint16
	S       uint8
	P       Flag
}

// Trace returns a human-readable register/flag dump, the descendant
// of the teacher's BIOS()-style debug printers. It's a diagnostic
// helper, not part of execution.
func (c *CPU) Trace() string {
	return spew.Sdump(snapshot{A: c.A, X: c.X, Y: c.Y, PC: c.PC, S: c.S, P: c.P})
}
