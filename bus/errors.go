package bus

import "fmt"

// UnimplementedRegion is raised when an access lands in the PPU
// register window. The PPU is an external collaborator this module
// does not implement; the bus can only signal that the access would
// need one.
type UnimplementedRegion struct {
	Addr uint16
}

func (e UnimplementedRegion) Error() string {
	return fmt.Sprintf("bus: access to unimplemented PPU register window at 0x%04X", e.Addr)
}

// RomWriteAttempt is raised when the CPU tries to write into the
// PRG-ROM window ($8000-$FFFF). PRG-ROM is never mutable.
type RomWriteAttempt struct {
	Addr uint16
}

func (e RomWriteAttempt) Error() string {
	return fmt.Sprintf("bus: write to read-only PRG-ROM window at 0x%04X", e.Addr)
}
