package register

// spInit is the stack pointer value after reset; the stack lives in
// page 1 and grows downward from 0x01FF.
const spInit = 0xFF

// File holds the complete architectural register set of the 6502.
type File struct {
	A      uint8
	X      uint8
	Y      uint8
	PC     uint16
	SP     uint8
	Status Status
}

// New returns a register file in its power-on state.
func New() File {
	return File{SP: spInit, Status: NewStatus()}
}

// SetA stores val in A and updates N/Z from it.
func (f *File) SetA(val uint8) {
	f.A = val
	f.Status.SetNZFrom(val)
}

// SetX stores val in X and updates N/Z from it.
func (f *File) SetX(val uint8) {
	f.X = val
	f.Status.SetNZFrom(val)
}

// SetY stores val in Y and updates N/Z from it.
func (f *File) SetY(val uint8) {
	f.Y = val
	f.Status.SetNZFrom(val)
}
