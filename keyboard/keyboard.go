// Package keyboard implements a small interrupt-driven input queue: a
// peripheral that buffers key-down/key-up events and raises a
// maskable interrupt whenever new events arrive.
package keyboard

import "github.com/jdisanti/hassel-emu/memory"

// Event kinds pushed onto the queue; each occupies two bytes once
// drained: the kind byte followed by the key code.
const (
	KeyDown = 0x01
	KeyUp   = 0x02
)

// maxQueueBytes bounds the response queue so a host that never reads
// cannot grow it without bound; new events are dropped once full.
const maxQueueBytes = 32

// Device is the keyboard peripheral. Host code calls KeyDown/KeyUp to
// push events; the CPU drains them a byte at a time through normal
// reads at the device's mapped address.
type Device struct {
	queue             []uint8
	lastInterruptSize int
}

// New returns an empty keyboard device.
func New() *Device {
	return &Device{}
}

// KeyDown enqueues a key-down event for code, dropping it if the
// queue is already full.
func (d *Device) KeyDown(code uint8) {
	d.pushResponse(KeyDown, code)
}

// KeyUp enqueues a key-up event for code, dropping it if the queue is
// already full.
func (d *Device) KeyUp(code uint8) {
	d.pushResponse(KeyUp, code)
}

func (d *Device) pushResponse(kind, code uint8) {
	if len(d.queue)+2 > maxQueueBytes {
		return
	}
	d.queue = append(d.queue, kind, code)
}

// ReadByte always returns 0: debug reads must not drain the queue.
func (d *Device) ReadByte(addr uint16) uint8 { return 0 }

// ReadByteMut drains one byte from the front of the queue, or returns
// 0 if it is empty. It also advances lastInterruptSize to the
// post-drain length, so the read itself never creates an edge for
// Step to notice: only a new event arriving raises the next
// interrupt, not a host drain that happened to shrink the queue.
func (d *Device) ReadByteMut(addr uint16) uint8 {
	if len(d.queue) == 0 {
		return 0
	}
	val := d.queue[0]
	d.queue = d.queue[1:]
	d.lastInterruptSize = len(d.queue)
	return val
}

// WriteByte is ignored: this device has no writable registers.
func (d *Device) WriteByte(addr uint16, val uint8) {}

// RequiresStep is true: the device needs Step to notice new events and
// raise an interrupt for them.
func (d *Device) RequiresStep() bool { return true }

// Step raises a Maskable interrupt exactly once per batch of new
// events: it compares the current queue length against the length
// last seen when an interrupt was raised, so draining the queue down
// to empty and back up from a fresh event triggers a new interrupt,
// but repeated Step calls against an unchanged queue do not.
func (d *Device) Step(m *memory.Map) (memory.Interrupt, bool) {
	if len(d.queue) == 0 {
		d.lastInterruptSize = 0
		return memory.Interrupt{}, false
	}
	if len(d.queue) == d.lastInterruptSize {
		return memory.Interrupt{}, false
	}
	d.lastInterruptSize = len(d.queue)
	return memory.Interrupt{Kind: memory.Maskable}, true
}
