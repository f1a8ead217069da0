package memory

import (
	"fmt"
	"sort"
)

// BuildError reports a problem detected while finalizing a Builder:
// a gap, an overlap, or incomplete coverage of the address space.
type BuildError struct {
	Reason string
}

func (e BuildError) Error() string {
	return fmt.Sprintf("invalid memory map: %s", e.Reason)
}

// Builder accumulates segments and validates them into a Map.
type Builder struct {
	segments []*segment
	err      error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(start, endInclusive uint16, device Device) *Builder {
	if b.err != nil {
		return b
	}
	if endInclusive < start {
		b.err = BuildError{Reason: fmt.Sprintf("segment [0x%04X, 0x%04X] is empty or inverted", start, endInclusive)}
		return b
	}
	b.segments = append(b.segments, &segment{
		start:        start,
		endInclusive: endInclusive,
		device:       device,
		requiresStep: device.RequiresStep(),
	})
	return b
}

// RAM adds a RAM-backed segment covering [start, endInclusive].
func (b *Builder) RAM(start, endInclusive uint16) *Builder {
	size := int(endInclusive) - int(start) + 1
	return b.add(start, endInclusive, NewRAM(start, size))
}

// ROM adds a ROM-backed segment covering [start, endInclusive]; data
// must be exactly as long as the range.
func (b *Builder) ROM(start, endInclusive uint16, data []uint8) *Builder {
	want := int(endInclusive) - int(start) + 1
	if b.err == nil && len(data) != want {
		b.err = BuildError{Reason: fmt.Sprintf("ROM data length %d does not match range length %d", len(data), want)}
		return b
	}
	return b.add(start, endInclusive, NewROM(start, data))
}

// Peripheral adds an arbitrary device-backed segment covering
// [start, endInclusive].
func (b *Builder) Peripheral(start, endInclusive uint16, device Device) *Builder {
	return b.add(start, endInclusive, device)
}

// Build validates the accumulated segments and returns a finalized Map.
// Segments must tile [0x0000, 0xFFFF] exactly: sorted by start, no
// gaps, no overlaps, full coverage.
func (b *Builder) Build() (*Map, error) {
	if b.err != nil {
		return nil, b.err
	}
	segs := make([]*segment, len(b.segments))
	copy(segs, b.segments)
	sort.Slice(segs, func(i, j int) bool { return segs[i].start < segs[j].start })

	expected := uint32(0)
	for _, s := range segs {
		if uint32(s.start) != expected {
			return nil, BuildError{Reason: fmt.Sprintf("gap or overlap before 0x%04X", s.start)}
		}
		expected = uint32(s.endInclusive) + 1
	}
	if expected != 0x10000 {
		return nil, BuildError{Reason: fmt.Sprintf("segments cover only up to 0x%04X, expected full 64K", expected-1)}
	}

	return &Map{segments: segs}, nil
}
