// Package graphics implements a single-address, command-driven text
// display: a peripheral that decodes a small byte protocol into
// cursor moves, color changes, and character blits onto an internal
// frame buffer.
package graphics

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jdisanti/hassel-emu/memory"
)

// Character cell and screen geometry, sized to the glyph metrics of
// the basicfont face used to render text into the frame buffer.
const (
	CharWidth         = 7
	CharHeight        = 13
	ScreenWidthChars  = 80
	ScreenHeightChars = 25

	ScreenWidthPixels  = CharWidth * ScreenWidthChars
	ScreenHeightPixels = CharHeight * ScreenHeightChars
)

var (
	defaultColor   = color.RGBA{0xAD, 0xAA, 0xAD, 0xFF}
	defaultBgColor = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

// Command bytes recognized while listening for a new command.
const (
	cmdClearScreen  = 1
	cmdSetMode      = 2
	cmdSetPosition  = 3
	cmdSetColor     = 4
	cmdSetValue     = 5
	cmdSetValuesDMA = 6
)

// state names the command currently being assembled from incoming
// written bytes.
type state int

const (
	listening state = iota
	clearScreen
	setMode
	setPosition
	setColor
	setValue
	setValuesDMA
)

// argCounts is how many operand bytes each state needs before Step can
// execute it.
var argCounts = map[state]int{
	clearScreen:  0,
	setMode:      1,
	setPosition:  2,
	setColor:     1,
	setValue:     1,
	setValuesDMA: 3,
}

// Device is the graphics peripheral. It occupies a single address:
// every write advances its command state machine, and Step executes
// whichever command has collected all of its argument bytes.
type Device struct {
	img  *image.RGBA
	face font.Face

	state   state
	pending []uint8

	cursorX, cursorY uint8
	ink              color.RGBA
}

// New returns a graphics device with a cleared frame buffer.
func New() *Device {
	d := &Device{
		img:  image.NewRGBA(image.Rect(0, 0, ScreenWidthPixels, ScreenHeightPixels)),
		face: basicfont.Face7x13,
		ink:  defaultColor,
	}
	d.clear()
	return d
}

// Image returns the current frame buffer for presentation.
func (d *Device) Image() *image.RGBA {
	return d.img
}

func (d *Device) clear() {
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(defaultBgColor), image.Point{}, draw.Src)
}

func (d *Device) putChr(codePoint uint8) {
	switch codePoint {
	case '\n':
		d.cursorX = 0
		d.cursorY++
	case '\r':
		d.cursorX = 0
	default:
		d.blitChr(d.cursorX, d.cursorY, codePoint)
		d.cursorX++
		if int(d.cursorX) >= ScreenWidthChars {
			d.cursorX = 0
			d.cursorY++
		}
	}
	if int(d.cursorY) >= ScreenHeightChars {
		d.cursorY = 0
	}
}

// blitChr clears the glyph's cell, then draws the basicfont glyph
// mask for codePoint into it using the device's current ink color.
func (d *Device) blitChr(xChr, yChr, codePoint uint8) {
	cell := image.Rect(int(xChr)*CharWidth, int(yChr)*CharHeight, int(xChr)*CharWidth+CharWidth, int(yChr)*CharHeight+CharHeight)
	if !cell.In(d.img.Bounds()) {
		return
	}
	draw.Draw(d.img, cell, image.NewUniform(defaultBgColor), image.Point{}, draw.Src)

	dot := fixed.P(cell.Min.X, cell.Min.Y+CharHeight-3)
	dr, mask, maskp, _, ok := d.face.Glyph(dot, rune(codePoint))
	if !ok {
		return
	}
	draw.DrawMask(d.img, dr, image.NewUniform(d.ink), image.Point{}, mask, maskp, draw.Over)
}

// ReadByte is always 0: this device has no readable state.
func (d *Device) ReadByte(addr uint16) uint8 { return 0 }

// ReadByteMut is always 0, for the same reason.
func (d *Device) ReadByteMut(addr uint16) uint8 { return 0 }

// WriteByte feeds one byte into the command state machine.
func (d *Device) WriteByte(addr uint16, val uint8) {
	if d.state == listening {
		switch val {
		case cmdClearScreen:
			d.state = clearScreen
		case cmdSetMode:
			d.state = setMode
		case cmdSetPosition:
			d.state = setPosition
		case cmdSetColor:
			d.state = setColor
		case cmdSetValue:
			d.state = setValue
		case cmdSetValuesDMA:
			d.state = setValuesDMA
		}
		d.pending = d.pending[:0]
		return
	}
	d.pending = append(d.pending, val)
}

// RequiresStep is true: multi-byte commands only complete when Step
// observes that all of their argument bytes have arrived.
func (d *Device) RequiresStep() bool { return true }

// Step executes the pending command once all of its argument bytes
// have been written, then returns to listening. Never raises an
// interrupt.
func (d *Device) Step(m *memory.Map) (memory.Interrupt, bool) {
	want, known := argCounts[d.state]
	if !known || len(d.pending) < want {
		return memory.Interrupt{}, false
	}

	switch d.state {
	case clearScreen:
		d.clear()
	case setMode:
		// Mode selection is not implemented; only one text mode exists.
	case setPosition:
		d.cursorX, d.cursorY = d.pending[0], d.pending[1]
	case setColor:
		d.ink = paletteColor(d.pending[0])
	case setValue:
		d.putChr(d.pending[0])
	case setValuesDMA:
		addr := uint16(d.pending[0])<<8 | uint16(d.pending[1])
		length := int(d.pending[2])
		for _, chr := range m.DMASlice(addr, length) {
			d.putChr(chr)
		}
	}

	d.state = listening
	d.pending = d.pending[:0]
	return memory.Interrupt{}, false
}

// paletteColor expands a one-byte color index into an RGBA value:
// index 0 is the background color and every other index is the
// default foreground color.
func paletteColor(index uint8) color.RGBA {
	if index == 0 {
		return defaultBgColor
	}
	return defaultColor
}
