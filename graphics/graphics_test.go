package graphics

import "testing"

func TestRenderOutOfBounds(t *testing.T) {
	d := New()
	const addr = 0 // address does not matter; this device ignores it

	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			d.WriteByte(addr, cmdSetPosition)
			d.WriteByte(addr, uint8(x))
			d.WriteByte(addr, uint8(y))
			d.Step(nil)
			d.WriteByte(addr, cmdSetValue)
			d.WriteByte(addr, 'h')
			d.Step(nil)
		}
	}

	d.WriteByte(addr, cmdSetPosition)
	d.WriteByte(addr, 0)
	d.WriteByte(addr, 0)
	d.Step(nil)

	for i := 0; i < ScreenWidthChars*ScreenHeightChars+1; i++ {
		d.WriteByte(addr, cmdSetValue)
		d.WriteByte(addr, 'h')
		d.Step(nil)
	}
}

func TestClearScreenNeedsNoArgs(t *testing.T) {
	d := New()
	d.WriteByte(0, cmdClearScreen)
	if _, raised := d.Step(nil); raised {
		t.Error("graphics device must never raise an interrupt")
	}
	if d.state != listening {
		t.Errorf("state = %v after clear, want listening", d.state)
	}
}
