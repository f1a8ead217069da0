package keyboard

import "testing"

func TestDrainReturnsEventsInOrder(t *testing.T) {
	d := New()
	d.KeyDown(0x41)
	d.KeyUp(0x41)

	want := []uint8{KeyDown, 0x41, KeyUp, 0x41}
	for i, w := range want {
		if got := d.ReadByteMut(0); got != w {
			t.Fatalf("byte %d = 0x%02X, want 0x%02X", i, got, w)
		}
	}
	if got := d.ReadByteMut(0); got != 0 {
		t.Errorf("drained past empty queue returned 0x%02X, want 0", got)
	}
}

func TestDebugReadNeverDrains(t *testing.T) {
	d := New()
	d.KeyDown(0x41)
	for i := 0; i < 5; i++ {
		if got := d.ReadByte(0); got != 0 {
			t.Errorf("ReadByte = 0x%02X, want 0", got)
		}
	}
	if got := d.ReadByteMut(0); got != KeyDown {
		t.Errorf("first drained byte = 0x%02X, want KeyDown; debug reads must not have consumed it", got)
	}
}

func TestStepSuppressesRepeatedInterrupt(t *testing.T) {
	d := New()
	d.KeyDown(0x41)

	if _, raised := d.Step(nil); !raised {
		t.Fatal("expected interrupt on first Step after a new event")
	}
	if _, raised := d.Step(nil); raised {
		t.Error("expected no interrupt on Step with an unchanged queue")
	}

	d.KeyUp(0x41)
	if _, raised := d.Step(nil); !raised {
		t.Error("expected interrupt again once the queue changed")
	}
}

func TestReadByteMutDrainDoesNotReinterrupt(t *testing.T) {
	d := New()
	d.KeyDown(0x41) // two bytes: KeyDown, 0x41

	if _, raised := d.Step(nil); !raised {
		t.Fatal("expected interrupt on first Step after a new event")
	}

	// A handler draining one byte mid-ISR shrinks the queue by itself;
	// that alone must not look like a new event to the next Step.
	d.ReadByteMut(0)

	if _, raised := d.Step(nil); raised {
		t.Error("expected no interrupt on Step after a read-driven drain, only a real new event")
	}
}

func TestQueueOverflowDropsEvents(t *testing.T) {
	d := New()
	for i := 0; i < maxQueueBytes; i++ {
		d.KeyDown(uint8(i))
	}
	before := len(d.queue)
	d.KeyDown(0xFF)
	if len(d.queue) != before {
		t.Errorf("queue grew past its cap: got %d, want %d", len(d.queue), before)
	}
}
