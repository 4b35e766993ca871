package controller

import "testing"

func TestReadSequenceOrderAndOpenBus(t *testing.T) {
	var j Joypad
	j.SetButton(A, true)
	j.SetButton(Select, true)
	j.Write(1) // strobe high
	j.Write(0) // strobe low: restart sequence

	want := []uint8{0x41, 0x40, 0x41, 0x40, 0x40, 0x40, 0x40, 0x40}
	for i, w := range want {
		if got := j.Read(); got != w {
			t.Errorf("Read() #%d = %02X, want %02X", i, got, w)
		}
	}
}

func TestReadPastEighthReturnsOpenBusOne(t *testing.T) {
	var j Joypad
	j.Write(1)
	j.Write(0)
	for i := 0; i < 8; i++ {
		j.Read()
	}
	if got := j.Read(); got != 0x41 {
		t.Errorf("Read() after 8 = %02X, want 41", got)
	}
}

func TestStrobeHighAlwaysReturnsA(t *testing.T) {
	var j Joypad
	j.SetButton(A, true)
	j.Write(1)
	for i := 0; i < 3; i++ {
		if got := j.Read(); got != 0x41 {
			t.Errorf("Read() while strobed = %02X, want 41", got)
		}
	}
}
