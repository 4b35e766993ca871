package ppu

import "testing"

// testCart is a minimal cartBus backed by a flat CHR array, enough to
// drive register and memory-mapping tests without a real cartridge.
type testCart struct {
	chr [0x2000]uint8
}

func (c *testCart) ReadCHR(addr uint16) uint8     { return c.chr[addr] }
func (c *testCart) WriteCHR(addr uint16, v uint8) { c.chr[addr] = v }

type testNMI struct {
	fired bool
}

func (n *testNMI) TriggerNMI() { n.fired = true }

func newTestPPU(vertical bool) (*PPU, *testCart, *testNMI) {
	cart := &testCart{}
	nmi := &testNMI{}
	return New(cart, nmi, vertical), cart, nmi
}

func TestWriteRegPPUCTRLSetsNametableAndIncrement(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.WriteRegister(regCTRL, 0b00000101) // nametable 1, +32 increment
	if p.nametableBase != 0x2400 {
		t.Errorf("nametableBase = %04X, want 2400", p.nametableBase)
	}
	if p.vramIncrement != 32 {
		t.Errorf("vramIncrement = %d, want 32", p.vramIncrement)
	}
}

func TestWriteRegPPUCTRLSetsNMIFlag(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.WriteRegister(regCTRL, 0x80)
	if !p.generateNMI {
		t.Errorf("generateNMI = false, want true")
	}
}

func TestPPUADDRTwoWriteSequence(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.WriteRegister(regADDR, 0x21)
	p.WriteRegister(regADDR, 0x08)
	if got := p.v.get(); got != 0x2108 {
		t.Errorf("v = %04X, want 2108", got)
	}
	if p.latch {
		t.Errorf("latch = true after second write, want false")
	}
}

func TestPPUSCROLLSharesLatchWithPPUADDR(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.WriteRegister(regSCRL, 0x10)
	if !p.latch {
		t.Errorf("latch = false after first SCROLL write, want true")
	}
	p.WriteRegister(regADDR, 0x20) // second write of the *shared* latch
	if p.scrollY != 0 {
		t.Errorf("scrollY clobbered by PPUADDR write: %d", p.scrollY)
	}
	if p.latch {
		t.Errorf("latch = true, want false after second write")
	}
}

func TestReadStatusClearsVBlankAndLatch(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.status = statusVBlank
	p.latch = true
	got := p.ReadRegister(regSTAT)
	if got&statusVBlank == 0 {
		t.Errorf("returned status missing vblank bit")
	}
	if p.status&statusVBlank != 0 {
		t.Errorf("status vblank bit not cleared after read")
	}
	if p.latch {
		t.Errorf("latch not cleared by PPUSTATUS read")
	}
}

func TestPPUDATAWriteReadRoundTripThroughNametable(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.WriteRegister(regADDR, 0x20)
	p.WriteRegister(regADDR, 0x00)
	p.WriteRegister(regDATA, 0x55)

	p.WriteRegister(regADDR, 0x20)
	p.WriteRegister(regADDR, 0x00)
	_ = p.ReadRegister(regDATA) // primes the read buffer
	got := p.ReadRegister(regDATA)
	if got != 0x55 {
		t.Errorf("PPUDATA buffered read = %02X, want 55", got)
	}
}

func TestPPUDATAPaletteReadIsImmediate(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.palette[0x05] = 0x2C
	p.WriteRegister(regADDR, 0x3F)
	p.WriteRegister(regADDR, 0x05)
	got := p.ReadRegister(regDATA)
	if got != 0x2C {
		t.Errorf("palette read = %02X, want 2C (no buffering)", got)
	}
}

func TestNametableMirroringVertical(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.writeMemory(0x2000, 0xAB)
	if got := p.readMemory(0x2800); got != 0xAB {
		t.Errorf("vertical mirror 0x2800 = %02X, want AB", got)
	}
}

func TestNametableMirroringHorizontal(t *testing.T) {
	p, _, _ := newTestPPU(false)
	p.writeMemory(0x2000, 0xCD)
	if got := p.readMemory(0x2400); got != 0xCD {
		t.Errorf("horizontal mirror 0x2400 = %02X, want CD", got)
	}
}

func TestPaletteMirroringBackgroundAlias(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.writeMemory(0x3F00, 0x0F)
	if got := p.readMemory(0x3F10); got != 0x0F {
		t.Errorf("palette alias 0x3F10 = %02X, want 0F", got)
	}
}

func TestOAMDMAByteWrite(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.WriteOAMByte(10, 0x42)
	if p.oam[10] != 0x42 {
		t.Errorf("oam[10] = %02X, want 42", p.oam[10])
	}
}

func TestStepTriggersNMIAtCycle2(t *testing.T) {
	p, _, nmi := newTestPPU(true)
	p.generateNMI = true
	p.scanline, p.cycle = 241, 1
	p.Step() // cycle 1: sets vblank status, no NMI yet
	if p.status&statusVBlank == 0 {
		t.Errorf("vblank status not set at (241,1)")
	}
	if nmi.fired {
		t.Errorf("NMI fired at (241,1), want (241,2)")
	}
	p.Step() // cycle 2: NMI delivered to the CPU
	if !nmi.fired {
		t.Errorf("NMI not delivered at (241,2)")
	}
}

func TestStepSignalsBlitAtFrameEnd(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.scanline, p.cycle = 240, 256
	if p.Step() {
		t.Errorf("blit signalled at (240,256), want (240,257)")
	}
	if !p.Step() {
		t.Errorf("blit not signalled at (240,257)")
	}
}

func TestSpriteZeroHitClippedInLeft8WhenMaskingOn(t *testing.T) {
	p, cart, _ := newTestPPU(true)
	p.showBackground = true
	cart.chr[0] = 0x80 // tile 0, row 0: leftmost pixel opaque (colorBits=1)
	s := OAMFromBytes([]uint8{0, 0, 0, 0})

	p.drawSprite(s, 0, true)
	if p.status&statusSpriteZeroHit != 0 {
		t.Errorf("sprite-zero hit set at x=0 with left-8 clipping on, want clipped")
	}
}

func TestSpriteZeroHitAtLeft8WhenClippingDisabled(t *testing.T) {
	p, cart, _ := newTestPPU(true)
	p.showBackground = true
	p.showLeftBG = true
	p.showLeftSprites = true
	cart.chr[0] = 0x80 // tile 0, row 0: leftmost pixel opaque (colorBits=1)
	s := OAMFromBytes([]uint8{0, 0, 0, 0})

	p.drawSprite(s, 0, true)
	if p.status&statusSpriteZeroHit == 0 {
		t.Errorf("sprite-zero hit not set at x=0 with left-8 clipping disabled")
	}
}

func TestSpriteZeroHitAtXGreaterThan8IgnoresClipping(t *testing.T) {
	p, cart, _ := newTestPPU(true)
	p.showBackground = true
	cart.chr[0] = 0x80 // tile 0, row 0: leftmost pixel opaque (colorBits=1)
	s := OAMFromBytes([]uint8{0, 0, 0, 10})

	p.drawSprite(s, 0, true)
	if p.status&statusSpriteZeroHit == 0 {
		t.Errorf("sprite-zero hit not set at x=10, which is outside the clipped region")
	}
}

func TestStepWrapsScanlineAndCycle(t *testing.T) {
	p, _, _ := newTestPPU(true)
	p.scanline, p.cycle = 261, 340
	p.Step()
	if p.scanline != 0 || p.cycle != 0 {
		t.Errorf("scanline/cycle = %d/%d after wrap, want 0/0", p.scanline, p.cycle)
	}
}
