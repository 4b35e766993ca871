// Package mos6502 implements the MOS Technology 6502 CPU core used by the
// NES: registers, flags, thirteen addressing modes, the official
// instruction set, stack-based interrupt handling and the bus that routes
// CPU memory accesses to internal RAM, the PPU register file, the
// controller and the cartridge.
// https://en.wikipedia.org/wiki/MOS_Technology_6502
package mos6502

import "fmt"

// ramSize is the 2 KiB of CPU-internal work RAM, mirrored four times across
// 0x0000-0x1FFF.
const ramSize = 0x0800

// Interrupt vectors.
// https://en.wikipedia.org/wiki/Interrupts_in_65xx_processors
const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE
	vectorBRK   = vectorIRQ
)

const stackPage = 0x0100

// Mode is one of the 6502's addressing modes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type Mode uint8

const (
	modeDummy Mode = iota // reserved for unimplemented/illegal opcodes
	modeImplied
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirect // (zp,X)
	modeIndirectIndexed // (zp),Y
)

// Flags holds the seven addressable 6502 status bits as independent
// booleans. Bit 5 of the packed status byte has no corresponding flag: it
// reads back as 1 always. B is transient — it only has meaning at the
// instant status is pushed to the stack (BRK, PHP, NMI/IRQ entry) and is
// never itself "set" outside of that push.
type Flags struct {
	C bool // carry
	Z bool // zero
	I bool // interrupt disable
	D bool // decimal (accepted but never changes arithmetic, per hardware)
	V bool // overflow
	N bool // negative
}

// pack returns the status byte with the supplied break bit, per the NES
// convention that B only exists in the pushed byte.
func (f Flags) pack(brk bool) uint8 {
	var p uint8
	if f.C {
		p |= 1 << 0
	}
	if f.Z {
		p |= 1 << 1
	}
	if f.I {
		p |= 1 << 2
	}
	if f.D {
		p |= 1 << 3
	}
	if brk {
		p |= 1 << 4
	}
	p |= 1 << 5
	if f.V {
		p |= 1 << 6
	}
	if f.N {
		p |= 1 << 7
	}
	return p
}

// unpackFlags restores C, Z, I, D, V, N from a status byte. B is not a
// stored flag so it has no inverse here: RTI/PLP always leave B false in
// the restored register set.
func unpackFlags(p uint8) Flags {
	return Flags{
		C: p&(1<<0) != 0,
		Z: p&(1<<1) != 0,
		I: p&(1<<2) != 0,
		D: p&(1<<3) != 0,
		V: p&(1<<6) != 0,
		N: p&(1<<7) != 0,
	}
}

// ppuBus is the subset of the PPU's register-file contract the CPU bus
// needs. The concrete *ppu.PPU satisfies it.
type ppuBus interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, val uint8)
	WriteOAMByte(i uint8, val uint8)
}

// cartBus is the subset of the cartridge contract the CPU bus needs. The
// concrete *cartridge.Cartridge satisfies it.
type cartBus interface {
	ReadPRG(addr uint16) uint8
	WritePRG(addr uint16, val uint8)
}

// joypad is the controller contract the CPU bus needs at 0x4016.
type joypad interface {
	Read() uint8
	Write(val uint8)
}

// CPU is a MOS 6502 core wired to an NES bus.
type CPU struct {
	A, X, Y, S uint8
	PC         uint16
	Flags      Flags

	Cycles uint64 // total elapsed cycles, unbounded
	Stall  int    // cycles remaining to "do nothing" (OAM DMA)

	jumped      bool // set by the current instruction if it altered PC directly
	pageCrossed bool // set by addressing-mode resolution when a page boundary was crossed

	ram [ramSize]uint8

	ppu  ppuBus
	cart cartBus
	pad  joypad
}

// New constructs a CPU wired to the given PPU, cartridge and controller,
// and loads PC from the reset vector.
// https://www.nesdev.org/wiki/CPU_power_up_state
func New(cart cartBus, ppu ppuBus, pad joypad) *CPU {
	c := &CPU{
		S:    0xFD,
		cart: cart,
		ppu:  ppu,
		pad:  pad,
	}
	c.Flags.I = true
	c.PC = c.read16(vectorReset)
	return c
}

// Reset reasserts power-up flag state and reloads PC from the reset
// vector, without otherwise touching registers or RAM.
func (c *CPU) Reset() {
	c.Flags.I = true
	c.PC = c.read16(vectorReset)
}

// Read dispatches a CPU bus read to internal RAM, the PPU register file,
// the controller or the cartridge.
func (c *CPU) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return c.ram[addr%ramSize]
	case addr < 0x4000:
		return c.ppu.ReadRegister(0x2000 | (addr & 7))
	case addr == 0x4016:
		return c.pad.Read()
	case addr < 0x6000:
		return 0
	default:
		return c.cart.ReadPRG(addr)
	}
}

// Write dispatches a CPU bus write the same way Read does, plus the two
// write-only side effects at 0x4014 (OAM DMA) and 0x4016 (joypad strobe).
func (c *CPU) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		c.ram[addr%ramSize] = val
	case addr < 0x4000:
		c.ppu.WriteRegister(0x2000|(addr&7), val)
	case addr == 0x4014:
		c.oamDMA(val)
	case addr == 0x4016:
		c.pad.Write(val)
	case addr < 0x6000:
		// unmapped
	default:
		c.cart.WritePRG(addr, val)
	}
}

// oamDMA copies 256 bytes starting at page*0x100 into PPU OAM through
// ordinary bus reads, then stalls the CPU for 512 cycles.
func (c *CPU) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		c.ppu.WriteOAMByte(uint8(i), c.Read(base+uint16(i)))
	}
	c.Stall = 512
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.Read(addr))
	hi := uint16(c.Read(addr + 1))
	return hi<<8 | lo
}

// TriggerNMI services a non-maskable interrupt: the host driver calls this
// between CPU steps on the PPU's vblank edge. The CPU itself never polls
// for interrupts.
func (c *CPU) TriggerNMI() {
	c.pushAddress(c.PC)
	c.pushStack(c.Flags.pack(false))
	c.Flags.I = true
	c.PC = c.read16(vectorNMI)
}

func (c *CPU) stackAddr() uint16 {
	return stackPage + uint16(c.S)
}

func (c *CPU) pushStack(val uint8) {
	c.Write(c.stackAddr(), val)
	c.S--
}

func (c *CPU) popStack() uint8 {
	c.S++
	return c.Read(c.stackAddr())
}

func (c *CPU) pushAddress(addr uint16) {
	c.pushStack(uint8(addr >> 8))
	c.pushStack(uint8(addr))
}

func (c *CPU) popAddress() uint16 {
	lo := uint16(c.popStack())
	hi := uint16(c.popStack())
	return hi<<8 | lo
}

// Step executes a single instruction (or, while Stall > 0, consumes one
// stall cycle) and returns the number of CPU cycles it took. The host
// driver is expected to step the PPU three times for every cycle Step
// reports.
func (c *CPU) Step() uint8 {
	if c.Stall > 0 {
		c.Stall--
		c.Cycles++
		return 1
	}

	opByte := c.Read(c.PC)
	op := opcodeTable[opByte]

	c.jumped = false
	c.pageCrossed = false

	pcBefore := c.PC
	c.execute(op)

	cycles := op.cycles
	if !c.jumped {
		c.PC = pcBefore + uint16(op.bytes)
	} else if op.branch {
		cycles++
	}
	if c.pageCrossed && op.pagePenalty {
		cycles++
	}

	c.Cycles += uint64(cycles)
	return cycles
}

// String renders the diagnostic single-line trace format: PC, opcode byte,
// up to two operand bytes, mnemonic, then register state. Operand bytes
// beyond the instruction's length are rendered as spaces so every column
// lines up regardless of addressing mode.
func (c *CPU) String() string {
	opByte := c.Read(c.PC)
	op := opcodeTable[opByte]

	ops := [2]string{"  ", "  "}
	for i := uint8(0); i+1 < op.bytes && i < 2; i++ {
		ops[i] = fmt.Sprintf("%02X", c.Read(c.PC+1+uint16(i)))
	}

	return fmt.Sprintf("%04X  %02X %s %s  %-29s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		c.PC, opByte, ops[0], ops[1], op.mnemonic,
		c.A, c.X, c.Y, c.Flags.pack(false), c.S)
}
