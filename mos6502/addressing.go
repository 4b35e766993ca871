package mos6502

// operandAddress resolves the effective address for a non-implied,
// non-accumulator addressing mode, relative to the opcode byte at c.PC.
// It also sets c.pageCrossed for the indexed modes that incur a cycle
// penalty on a page boundary crossing.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
func (c *CPU) operandAddress(mode Mode) uint16 {
	switch mode {
	case modeImmediate:
		return c.PC + 1
	case modeZeroPage:
		return uint16(c.Read(c.PC + 1))
	case modeZeroPageX:
		return uint16(c.Read(c.PC+1) + c.X)
	case modeZeroPageY:
		return uint16(c.Read(c.PC+1) + c.Y)
	case modeAbsolute:
		return c.read16(c.PC + 1)
	case modeAbsoluteX:
		base := c.read16(c.PC + 1)
		addr := base + uint16(c.X)
		c.pageCrossed = !samePage(base, addr)
		return addr
	case modeAbsoluteY:
		base := c.read16(c.PC + 1)
		addr := base + uint16(c.Y)
		c.pageCrossed = !samePage(base, addr)
		return addr
	case modeIndirect:
		return c.indirectRead16(c.read16(c.PC + 1))
	case modeIndexedIndirect:
		zp := c.Read(c.PC+1) + c.X
		return c.zeroPageRead16(zp)
	case modeIndirectIndexed:
		zp := c.Read(c.PC + 1)
		base := c.zeroPageRead16(zp)
		addr := base + uint16(c.Y)
		c.pageCrossed = !samePage(base, addr)
		return addr
	case modeRelative:
		offset := int8(c.Read(c.PC + 1))
		return uint16(int32(c.PC) + 2 + int32(offset))
	default:
		panic("mos6502: addressing mode has no effective address")
	}
}

// zeroPageRead16 reads a little-endian 16-bit pointer out of zero page,
// wrapping the high-byte fetch within page zero rather than spilling into
// page one.
func (c *CPU) zeroPageRead16(addr uint8) uint16 {
	lo := uint16(c.Read(uint16(addr)))
	hi := uint16(c.Read(uint16(addr + 1)))
	return hi<<8 | lo
}

// indirectRead16 implements the JMP ($xxFF) page-wrap bug: when the
// pointer's low byte is 0xFF, the high byte is fetched from the start of
// the same page instead of the following one.
func (c *CPU) indirectRead16(ptr uint16) uint16 {
	lo := uint16(c.Read(ptr))
	hiAddr := ptr + 1
	if ptr&0xFF == 0xFF {
		hiAddr = ptr & 0xFF00
	}
	hi := uint16(c.Read(hiAddr))
	return hi<<8 | lo
}

func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}
