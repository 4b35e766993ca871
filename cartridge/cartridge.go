package cartridge

// Cartridge implements the mapper 0 (NROM) memory model: fixed PRG-ROM at
// 0x8000-0xFFFF (mirrored if only one 16 KiB bank is present), fixed
// CHR-ROM at 0x0000-0x1FFF on the PPU bus, and 8 KiB of PRG-RAM at
// 0x6000-0x7FFF. https://www.nesdev.org/wiki/NROM
type Cartridge struct {
	prg               []byte // 16384 or 32768 bytes
	chr               []byte // 8192 bytes (0 if the board uses CHR-RAM)
	prgRAM            []byte // 8192 bytes at 0x6000-0x7FFF
	verticalMirroring bool
}

// NewDummy returns a Cartridge with the given CHR/PRG sizes and mirroring
// mode, for use in tests that don't need a real iNES file.
func NewDummy(prgBanks, chrBanks int, verticalMirroring bool) *Cartridge {
	return &Cartridge{
		prg:               make([]byte, prgBanks*prgBlockSize),
		chr:               make([]byte, chrBanks*chrBlockSize),
		prgRAM:            make([]byte, prgRAMSize),
		verticalMirroring: verticalMirroring,
	}
}

// VerticalMirroring reports the cartridge's nametable mirroring mode, taken
// from iNES header flags6 bit 0.
func (c *Cartridge) VerticalMirroring() bool {
	return c.verticalMirroring
}

// ReadPRG reads a byte from the CPU-visible cartridge space
// (0x6000-0xFFFF).
func (c *Cartridge) ReadPRG(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return c.prgRAM[addr%prgRAMSize]
	case len(c.prg) > prgBlockSize:
		return c.prg[addr-0x8000]
	default:
		return c.prg[(addr-0x8000)%prgBlockSize]
	}
}

// WritePRG writes a byte to the CPU-visible cartridge space. PRG-ROM is
// never modified: every write, including one at 0x8000 and above, lands in
// PRG-RAM at addr modulo 8192.
func (c *Cartridge) WritePRG(addr uint16, val uint8) {
	c.prgRAM[addr%prgRAMSize] = val
}

// ReadCHR reads a byte of pattern data from the PPU-visible cartridge
// space (0x0000-0x1FFF).
func (c *Cartridge) ReadCHR(addr uint16) uint8 {
	if len(c.chr) == 0 {
		return 0
	}
	return c.chr[addr%uint16(len(c.chr))]
}

// WriteCHR writes a byte of pattern data into the CHR bank; mapper 0 does
// not write-protect it. A cartridge with no CHR data (a CHR-RAM board) has
// no bank to write to here: the write is dropped and ReadCHR keeps
// returning 0.
func (c *Cartridge) WriteCHR(addr uint16, val uint8) {
	if len(c.chr) == 0 {
		return
	}
	c.chr[addr%uint16(len(c.chr))] = val
}
