package mos6502

// opcode is one entry of the 256-slot instruction table: the instruction
// to dispatch to, its addressing mode, its total length in bytes
// (including the opcode byte itself), its base cycle cost, whether a page
// crossing during address resolution adds a cycle, and whether it's a
// conditional branch (which adds a cycle when taken, on top of any page
// penalty).
type opcode struct {
	id          uint8
	mnemonic    string
	mode        Mode
	bytes       uint8
	cycles      uint8
	pagePenalty bool
	branch      bool
}

// officialOpcodes enumerates every legal 6502 opcode byte. Opcode bytes not
// present here are unofficial; opcodeTable fills them with an illegal
// placeholder entry so the instruction table always has 256 slots, per the
// NES's actual opcode space.
var officialOpcodes = map[uint8]opcode{
	// ADC
	0x69: {idADC, "ADC", modeImmediate, 2, 2, false, false},
	0x65: {idADC, "ADC", modeZeroPage, 2, 3, false, false},
	0x75: {idADC, "ADC", modeZeroPageX, 2, 4, false, false},
	0x6D: {idADC, "ADC", modeAbsolute, 3, 4, false, false},
	0x7D: {idADC, "ADC", modeAbsoluteX, 3, 4, true, false},
	0x79: {idADC, "ADC", modeAbsoluteY, 3, 4, true, false},
	0x61: {idADC, "ADC", modeIndexedIndirect, 2, 6, false, false},
	0x71: {idADC, "ADC", modeIndirectIndexed, 2, 5, true, false},
	// AND
	0x29: {idAND, "AND", modeImmediate, 2, 2, false, false},
	0x25: {idAND, "AND", modeZeroPage, 2, 3, false, false},
	0x35: {idAND, "AND", modeZeroPageX, 2, 4, false, false},
	0x2D: {idAND, "AND", modeAbsolute, 3, 4, false, false},
	0x3D: {idAND, "AND", modeAbsoluteX, 3, 4, true, false},
	0x39: {idAND, "AND", modeAbsoluteY, 3, 4, true, false},
	0x21: {idAND, "AND", modeIndexedIndirect, 2, 6, false, false},
	0x31: {idAND, "AND", modeIndirectIndexed, 2, 5, true, false},
	// ASL
	0x0A: {idASL, "ASL", modeAccumulator, 1, 2, false, false},
	0x06: {idASL, "ASL", modeZeroPage, 2, 5, false, false},
	0x16: {idASL, "ASL", modeZeroPageX, 2, 6, false, false},
	0x0E: {idASL, "ASL", modeAbsolute, 3, 6, false, false},
	0x1E: {idASL, "ASL", modeAbsoluteX, 3, 7, false, false},
	// branches
	0x90: {idBCC, "BCC", modeRelative, 2, 2, true, true},
	0xB0: {idBCS, "BCS", modeRelative, 2, 2, true, true},
	0xF0: {idBEQ, "BEQ", modeRelative, 2, 2, true, true},
	0x30: {idBMI, "BMI", modeRelative, 2, 2, true, true},
	0xD0: {idBNE, "BNE", modeRelative, 2, 2, true, true},
	0x10: {idBPL, "BPL", modeRelative, 2, 2, true, true},
	0x50: {idBVC, "BVC", modeRelative, 2, 2, true, true},
	0x70: {idBVS, "BVS", modeRelative, 2, 2, true, true},
	// BIT
	0x24: {idBIT, "BIT", modeZeroPage, 2, 3, false, false},
	0x2C: {idBIT, "BIT", modeAbsolute, 3, 4, false, false},
	// BRK
	0x00: {idBRK, "BRK", modeImplied, 1, 7, false, false},
	// flag clear/set
	0x18: {idCLC, "CLC", modeImplied, 1, 2, false, false},
	0xD8: {idCLD, "CLD", modeImplied, 1, 2, false, false},
	0x58: {idCLI, "CLI", modeImplied, 1, 2, false, false},
	0xB8: {idCLV, "CLV", modeImplied, 1, 2, false, false},
	0x38: {idSEC, "SEC", modeImplied, 1, 2, false, false},
	0xF8: {idSED, "SED", modeImplied, 1, 2, false, false},
	0x78: {idSEI, "SEI", modeImplied, 1, 2, false, false},
	// CMP
	0xC9: {idCMP, "CMP", modeImmediate, 2, 2, false, false},
	0xC5: {idCMP, "CMP", modeZeroPage, 2, 3, false, false},
	0xD5: {idCMP, "CMP", modeZeroPageX, 2, 4, false, false},
	0xCD: {idCMP, "CMP", modeAbsolute, 3, 4, false, false},
	0xDD: {idCMP, "CMP", modeAbsoluteX, 3, 4, true, false},
	0xD9: {idCMP, "CMP", modeAbsoluteY, 3, 4, true, false},
	0xC1: {idCMP, "CMP", modeIndexedIndirect, 2, 6, false, false},
	0xD1: {idCMP, "CMP", modeIndirectIndexed, 2, 5, true, false},
	// CPX / CPY
	0xE0: {idCPX, "CPX", modeImmediate, 2, 2, false, false},
	0xE4: {idCPX, "CPX", modeZeroPage, 2, 3, false, false},
	0xEC: {idCPX, "CPX", modeAbsolute, 3, 4, false, false},
	0xC0: {idCPY, "CPY", modeImmediate, 2, 2, false, false},
	0xC4: {idCPY, "CPY", modeZeroPage, 2, 3, false, false},
	0xCC: {idCPY, "CPY", modeAbsolute, 3, 4, false, false},
	// DEC / DEX / DEY
	0xC6: {idDEC, "DEC", modeZeroPage, 2, 5, false, false},
	0xD6: {idDEC, "DEC", modeZeroPageX, 2, 6, false, false},
	0xCE: {idDEC, "DEC", modeAbsolute, 3, 6, false, false},
	0xDE: {idDEC, "DEC", modeAbsoluteX, 3, 7, false, false},
	0xCA: {idDEX, "DEX", modeImplied, 1, 2, false, false},
	0x88: {idDEY, "DEY", modeImplied, 1, 2, false, false},
	// EOR
	0x49: {idEOR, "EOR", modeImmediate, 2, 2, false, false},
	0x45: {idEOR, "EOR", modeZeroPage, 2, 3, false, false},
	0x55: {idEOR, "EOR", modeZeroPageX, 2, 4, false, false},
	0x4D: {idEOR, "EOR", modeAbsolute, 3, 4, false, false},
	0x5D: {idEOR, "EOR", modeAbsoluteX, 3, 4, true, false},
	0x59: {idEOR, "EOR", modeAbsoluteY, 3, 4, true, false},
	0x41: {idEOR, "EOR", modeIndexedIndirect, 2, 6, false, false},
	0x51: {idEOR, "EOR", modeIndirectIndexed, 2, 5, true, false},
	// INC / INX / INY
	0xE6: {idINC, "INC", modeZeroPage, 2, 5, false, false},
	0xF6: {idINC, "INC", modeZeroPageX, 2, 6, false, false},
	0xEE: {idINC, "INC", modeAbsolute, 3, 6, false, false},
	0xFE: {idINC, "INC", modeAbsoluteX, 3, 7, false, false},
	0xE8: {idINX, "INX", modeImplied, 1, 2, false, false},
	0xC8: {idINY, "INY", modeImplied, 1, 2, false, false},
	// JMP / JSR
	0x4C: {idJMP, "JMP", modeAbsolute, 3, 3, false, false},
	0x6C: {idJMP, "JMP", modeIndirect, 3, 5, false, false},
	0x20: {idJSR, "JSR", modeAbsolute, 3, 6, false, false},
	// LDA
	0xA9: {idLDA, "LDA", modeImmediate, 2, 2, false, false},
	0xA5: {idLDA, "LDA", modeZeroPage, 2, 3, false, false},
	0xB5: {idLDA, "LDA", modeZeroPageX, 2, 4, false, false},
	0xAD: {idLDA, "LDA", modeAbsolute, 3, 4, false, false},
	0xBD: {idLDA, "LDA", modeAbsoluteX, 3, 4, true, false},
	0xB9: {idLDA, "LDA", modeAbsoluteY, 3, 4, true, false},
	0xA1: {idLDA, "LDA", modeIndexedIndirect, 2, 6, false, false},
	0xB1: {idLDA, "LDA", modeIndirectIndexed, 2, 5, true, false},
	// LDX
	0xA2: {idLDX, "LDX", modeImmediate, 2, 2, false, false},
	0xA6: {idLDX, "LDX", modeZeroPage, 2, 3, false, false},
	0xB6: {idLDX, "LDX", modeZeroPageY, 2, 4, false, false},
	0xAE: {idLDX, "LDX", modeAbsolute, 3, 4, false, false},
	0xBE: {idLDX, "LDX", modeAbsoluteY, 3, 4, true, false},
	// LDY
	0xA0: {idLDY, "LDY", modeImmediate, 2, 2, false, false},
	0xA4: {idLDY, "LDY", modeZeroPage, 2, 3, false, false},
	0xB4: {idLDY, "LDY", modeZeroPageX, 2, 4, false, false},
	0xAC: {idLDY, "LDY", modeAbsolute, 3, 4, false, false},
	0xBC: {idLDY, "LDY", modeAbsoluteX, 3, 4, true, false},
	// LSR
	0x4A: {idLSR, "LSR", modeAccumulator, 1, 2, false, false},
	0x46: {idLSR, "LSR", modeZeroPage, 2, 5, false, false},
	0x56: {idLSR, "LSR", modeZeroPageX, 2, 6, false, false},
	0x4E: {idLSR, "LSR", modeAbsolute, 3, 6, false, false},
	0x5E: {idLSR, "LSR", modeAbsoluteX, 3, 7, false, false},
	// NOP
	0xEA: {idNOP, "NOP", modeImplied, 1, 2, false, false},
	// ORA
	0x09: {idORA, "ORA", modeImmediate, 2, 2, false, false},
	0x05: {idORA, "ORA", modeZeroPage, 2, 3, false, false},
	0x15: {idORA, "ORA", modeZeroPageX, 2, 4, false, false},
	0x0D: {idORA, "ORA", modeAbsolute, 3, 4, false, false},
	0x1D: {idORA, "ORA", modeAbsoluteX, 3, 4, true, false},
	0x19: {idORA, "ORA", modeAbsoluteY, 3, 4, true, false},
	0x01: {idORA, "ORA", modeIndexedIndirect, 2, 6, false, false},
	0x11: {idORA, "ORA", modeIndirectIndexed, 2, 5, true, false},
	// stack
	0x48: {idPHA, "PHA", modeImplied, 1, 3, false, false},
	0x08: {idPHP, "PHP", modeImplied, 1, 3, false, false},
	0x68: {idPLA, "PLA", modeImplied, 1, 4, false, false},
	0x28: {idPLP, "PLP", modeImplied, 1, 4, false, false},
	// ROL / ROR
	0x2A: {idROL, "ROL", modeAccumulator, 1, 2, false, false},
	0x26: {idROL, "ROL", modeZeroPage, 2, 5, false, false},
	0x36: {idROL, "ROL", modeZeroPageX, 2, 6, false, false},
	0x2E: {idROL, "ROL", modeAbsolute, 3, 6, false, false},
	0x3E: {idROL, "ROL", modeAbsoluteX, 3, 7, false, false},
	0x6A: {idROR, "ROR", modeAccumulator, 1, 2, false, false},
	0x66: {idROR, "ROR", modeZeroPage, 2, 5, false, false},
	0x76: {idROR, "ROR", modeZeroPageX, 2, 6, false, false},
	0x6E: {idROR, "ROR", modeAbsolute, 3, 6, false, false},
	0x7E: {idROR, "ROR", modeAbsoluteX, 3, 7, false, false},
	// RTI / RTS
	0x40: {idRTI, "RTI", modeImplied, 1, 6, false, false},
	0x60: {idRTS, "RTS", modeImplied, 1, 6, false, false},
	// SBC
	0xE9: {idSBC, "SBC", modeImmediate, 2, 2, false, false},
	0xE5: {idSBC, "SBC", modeZeroPage, 2, 3, false, false},
	0xF5: {idSBC, "SBC", modeZeroPageX, 2, 4, false, false},
	0xED: {idSBC, "SBC", modeAbsolute, 3, 4, false, false},
	0xFD: {idSBC, "SBC", modeAbsoluteX, 3, 4, true, false},
	0xF9: {idSBC, "SBC", modeAbsoluteY, 3, 4, true, false},
	0xE1: {idSBC, "SBC", modeIndexedIndirect, 2, 6, false, false},
	0xF1: {idSBC, "SBC", modeIndirectIndexed, 2, 5, true, false},
	// STA
	0x85: {idSTA, "STA", modeZeroPage, 2, 3, false, false},
	0x95: {idSTA, "STA", modeZeroPageX, 2, 4, false, false},
	0x8D: {idSTA, "STA", modeAbsolute, 3, 4, false, false},
	0x9D: {idSTA, "STA", modeAbsoluteX, 3, 5, false, false},
	0x99: {idSTA, "STA", modeAbsoluteY, 3, 5, false, false},
	0x81: {idSTA, "STA", modeIndexedIndirect, 2, 6, false, false},
	0x91: {idSTA, "STA", modeIndirectIndexed, 2, 6, false, false},
	// STX / STY
	0x86: {idSTX, "STX", modeZeroPage, 2, 3, false, false},
	0x96: {idSTX, "STX", modeZeroPageY, 2, 4, false, false},
	0x8E: {idSTX, "STX", modeAbsolute, 3, 4, false, false},
	0x84: {idSTY, "STY", modeZeroPage, 2, 3, false, false},
	0x94: {idSTY, "STY", modeZeroPageX, 2, 4, false, false},
	0x8C: {idSTY, "STY", modeAbsolute, 3, 4, false, false},
	// register transfers
	0xAA: {idTAX, "TAX", modeImplied, 1, 2, false, false},
	0xA8: {idTAY, "TAY", modeImplied, 1, 2, false, false},
	0xBA: {idTSX, "TSX", modeImplied, 1, 2, false, false},
	0x8A: {idTXA, "TXA", modeImplied, 1, 2, false, false},
	0x9A: {idTXS, "TXS", modeImplied, 1, 2, false, false},
	0x98: {idTYA, "TYA", modeImplied, 1, 2, false, false},
}

// opcodeTable is the full 256-entry instruction table. Slots not present in
// officialOpcodes are unofficial opcodes: per spec they occupy a table
// entry for length/timing purposes only. This core gives each one a
// one-byte, two-cycle placeholder so the instruction stream always makes
// forward progress; its handler only logs a diagnostic and never touches
// CPU state.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcode {
	var t [256]opcode
	for i := range t {
		t[i] = opcode{idIllegal, "ILL", modeDummy, 1, 2, false, false}
	}
	for code, op := range officialOpcodes {
		t[code] = op
	}
	return t
}
