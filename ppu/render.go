package ppu

// renderBackground draws one full 256x240 frame of the nametable
// currently selected by PPUCTRL into the framebuffer. Scrolling is
// treated as a simple per-axis pixel offset into the active nametable,
// wrapping at its edges, rather than reproducing the PPU's loopy-style
// coarse/fine scroll register.
func (p *PPU) renderBackground() {
	baseIndex := int((p.nametableBase - 0x2000) / 0x400) // which of the 4 logical screens
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			srcX := (x + int(p.scrollX)) % 256
			srcY := (y + int(p.scrollY)) % 240

			ntCol := baseIndex%2*256 + srcX
			ntRow := baseIndex/2*240 + srcY
			tileCol := (ntCol % 256) / 8
			tileRow := (ntRow % 240) / 8
			ntSelect := uint16((ntRow/240)*2 + (ntCol / 256))

			ntBase := 0x2000 + ntSelect*0x400
			tileIndex := p.readMemory(ntBase + uint16(tileRow*32+tileCol))

			attrByte := p.readMemory(ntBase + 0x3C0 + uint16((tileRow/4)*8+(tileCol/4)))
			blockX, blockY := (tileCol%4)/2, (tileRow%4)/2
			shift := uint((blockY*2 + blockX) * 2)
			paletteGroup := (attrByte >> shift) & 0x03

			fineX, fineY := srcX%8, srcY%8
			lo := p.readMemory(p.bgPatternBase + uint16(tileIndex)*16 + uint16(fineY))
			hi := p.readMemory(p.bgPatternBase + uint16(tileIndex)*16 + uint16(fineY) + 8)
			bit := uint(7 - fineX)
			colorBits := (lo>>bit)&1 | ((hi>>bit)&1)<<1

			if colorBits == 0 {
				p.framebuffer[y*width+x] = p.backgroundColor()
				continue
			}
			paletteAddr := 0x3F00 + uint16(paletteGroup)*4 + uint16(colorBits)
			p.framebuffer[y*width+x] = nesPalette[p.readMemory(paletteAddr)&0x3F]
		}
	}
}

func (p *PPU) backgroundColor() Color {
	return nesPalette[p.readMemory(0x3F00)&0x3F]
}

// renderSprites draws the 64 OAM entries back-to-front so lower indices
// naturally paint over higher ones, honouring the behind-background
// priority bit and recording sprite-zero hit against the pixel the
// background renderer already produced.
func (p *PPU) renderSprites() {
	for i := 63; i >= 0; i-- {
		entry := OAMFromBytes(p.oam[i*4 : i*4+4])
		if entry.y >= 0xEF {
			continue
		}
		top := int(entry.y) + 1
		p.drawSprite(entry, top, i == 0)
	}
}

func (p *PPU) drawSprite(s oam, top int, isSpriteZero bool) {
	for row := 0; row < 8; row++ {
		py := top + row
		if py < 0 || py >= height {
			continue
		}
		fineY := row
		if s.flipV {
			fineY = 7 - row
		}
		lo := p.readMemory(p.spritePatternBase + uint16(s.tileId)*16 + uint16(fineY))
		hi := p.readMemory(p.spritePatternBase + uint16(s.tileId)*16 + uint16(fineY) + 8)

		for col := 0; col < 8; col++ {
			px := int(s.x) + col
			if px < 0 || px >= width {
				continue
			}
			fineX := col
			if s.flipH {
				fineX = 7 - col
			}
			bit := uint(7 - fineX)
			colorBits := (lo>>bit)&1 | ((hi>>bit)&1)<<1
			if colorBits == 0 {
				continue
			}

			if isSpriteZero && p.showBackground && (px >= 8 || (p.showLeftBG && p.showLeftSprites)) {
				p.status |= statusSpriteZeroHit
			}

			if s.renderP == BACK && p.backgroundOpaque(px, py) {
				continue
			}

			paletteAddr := 0x3F10 + uint16(s.palette)*4 + uint16(colorBits)
			p.framebuffer[py*width+px] = nesPalette[p.readMemory(paletteAddr)&0x3F]
		}
	}
}

// backgroundOpaque reports whether the background pixel already painted
// at (x, y) was non-transparent, used to resolve behind-background
// sprite priority.
func (p *PPU) backgroundOpaque(x, y int) bool {
	return p.framebuffer[y*width+x] != p.backgroundColor()
}
