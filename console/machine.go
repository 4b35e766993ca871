// Package console wires the CPU, PPU, cartridge and controller together
// into a running machine: the CPU memory map, the CPU:PPU clock ratio and
// the per-frame blit/NMI handoff to the host.
package console

import (
	"context"

	"github.com/kettleward/nescore/cartridge"
	"github.com/kettleward/nescore/controller"
	"github.com/kettleward/nescore/mos6502"
	"github.com/kettleward/nescore/ppu"
)

// Machine is a complete, runnable NES: the CPU, PPU, one cartridge and one
// controller, driven at the NES's native 3 PPU dots per CPU cycle.
type Machine struct {
	CPU  *mos6502.CPU
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge
	Pad1 *controller.Joypad

	onFrame func()
}

// New constructs a Machine from an already-loaded cartridge. onFrame, if
// non-nil, is called every time the PPU completes a frame (the blit
// trigger at scanline 240, cycle 257), before the next frame's CPU
// instructions run.
func New(cart *cartridge.Cartridge, onFrame func()) *Machine {
	m := &Machine{Cart: cart, Pad1: &controller.Joypad{}, onFrame: onFrame}
	m.PPU = ppu.New(cart, nmiBridge{m}, cart.VerticalMirroring())
	m.CPU = mos6502.New(cart, m.PPU, m.Pad1)
	return m
}

// nmiBridge adapts Machine to the ppu.nmiTrigger contract without exposing
// Machine's own method set to that interface directly.
type nmiBridge struct{ m *Machine }

func (b nmiBridge) TriggerNMI() { b.m.CPU.TriggerNMI() }

// Framebuffer returns the most recently rendered 256x240 frame.
func (m *Machine) Framebuffer() []ppu.Color {
	return m.PPU.Framebuffer()
}

// Step runs one CPU instruction and the matching 3 PPU dots per CPU
// cycle, delivering NMI and frame-complete callbacks at the dots the PPU
// reports them.
func (m *Machine) Step() {
	cycles := m.CPU.Step()
	for i := uint8(0); i < cycles*3; i++ {
		if m.PPU.Step() && m.onFrame != nil {
			m.onFrame()
		}
	}
}

// Run steps the machine continuously until ctx is cancelled.
func (m *Machine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			m.Step()
		}
	}
}
