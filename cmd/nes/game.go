package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kettleward/nescore/cartridge"
	"github.com/kettleward/nescore/console"
	"github.com/kettleward/nescore/controller"
)

// keyMap is the controller layout: arrow keys for the D-pad, X/Z for
// A/B, S for Start, A for Select.
var keyMap = map[ebiten.Key]controller.Button{
	ebiten.KeyArrowUp:    controller.Up,
	ebiten.KeyArrowDown:  controller.Down,
	ebiten.KeyArrowLeft:  controller.Left,
	ebiten.KeyArrowRight: controller.Right,
	ebiten.KeyX:          controller.A,
	ebiten.KeyZ:          controller.B,
	ebiten.KeyS:          controller.Start,
	ebiten.KeyA:          controller.Select,
}

// game adapts a console.Machine to ebiten.Game. The machine runs on its
// own goroutine (see main.go); game only reads the latest framebuffer,
// guarded by mu against a concurrent frame-complete callback, and polls
// keys into Pad1 without taking mu.
type game struct {
	machine *console.Machine

	mu     sync.Mutex
	pixels []byte // RGBA, refreshed on every completed frame
}

func newGame(cart *cartridge.Cartridge) *game {
	g := &game{pixels: make([]byte, 256*240*4)}
	g.machine = console.New(cart, g.captureFrame)
	return g
}

// captureFrame is called by console.Machine on the PPU's blit trigger, from
// the emulation goroutine.
func (g *game) captureFrame() {
	fb := g.machine.Framebuffer()
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, c := range fb {
		g.pixels[i*4+0] = c.R
		g.pixels[i*4+1] = c.G
		g.pixels[i*4+2] = c.B
		g.pixels[i*4+3] = 0xFF
	}
}

func (g *game) Update() error {
	for key, button := range keyMap {
		g.machine.Pad1.SetButton(button, ebiten.IsKeyPressed(key))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()
	screen.WritePixels(g.pixels)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 256, 240
}
