// Command nes is the host front end: it loads an iNES ROM, wires a
// console.Machine, runs the emulation loop on a goroutine and hands the
// window/input loop to ebiten.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kettleward/nescore/cartridge"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: nes <path-to-rom.nes>")
	}

	cart, err := cartridge.Load(flag.Arg(0))
	if cart == nil {
		log.Fatalf("loading ROM: %v", err)
	}
	if err != nil {
		// A bad iNES signature still yields a cartridge; keep going.
		log.Printf("loading ROM: %v", err)
	}

	game := newGame(cart)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go game.machine.Run(ctx)

	ebiten.SetWindowSize(256*2, 240*2)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
