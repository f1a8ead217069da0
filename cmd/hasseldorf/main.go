// Command hasseldorf boots a ROM image on the 6502 core and drives an
// SDL2 window showing the graphics device's frame buffer, forwarding
// keyboard events into the keyboard device's interrupt queue.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	_ "net/http/pprof"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jdisanti/hassel-emu/cpu"
	"github.com/jdisanti/hassel-emu/disassemble"
	"github.com/jdisanti/hassel-emu/graphics"
	"github.com/jdisanti/hassel-emu/keyboard"
	"github.com/jdisanti/hassel-emu/memory"
)

var (
	romPath = flag.String("rom", "", "Path to the ROM image to load at 0xE000-0xFFFF")
	scale   = flag.Int("scale", 1, "Scale factor to render the screen")
	debug   = flag.Bool("debug", false, "If true, log each decoded instruction before executing it")
	port    = flag.Int("port", 6060, "Port to run the pprof HTTP server on")
)

// Canonical Hasseldorf memory layout: RAM fills everything below the
// peripheral dispatch addresses, the graphics and keyboard devices
// each occupy one address, and ROM fills the top 8K.
const (
	romSize      = 0x2000
	romStart     = 0x10000 - romSize
	graphicsAddr = 0xDFFE
	keyboardAddr = 0xDFFF
)

func buildSystem(rom []uint8) (*cpu.CPU, *graphics.Device, *keyboard.Device, error) {
	if len(rom) != romSize {
		return nil, nil, nil, fmt.Errorf("ROM image is %d bytes, want exactly %d", len(rom), romSize)
	}

	gfx := graphics.New()
	kbd := keyboard.New()

	m, err := memory.NewBuilder().
		RAM(0x0000, graphicsAddr-1).
		Peripheral(graphicsAddr, graphicsAddr, gfx).
		Peripheral(keyboardAddr, keyboardAddr, kbd).
		ROM(romStart, 0xFFFF, rom).
		Build()
	if err != nil {
		return nil, nil, nil, err
	}

	return cpu.New(m), gfx, kbd, nil
}

func sdlKeyCode(sym sdl.Keycode) (uint8, bool) {
	if sym >= sdl.K_a && sym <= sdl.K_z {
		return uint8(sym-sdl.K_a) + 1, true
	}
	if sym >= sdl.K_0 && sym <= sdl.K_9 {
		return uint8(sym-sdl.K_0) + 0x30, true
	}
	return 0, false
}

func main() {
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe(fmt.Sprintf("localhost:%d", *port), nil))
	}()

	rom, err := ioutil.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("Can't load ROM: %v", err)
	}
	c, gfx, kbd, err := buildSystem(rom)
	if err != nil {
		log.Fatalf("Can't build memory map: %v", err)
	}

	var window *sdl.Window
	var renderer *sdl.Renderer
	var texture *sdl.Texture

	sdl.Main(func() {
		var wg sync.WaitGroup
		wg.Add(1)
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("Can't init SDL: %v", err)
			}
			var err error
			window, err = sdl.CreateWindow("hasseldorf",
				sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
				int32(graphics.ScreenWidthPixels * *scale), int32(graphics.ScreenHeightPixels * *scale),
				sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("Can't create window: %v", err)
			}
			renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
			if err != nil {
				log.Fatalf("Can't create renderer: %v", err)
			}
			texture, err = renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), sdl.TEXTUREACCESS_STREAMING,
				int32(graphics.ScreenWidthPixels), int32(graphics.ScreenHeightPixels))
			if err != nil {
				log.Fatalf("Can't create texture: %v", err)
			}
			wg.Done()
		})
		wg.Wait()
		defer func() {
			texture.Destroy()
			renderer.Destroy()
			window.Destroy()
			sdl.Quit()
		}()

		frame := 0
		for {
			if *debug {
				line, _ := disassemble.Step(c.Reg.PC, c.Memory())
				log.Printf("%s  A=%02X X=%02X Y=%02X SP=%02X P=%02X",
					line, c.Reg.A, c.Reg.X, c.Reg.Y, c.Reg.SP, c.Reg.Status.Value())
			}
			if _, err := c.Step(); err != nil {
				log.Fatalf("Step error: %v", err)
			}

			frame++
			if frame%1000 != 0 {
				continue
			}
			sdl.Do(func() {
				var quit bool
				for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
					switch e := event.(type) {
					case *sdl.QuitEvent:
						quit = true
					case *sdl.KeyboardEvent:
						code, ok := sdlKeyCode(e.Keysym.Sym)
						if !ok {
							break
						}
						if e.State == sdl.PRESSED {
							kbd.KeyDown(code)
						} else {
							kbd.KeyUp(code)
						}
					}
				}
				if quit {
					log.Fatal("quit requested")
				}

				img := gfx.Image()
				texture.Update(nil, img.Pix, img.Stride)
				renderer.Copy(texture, nil, nil)
				renderer.Present()
			})
		}
	})
}
