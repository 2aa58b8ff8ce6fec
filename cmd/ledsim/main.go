// ledsim presents the 128x128 effect framebuffer in a terminal, two
// vertically stacked pixels per cell, and feeds keyboard state to the
// running effect as the button bitmask. It stands in for the display
// driver and input hardware of the real device.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	_ "github.com/matrixfx/matrixfx/effects" // register built-in effects
	"github.com/matrixfx/matrixfx/frame"
	"github.com/matrixfx/matrixfx/host"
	"github.com/matrixfx/matrixfx/pixel"
	"github.com/matrixfx/matrixfx/plugin"
)

const (
	logDir      = "logs"
	logFileName = "ledsim.log"
	maxLogSize  = 10 * 1024 * 1024

	// Terminals deliver key presses, not key state. A pressed key
	// asserts its button for this long, which reads as "held" while
	// the terminal auto-repeats.
	holdDuration = 150 * time.Millisecond
)

var (
	effectFlag = flag.String("effect", "plasma", "effect to load at startup")
	fpsFlag    = flag.Int("fps", 30, "target frame rate")
	listFlag   = flag.Bool("list", false, "list registered effects and exit")
	debugFlag  = flag.Bool("debug", false, "write a debug log under ./"+logDir)
)

// setupLogging routes the standard logger to a file when debug is
// enabled and discards it otherwise, so log calls never corrupt the
// terminal UI. Returns the open file, or nil when disabled.
func setupLogging(debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	logPath := filepath.Join(logDir, logFileName)

	// Rotate an oversized log aside instead of growing it forever
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("ledsim-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

// buttons tracks per-button assert deadlines to emulate held state
// from discrete key press events.
type buttons struct {
	deadline [8]time.Time
}

func (b *buttons) press(bit plugin.Inputs, now time.Time) {
	for i := 0; i < 8; i++ {
		if bit&(1<<i) != 0 {
			b.deadline[i] = now.Add(holdDuration)
		}
	}
}

func (b *buttons) mask(now time.Time) plugin.Inputs {
	var in plugin.Inputs
	for i := 0; i < 8; i++ {
		if now.Before(b.deadline[i]) {
			in |= 1 << i
		}
	}
	return in
}

func keyToButton(ev *tcell.EventKey) (plugin.Inputs, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return plugin.InputUp, true
	case tcell.KeyDown:
		return plugin.InputDown, true
	case tcell.KeyLeft:
		return plugin.InputLeft, true
	case tcell.KeyRight:
		return plugin.InputRight, true
	case tcell.KeyEnter:
		return plugin.InputStart, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return plugin.InputA, true
		case 'b', 'B':
			return plugin.InputB, true
		case ' ':
			return plugin.InputSelect, true
		}
	}
	return 0, false
}

// present draws the frame buffer onto the screen using the upper
// half-block: the cell's foreground carries the even row's pixel, the
// background the odd row's.
func present(screen tcell.Screen, buf *frame.Buffer) {
	w, h := screen.Size()
	cols := min(w, frame.Width)
	rows := min(h, frame.Height/2)

	pix := buf.Pix()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := pixel.Unpack(pix[frame.Offset(cx, cy*2)])
			bottom := pixel.Unpack(pix[frame.Offset(cx, cy*2+1)])
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	screen.Show()
}

func nextEffect(current string) string {
	names := plugin.Names()
	if len(names) == 0 {
		return current
	}
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func run() error {
	rt := host.New()
	if err := rt.LoadByName(*effectFlag); err != nil {
		return err
	}
	defer rt.Unload()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	var keys buttons
	interval := time.Second / time.Duration(max(*fpsFlag, 1))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("ledsim: running %q at %d fps", rt.EffectName(), *fpsFlag)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					close(quit)
					return nil
				}
				if ev.Key() == tcell.KeyTab {
					name := nextEffect(rt.EffectName())
					rt.Unload()
					if err := rt.LoadByName(name); err != nil {
						close(quit)
						return err
					}
					log.Printf("ledsim: switched to %q", name)
					continue
				}
				if bit, ok := keyToButton(ev); ok {
					keys.press(bit, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := rt.Update(keys.mask(time.Now())); err != nil {
				close(quit)
				return err
			}
			present(screen, rt.Frame())
		}
	}
}

func main() {
	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nledsim crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if *listFlag {
		fmt.Println(strings.Join(plugin.Names(), "\n"))
		return
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ledsim: %v\n", err)
		os.Exit(1)
	}
}
