package platform

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Terminal is the demo's default Platform: a terminal backend built
// on ultraviolet, grounded on the teacher's terminal.go/cmd/trophy
// usage of the same library. It doubles vertical resolution by
// packing two framebuffer rows into one terminal cell with the
// upper-half-block glyph (foreground = top pixel, background =
// bottom pixel), exactly as the teacher's Framebuffer.Draw does.
type Terminal struct {
	term   *uv.Terminal
	events <-chan uv.Event

	width, height int

	keys [KeyCount]bool

	resizedW, resizedH int
	resizeChanged      bool

	exit bool
}

// NewTerminal constructs an unopened terminal backend; call Init
// before using it.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Init opens the alternate screen, hides the cursor and sizes the
// terminal to width x height/2 rows (half-block doubling).
func (t *Terminal) Init(width, height int, title string) error {
	term := uv.DefaultTerminal()
	if err := term.Start(); err != nil {
		return fmt.Errorf("platform: start terminal: %w", err)
	}
	if err := term.EnterAltScreen(); err != nil {
		return fmt.Errorf("platform: enter alt screen: %w", err)
	}
	term.HideCursor()
	if err := term.Resize(width, height/2); err != nil {
		return fmt.Errorf("platform: resize terminal: %w", err)
	}

	t.term = term
	t.events = term.Events()
	t.width, t.height = width, height
	return nil
}

// Update blits framebuffer (row-major, packed 0x00RRGGBB, width*height
// entries) to the terminal, two source rows per terminal row.
func (t *Terminal) Update(framebuffer []uint32) error {
	scr := t.term.Screen()
	rows := t.height / 2
	for row := 0; row < rows; row++ {
		top := row * 2
		bot := top + 1
		for col := 0; col < t.width; col++ {
			fg := pixelColor(framebuffer, t.width, col, top)
			var bg color.Color
			if bot < t.height {
				bg = pixelColor(framebuffer, t.width, col, bot)
			}
			cell := uv.Cell{
				Content: "▀", // upper half block
				Width:   1,
				Style:   uv.Style{Fg: fg, Bg: bg},
			}
			scr.SetCell(col, row, cell)
		}
	}
	return t.term.Display(scr)
}

func pixelColor(fb []uint32, width, x, y int) color.Color {
	p := fb[y*width+x]
	r := uint8(p >> 16)
	g := uint8(p >> 8)
	b := uint8(p)
	return color.RGBA{r, g, b, 255}
}

// Dispatch drains pending terminal events without blocking, updating
// the key-state table and the resize/exit flags.
func (t *Terminal) Dispatch() {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.exit = true
				return
			}
			t.handleEvent(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handleEvent(ev uv.Event) {
	switch e := ev.(type) {
	case uv.KeyPressEvent:
		if code, ok := keyCode(e); ok {
			t.keys[code] = true
		}
	case uv.KeyReleaseEvent:
		if code, ok := keyCode(e); ok {
			t.keys[code] = false
		}
	case uv.WindowSizeEvent:
		t.resizedW, t.resizedH = e.Width, e.Height*2
		t.resizeChanged = true
	}
}

func keyCode(e interface{ String() string }) (int, bool) {
	s := e.String()
	switch s {
	case "esc":
		return KeyEscape, true
	case " ", "space":
		return KeySpace, true
	case "up":
		return KeyUp, true
	case "down":
		return KeyDown, true
	case "left":
		return KeyLeft, true
	case "right":
		return KeyRight, true
	}
	if len(s) == 1 {
		return int(s[0]), true
	}
	return 0, false
}

// KeyDown reports whether code is currently held.
func (t *Terminal) KeyDown(code int) bool {
	if code < 0 || code >= KeyCount {
		return false
	}
	return t.keys[code]
}

// Resized reports the most recent size the terminal reported, if any
// has arrived since the last call.
func (t *Terminal) Resized() (width, height int, changed bool) {
	changed = t.resizeChanged
	t.resizeChanged = false
	return t.resizedW, t.resizedH, changed
}

// ShouldExit reports whether the terminal's event stream closed or
// Exit was called.
func (t *Terminal) ShouldExit() bool { return t.exit }

// Exit requests a clean shutdown.
func (t *Terminal) Exit() { t.exit = true }

// Close restores the terminal to its original state.
func (t *Terminal) Close() error {
	if t.term == nil {
		return nil
	}
	t.term.ShowCursor()
	if err := t.term.ExitAltScreen(); err != nil {
		return fmt.Errorf("platform: exit alt screen: %w", err)
	}
	return t.term.Shutdown()
}
