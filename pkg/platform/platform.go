// Package platform specifies and implements the demo's window/event
// collaborator: spec.md treats this as an external interface, naming
// only its shape (init/update/dispatch/keys/exit), so the core
// render pipeline never depends on a concrete backend.
package platform

// KeyCount is the size of the key-state table spec.md names
// (screen_keys[0..511]): a flat "is this key currently held" array
// indexed by platform-specific key code, not an enum of named keys.
const KeyCount = 512

// Key codes for the demo driver's bindings. Printable keys are
// reported at their ASCII rune value (e.g. ' ' = 32); keys with no
// ASCII representation get an index past the printable range,
// following mini3d.c's original convention of a flat key-state array
// indexed by an extended code space rather than a named-key enum.
const (
	KeyEscape = 27
	KeySpace  = 32
)

const (
	KeyUp = 256 + iota
	KeyDown
	KeyLeft
	KeyRight
)

// Platform is the demo's window/input collaborator. It owns the
// actual window or terminal surface; cmd/mini3d polls it once per
// frame and never touches a backend type directly.
type Platform interface {
	// Init opens the window/terminal surface at the given size.
	Init(width, height int, title string) error

	// Update presents framebuffer (packed 0x00RRGGBB pixels,
	// row-major, width*height long) to the surface.
	Update(framebuffer []uint32) error

	// Dispatch drains pending input events into the key-state table
	// and the resize/exit flags. It never blocks.
	Dispatch()

	// KeyDown reports whether the key at code is currently held.
	// code is a platform-specific index into a KeyCount-sized table;
	// out-of-range codes are always reported as not held.
	KeyDown(code int) bool

	// Resized reports the latest width/height reported by the
	// surface, which may differ from what Init was called with.
	Resized() (width, height int, changed bool)

	// ShouldExit reports whether the user closed the window or
	// requested exit (e.g. the demo's Esc binding).
	ShouldExit() bool

	// Exit requests a clean shutdown: ShouldExit reports true from
	// then on.
	Exit()

	// Close releases the surface. Safe to call once after the main
	// loop stops.
	Close() error
}
