// Package platform defines the capability interface rowan requires from a
// host multimedia backend: window and renderer creation, texture upload,
// font rendering, event polling, cursor and display queries, and a
// high-resolution time source.
//
// The production backend lives in platform/sdl2. Tests substitute their own
// implementations; any type satisfying [Host] works.
package platform

// WindowFlags is a bitmask of backend-neutral window creation flags.
type WindowFlags uint32

const (
	WindowFullscreen WindowFlags = 1 << iota // fullscreen at desktop resolution
	WindowBorderless                         // no window decorations
	WindowResizable                          // user-resizable
	WindowHidden                             // created hidden
	WindowMaximized                          // created maximized
	WindowMinimized                          // created minimized
	WindowHighDPI                            // request a high-pixel-density drawable
	WindowMouseFocus                         // window currently has mouse focus (query only)
)

// EventType identifies a kind of host event.
type EventType uint8

const (
	EventNone    EventType = iota // no event / unrecognized event
	EventQuit                     // the host requested application shutdown
	EventKeyDown                  // a key was pressed
)

// Key identifies a keyboard key in a host event. Only the keys the facade
// inspects are enumerated; backends report everything else as KeyUnknown.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
)

// Event is a single host event drained by PollEvent.
type Event struct {
	Type EventType
	Key  Key
}

// Rect is an axis-aligned rectangle in backend coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Point is a 2D point in backend coordinates.
type Point struct {
	X, Y float32
}

// Host is the root capability: subsystem lifecycle, resource creation,
// events, cursor, displays, and timing. All methods assume a single caller
// thread (the host toolkit's main thread).
type Host interface {
	// Init brings up the video and audio subsystems.
	Init() error
	// Quit shuts the subsystems down. Safe to call after a failed Init.
	Quit()

	CreateWindow(title string, width, height int32, flags WindowFlags) (Window, error)
	CreateRenderer(w Window) (Renderer, error)

	// InitText brings up the font engine; QuitText tears it down.
	InitText() error
	QuitText()
	CreateTextEngine(r Renderer) (TextEngine, error)

	// LoadImage decodes an image file into a surface in main memory.
	LoadImage(path string) (Surface, error)
	// OpenFont loads a font face at the given point size.
	OpenFont(path string, size float32) (Font, error)

	// PollEvent returns the next pending event, or ok=false when the queue
	// is empty. It never blocks.
	PollEvent() (ev Event, ok bool)

	ShowCursor() error
	HideCursor() error
	CursorVisible() bool
	// SetRelativeMouseMode hides the cursor and locks it to the window when
	// enabled.
	SetRelativeMouseMode(enabled bool) error

	DisplayCount() (int, error)
	DisplayBounds(display int) (Rect, error)
	DisplayRefreshRate(display int) (int32, error)
	DisplayName(display int) (string, error)

	// PerformanceFrequency reports ticks per second of the performance
	// counter. PerformanceCounter reports the current tick count.
	PerformanceFrequency() uint64
	PerformanceCounter() uint64
	// Delay suspends the calling thread for at least ms milliseconds.
	Delay(ms uint32)

	// BasePath reports the directory containing the application, terminated
	// with a path separator.
	BasePath() (string, error)
	// OpenURL opens a URL with the default system handler.
	OpenURL(url string) error
}

// Window is a created OS window.
type Window interface {
	Destroy()
	SetFullscreen(enabled bool) error
	SetBordered(bordered bool)
	SetTitle(title string)
	SetIcon(icon Surface)
	SetPosition(x, y int32)
	SetSize(width, height int32)
	SetMinSize(width, height int32)
	SetMaxSize(width, height int32)
	SetOpacity(opacity float32) error
	Raise()
	Maximize() error
	Minimize() error
	Restore() error
	Flags() WindowFlags
	Size() (width, height int32)
	Position() (x, y int32)
	DisplayScale() float32
	// DisplayIndex reports the display the window currently occupies.
	DisplayIndex() (int, error)
}

// Renderer is a 2D accelerated renderer attached to a window.
type Renderer interface {
	Destroy()
	SetDrawColor(r, g, b, a uint8) error
	Clear() error
	Present()
	// OutputSize reports the renderer output size in pixels, which differs
	// from the window size on high-DPI displays.
	OutputSize() (width, height int32, err error)
	CreateTextureFromSurface(s Surface) (Texture, error)
	// Copy draws src (nil = whole texture) into dst (nil = whole output).
	Copy(t Texture, src, dst *Rect) error
	// CopyRotated draws src into dst rotated angleDeg degrees clockwise
	// about center, given in dst-local coordinates.
	CopyRotated(t Texture, src, dst *Rect, angleDeg float64, center Point) error
}

// Texture is GPU-resident image data owned by a renderer.
type Texture interface {
	Destroy()
	Size() (width, height float32, err error)
	SetColorMod(r, g, b uint8) error
	SetAlphaMod(a uint8) error
}

// Surface is decoded image data in main memory.
type Surface interface {
	Free()
	Size() (width, height int32)
}

// Font is an open font face at a fixed size.
type Font interface {
	Close()
	HasGlyph(r rune) bool
	// MeasureText reports the laid-out width of text in pixels.
	MeasureText(text string) (int32, error)
	// RenderBlended rasterizes text with the given color into a surface.
	RenderBlended(text string, r, g, b, a uint8) (Surface, error)
	Height() int32
}

// TextEngine creates drawable text objects bound to a renderer.
type TextEngine interface {
	Destroy()
	CreateText(f Font, text string) (Text, error)
}

// Text is a laid-out piece of text ready to draw.
type Text interface {
	// SetColor sets the text color with components in [0, 1].
	SetColor(r, g, b, a float32) error
	Draw(x, y float32) error
	Destroy()
}
