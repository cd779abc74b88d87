// Package sdl2 implements the platform capability interfaces on SDL2 via
// go-sdl2, with SDL2_image for image decoding and SDL2_ttf for fonts.
package sdl2

import (
	"errors"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/phanxgames/rowan/platform"
)

// windowFlagPairs maps backend-neutral window flags to their SDL
// counterparts, in both directions.
var windowFlagPairs = []struct {
	neutral platform.WindowFlags
	sdl     uint32
}{
	{platform.WindowFullscreen, sdl.WINDOW_FULLSCREEN_DESKTOP},
	{platform.WindowBorderless, sdl.WINDOW_BORDERLESS},
	{platform.WindowResizable, sdl.WINDOW_RESIZABLE},
	{platform.WindowHidden, sdl.WINDOW_HIDDEN},
	{platform.WindowMaximized, sdl.WINDOW_MAXIMIZED},
	{platform.WindowMinimized, sdl.WINDOW_MINIMIZED},
	{platform.WindowHighDPI, sdl.WINDOW_ALLOW_HIGHDPI},
	{platform.WindowMouseFocus, sdl.WINDOW_MOUSE_FOCUS},
}

func toSDLFlags(flags platform.WindowFlags) uint32 {
	var out uint32
	for _, pair := range windowFlagPairs {
		if flags&pair.neutral != 0 {
			out |= pair.sdl
		}
	}
	return out
}

func fromSDLFlags(flags uint32) platform.WindowFlags {
	var out platform.WindowFlags
	for _, pair := range windowFlagPairs {
		if flags&pair.sdl != 0 {
			out |= pair.neutral
		}
	}
	return out
}

// Host is the SDL2 backend. The zero value is ready to use; all methods
// must be called from the main OS thread, as SDL requires.
type Host struct{}

// NewHost returns an SDL2-backed host.
func NewHost() *Host {
	return &Host{}
}

// Init brings up the SDL video and audio subsystems.
func (h *Host) Init() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
}

// Quit shuts SDL down.
func (h *Host) Quit() {
	sdl.Quit()
}

func (h *Host) CreateWindow(title string, width, height int32, flags platform.WindowFlags) (platform.Window, error) {
	win, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		width, height, toSDLFlags(flags))
	if err != nil {
		return nil, err
	}
	return &window{win: win}, nil
}

func (h *Host) CreateRenderer(w platform.Window) (platform.Renderer, error) {
	win, ok := w.(*window)
	if !ok {
		return nil, errors.New("window was not created by this backend")
	}
	ren, err := sdl.CreateRenderer(win.win, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}
	return &renderer{ren: ren}, nil
}

// InitText brings up SDL2_ttf.
func (h *Host) InitText() error {
	if ttf.WasInit() {
		return nil
	}
	return ttf.Init()
}

// QuitText tears SDL2_ttf down.
func (h *Host) QuitText() {
	if ttf.WasInit() {
		ttf.Quit()
	}
}

func (h *Host) CreateTextEngine(r platform.Renderer) (platform.TextEngine, error) {
	ren, ok := r.(*renderer)
	if !ok {
		return nil, errors.New("renderer was not created by this backend")
	}
	return &textEngine{ren: ren.ren}, nil
}

// LoadImage decodes an image file with SDL2_image.
func (h *Host) LoadImage(path string) (platform.Surface, error) {
	s, err := img.Load(path)
	if err != nil {
		return nil, err
	}
	return &surface{s: s}, nil
}

// OpenFont loads a font face with SDL2_ttf. SDL2_ttf takes integer point
// sizes, so size is truncated.
func (h *Host) OpenFont(path string, size float32) (platform.Font, error) {
	f, err := ttf.OpenFont(path, int(size))
	if err != nil {
		return nil, err
	}
	return &font{f: f}, nil
}

// PollEvent drains one SDL event, translating quit requests and key
// presses the facade inspects. Other events are reported as EventNone so
// the queue still drains.
func (h *Host) PollEvent() (platform.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return platform.Event{}, false
	}

	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return platform.Event{Type: platform.EventQuit}, true
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			key := platform.KeyUnknown
			if e.Keysym.Sym == sdl.K_ESCAPE {
				key = platform.KeyEscape
			}
			return platform.Event{Type: platform.EventKeyDown, Key: key}, true
		}
	}
	return platform.Event{Type: platform.EventNone}, true
}

func (h *Host) ShowCursor() error {
	_, err := sdl.ShowCursor(sdl.ENABLE)
	return err
}

func (h *Host) HideCursor() error {
	_, err := sdl.ShowCursor(sdl.DISABLE)
	return err
}

func (h *Host) CursorVisible() bool {
	state, err := sdl.ShowCursor(sdl.QUERY)
	return err == nil && state == sdl.ENABLE
}

func (h *Host) SetRelativeMouseMode(enabled bool) error {
	return sdl.SetRelativeMouseMode(enabled)
}

func (h *Host) DisplayCount() (int, error) {
	return sdl.GetNumVideoDisplays()
}

func (h *Host) DisplayBounds(display int) (platform.Rect, error) {
	bounds, err := sdl.GetDisplayBounds(display)
	if err != nil {
		return platform.Rect{}, err
	}
	return platform.Rect{
		X: float32(bounds.X), Y: float32(bounds.Y),
		W: float32(bounds.W), H: float32(bounds.H),
	}, nil
}

func (h *Host) DisplayRefreshRate(display int) (int32, error) {
	mode, err := sdl.GetCurrentDisplayMode(display)
	if err != nil {
		return 0, err
	}
	return mode.RefreshRate, nil
}

func (h *Host) DisplayName(display int) (string, error) {
	return sdl.GetDisplayName(display)
}

func (h *Host) PerformanceFrequency() uint64 {
	return sdl.GetPerformanceFrequency()
}

func (h *Host) PerformanceCounter() uint64 {
	return sdl.GetPerformanceCounter()
}

func (h *Host) Delay(ms uint32) {
	sdl.Delay(ms)
}

func (h *Host) BasePath() (string, error) {
	base := sdl.GetBasePath()
	if base == "" {
		return "", errors.New("base path unavailable")
	}
	return base, nil
}

func (h *Host) OpenURL(url string) error {
	return sdl.OpenURL(url)
}
