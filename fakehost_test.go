package rowan

import (
	"errors"
	"fmt"

	"github.com/phanxgames/rowan/platform"
)

// fakeHost implements platform.Host with a controllable performance
// counter. Delay advances the counter as a real sleep would, and every
// counter read advances it by spinStep so busy-wait loops terminate.
type fakeHost struct {
	freq     uint64
	counter  uint64
	spinStep uint64

	events []platform.Event

	failInit       bool
	failWindow     bool
	failRenderer   bool
	failText       bool
	failTextEngine bool

	teardown []string // records teardown calls in order
	delays   []uint32

	window   *fakeWindow
	renderer *fakeRenderer

	basePath   string
	openedURLs []string

	displays []fakeDisplay

	cursorVisible bool
	relativeMode  bool

	missingGlyphs map[rune]bool
}

type fakeDisplay struct {
	bounds  platform.Rect
	refresh int32
	name    string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		freq:          1_000_000,
		spinStep:      100,
		cursorVisible: true,
		displays: []fakeDisplay{
			{bounds: platform.Rect{W: 1920, H: 1080}, refresh: 60, name: "primary"},
		},
	}
}

// advance moves the clock forward by seconds.
func (h *fakeHost) advance(seconds float64) {
	h.counter += uint64(seconds * float64(h.freq))
}

func (h *fakeHost) Init() error {
	if h.failInit {
		return errors.New("video unavailable")
	}
	return nil
}

func (h *fakeHost) Quit() {
	h.teardown = append(h.teardown, "host")
}

func (h *fakeHost) CreateWindow(title string, width, height int32, flags platform.WindowFlags) (platform.Window, error) {
	if h.failWindow {
		return nil, errors.New("no window")
	}
	h.window = &fakeWindow{
		host:  h,
		title: title,
		w:     width, h: height,
		flags: flags,
		scale: 1,
	}
	return h.window, nil
}

func (h *fakeHost) CreateRenderer(w platform.Window) (platform.Renderer, error) {
	if h.failRenderer {
		return nil, errors.New("no renderer")
	}
	h.renderer = &fakeRenderer{host: h, outW: h.window.w, outH: h.window.h}
	return h.renderer, nil
}

func (h *fakeHost) InitText() error {
	if h.failText {
		return errors.New("no font engine")
	}
	return nil
}

func (h *fakeHost) QuitText() {
	h.teardown = append(h.teardown, "text")
}

func (h *fakeHost) CreateTextEngine(r platform.Renderer) (platform.TextEngine, error) {
	if h.failTextEngine {
		return nil, errors.New("no text engine")
	}
	return &fakeTextEngine{host: h}, nil
}

func (h *fakeHost) LoadImage(path string) (platform.Surface, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}
	return &fakeSurface{w: 64, h: 32}, nil
}

func (h *fakeHost) OpenFont(path string, size float32) (platform.Font, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}
	return &fakeFont{size: size, glyphWidth: 10, missing: h.missingGlyphs}, nil
}

func (h *fakeHost) PollEvent() (platform.Event, bool) {
	if len(h.events) == 0 {
		return platform.Event{}, false
	}
	ev := h.events[0]
	h.events = h.events[1:]
	return ev, true
}

func (h *fakeHost) ShowCursor() error {
	h.cursorVisible = true
	return nil
}

func (h *fakeHost) HideCursor() error {
	h.cursorVisible = false
	return nil
}

func (h *fakeHost) CursorVisible() bool {
	return h.cursorVisible
}

func (h *fakeHost) SetRelativeMouseMode(enabled bool) error {
	h.relativeMode = enabled
	h.cursorVisible = !enabled
	return nil
}

func (h *fakeHost) DisplayCount() (int, error) {
	return len(h.displays), nil
}

func (h *fakeHost) DisplayBounds(display int) (platform.Rect, error) {
	if display < 0 || display >= len(h.displays) {
		return platform.Rect{}, fmt.Errorf("no display %d", display)
	}
	return h.displays[display].bounds, nil
}

func (h *fakeHost) DisplayRefreshRate(display int) (int32, error) {
	if display < 0 || display >= len(h.displays) {
		return 0, fmt.Errorf("no display %d", display)
	}
	return h.displays[display].refresh, nil
}

func (h *fakeHost) DisplayName(display int) (string, error) {
	if display < 0 || display >= len(h.displays) {
		return "", fmt.Errorf("no display %d", display)
	}
	return h.displays[display].name, nil
}

func (h *fakeHost) PerformanceFrequency() uint64 {
	return h.freq
}

func (h *fakeHost) PerformanceCounter() uint64 {
	h.counter += h.spinStep
	return h.counter
}

func (h *fakeHost) Delay(ms uint32) {
	h.delays = append(h.delays, ms)
	h.counter += uint64(ms) * h.freq / 1000
}

func (h *fakeHost) BasePath() (string, error) {
	if h.basePath == "" {
		return "", errors.New("no base path")
	}
	return h.basePath, nil
}

func (h *fakeHost) OpenURL(url string) error {
	h.openedURLs = append(h.openedURLs, url)
	return nil
}

type fakeWindow struct {
	host *fakeHost

	title      string
	w, h       int32
	x, y       int32
	minW, minH int32
	maxW, maxH int32
	flags      platform.WindowFlags
	opacity    float32
	scale      float32
	display    int

	fullscreen bool
	bordered   bool
	raised     bool
	iconSet    bool
	state      string // "", "maximized", "minimized", "restored"
}

func (w *fakeWindow) Destroy() {
	w.host.teardown = append(w.host.teardown, "window")
}

func (w *fakeWindow) SetFullscreen(enabled bool) error {
	w.fullscreen = enabled
	if enabled {
		w.flags |= platform.WindowFullscreen
	} else {
		w.flags &^= platform.WindowFullscreen
	}
	return nil
}

func (w *fakeWindow) SetBordered(bordered bool) {
	w.bordered = bordered
	if bordered {
		w.flags &^= platform.WindowBorderless
	} else {
		w.flags |= platform.WindowBorderless
	}
}

func (w *fakeWindow) SetTitle(title string)          { w.title = title }
func (w *fakeWindow) SetIcon(icon platform.Surface)  { w.iconSet = true }
func (w *fakeWindow) SetPosition(x, y int32)         { w.x, w.y = x, y }
func (w *fakeWindow) SetSize(width, height int32)    { w.w, w.h = width, height }
func (w *fakeWindow) SetMinSize(width, height int32) { w.minW, w.minH = width, height }
func (w *fakeWindow) SetMaxSize(width, height int32) { w.maxW, w.maxH = width, height }

func (w *fakeWindow) SetOpacity(opacity float32) error {
	w.opacity = opacity
	return nil
}

func (w *fakeWindow) Raise() { w.raised = true }

func (w *fakeWindow) Maximize() error {
	w.state = "maximized"
	return nil
}

func (w *fakeWindow) Minimize() error {
	w.state = "minimized"
	return nil
}

func (w *fakeWindow) Restore() error {
	w.state = "restored"
	return nil
}

func (w *fakeWindow) Flags() platform.WindowFlags { return w.flags }
func (w *fakeWindow) Size() (int32, int32)        { return w.w, w.h }
func (w *fakeWindow) Position() (int32, int32)    { return w.x, w.y }
func (w *fakeWindow) DisplayScale() float32       { return w.scale }

func (w *fakeWindow) DisplayIndex() (int, error) {
	if w.display < 0 {
		return -1, errors.New("off screen")
	}
	return w.display, nil
}

type copyCall struct {
	src, dst *platform.Rect
	angle    float64
	center   platform.Point
	rotated  bool
}

type fakeRenderer struct {
	host *fakeHost

	outW, outH                 int32
	drawR, drawG, drawB, drawA uint8
	clears                     int
	presents                   int
	copies                     []copyCall
}

func (r *fakeRenderer) Destroy() {
	r.host.teardown = append(r.host.teardown, "renderer")
}

func (r *fakeRenderer) SetDrawColor(red, green, blue, alpha uint8) error {
	r.drawR, r.drawG, r.drawB, r.drawA = red, green, blue, alpha
	return nil
}

func (r *fakeRenderer) Clear() error {
	r.clears++
	return nil
}

func (r *fakeRenderer) Present() {
	r.presents++
}

func (r *fakeRenderer) OutputSize() (int32, int32, error) {
	return r.outW, r.outH, nil
}

func (r *fakeRenderer) CreateTextureFromSurface(s platform.Surface) (platform.Texture, error) {
	w, h := s.Size()
	return &fakeTexture{w: float32(w), h: float32(h)}, nil
}

func (r *fakeRenderer) Copy(t platform.Texture, src, dst *platform.Rect) error {
	r.copies = append(r.copies, copyCall{src: cloneRect(src), dst: cloneRect(dst)})
	return nil
}

func (r *fakeRenderer) CopyRotated(t platform.Texture, src, dst *platform.Rect, angleDeg float64, center platform.Point) error {
	r.copies = append(r.copies, copyCall{
		src: cloneRect(src), dst: cloneRect(dst),
		angle: angleDeg, center: center, rotated: true,
	})
	return nil
}

func cloneRect(r *platform.Rect) *platform.Rect {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

type fakeTexture struct {
	w, h float32

	modR, modG, modB uint8
	modA             uint8
	destroyed        bool
}

func (t *fakeTexture) Destroy() { t.destroyed = true }

func (t *fakeTexture) Size() (float32, float32, error) {
	return t.w, t.h, nil
}

func (t *fakeTexture) SetColorMod(r, g, b uint8) error {
	t.modR, t.modG, t.modB = r, g, b
	return nil
}

func (t *fakeTexture) SetAlphaMod(a uint8) error {
	t.modA = a
	return nil
}

type fakeSurface struct {
	w, h  int32
	freed bool
}

func (s *fakeSurface) Free()                { s.freed = true }
func (s *fakeSurface) Size() (int32, int32) { return s.w, s.h }

type fakeFont struct {
	size       float32
	glyphWidth int32
	missing    map[rune]bool
	closed     bool
}

func (f *fakeFont) Close() { f.closed = true }

func (f *fakeFont) HasGlyph(r rune) bool {
	return !f.missing[r]
}

func (f *fakeFont) MeasureText(text string) (int32, error) {
	return int32(len(text)) * f.glyphWidth, nil
}

func (f *fakeFont) RenderBlended(text string, r, g, b, a uint8) (platform.Surface, error) {
	if text == "" {
		return nil, errors.New("empty text")
	}
	return &fakeSurface{w: int32(len(text)) * f.glyphWidth, h: 16}, nil
}

func (f *fakeFont) Height() int32 { return 16 }

type fakeTextEngine struct {
	host    *fakeHost
	created []*fakeText
}

func (e *fakeTextEngine) Destroy() {
	e.host.teardown = append(e.host.teardown, "engine")
}

func (e *fakeTextEngine) CreateText(f platform.Font, text string) (platform.Text, error) {
	t := &fakeText{text: text}
	e.created = append(e.created, t)
	return t, nil
}

type fakeText struct {
	text       string
	r, g, b, a float32
	draws      []platform.Point
	destroyed  bool
}

func (t *fakeText) SetColor(r, g, b, a float32) error {
	t.r, t.g, t.b, t.a = r, g, b, a
	return nil
}

func (t *fakeText) Draw(x, y float32) error {
	t.draws = append(t.draws, platform.Point{X: x, Y: y})
	return nil
}

func (t *fakeText) Destroy() { t.destroyed = true }
