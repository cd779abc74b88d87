package sdl2

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/phanxgames/rowan/platform"
)

type window struct {
	win *sdl.Window
}

func (w *window) Destroy() {
	w.win.Destroy()
}

func (w *window) SetFullscreen(enabled bool) error {
	var flags uint32
	if enabled {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return w.win.SetFullscreen(flags)
}

func (w *window) SetBordered(bordered bool) {
	w.win.SetBordered(bordered)
}

func (w *window) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *window) SetIcon(icon platform.Surface) {
	s, ok := icon.(*surface)
	if !ok {
		return
	}
	w.win.SetIcon(s.s)
}

func (w *window) SetPosition(x, y int32) {
	w.win.SetPosition(x, y)
}

func (w *window) SetSize(width, height int32) {
	w.win.SetSize(width, height)
}

func (w *window) SetMinSize(width, height int32) {
	w.win.SetMinimumSize(width, height)
}

func (w *window) SetMaxSize(width, height int32) {
	w.win.SetMaximumSize(width, height)
}

func (w *window) SetOpacity(opacity float32) error {
	return w.win.SetWindowOpacity(opacity)
}

func (w *window) Raise() {
	w.win.Raise()
}

func (w *window) Maximize() error {
	w.win.Maximize()
	return nil
}

func (w *window) Minimize() error {
	w.win.Minimize()
	return nil
}

func (w *window) Restore() error {
	w.win.Restore()
	return nil
}

func (w *window) Flags() platform.WindowFlags {
	return fromSDLFlags(w.win.GetFlags())
}

func (w *window) Size() (int32, int32) {
	return w.win.GetSize()
}

func (w *window) Position() (int32, int32) {
	return w.win.GetPosition()
}

// DisplayScale derives the content scale from the display's diagonal DPI
// against the 96 DPI baseline. Falls back to 1 when the query fails.
func (w *window) DisplayScale() float32 {
	display, err := w.win.GetDisplayIndex()
	if err != nil {
		return 1
	}
	ddpi, _, _, err := sdl.GetDisplayDPI(display)
	if err != nil || ddpi <= 0 {
		return 1
	}
	return ddpi / 96
}

func (w *window) DisplayIndex() (int, error) {
	index, err := w.win.GetDisplayIndex()
	if err != nil {
		return -1, err
	}
	if index < 0 {
		return -1, errors.New("window is not on any display")
	}
	return index, nil
}
