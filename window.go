package rowan

import "github.com/phanxgames/rowan/platform"

// ToggleFullscreen switches the window between fullscreen and windowed.
func ToggleFullscreen() bool {
	w := ActiveWindow()
	if w == nil {
		return SetError("cannot toggle fullscreen: no window available")
	}

	isFullscreen := w.Flags()&platform.WindowFullscreen != 0
	if err := w.SetFullscreen(!isFullscreen); err != nil {
		return SetError("failed to toggle fullscreen mode: %v", err)
	}
	return true
}

// ToggleBorderlessWindowed switches the window border on or off. Entering
// borderless mode resizes the window to cover the current monitor.
func ToggleBorderlessWindowed() bool {
	w := ActiveWindow()
	if w == nil {
		return SetError("cannot toggle borderless windowed mode: no window available")
	}

	flags := w.Flags()
	isBorderless := flags&platform.WindowBorderless != 0
	isFullscreen := flags&platform.WindowFullscreen != 0

	// Leave fullscreen first, borderless is a windowed-mode property.
	if isFullscreen {
		if err := w.SetFullscreen(false); err != nil {
			return SetError("failed to exit fullscreen mode: %v", err)
		}
	}

	w.SetBordered(isBorderless)

	if !isBorderless {
		monitor := GetCurrentMonitor()
		width := GetMonitorWidth(monitor)
		height := GetMonitorHeight(monitor)
		if width > 0 && height > 0 {
			w.SetSize(width, height)
			w.SetPosition(0, 0)
		}
	}
	return true
}

// MaximizeWindow maximizes the window. Fails when the window was not created
// resizable.
func MaximizeWindow() bool {
	w := ActiveWindow()
	if w == nil {
		return SetError("cannot maximize window: no window available")
	}

	if w.Flags()&platform.WindowResizable == 0 {
		return SetError("cannot maximize window: window is not resizable")
	}
	if err := w.Maximize(); err != nil {
		return SetError("failed to maximize window: %v", err)
	}
	return true
}

// MinimizeWindow minimizes the window to the taskbar.
func MinimizeWindow() bool {
	w := ActiveWindow()
	if w == nil {
		return SetError("cannot minimize window: no window available")
	}

	if err := w.Minimize(); err != nil {
		return SetError("failed to minimize window: %v", err)
	}
	return true
}

// RestoreWindow restores a minimized or maximized window.
func RestoreWindow() bool {
	w := ActiveWindow()
	if w == nil {
		return SetError("cannot restore window: no window available")
	}

	if err := w.Restore(); err != nil {
		return SetError("failed to restore window: %v", err)
	}
	return true
}

// GetCurrentMonitor returns the index of the monitor the window occupies,
// or -1 on failure.
func GetCurrentMonitor() int {
	w := ActiveWindow()
	if w == nil {
		SetError("cannot get current monitor: no window available")
		return -1
	}

	index, err := w.DisplayIndex()
	if err != nil {
		SetError("failed to get current monitor: %v", err)
		return -1
	}
	return index
}

// GetMonitorCount returns the number of connected monitors, or 0 on failure.
func GetMonitorCount() int {
	if active == nil {
		SetError("cannot get monitor count: not initialized")
		return 0
	}

	count, err := active.host.DisplayCount()
	if err != nil {
		SetError("failed to get monitor count: %v", err)
		return 0
	}
	return count
}

// GetMonitorPosition returns the top-left corner of the given monitor in
// desktop coordinates.
func GetMonitorPosition(monitor int) Vector2 {
	bounds, ok := monitorBounds(monitor, "position")
	if !ok {
		return Vector2{}
	}
	return Vector2{X: bounds.X, Y: bounds.Y}
}

// GetMonitorWidth returns the width of the given monitor in pixels.
func GetMonitorWidth(monitor int) int32 {
	bounds, ok := monitorBounds(monitor, "width")
	if !ok {
		return 0
	}
	return int32(bounds.W)
}

// GetMonitorHeight returns the height of the given monitor in pixels.
func GetMonitorHeight(monitor int) int32 {
	bounds, ok := monitorBounds(monitor, "height")
	if !ok {
		return 0
	}
	return int32(bounds.H)
}

func monitorBounds(monitor int, what string) (platform.Rect, bool) {
	if active == nil {
		SetError("cannot get monitor %s: not initialized", what)
		return platform.Rect{}, false
	}
	if monitor < 0 {
		SetError("invalid monitor index: %d", monitor)
		return platform.Rect{}, false
	}

	bounds, err := active.host.DisplayBounds(monitor)
	if err != nil {
		SetError("failed to get monitor %s: %v", what, err)
		return platform.Rect{}, false
	}
	return bounds, true
}

// GetMonitorRefreshRate returns the refresh rate of the given monitor in Hz,
// or 0 on failure.
func GetMonitorRefreshRate(monitor int) int32 {
	if active == nil {
		SetError("cannot get monitor refresh rate: not initialized")
		return 0
	}
	if monitor < 0 {
		SetError("invalid monitor index: %d", monitor)
		return 0
	}

	rate, err := active.host.DisplayRefreshRate(monitor)
	if err != nil {
		SetError("failed to get monitor refresh rate: %v", err)
		return 0
	}
	return rate
}

// GetMonitorName returns the human-readable name of the given monitor, or
// "" on failure.
func GetMonitorName(monitor int) string {
	if active == nil {
		SetError("cannot get monitor name: not initialized")
		return ""
	}
	if monitor < 0 {
		SetError("invalid monitor index: %d", monitor)
		return ""
	}

	name, err := active.host.DisplayName(monitor)
	if err != nil {
		SetError("failed to get monitor name: %v", err)
		return ""
	}
	return name
}

// SetWindowIcon sets the window icon from a loaded image.
func SetWindowIcon(image *Image) {
	w := ActiveWindow()
	if w == nil || image == nil || image.surface == nil {
		return
	}
	w.SetIcon(image.surface)
}

// SetWindowTitle changes the window title.
func SetWindowTitle(title string) {
	if w := ActiveWindow(); w != nil {
		w.SetTitle(title)
	}
}

// SetWindowPosition moves the window to desktop coordinates (x, y).
func SetWindowPosition(x, y int32) {
	if w := ActiveWindow(); w != nil {
		w.SetPosition(x, y)
	}
}

// SetWindowMonitor centers the window on the given monitor.
func SetWindowMonitor(monitor int) {
	w := ActiveWindow()
	if w == nil {
		return
	}

	bounds, ok := monitorBounds(monitor, "bounds")
	if !ok {
		return
	}
	width, height := w.Size()
	w.SetPosition(int32(bounds.X)+(int32(bounds.W)-width)/2,
		int32(bounds.Y)+(int32(bounds.H)-height)/2)
}

// SetWindowMinSize sets the minimum size the user can resize the window to.
func SetWindowMinSize(width, height int32) {
	if w := ActiveWindow(); w != nil {
		w.SetMinSize(width, height)
	}
}

// SetWindowMaxSize sets the maximum size the user can resize the window to.
func SetWindowMaxSize(width, height int32) {
	if w := ActiveWindow(); w != nil {
		w.SetMaxSize(width, height)
	}
}

// SetWindowSize resizes the window content area.
func SetWindowSize(width, height int32) {
	if w := ActiveWindow(); w != nil {
		w.SetSize(width, height)
	}
}

// SetWindowOpacity sets the window opacity in [0, 1].
func SetWindowOpacity(opacity float32) bool {
	w := ActiveWindow()
	if w == nil {
		return SetError("cannot set window opacity: no window available")
	}

	if err := w.SetOpacity(opacity); err != nil {
		return SetError("failed to set window opacity: %v", err)
	}
	return true
}

// SetWindowFocused raises the window above other windows and requests
// input focus.
func SetWindowFocused() {
	if w := ActiveWindow(); w != nil {
		w.Raise()
	}
}

// GetScreenWidth returns the window width in screen coordinates.
func GetScreenWidth() int32 {
	w := ActiveWindow()
	if w == nil {
		return 0
	}
	width, _ := w.Size()
	return width
}

// GetScreenHeight returns the window height in screen coordinates.
func GetScreenHeight() int32 {
	w := ActiveWindow()
	if w == nil {
		return 0
	}
	_, height := w.Size()
	return height
}

// GetRenderWidth returns the renderer output width in pixels. On high-DPI
// displays this is larger than GetScreenWidth.
func GetRenderWidth() int32 {
	r := ActiveRenderer()
	if r == nil {
		return 0
	}
	width, _, err := r.OutputSize()
	if err != nil {
		SetError("failed to get render width: %v", err)
		return 0
	}
	return width
}

// GetRenderHeight returns the renderer output height in pixels.
func GetRenderHeight() int32 {
	r := ActiveRenderer()
	if r == nil {
		return 0
	}
	_, height, err := r.OutputSize()
	if err != nil {
		SetError("failed to get render height: %v", err)
		return 0
	}
	return height
}

// GetWindowPosition returns the window position in desktop coordinates.
func GetWindowPosition() Vector2 {
	w := ActiveWindow()
	if w == nil {
		return Vector2{}
	}
	x, y := w.Position()
	return Vector2{X: float32(x), Y: float32(y)}
}

// GetWindowScaleDPI returns the window's display scale factor on both axes
// (1.0 on standard-density displays).
func GetWindowScaleDPI() Vector2 {
	w := ActiveWindow()
	if w == nil {
		return Vector2{X: 1, Y: 1}
	}
	scale := w.DisplayScale()
	if scale <= 0 {
		scale = 1
	}
	return Vector2{X: scale, Y: scale}
}

// ShowCursor makes the mouse cursor visible.
func ShowCursor() {
	if active == nil {
		return
	}
	if err := active.host.ShowCursor(); err != nil {
		SetError("failed to show cursor: %v", err)
	}
}

// HideCursor hides the mouse cursor.
func HideCursor() {
	if active == nil {
		return
	}
	if err := active.host.HideCursor(); err != nil {
		SetError("failed to hide cursor: %v", err)
	}
}

// IsCursorHidden reports whether the mouse cursor is currently hidden.
func IsCursorHidden() bool {
	if active == nil {
		return false
	}
	return !active.host.CursorVisible()
}

// EnableCursor unlocks the cursor from the window and shows it.
func EnableCursor() {
	if active == nil {
		return
	}
	if err := active.host.SetRelativeMouseMode(false); err != nil {
		SetError("failed to enable cursor: %v", err)
	}
}

// DisableCursor hides the cursor and locks it to the window, reporting
// relative motion only.
func DisableCursor() {
	if active == nil {
		return
	}
	if err := active.host.SetRelativeMouseMode(true); err != nil {
		SetError("failed to disable cursor: %v", err)
	}
}

// IsCursorOnScreen reports whether the mouse cursor is inside the window.
func IsCursorOnScreen() bool {
	w := ActiveWindow()
	if w == nil {
		return false
	}
	return w.Flags()&platform.WindowMouseFocus != 0
}
