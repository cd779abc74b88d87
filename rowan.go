package rowan

import "github.com/phanxgames/rowan/platform"

// Version is the library version.
const Version = "0.1.0"

// busyWaitThreshold is how much of the frame wait is left to the spin loop
// instead of the coarse host delay. Host delays are only millisecond-accurate,
// so the last stretch is burned on the performance counter.
const busyWaitThreshold = 0.0015 // seconds

// defaultTargetFPS caps freshly initialized applications.
const defaultTargetFPS = 300

// app is the process-wide lifecycle state: host handles plus frame timing.
// Constructed by Init, destroyed by Quit.
type app struct {
	host       platform.Host
	window     platform.Window
	renderer   platform.Renderer
	textEngine platform.TextEngine

	perfFreq  uint64 // performance counter ticks per second
	startTick uint64 // counter reading at Init

	lastFrameTick    uint64  // counter reading at the previous BeginDrawing
	currentFrameTick uint64  // counter reading at the end of EndDrawing
	deltaTime        float64 // seconds between the last two BeginDrawing calls

	targetFPS       int
	targetFrameTime float64 // 1/targetFPS seconds, 0 when uncapped

	frameCounter  int    // frames completed in the current FPS window
	fpsWindowTick uint64 // counter reading when the FPS window opened
	currentFPS    int    // frames completed in the last concluded window
}

// active is the running application, nil before Init and after Quit.
var active *app

// EngineVersion returns the library version string.
func EngineVersion() string {
	return Version
}

// Init brings up the host backend and opens a window with an attached
// renderer and text engine, then starts frame timing. The pieces come up in
// a fixed order (host, window, renderer, font engine, text engine, timing);
// on any failure everything already acquired is released in reverse order,
// the error register is set, and Init returns false.
//
// The target FPS starts at 300; use SetTargetFPS to change it.
func Init(host platform.Host, width, height int32, title string, flags platform.WindowFlags) bool {
	if host == nil {
		return SetError("cannot initialize: nil host")
	}
	if active != nil {
		return SetError("cannot initialize: already initialized")
	}

	if err := host.Init(); err != nil {
		return SetError("host initialization failed: %v", err)
	}

	// High-DPI drawables are always requested.
	flags |= platform.WindowHighDPI

	window, err := host.CreateWindow(title, width, height, flags)
	if err != nil {
		host.Quit()
		return SetError("window creation failed: %v", err)
	}

	renderer, err := host.CreateRenderer(window)
	if err != nil {
		window.Destroy()
		host.Quit()
		return SetError("renderer creation failed: %v", err)
	}

	if err := host.InitText(); err != nil {
		renderer.Destroy()
		window.Destroy()
		host.Quit()
		return SetError("failed to initialize font engine: %v", err)
	}

	textEngine, err := host.CreateTextEngine(renderer)
	if err != nil {
		host.QuitText()
		renderer.Destroy()
		window.Destroy()
		host.Quit()
		return SetError("failed to create renderer text engine: %v", err)
	}

	start := host.PerformanceCounter()
	active = &app{
		host:             host,
		window:           window,
		renderer:         renderer,
		textEngine:       textEngine,
		perfFreq:         host.PerformanceFrequency(),
		startTick:        start,
		lastFrameTick:    start,
		currentFrameTick: start,
		fpsWindowTick:    start,
	}
	SetTargetFPS(defaultTargetFPS)

	LogInfo("rowan %s initialized: %dx%d \"%s\"", Version, width, height, title)
	return true
}

// Quit tears down everything Init acquired, in reverse order of creation.
// Safe to call when not initialized.
func Quit() {
	if active == nil {
		return
	}

	if active.textEngine != nil {
		active.textEngine.Destroy()
	}
	active.host.QuitText()
	if active.renderer != nil {
		active.renderer.Destroy()
	}
	if active.window != nil {
		active.window.Destroy()
	}
	active.host.Quit()
	active = nil
}

// ActiveWindow returns the host window handle, or nil when not initialized.
func ActiveWindow() platform.Window {
	if active == nil {
		return nil
	}
	return active.window
}

// ActiveRenderer returns the host renderer handle, or nil when not
// initialized.
func ActiveRenderer() platform.Renderer {
	if active == nil {
		return nil
	}
	return active.renderer
}

// ActiveTextEngine returns the host text engine handle, or nil when not
// initialized.
func ActiveTextEngine() platform.TextEngine {
	if active == nil {
		return nil
	}
	return active.textEngine
}

// WindowShouldClose drains all pending host events and reports whether a
// quit event or an Escape key press arrived. Non-quit events are consumed
// silently. It never blocks, and reports true when not initialized.
func WindowShouldClose() bool {
	if active == nil {
		return true
	}

	shouldClose := false
	for {
		ev, ok := active.host.PollEvent()
		if !ok {
			break
		}
		if ev.Type == platform.EventQuit {
			shouldClose = true
			break
		}
		if ev.Type == platform.EventKeyDown && ev.Key == platform.KeyEscape {
			shouldClose = true
			break
		}
	}
	return shouldClose
}

// BeginDrawing starts a frame: it samples the performance counter and
// updates the frame delta time. It does not clear the screen; call
// ClearBackground for that.
func BeginDrawing() bool {
	if active == nil || active.renderer == nil {
		return SetError("cannot begin drawing: renderer not initialized")
	}

	now := active.host.PerformanceCounter()
	active.deltaTime = float64(now-active.lastFrameTick) / float64(active.perfFreq)
	active.lastFrameTick = now
	return true
}

// ClearBackground fills the whole render target with the given color.
func ClearBackground(color Color) bool {
	if active == nil || active.renderer == nil {
		return SetError("cannot clear background: renderer not initialized")
	}

	if err := active.renderer.SetDrawColor(color.R, color.G, color.B, color.A); err != nil {
		return SetError("failed to set render color: %v", err)
	}
	if err := active.renderer.Clear(); err != nil {
		return SetError("failed to clear renderer: %v", err)
	}
	return true
}

// EndDrawing presents the frame and then enforces the target frame time:
// most of the remaining budget is slept away through the host delay, and the
// final stretch is spun on the performance counter for sub-millisecond
// accuracy. It also advances the rolling FPS counter; the published FPS is
// the number of frames completed in the most recently concluded one-second
// window.
func EndDrawing() bool {
	if active == nil || active.renderer == nil {
		return SetError("cannot end drawing: renderer not initialized")
	}

	active.renderer.Present()

	endTick := active.host.PerformanceCounter()
	elapsed := float64(endTick-active.lastFrameTick) / float64(active.perfFreq)

	if active.targetFPS > 0 && elapsed < active.targetFrameTime {
		wait := active.targetFrameTime - elapsed

		if wait > busyWaitThreshold {
			delayMS := uint32((wait - busyWaitThreshold) * 1000.0)
			if delayMS > 0 {
				active.host.Delay(delayMS)
			}
		}

		// Spin on the counter for the remainder.
		targetTick := active.lastFrameTick + uint64(active.targetFrameTime*float64(active.perfFreq))
		for active.host.PerformanceCounter() < targetTick {
		}
		active.currentFrameTick = active.host.PerformanceCounter()
	} else {
		active.currentFrameTick = endTick
	}

	active.frameCounter++
	windowSeconds := float64(active.currentFrameTick-active.fpsWindowTick) / float64(active.perfFreq)
	if windowSeconds >= 1.0 {
		active.currentFPS = active.frameCounter
		active.frameCounter = 0
		active.fpsWindowTick = active.currentFrameTick
	}

	return true
}

// SetTargetFPS caps the frame rate enforced by EndDrawing. Values <= 0
// disable the cap entirely.
func SetTargetFPS(fps int) {
	if active == nil {
		return
	}
	active.targetFPS = fps
	if fps > 0 {
		active.targetFrameTime = 1.0 / float64(fps)
	} else {
		active.targetFrameTime = 0
	}
}

// GetTime returns seconds elapsed since Init, or 0 when not initialized.
func GetTime() float64 {
	if active == nil {
		return 0
	}
	now := active.host.PerformanceCounter()
	return float64(now-active.startTick) / float64(active.perfFreq)
}

// GetFrameTime returns the delta time of the last frame in seconds.
func GetFrameTime() float32 {
	if active == nil {
		return 0
	}
	return float32(active.deltaTime)
}

// GetFPS returns the rolling FPS: frames completed during the most recently
// concluded one-second window.
func GetFPS() int {
	if active == nil {
		return 0
	}
	return active.currentFPS
}
