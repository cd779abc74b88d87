// Package rowan is an immediate-mode 2D multimedia library.
//
// Rowan wraps a native windowing and rendering backend behind a small
// flat API: a window and frame driver, texture and text drawing, and a
// set of supporting containers and utilities (dynamic lists, hashmaps,
// strings, path helpers, a categorized logger).
//
// # Quick start
//
// A program opens a window with [Init], then runs a begin/end frame loop
// until [WindowShouldClose] reports true:
//
//	host := sdl2.NewHost()
//	if !rowan.Init(host, 800, 600, "hello", 0) {
//		log.Fatal(rowan.GetError())
//	}
//	defer rowan.Quit()
//
//	rowan.SetTargetFPS(60)
//	for !rowan.WindowShouldClose() {
//		rowan.BeginDrawing()
//		rowan.ClearBackground(rowan.Black)
//		// ... draw ...
//		rowan.EndDrawing()
//	}
//
// [BeginDrawing] samples the frame's delta time ([GetFrameTime]) and
// [EndDrawing] presents the frame, then sleeps and spins as needed to
// hold the target frame rate set with [SetTargetFPS].
//
// # Backends
//
// All platform access goes through the [platform.Host] interface. The
// sdl2 subpackage provides the production backend; tests supply fake
// hosts with controllable clocks.
//
// # Errors
//
// Fallible operations return nil or false and record a formatted message
// readable with [GetError]. Every recorded error is also emitted through
// the logger at error priority.
package rowan
