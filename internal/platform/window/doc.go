// Package window runs the breakout session in a desktop window with Ebiten.
// Unlike a terminal, the window reports real key releases, so the input
// tracker sees exact press and release events.
//
// The host needs cgo and a display, so it is only compiled with the
// "window" build tag.
package window
