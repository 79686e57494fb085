package platform

import "errors"

// ErrUnsupported is returned when the desktop does not allow moving windows
var ErrUnsupported = errors.New("window placement not supported on this platform")

// Placer queries the screen and moves top-level windows, identified by title
type Placer interface {
	// ScreenSize returns the primary screen size in pixels
	ScreenSize() (width, height int, ok bool)
	// Position returns the top-left corner of the window
	Position(title string) (x, y int, ok bool)
	// Move puts the top-left corner of the window at x, y
	Move(title string, x, y int) error
}

// Center returns the origin that centers a window of the given size
func Center(screenWidth, screenHeight, width, height int) (x, y int) {
	return (screenWidth - width) / 2, (screenHeight - height) / 2
}
