//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	smCxScreen = 0
	smCyScreen = 1

	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	procFindWindowW      = user32.NewProc("FindWindowW")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// WindowsPlacer implements Placer with user32
type WindowsPlacer struct{}

// NewPlacer creates the Placer for Windows
func NewPlacer() Placer {
	return &WindowsPlacer{}
}

// ScreenSize returns the primary monitor size
func (p *WindowsPlacer) ScreenSize() (int, int, bool) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if w == 0 || h == 0 {
		return 0, 0, false
	}
	return int(int32(w)), int(int32(h)), true
}

// Position returns the window origin in screen coordinates
func (p *WindowsPlacer) Position(title string) (int, int, bool) {
	hwnd, err := findWindow(title)
	if err != nil {
		return 0, 0, false
	}
	var r rect
	ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return 0, 0, false
	}
	return int(r.Left), int(r.Top), true
}

// Move places the window without resizing or activating it
func (p *WindowsPlacer) Move(title string, x, y int) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}
	ret, _, callErr := procSetWindowPos.Call(
		hwnd, 0,
		uintptr(int32(x)), uintptr(int32(y)),
		0, 0,
		swpNoSize|swpNoZOrder|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", callErr)
	}
	return nil
}

func findWindow(title string) (uintptr, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	hwnd, _, callErr := procFindWindowW.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	if hwnd == 0 {
		return 0, fmt.Errorf("window %q not found: %w", title, callErr)
	}
	return hwnd, nil
}
