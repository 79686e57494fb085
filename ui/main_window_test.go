package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speedrunlauncher/storage"
)

type fakePlacer struct {
	origin Point
	moves  []Point
}

func (p *fakePlacer) ScreenSize() (int, int, bool) { return 1920, 1080, true }

func (p *fakePlacer) Position(string) (int, int, bool) {
	return p.origin.X, p.origin.Y, true
}

func (p *fakePlacer) Move(_ string, x, y int) error {
	p.origin = Point{X: x, Y: y}
	p.moves = append(p.moves, p.origin)
	return nil
}

type cancelPicker struct {
	titles []string
}

func (p *cancelPicker) PickExecutable(title string, done func(string, error)) {
	p.titles = append(p.titles, title)
	done("", nil)
}

func newTestWindow(t *testing.T, icons ...string) (*MainWindow, *fakePlacer, *cancelPicker, string) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	dir := t.TempDir()
	iconDir := filepath.Join(dir, ButtonFolder)
	for _, program := range icons {
		writeIcon(t, iconDir, program, 40, 30)
	}
	placer := &fakePlacer{origin: Point{X: 660, Y: 340}}
	picker := &cancelPicker{}
	settings := filepath.Join(dir, storage.DefaultFile)

	mw := NewMainWindowWithApp(a, Options{
		SettingsFile: settings,
		IconDir:      iconDir,
		WindowIcon:   filepath.Join(dir, DefaultIcon),
		Placer:       placer,
		Picker:       picker,
	})
	return mw, placer, picker, settings
}

func iconButtons(obj fyne.CanvasObject) []*IconButton {
	switch o := obj.(type) {
	case *IconButton:
		return []*IconButton{o}
	case *fyne.Container:
		var found []*IconButton
		for _, child := range o.Objects {
			found = append(found, iconButtons(child)...)
		}
		return found
	}
	return nil
}

func TestMainWindowFirstRun(t *testing.T) {
	mw, _, _, settings := newTestWindow(t, "Any%", "rkvMT")

	_, err := os.Stat(settings)
	require.NoError(t, err, "defaults must be written on first run")

	assert.Equal(t, 18, mw.Controller().Programs().Len())
	assert.Len(t, iconButtons(mw.Window().Content()), 2)
	require.Len(t, mw.columns, 3)
}

func TestMainWindowUnconfiguredButtonOpensPicker(t *testing.T) {
	mw, _, picker, _ := newTestWindow(t, "LiveSplit")

	buttons := iconButtons(mw.Window().Content())
	require.Len(t, buttons, 1)
	test.Tap(buttons[0])

	assert.Equal(t, []string{"Select the executable file for LiveSplit"}, picker.titles)
	assert.Equal(t, "The path for LiveSplit is empty. Please select the executable file.", mw.status.Text)
	path, _ := mw.Controller().Programs().Path("Other", "LiveSplit")
	assert.Empty(t, path)
}

func TestMainWindowBrokenSettingsKeepsFile(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	settings := filepath.Join(t.TempDir(), storage.DefaultFile)
	require.NoError(t, os.WriteFile(settings, []byte("{broken"), 0644))

	mw := NewMainWindowWithApp(a, Options{
		SettingsFile: settings,
		IconDir:      t.TempDir(),
		Placer:       &fakePlacer{},
		Picker:       &cancelPicker{},
	})

	assert.Equal(t, 18, mw.Controller().Programs().Len())
	data, err := os.ReadFile(settings)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(data))
}

func TestTitleBarDragMovesWindow(t *testing.T) {
	mw, placer, _, _ := newTestWindow(t)
	bar := mw.titleBar

	bar.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 8)},
		Button:     desktop.MouseButtonPrimary,
	})
	bar.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 18)}})

	require.Len(t, placer.moves, 1)
	assert.Equal(t, Point{X: 690, Y: 350}, placer.moves[0])

	bar.DragEnd()
	assert.False(t, bar.drag.Active())
}

func TestTitleBarIgnoresSecondaryButton(t *testing.T) {
	mw, _, _, _ := newTestWindow(t)
	mw.titleBar.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})
	assert.False(t, mw.titleBar.drag.Active())
}

func TestRevealCentersWindow(t *testing.T) {
	mw, placer, _, _ := newTestWindow(t)
	require.Empty(t, placer.moves, "nothing is placed before the window is revealed")

	mw.reveal()

	assert.Equal(t, []Point{{X: 660, Y: 340}}, placer.moves)
}
