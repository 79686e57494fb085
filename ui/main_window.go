package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"speedrunlauncher/launcher"
	"speedrunlauncher/logging"
	"speedrunlauncher/models"
	"speedrunlauncher/platform"
	"speedrunlauncher/storage"
)

const (
	// AppID identifies the preferences store
	AppID = "io.github.tyspeedrun.launcher"
	// WindowTitle is shown in the custom title bar
	WindowTitle = "Ty Speedrun Launcher"
	// WindowWidth and WindowHeight are the fixed window size
	WindowWidth  = 600
	WindowHeight = 400
	// DefaultIcon is the window icon file
	DefaultIcon = "icon.ico"
	// ButtonFolder holds one PNG per program
	ButtonFolder = "Buttons"

	logLevelKey = "LogLevel"
	revealDelay = 10 * time.Millisecond
)

// Options configures a MainWindow. Zero values fall back to the defaults.
type Options struct {
	SettingsFile string
	IconDir      string
	WindowIcon   string
	Placer       platform.Placer
	Picker       launcher.Picker
	LogLevel     *slog.LevelVar
}

// MainWindow is the launcher window: a custom title bar over one column of
// icon buttons per category.
type MainWindow struct {
	app        fyne.App
	window     fyne.Window
	storage    *storage.Manager
	controller *launcher.Controller
	placer     platform.Placer
	titleBar   *TitleBar
	status     *widget.Label
	columns    []Column
	iconDir    string
}

// NewMainWindow creates the main window with the default settings
func NewMainWindow(logLevel *slog.LevelVar) *MainWindow {
	return NewMainWindowWithApp(app.NewWithID(AppID), Options{LogLevel: logLevel})
}

// NewMainWindowWithApp creates the main window on an existing app
func NewMainWindowWithApp(a fyne.App, opts Options) *MainWindow {
	if opts.IconDir == "" {
		opts.IconDir = ButtonFolder
	}
	if opts.WindowIcon == "" {
		opts.WindowIcon = DefaultIcon
	}
	if opts.Placer == nil {
		opts.Placer = platform.NewPlacer()
	}
	if opts.LogLevel != nil {
		opts.LogLevel.Set(logging.ParseLevel(a.Preferences().StringWithFallback(logLevelKey, "info")))
	}

	if icon, err := LoadWindowIcon(opts.WindowIcon); err != nil {
		slog.Warn("window icon not loaded", "file", opts.WindowIcon, "error", err)
	} else {
		a.SetIcon(icon)
	}

	mw := &MainWindow{
		app:     a,
		window:  newBorderlessWindow(a),
		storage: storage.NewManager(opts.SettingsFile),
		placer:  opts.Placer,
		iconDir: opts.IconDir,
	}
	mw.window.SetTitle(WindowTitle)
	mw.window.SetMaster()
	mw.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	mw.window.SetFixedSize(true)

	picker := opts.Picker
	if picker == nil {
		picker = NewFilePicker(mw.window, a.Preferences())
	}
	mw.controller = launcher.NewController(mw.loadData(), mw.storage, picker)
	mw.setupUI()

	a.Lifecycle().SetOnStarted(func() {
		time.AfterFunc(revealDelay, mw.reveal)
	})
	return mw
}

// newBorderlessWindow creates a window without the native title bar where
// the driver supports it
func newBorderlessWindow(a fyne.App) fyne.Window {
	if drv, ok := a.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return a.NewWindow(WindowTitle)
}

// ShowAndRun runs the application. The window stays hidden until reveal.
func (mw *MainWindow) ShowAndRun() {
	mw.app.Run()
}

// Window returns the underlying Fyne window
func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}

// Controller returns the launch controller
func (mw *MainWindow) Controller() *launcher.Controller {
	return mw.controller
}

// loadData loads the program mapping. A broken file is reported and the
// defaults are used in memory only.
func (mw *MainWindow) loadData() *models.Programs {
	programs, err := mw.storage.Load()
	if err != nil {
		slog.Error("failed to load settings", "file", mw.storage.FilePath(), "error", err)
		dialog.ShowError(err, mw.window)
		if programs == nil {
			programs = models.DefaultPrograms()
		}
	}
	return programs
}

// setupUI builds the widget tree before the window is revealed
func (mw *MainWindow) setupUI() {
	mw.titleBar = NewTitleBar(WindowTitle, mw, mw.app.Quit)
	mw.status = widget.NewLabel("")
	mw.status.Wrapping = fyne.TextTruncate

	mw.columns = PlanGrid(mw.controller.Programs(), mw.iconDir)
	grid := mw.buildGrid(mw.columns)

	content := container.NewBorder(mw.titleBar, mw.status, nil, nil, container.NewPadded(grid))
	mw.window.SetContent(content)
}

// buildGrid renders one column per category side by side
func (mw *MainWindow) buildGrid(columns []Column) fyne.CanvasObject {
	if len(columns) == 0 {
		return container.NewCenter(widget.NewLabel("No programs configured"))
	}

	objects := make([]fyne.CanvasObject, 0, len(columns))
	for _, column := range columns {
		box := container.NewVBox()
		if column.ShowLabel() {
			box.Add(widget.NewLabelWithStyle(column.Category, fyne.TextAlignCenter, fyne.TextStyle{}))
		}
		for _, spec := range column.Buttons {
			size := fyne.NewSize(float32(spec.Width), float32(spec.Height))
			box.Add(container.NewCenter(NewIconButton(spec.IconPath, size, mw.launchAction(spec))))
		}
		objects = append(objects, box)
	}
	return container.NewGridWithColumns(len(objects), objects...)
}

// launchAction binds a button to its own category and program
func (mw *MainWindow) launchAction(spec ButtonSpec) func() {
	return func() {
		mw.controller.Launch(spec.Category, spec.Program, mw.showResult)
	}
}

// showResult puts the outcome of a launch in the status line
func (mw *MainWindow) showResult(res launcher.Result) {
	mw.status.SetText(res.Message())
}

// reveal is the only place the window is shown. Fyne creates it centered;
// the placer then pins the exact position on platforms where it can.
func (mw *MainWindow) reveal() {
	mw.window.CenterOnScreen()
	mw.window.Show()
	if w, h, ok := mw.placer.ScreenSize(); ok {
		x, y := platform.Center(w, h, WindowWidth, WindowHeight)
		if err := mw.placer.Move(WindowTitle, x, y); err != nil {
			slog.Debug("center window", "error", err)
		}
	}
	mw.window.RequestFocus()
}

// Origin implements windowMover
func (mw *MainWindow) Origin() (Point, bool) {
	x, y, ok := mw.placer.Position(WindowTitle)
	return Point{X: x, Y: y}, ok
}

// MoveTo implements windowMover
func (mw *MainWindow) MoveTo(origin Point) error {
	return mw.placer.Move(WindowTitle, origin.X, origin.Y)
}
