package ui

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"github.com/ncruces/zenity"
)

// lastUsedDirKey is the preference holding the folder of the last pick
const lastUsedDirKey = "LastUsedDir"

// FilePicker asks for an executable with the best dialog available.
// Priority order: 1) kdialog (KDE), 2) zenity (native), 3) Fyne.
type FilePicker struct {
	window fyne.Window
	prefs  fyne.Preferences
}

// NewFilePicker creates a picker whose Fyne fallback opens over window
func NewFilePicker(window fyne.Window, prefs fyne.Preferences) *FilePicker {
	return &FilePicker{window: window, prefs: prefs}
}

// PickExecutable implements launcher.Picker
func (p *FilePicker) PickExecutable(title string, done func(path string, err error)) {
	startDir := p.startDir()
	finish := func(path string, err error) {
		if err == nil && path != "" {
			p.rememberDir(path)
		}
		done(path, err)
	}

	if isKDialogAvailable() {
		filename, err := openKDialog(title, startDir)
		if err == nil {
			finish(filename, nil)
			return
		}
		slog.Debug("kdialog failed, trying zenity", "error", err)
	}

	if zenity.IsAvailable() {
		filename, err := zenity.SelectFile(
			zenity.Title(title),
			zenity.Filename(startDir+string(filepath.Separator)),
			zenity.FileFilters{
				{Name: "Programs", Patterns: []string{"*.exe", "*.bat", "*.cmd", "*.lnk", "*.sh", "*.AppImage"}, CaseFold: true},
				{Name: "All files", Patterns: []string{"*"}},
			},
		)
		if err == nil {
			finish(filename, nil)
			return
		}
		if errors.Is(err, zenity.ErrCanceled) {
			finish("", nil)
			return
		}
		slog.Debug("zenity failed, using Fyne dialog", "error", err)
	}

	p.openFyneDialog(startDir, finish)
}

// openFyneDialog is the fallback when no native dialog is available
func (p *FilePicker) openFyneDialog(startDir string, done func(string, error)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			done("", err)
			return
		}
		if reader == nil {
			done("", nil)
			return
		}
		defer reader.Close()
		done(reader.URI().Path(), nil)
	}, p.window)
	fileDialog.SetConfirmText("Select")

	if startDir != "" {
		if listable, err := fynestorage.ListerForURI(fynestorage.NewFileURI(startDir)); err == nil {
			fileDialog.SetLocation(listable)
		}
	}
	fileDialog.Show()
}

// startDir returns the last used folder or the user's home directory
func (p *FilePicker) startDir() string {
	if p.prefs != nil {
		if dir := p.prefs.String(lastUsedDirKey); dir != "" {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				return dir
			}
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func (p *FilePicker) rememberDir(path string) {
	if p.prefs == nil {
		return
	}
	p.prefs.SetString(lastUsedDirKey, filepath.Dir(path))
}

// isKDialogAvailable checks for the KDE dialog tool
func isKDialogAvailable() bool {
	if os.Getenv("KDE_FULL_SESSION") == "" {
		return false
	}
	_, err := exec.LookPath("kdialog")
	return err == nil
}

// openKDialog asks kdialog for a file. Exit code 1 means cancelled.
func openKDialog(title, startDir string) (string, error) {
	cmd := exec.Command("kdialog",
		"--getopenfilename", startDir,
		"*.exe *.sh *.run *.AppImage *",
		"--title", title,
	)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
