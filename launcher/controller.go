package launcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"speedrunlauncher/models"
)

// DefaultShellProgram is launched through the platform shell instead of
// directly
const DefaultShellProgram = "rkvMT"

// Store persists the program mapping
type Store interface {
	Save(programs *models.Programs) error
}

// Picker asks the user for an executable. A cancelled dialog calls done with
// an empty path and a nil error.
type Picker interface {
	PickExecutable(title string, done func(path string, err error))
}

// Controller resolves, configures and starts programs. It is the only writer
// of the mapping it is given.
type Controller struct {
	programs     *models.Programs
	store        Store
	picker       Picker
	spawner      Spawner
	shellProgram string

	chdir func(dir string) error
	stat  func(path string) (os.FileInfo, error)
}

// NewController creates a controller for programs
func NewController(programs *models.Programs, store Store, picker Picker) *Controller {
	return &Controller{
		programs:     programs,
		store:        store,
		picker:       picker,
		spawner:      NewExecSpawner(),
		shellProgram: DefaultShellProgram,
		chdir:        os.Chdir,
		stat:         os.Stat,
	}
}

// Programs returns the mapping owned by the controller
func (c *Controller) Programs() *models.Programs {
	return c.programs
}

// Launch starts a program. Unconfigured programs go through the picker first
// and are started once a path was chosen and saved. done is called exactly
// once with the outcome; it may be nil.
func (c *Controller) Launch(category, program string, done func(Result)) {
	res := Result{ID: uuid.NewString(), Category: category, Program: program}
	report := func(r Result) {
		logResult(r)
		if done != nil {
			done(r)
		}
	}

	if path, _ := c.programs.Path(category, program); path != "" {
		res.Path = path
		report(c.start(res))
		return
	}

	slog.Info("path is empty, asking for the executable", "id", res.ID, "category", category, "program", program)
	title := fmt.Sprintf("Select the executable file for %s", program)
	c.picker.PickExecutable(title, func(selected string, err error) {
		report(c.configure(res, selected, err))
	})
}

// configure stores a freshly picked path and starts the program
func (c *Controller) configure(res Result, selected string, pickErr error) Result {
	if pickErr != nil {
		return res.fail(PickFailed, pickErr)
	}
	if selected == "" {
		return res.fail(NotConfigured, nil)
	}

	path := cleanPath(selected)
	res.Path = path
	if _, err := c.stat(path); err != nil {
		return res.fail(PickFailed, fmt.Errorf("selected file: %w", err))
	}

	if !c.programs.SetPath(res.Category, res.Program, path) {
		return res.fail(PickFailed, fmt.Errorf("%w: %s/%s", ErrUnknownProgram, res.Category, res.Program))
	}
	if err := c.store.Save(c.programs); err != nil {
		return res.fail(SaveFailed, err)
	}
	slog.Info("configured program", "id", res.ID, "program", res.Program, "path", path)

	return c.start(res)
}

// start changes into the program folder and spawns it
func (c *Controller) start(res Result) Result {
	dir := filepath.Dir(res.Path)
	if dir == "" || dir == "." {
		return res.fail(NoDirectory, fmt.Errorf("%w: %s", ErrNoDirectory, res.Path))
	}
	if err := c.chdir(dir); err != nil {
		return res.fail(ChdirFailed, err)
	}

	var err error
	if res.Program == c.shellProgram {
		err = c.spawner.StartShell(res.Path)
	} else {
		err = c.spawner.Start(res.Path)
	}
	if err != nil {
		return res.fail(SpawnFailed, err)
	}

	res.Status = Launched
	return res
}

func logResult(r Result) {
	attrs := []any{"id", r.ID, "category", r.Category, "program", r.Program, "status", r.Status.String()}
	switch r.Status {
	case Launched:
		slog.Info("program started", append(attrs, "path", r.Path)...)
	case NotConfigured:
		slog.Info(r.Message(), attrs...)
	default:
		slog.Error(r.Message(), append(attrs, "path", r.Path, "error", r.Err)...)
	}
}

// cleanPath strips surrounding quotes and normalizes separators
func cleanPath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.Trim(path, `"'`)
	return filepath.Clean(path)
}
