package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"speedrunlauncher/models"
)

// DefaultFile is the settings document, relative to the startup directory
const DefaultFile = "settings.json"

// programsKey is the single top-level key of the settings document
const programsKey = "PROGRAMS"

// ErrMalformed is returned when the settings document cannot be parsed
var ErrMalformed = errors.New("malformed settings file")

// document is the on-disk form of the settings
type document struct {
	Programs *models.Programs `json:"PROGRAMS"`
}

// Manager handles persistence of the program mapping
type Manager struct {
	filePath string
}

// NewManager creates a storage manager for the given file. An empty path
// means DefaultFile. Relative paths are resolved once against the current
// working directory, so later launches changing directory do not move the
// settings file.
func NewManager(filePath string) *Manager {
	if filePath == "" {
		filePath = DefaultFile
	}
	if abs, err := filepath.Abs(filePath); err == nil {
		filePath = abs
	} else {
		slog.Warn("cannot resolve settings path", "file", filePath, "error", err)
	}
	return &Manager{filePath: filePath}
}

// FilePath returns the settings file location
func (m *Manager) FilePath() string {
	return m.filePath
}

// Load reads the program mapping. When the file does not exist the default
// mapping is returned and written to disk straight away.
func (m *Manager) Load() (*models.Programs, error) {
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("settings file not found, writing defaults", "file", m.filePath)
			programs := models.DefaultPrograms()
			if err := m.Save(programs); err != nil {
				return programs, err
			}
			return programs, nil
		}
		return nil, fmt.Errorf("read %s: %w", m.filePath, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrMalformed, m.filePath)
	}

	section := gjson.GetBytes(data, programsKey)
	if !section.Exists() {
		slog.Warn("settings file has no programs section", "file", m.filePath)
		return models.NewPrograms(), nil
	}

	programs := models.NewPrograms()
	if err := json.Unmarshal([]byte(section.Raw), programs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, m.filePath, err)
	}

	slog.Debug("loaded settings", "file", m.filePath, "categories", len(programs.Categories()), "programs", programs.Len())
	return programs, nil
}

// Save writes the whole mapping, replacing the previous file
func (m *Manager) Save(programs *models.Programs) error {
	if programs == nil {
		programs = models.NewPrograms()
	}

	data, err := json.Marshal(document{Programs: programs})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.WriteFile(m.filePath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", m.filePath, err)
	}
	slog.Debug("saved settings", "file", m.filePath, "programs", programs.Len())
	return nil
}
