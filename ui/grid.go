package ui

import (
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"speedrunlauncher/models"
)

// ButtonSpec is everything a grid button needs, copied out of the mapping
// so each button owns its own values.
type ButtonSpec struct {
	Category string
	Program  string
	IconPath string
	Width    int
	Height   int
}

// Column is one category of the grid
type Column struct {
	Category string
	Buttons  []ButtonSpec
}

// ShowLabel reports whether the column gets a heading
func (c Column) ShowLabel() bool {
	return c.Category != ""
}

// IconPath returns the icon file of a program: the lower-cased program name
// with a .png extension.
func IconPath(iconDir, program string) string {
	return filepath.Join(iconDir, strings.ToLower(program)+".png")
}

// PlanGrid lays out one column per category in stored order. Programs
// without a readable icon are left out of the grid.
func PlanGrid(programs *models.Programs, iconDir string) []Column {
	var columns []Column
	for _, category := range programs.Categories() {
		column := Column{Category: category}
		for _, entry := range programs.Entries(category) {
			iconPath := IconPath(iconDir, entry.Program)
			width, height, err := iconSize(iconPath)
			if err != nil {
				slog.Debug("no icon, skipping button", "program", entry.Program, "icon", iconPath, "error", err)
				continue
			}
			column.Buttons = append(column.Buttons, ButtonSpec{
				Category: entry.Category,
				Program:  entry.Program,
				IconPath: iconPath,
				Width:    width,
				Height:   height,
			})
		}
		columns = append(columns, column)
	}
	return columns
}

func iconSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
