// Package project handles persistence of projects, application
// configuration, and full-data backups as JSON files on disk.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rollwise/rollcut/internal/model"
)

// Save persists a project to the given path as indented JSON.
// It creates any missing parent directories automatically.
func Save(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the given path.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Name == "" {
		p.Name = "Untitled"
	}
	if p.Pieces == nil {
		p.Pieces = []model.Piece{}
	}
	if p.Unit == "" {
		p.Unit = model.UnitCentimeters
	}
	return p, nil
}
