package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rollwise/rollcut/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sofa-order.json")

	p := model.NewProject()
	p.Name = "Sofa Order"
	p.Roll = model.Roll{Width: 152, Length: 500}
	p.Pieces = []model.Piece{
		model.NewPiece("Seat", 60, 120, 2),
		model.NewPiece("Back", 50, 100, 2),
	}
	p.Unit = model.UnitMeters
	p.Settings.ForceHorizontal = true

	if err := Save(path, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Name != "Sofa Order" {
		t.Errorf("expected name 'Sofa Order', got %q", loaded.Name)
	}
	if loaded.Roll != p.Roll {
		t.Errorf("roll mismatch: %+v", loaded.Roll)
	}
	if len(loaded.Pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(loaded.Pieces))
	}
	if loaded.Pieces[0].Label != "Seat" || loaded.Pieces[0].Quantity != 2 {
		t.Errorf("unexpected first piece: %+v", loaded.Pieces[0])
	}
	if loaded.Unit != model.UnitMeters {
		t.Errorf("expected meters unit, got %q", loaded.Unit)
	}
	if !loaded.Settings.ForceHorizontal {
		t.Error("expected ForceHorizontal to survive the round trip")
	}
}

func TestSaveProject_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "plan.json")

	if err := Save(path, model.NewProject()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("project file was not created: %v", err)
	}
}

func TestSaveProject_IncludesPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "with-plan.json")

	p := model.NewProject()
	p.Plan = &model.CutPlan{
		Roll:         p.Roll,
		Placements:   []model.Placement{{X: 0, Y: 0, Width: 50, Length: 75}},
		WastePercent: 10,
	}

	if err := Save(path, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Plan == nil {
		t.Fatal("expected plan to survive the round trip")
	}
	if len(loaded.Plan.Placements) != 1 {
		t.Errorf("expected 1 placement, got %d", len(loaded.Plan.Placements))
	}
	if loaded.Plan.WastePercent != 10 {
		t.Errorf("expected waste 10, got %f", loaded.Plan.WastePercent)
	}
}

func TestLoadProject_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadProject_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadProject_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bare.json")
	if err := os.WriteFile(path, []byte(`{"roll":{"width":100,"length":200}}`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "Untitled" {
		t.Errorf("expected default name, got %q", loaded.Name)
	}
	if loaded.Pieces == nil {
		t.Error("expected non-nil pieces slice")
	}
	if loaded.Unit != model.UnitCentimeters {
		t.Errorf("expected cm default unit, got %q", loaded.Unit)
	}
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultRollWidth = 200
	cfg.Theme = "dark"
	cfg.RecentProjects = []string{"/tmp/proj1.json", "/tmp/proj2.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultRollWidth != 200 {
		t.Errorf("expected DefaultRollWidth=200, got %f", loaded.DefaultRollWidth)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if len(loaded.RecentProjects) != 2 {
		t.Errorf("expected 2 recent projects, got %d", len(loaded.RecentProjects))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	defaults := model.DefaultAppConfig()
	if cfg.DefaultRollWidth != defaults.DefaultRollWidth {
		t.Errorf("expected default config, got %+v", cfg)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should never be nil")
	}
}

func TestLoadAppConfig_NilRecentProjects(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"light"}`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should never be nil")
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := model.DefaultAppConfig()

	AddRecentProject(&cfg, "/tmp/a.json")
	AddRecentProject(&cfg, "/tmp/b.json")
	AddRecentProject(&cfg, "/tmp/a.json")

	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "/tmp/a.json" {
		t.Errorf("expected most recent first, got %v", cfg.RecentProjects)
	}
	if cfg.RecentProjects[1] != "/tmp/b.json" {
		t.Errorf("expected older entry second, got %v", cfg.RecentProjects)
	}
}

func TestAddRecentProject_Cap(t *testing.T) {
	cfg := model.DefaultAppConfig()
	for i := 0; i < 15; i++ {
		AddRecentProject(&cfg, filepath.Join("/tmp", "p"+strings.Repeat("x", i)+".json"))
	}

	if len(cfg.RecentProjects) != maxRecentProjects {
		t.Errorf("expected list capped at %d, got %d", maxRecentProjects, len(cfg.RecentProjects))
	}
}

func TestBackupRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"

	if err := ExportAllData(path, cfg); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
	if backup.Config.Theme != "dark" {
		t.Errorf("expected theme to survive, got %q", backup.Config.Theme)
	}
}

func TestImportAllData_MissingVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without version")
	}
}
