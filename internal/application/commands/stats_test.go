package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"jotdex/internal/adapters/filesystem"
)

func TestStatsCommand_Execute(t *testing.T) {
	vaultPath := setupTestVault(t)
	repo := filesystem.NewRepository(vaultPath, nil)

	cmd := NewStatsCommand(repo, 2024)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Summary.TotalNotes() != 4 {
		t.Errorf("TotalNotes = %d, want 4", result.Summary.TotalNotes())
	}
	if len(result.Summary.Months) != 3 {
		t.Errorf("expected 3 months, got %d", len(result.Summary.Months))
	}
}

func TestStatsCommand_WritesNothing(t *testing.T) {
	vaultPath := setupTestVault(t)
	repo := filesystem.NewRepository(vaultPath, nil)

	cmd := NewStatsCommand(repo, 2024)
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(vaultPath, "2024", "Overview 2024 DailyNotes.md")); !os.IsNotExist(err) {
		t.Error("stats must not write the yearly index")
	}
}

func TestStatsCommand_InvalidYear(t *testing.T) {
	repo := filesystem.NewRepository(setupTestVault(t), nil)

	cmd := NewStatsCommand(repo, 99)
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
}
