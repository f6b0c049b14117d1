package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jotdex/internal/adapters/filesystem"
	"jotdex/internal/adapters/markdown"
	"jotdex/internal/domain"
	"jotdex/internal/ports"
)

func setupTestVault(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	notes := map[string][]string{
		"202401": {"20240101.md", "20240102_Planning.md", "20240112_Some_Long_Topic.md"},
		"202402": {},
		"202403": {"20240301.md"},
	}
	for folder, files := range notes {
		dir := filepath.Join(tmpDir, "2024", folder)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create month dir: %v", err)
		}
		for _, file := range files {
			path := filepath.Join(dir, file)
			if err := os.WriteFile(path, []byte("# Entry\n\ntext\n"), 0644); err != nil {
				t.Fatalf("failed to write note: %v", err)
			}
		}
	}

	return tmpDir
}

func TestYearIndexCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"valid year", 2024, false},
		{"zero year", 0, true},
		{"three digits", 999, true},
		{"five digits", 10000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &YearIndexCommand{Year: tt.year}
			err := cmd.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestYearIndexCommand_Execute(t *testing.T) {
	vaultPath := setupTestVault(t)
	repo := filesystem.NewRepository(vaultPath, nil)
	renderer := markdown.NewRenderer()

	cmd := NewYearIndexCommand(repo, renderer, "tester", 2024)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Total equals the sum of per-month counts
	if got := result.Summary.TotalNotes(); got != 4 {
		t.Errorf("TotalNotes = %d, want 4", got)
	}
	sum := 0
	for _, m := range result.Summary.Months {
		sum += len(m.Notes)
	}
	if sum != result.Summary.TotalNotes() {
		t.Errorf("total %d != per-month sum %d", result.Summary.TotalNotes(), sum)
	}

	// Yearly index written
	content, err := os.ReadFile(result.IndexPath)
	if err != nil {
		t.Fatalf("yearly index not written: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "**Total number of notes in 2024: 4**") {
		t.Errorf("yearly index missing total:\n%s", text)
	}
	if !strings.Contains(text, "- [[20240112_Some_Long_Topic]]") {
		t.Errorf("underscored filename mangled in yearly index:\n%s", text)
	}

	// One monthly index per month folder, empty month included
	if len(result.MonthPaths) != 3 {
		t.Fatalf("expected 3 monthly indexes, got %d", len(result.MonthPaths))
	}
	for _, path := range result.MonthPaths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("monthly index not written: %v", err)
		}
	}
}

func TestYearIndexCommand_PreservesDate(t *testing.T) {
	vaultPath := setupTestVault(t)
	repo := filesystem.NewRepository(vaultPath, nil)
	renderer := markdown.NewRenderer()

	indexPath := filepath.Join(vaultPath, "2024", domain.YearIndexFilename(2024))
	existing := "---\ntitle: Overview 2024 Daily Notes\nauthor: tester\ntype: TableOfContents\ndate: \"2024-01-12\"\nupdated: \"2024-06-01\"\ntags:\n    - daily\n---\n\n# Journal 2024\n"
	if err := os.WriteFile(indexPath, []byte(existing), 0644); err != nil {
		t.Fatalf("failed to seed index: %v", err)
	}

	cmd := NewYearIndexCommand(repo, renderer, "tester", 2024)
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	content, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("failed to read regenerated index: %v", err)
	}

	meta, err := renderer.ParseMetadata(content)
	if err != nil {
		t.Fatalf("failed to parse regenerated metadata: %v", err)
	}
	if meta.Date != "2024-01-12" {
		t.Errorf("date not preserved: got %q, want 2024-01-12", meta.Date)
	}
	if meta.Updated == "2024-06-01" {
		t.Error("updated field was not refreshed")
	}
}

func TestYearIndexCommand_MalformedMetadataFallsBack(t *testing.T) {
	vaultPath := setupTestVault(t)
	repo := filesystem.NewRepository(vaultPath, nil)
	renderer := markdown.NewRenderer()

	indexPath := filepath.Join(vaultPath, "2024", domain.YearIndexFilename(2024))
	if err := os.WriteFile(indexPath, []byte("---\ndate: [unclosed\n---\n"), 0644); err != nil {
		t.Fatalf("failed to seed index: %v", err)
	}

	cmd := NewYearIndexCommand(repo, renderer, "tester", 2024)
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	content, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("failed to read regenerated index: %v", err)
	}
	meta, err := renderer.ParseMetadata(content)
	if err != nil {
		t.Fatalf("failed to parse regenerated metadata: %v", err)
	}
	if meta.Date == "" {
		t.Error("date should fall back to the current date, got empty")
	}
	if meta.Date != meta.Updated {
		t.Errorf("fallback date %q should equal updated %q", meta.Date, meta.Updated)
	}
}

func TestYearIndexCommand_MissingYear(t *testing.T) {
	repo := filesystem.NewRepository(setupTestVault(t), nil)
	renderer := markdown.NewRenderer()

	cmd := NewYearIndexCommand(repo, renderer, "tester", 1999)
	if _, err := cmd.Execute(context.Background()); err == nil {
		t.Fatal("expected error for missing year")
	}
}

// brokenMonthRepo fails listing one month to exercise skip-and-continue
type brokenMonthRepo struct {
	ports.JournalRepository
	broken string
}

func (r *brokenMonthRepo) ListNotes(month domain.Month) ([]domain.Note, error) {
	if month.Folder == r.broken {
		return nil, errors.New("permission denied")
	}
	return r.JournalRepository.ListNotes(month)
}

func TestYearIndexCommand_SkipsUnreadableMonth(t *testing.T) {
	vaultPath := setupTestVault(t)
	repo := &brokenMonthRepo{
		JournalRepository: filesystem.NewRepository(vaultPath, nil),
		broken:            "202402",
	}
	renderer := markdown.NewRenderer()

	cmd := NewYearIndexCommand(repo, renderer, "tester", 2024)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped month, got %d", len(result.Skipped))
	}
	if result.Skipped[0].Folder != "202402" {
		t.Errorf("skipped folder = %q, want 202402", result.Skipped[0].Folder)
	}
	// The remaining months were still indexed
	if len(result.Summary.Months) != 2 {
		t.Errorf("expected 2 indexed months, got %d", len(result.Summary.Months))
	}
	if result.Summary.TotalNotes() != 4 {
		t.Errorf("TotalNotes = %d, want 4", result.Summary.TotalNotes())
	}
	if !strings.Contains(result.Skipped[0].Error(), "202402") {
		t.Errorf("skip message should name the folder: %v", result.Skipped[0])
	}
}
