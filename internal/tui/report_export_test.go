package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/mhartveld/sprintdeck/internal/store"
)

func TestGeneratePDFReportWritesFile(t *testing.T) {
	repo, _ := store.Seeded()
	dir := t.TempDir()

	path, err := GeneratePDFReport(repo.Snapshot(), dir)
	if err != nil {
		t.Fatalf("GeneratePDFReport failed: %v", err)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Fatalf("unexpected report path %q", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("report file is empty")
	}
}

func TestGeneratePDFReportEmptyStore(t *testing.T) {
	repo := store.New()
	dir := t.TempDir()

	if _, err := GeneratePDFReport(repo.Snapshot(), dir); err != nil {
		t.Fatalf("empty store report failed: %v", err)
	}
}

func TestGeneratePDFReportBadDirectory(t *testing.T) {
	repo, _ := store.Seeded()

	if _, err := GeneratePDFReport(repo.Snapshot(), "/no/such/dir"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
