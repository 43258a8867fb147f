package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/pkg/logger"
	"github.com/doeshing/cmdx/internal/ports"
)

func sampleRecords() []domain.HistoryRecord {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.HistoryRecord{
		{ID: "a", Timestamp: base, Kind: domain.KindCommand, From: "windows", To: "linux", Original: "dir /w", Translated: "ls -C", Warnings: []string{}, Success: true},
		{ID: "b", Timestamp: base.Add(time.Minute), Kind: domain.KindPath, From: "windows", To: "linux", Original: `C:\Users`, Translated: "/mnt/c/Users", Success: true},
		{ID: "c", Timestamp: base.Add(2 * time.Minute), Kind: domain.KindCommand, From: "linux", To: "windows", Original: "frobnicate", Success: false, Error: "unknown command", Warnings: []string{"w1"}},
	}
}

func stores(t *testing.T) map[string]ports.HistoryRepository {
	t.Helper()
	dir := t.TempDir()
	sqlite, err := NewSQLiteStore(filepath.Join(dir, "h.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })
	return map[string]ports.HistoryRepository{
		"sqlite": sqlite,
		"file":   NewFileStore(filepath.Join(dir, "nested", "h.jsonl")),
	}
}

// emptyWarnings treats nil and empty warning lists alike.
var emptyWarnings = cmpopts.EquateEmpty()

func TestStoresRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			records := sampleRecords()
			for _, rec := range records {
				if err := store.Save(rec); err != nil {
					t.Fatalf("Save: %v", err)
				}
			}

			got, err := store.Records(0, "")
			if err != nil {
				t.Fatalf("Records: %v", err)
			}
			want := []domain.HistoryRecord{records[2], records[1], records[0]}
			if diff := cmp.Diff(want, got, emptyWarnings); diff != "" {
				t.Fatalf("records mismatch (-want +got):\n%s", diff)
			}

			limited, err := store.Records(1, "")
			if err != nil || len(limited) != 1 || limited[0].ID != "c" {
				t.Fatalf("limited = %+v, %v", limited, err)
			}

			found, err := store.Records(0, "MNT/C")
			if err != nil || len(found) != 1 || found[0].ID != "b" {
				t.Fatalf("search = %+v, %v", found, err)
			}

			dest := filepath.Join(t.TempDir(), "export.jsonl")
			if err := store.ExportJSON(dest); err != nil {
				t.Fatalf("ExportJSON: %v", err)
			}
			if n := countJSONLines(t, dest); n != 3 {
				t.Fatalf("exported %d lines, want 3", n)
			}

			if err := store.Clear(); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if left, _ := store.Records(0, ""); len(left) != 0 {
				t.Fatalf("records after clear = %d", len(left))
			}
		})
	}
}

func countJSONLines(t *testing.T, path string) int {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	n := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec domain.HistoryRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("line %d: %v", n+1, err)
		}
		n++
	}
	return n
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewNop()

	sqlite := Open(domain.HistorySettings{Backend: domain.HistoryBackendSQLite}, dir, log)
	if sqlite.Path() != filepath.Join(dir, "history", "history.db") {
		t.Fatalf("sqlite path = %s", sqlite.Path())
	}
	if s, ok := sqlite.(*SQLiteStore); ok {
		_ = s.Close()
	} else {
		t.Fatalf("sqlite backend = %T", sqlite)
	}

	file := Open(domain.HistorySettings{Backend: domain.HistoryBackendFile}, dir, log)
	if _, ok := file.(*FileStore); !ok || file.Path() != filepath.Join(dir, "history", "history.jsonl") {
		t.Fatalf("file backend = %T at %s", file, file.Path())
	}

	custom := filepath.Join(dir, "custom.jsonl")
	if got := Open(domain.HistorySettings{Backend: domain.HistoryBackendFile, Path: custom}, dir, log); got.Path() != custom {
		t.Fatalf("custom path = %s", got.Path())
	}
}

func TestOpenFallsBackToFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	// The parent of the database path is a regular file, so sqlite cannot open it.
	store := Open(domain.HistorySettings{Backend: domain.HistoryBackendSQLite, Path: filepath.Join(blocker, "h.db")}, dir, logger.NewNop())
	if _, ok := store.(*FileStore); !ok {
		t.Fatalf("fallback store = %T", store)
	}
}
