package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunLogOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	l, err := OpenRunLog(dbPath)
	if err != nil {
		t.Fatalf("OpenRunLog() failed: %v", err)
	}
	defer l.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRunLogAppendAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	l, err := OpenRunLog(dbPath)
	if err != nil {
		t.Fatalf("OpenRunLog() failed: %v", err)
	}
	defer l.Close()

	id1, err := l.Append("recaman", 1000, 400481)
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	id2, err := l.Append("recaman", 500, 200244)
	if err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("IDs not increasing: %d then %d", id1, id2)
	}

	// Different program
	if _, err := l.Append("other", 10, 5); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	runs, err := l.Recent("recaman", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Recent() returned %d runs, want 2", len(runs))
	}

	// Newest first
	if runs[0].ID != id2 || runs[0].Terms != 500 || runs[0].MaxTerm != 200244 {
		t.Errorf("runs[0] = %+v", runs[0])
	}
	if runs[1].ID != id1 || runs[1].Terms != 1000 || runs[1].MaxTerm != 400481 {
		t.Errorf("runs[1] = %+v", runs[1])
	}
	for i, r := range runs {
		if r.ProgramID != "recaman" {
			t.Errorf("runs[%d].ProgramID = %q", i, r.ProgramID)
		}
	}
}

func TestRunLogRecentLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	l, err := OpenRunLog(dbPath)
	if err != nil {
		t.Fatalf("OpenRunLog() failed: %v", err)
	}
	defer l.Close()

	for i := 0; i < 7; i++ {
		if _, err := l.Append("recaman", 100+i, int64(i)); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	runs, err := l.Recent("recaman", 3)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Recent(3) returned %d runs", len(runs))
	}

	// Non-positive limit falls back to the default of 10.
	runs, err = l.Recent("recaman", 0)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(runs) != 7 {
		t.Errorf("Recent(0) returned %d runs, want all 7", len(runs))
	}
}

func TestRunLogPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	l, err := OpenRunLog(dbPath)
	if err != nil {
		t.Fatalf("OpenRunLog() failed: %v", err)
	}
	if _, err := l.Append("recaman", 1000, 400481); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	l.Close()

	l2, err := OpenRunLog(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer l2.Close()

	runs, err := l2.Recent("recaman", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Recent() after reopen returned %d runs, want 1", len(runs))
	}
}
