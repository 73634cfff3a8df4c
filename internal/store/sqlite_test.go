package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer kv.Close()

	if _, found, err := kv.Get(ctx, KeyTasks); err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}

	s := New(kv, testLogger())
	want := sampleTasks()
	if out := s.SaveTasks(ctx, want); !out.OK {
		t.Fatalf("SaveTasks failed: %v", out.Err)
	}

	// Overwrite must replace, not append.
	want = want[:1]
	if out := s.SaveTasks(ctx, want); !out.OK {
		t.Fatalf("SaveTasks overwrite failed: %v", out.Err)
	}

	got, out := s.LoadTasks(ctx)
	if !out.OK {
		t.Fatalf("LoadTasks failed: %v", out.Err)
	}
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("unexpected reload result: %+v", got)
	}

	if err := kv.Delete(ctx, KeyTasks); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found, _ := kv.Get(ctx, KeyTasks); found {
		t.Error("key survived delete")
	}
}

func TestSQLiteKV_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "planner.db")
	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("open sqlite with nested path: %v", err)
	}
	kv.Close()
}
