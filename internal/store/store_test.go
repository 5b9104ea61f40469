package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/slidekit/git-slides/internal/session"
)

func testSession() *session.Session {
	return &session.Session{
		Anchor:        "v1.0",
		InitialBranch: "main",
		StartedAt:     time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		Slides: []session.Slide{
			{Hash: "0000000000000000000000000000000000000001", Subject: "Intro"},
			{Hash: "0000000000000000000000000000000000000002", Subject: "Demo"},
			{Hash: "0000000000000000000000000000000000000003", Subject: "Wrap up"},
		},
		CurrentIndex: 1,
	}
}

func TestLoad_Absent(t *testing.T) {
	s := New(t.TempDir())

	sess, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if sess != nil {
		t.Errorf("Load() = %+v, expected nil for an absent record", sess)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := New(t.TempDir())
	want := testSession()

	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSave_Overwrites(t *testing.T) {
	s := New(t.TempDir())

	first := testSession()
	if err := s.Save(first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := testSession()
	second.Anchor = "v2.0"
	second.CurrentIndex = 2
	if err := s.Save(second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Anchor != "v2.0" || got.CurrentIndex != 2 {
		t.Errorf("Load() = %+v, expected the second record to win", got)
	}
}

func TestClear(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Save(testSession()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	sess, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if sess != nil {
		t.Errorf("Load() after Clear() = %+v, expected nil", sess)
	}

	// Clearing again must not fail.
	if err := s.Clear(); err != nil {
		t.Errorf("Clear() on absent record error = %v", err)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := os.WriteFile(filepath.Join(dir, "git-slides.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	if _, err := s.Load(); err == nil {
		t.Errorf("Load() of a corrupt record succeeded, expected an error")
	}
}

func TestPath_InsideGitDir(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if got, want := s.Path(), filepath.Join(dir, "git-slides.json"); got != want {
		t.Errorf("Path() = %q, expected %q", got, want)
	}
}
