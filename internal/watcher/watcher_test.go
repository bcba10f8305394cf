package watcher

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/vtt2text/internal/logger"
)

func TestIsSubtitleFile(t *testing.T) {
	w := &implWatcher{}

	tests := []struct {
		path string
		want bool
	}{
		{"/in/talk.vtt", true},
		{"/in/TALK.VTT", true},
		{"/in/.talk.vtt", false},
		{"/in/talk.vtt.part", false},
		{"/in/talk.srt", false},
	}

	for _, tt := range tests {
		if got := w.isSubtitleFile(tt.path); got != tt.want {
			t.Errorf("isSubtitleFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewMissingDirectory(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "error")
	handler := func(ctx context.Context, filePath string) error { return nil }

	if _, err := New(filepath.Join(t.TempDir(), "missing"), handler, log, 1, 0); err == nil {
		t.Error("New() should return error for a missing directory")
	}
}

func TestStartHandlesNewSubtitles(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewWithWriter(io.Discard, "debug")

	got := make(chan string, 4)
	handler := func(ctx context.Context, filePath string) error {
		got <- filepath.Base(filePath)
		return errors.New("logged, not fatal")
	}

	w, err := New(dir, handler, log, 2, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "talk.vtt"), []byte("WEBVTT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-got:
		if name != "talk.vtt" {
			t.Errorf("handler called with %v, want talk.vtt", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want %v", err, context.Canceled)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}

	select {
	case name := <-got:
		t.Errorf("unexpected handler call for %v", name)
	default:
	}
}
