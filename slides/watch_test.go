package slides

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"
)

func TestWatcherPostsReloadedDeck(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	msgs := make(chan tea.Msg, 64)
	send := func(msg tea.Msg) {
		select {
		case msgs <- msg:
		default:
		}
	}
	w, err := Watch(context.Background(), dir, send, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "ch07.yaml")
	data := []byte("title: Expressions\nslides:\n  - title: Operator precedence\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write readme: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-msgs:
			reloaded, ok := msg.(ReloadedMsg)
			if !ok {
				// a create event can race the write and see a partial file
				continue
			}
			if reloaded.Deck.Name != "ch07" || reloaded.Deck.Len() != 1 {
				t.Fatalf("unexpected deck %#v", reloaded.Deck)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}
			return
		case <-deadline:
			t.Fatalf("timed out waiting for reload")
		}
	}
}

func TestWatcherReportsParseFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	msgs := make(chan tea.Msg, 64)
	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, dir, func(msg tea.Msg) {
		select {
		case msgs <- msg:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "ch08.yaml"), []byte("slides: [\n"), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	select {
	case msg := <-msgs:
		failed, ok := msg.(ReloadFailedMsg)
		if !ok || failed.Name != "ch08" || failed.Err == nil {
			t.Fatalf("expected reload failure for ch08, got %#v", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for failure")
	}

	cancel()
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), func(tea.Msg) {}, nil); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
