package slides

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-reads deck files in a directory as they change and posts the
// result through send. It never touches a Library directly; the update loop
// applies what it sends.
type Watcher struct {
	fs   *fsnotify.Watcher
	dir  string
	send func(tea.Msg)
	log  *zap.Logger

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Watch starts watching dir. The watcher stops when ctx is cancelled or
// Close is called.
func Watch(ctx context.Context, dir string, send func(tea.Msg), log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("deck watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		fs:   fw,
		dir:  dir,
		send: send,
		log:  log,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go w.run(ctx)
	log.Info("watching decks", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) Close() error {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.done
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer func() {
		if err := w.fs.Close(); err != nil {
			w.log.Warn("closing deck watcher", zap.Error(err))
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Error("deck watcher", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, deckExt) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	name := deckName(filepath.Base(event.Name))
	data, err := os.ReadFile(event.Name)
	if err != nil {
		w.send(ReloadFailedMsg{Name: name, Err: fmt.Errorf("read deck %s: %w", name, err)})
		return
	}
	d, err := Parse(name, data)
	if err != nil {
		w.send(ReloadFailedMsg{Name: name, Err: err})
		return
	}
	w.log.Debug("deck changed", zap.String("deck", name), zap.String("op", event.Op.String()))
	w.send(ReloadedMsg{Deck: d})
}
