package corpus

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ReloadEvent reports one attempt to reload a watched document. On success
// Doc holds the freshly installed document; on failure Err explains why the
// previous document was kept.
type ReloadEvent struct {
	Path string
	Doc  Document
	Err  error
}

// Watcher reloads a store's document whenever the backing file changes.
// The document is still only ever replaced wholesale; the watcher just
// automates the replacement.
type Watcher struct {
	store   *Store
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the document at path. The parent
// directory is watched rather than the file itself, since editors often
// replace files by rename.
func NewWatcher(store *Store, path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{
		store:   store,
		path:    filepath.Clean(path),
		watcher: w,
	}, nil
}

// Start begins watching and emits a ReloadEvent per reload attempt until
// ctx is cancelled or the watcher is stopped. The returned channel closes
// when watching ends.
func (w *Watcher) Start(ctx context.Context) <-chan ReloadEvent {
	events := make(chan ReloadEvent, 16)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				reload := w.reload()
				select {
				case events <- reload:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				select {
				case events <- ReloadEvent{Path: w.path, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events
}

// reload re-reads the file and replaces the store document on success.
func (w *Watcher) reload() ReloadEvent {
	doc, err := Load(w.path)
	if err != nil {
		return ReloadEvent{Path: w.path, Err: err}
	}
	w.store.Replace(doc)
	return ReloadEvent{Path: w.path, Doc: doc}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
