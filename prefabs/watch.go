package prefabs

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// Change is a prefab file whose contents changed on disk.
type Change struct {
	Name string
	Data []byte
}

// DefaultDebounce is how long a file must stay quiet before it is read.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports yaml prefab edits. Editors tend to emit several events per
// save, so a file is read only once no event has arrived for it for Debounce,
// and dropped when the content hash is unchanged.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error

	Debounce time.Duration

	hashes map[string]uint64
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	return &Watcher{
		watcher:  w,
		Events:   make(chan Change, 16),
		Errors:   make(chan error, 1),
		Debounce: DefaultDebounce,
		hashes:   make(map[string]uint64),
	}, nil
}

// Run forwards changes until ctx is done, then closes the watcher and both
// channels.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.Errors)
	defer close(w.Events)
	defer w.watcher.Close()

	pending := make(map[string]struct{})
	quiet := time.NewTimer(w.Debounce)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			quiet.Reset(w.Debounce)
		case <-quiet.C:
			for _, path := range slices.Sorted(maps.Keys(pending)) {
				delete(pending, path)
				change, ok := w.read(path)
				if !ok {
					continue
				}
				select {
				case w.Events <- change:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) read(path string) (Change, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Change{}, false
	}
	sum := xxhash.Sum64(data)
	if prev, ok := w.hashes[path]; ok && prev == sum {
		return Change{}, false
	}
	w.hashes[path] = sum
	return Change{Name: filepath.Base(path), Data: data}, true
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
