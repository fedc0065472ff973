package watcher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Event signals that the theme files under Dir changed in any way: a file
// was added, removed, or rewritten.
type Event struct {
	Dir string
}

type Options struct {
	Interval time.Duration
	Buffer   int
	// Extensions limits which files count towards a directory's digest.
	// Defaults to the theme file formats.
	Extensions []string
}

type Watcher struct {
	mu      sync.RWMutex
	digests map[string]string
	exts    []string

	out      chan Event
	interval time.Duration
	stop     chan struct{}
	wg       sync.WaitGroup
	started  bool
	closed   bool
}

const (
	defaultInterval = time.Second
	defaultBuffer   = 16
)

var defaultExtensions = []string{".toml", ".json", ".yaml", ".yml"}

func New(opts Options) *Watcher {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	buf := opts.Buffer
	if buf <= 0 {
		buf = defaultBuffer
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = defaultExtensions
	}
	return &Watcher{
		digests:  make(map[string]string),
		exts:     exts,
		out:      make(chan Event, buf),
		interval: interval,
	}
}

func (w *Watcher) Events() <-chan Event {
	return w.out
}

// Watch registers a directory and records its current digest as the
// baseline, so only later changes emit events. A directory that does not
// exist yet digests as empty and emits once it appears with theme files.
func (w *Watcher) Watch(dir string) {
	clean := filepath.Clean(dir)
	if clean == "" || clean == "." {
		return
	}
	digest := w.digestDir(clean)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.digests[clean] = digest
}

func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started || w.closed {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.stop = make(chan struct{})
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				w.Scan()
			case <-w.stop:
				return
			}
		}
	}()
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	if w.started && w.stop != nil {
		close(w.stop)
	}
	w.mu.Unlock()
	if w.started {
		w.wg.Wait()
	}
	close(w.out)
}

// Scan re-digests every watched directory and emits an event per changed
// one. Exposed so callers (and tests) can force a pass without waiting for
// the ticker.
func (w *Watcher) Scan() {
	w.mu.RLock()
	if w.closed {
		w.mu.RUnlock()
		return
	}
	dirs := make([]string, 0, len(w.digests))
	for dir := range w.digests {
		dirs = append(dirs, dir)
	}
	w.mu.RUnlock()

	for _, dir := range dirs {
		digest := w.digestDir(dir)
		if w.updateDigest(dir, digest) {
			w.emit(Event{Dir: dir})
		}
	}
}

func (w *Watcher) updateDigest(dir, digest string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	prev, ok := w.digests[dir]
	if !ok || prev == digest {
		return false
	}
	w.digests[dir] = digest
	return true
}

func (w *Watcher) emit(evt Event) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}
	select {
	case w.out <- evt:
	default:
	}
}

// digestDir folds name, size and modtime of every theme file into one hash.
// Content hashing is unnecessary here: rewrites bump the modtime, and the
// consumer reloads the whole catalog either way.
func (w *Watcher) digestDir(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	records := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !w.matchesExt(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		records = append(records, fmt.Sprintf(
			"%s|%d|%d",
			entry.Name(),
			info.Size(),
			info.ModTime().UnixNano(),
		))
	}
	if len(records) == 0 {
		return ""
	}
	sort.Strings(records)
	h := sha256.New()
	for _, record := range records {
		_, _ = h.Write([]byte(record))
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (w *Watcher) matchesExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range w.exts {
		if ext == candidate {
			return true
		}
	}
	return false
}
